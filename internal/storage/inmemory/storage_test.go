package inmemory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/dkazarov/dk_go_stream_alerts/internal/service/modelalert"
	storageErrors "github.com/dkazarov/dk_go_stream_alerts/internal/storage/errors"
)

func newTestStorage() *Storage {
	return InitStorage(zap.NewNop())
}

// Tests

func TestReplaceServices(t *testing.T) {
	s := newTestStorage()
	ctx := context.Background()
	first := []modelalert.ServiceLink{{ID: "s1"}, {ID: "s2"}}
	assert.NoError(t, s.ReplaceServices(ctx, first))
	second := []modelalert.ServiceLink{{ID: "s3"}}
	assert.NoError(t, s.ReplaceServices(ctx, second))
	links, err := s.Services(ctx)
	assert.NoError(t, err)
	assert.Equal(t, second, links)
}

func TestAppendService(t *testing.T) {
	s := newTestStorage()
	ctx := context.Background()
	assert.NoError(t, s.AppendService(ctx, modelalert.ServiceLink{ID: "s1"}))
	err := s.AppendService(ctx, modelalert.ServiceLink{ID: "s1"})
	var expError *storageErrors.AlreadyExistsError
	assert.ErrorAs(t, err, &expError)
}

func TestGetService(t *testing.T) {
	s := newTestStorage()
	ctx := context.Background()
	_ = s.ReplaceServices(ctx, []modelalert.ServiceLink{{ID: "s1", Wallet: "w1"}})
	link, err := s.GetService(ctx, "s1")
	assert.NoError(t, err)
	assert.Equal(t, "w1", link.Wallet)
	_, err = s.GetService(ctx, "s2")
	var expError *storageErrors.NotFoundError
	assert.ErrorAs(t, err, &expError)
}

func TestRemoveService(t *testing.T) {
	s := newTestStorage()
	ctx := context.Background()
	_ = s.ReplaceServices(ctx, []modelalert.ServiceLink{{ID: "s1"}})
	assert.NoError(t, s.RemoveService(ctx, "s1"))
	links, _ := s.Services(ctx)
	assert.Empty(t, links)
	// removing an already-absent id must succeed silently
	assert.NoError(t, s.RemoveService(ctx, "s1"))
}

func TestRemoveDonation(t *testing.T) {
	s := newTestStorage()
	ctx := context.Background()
	_ = s.ReplaceDonations(ctx, []modelalert.Donation{{ID: "d1"}, {ID: "d2"}})
	assert.NoError(t, s.RemoveDonation(ctx, "d1"))
	donations, _ := s.Donations(ctx)
	assert.Equal(t, []modelalert.Donation{{ID: "d2"}}, donations)
	assert.NoError(t, s.RemoveDonation(ctx, "d1"))
}

func TestDonations_Idempotence(t *testing.T) {
	s := newTestStorage()
	ctx := context.Background()
	donations := []modelalert.Donation{{ID: "d1", Sats: 100}, {ID: "d2", Sats: 200}}
	_ = s.ReplaceDonations(ctx, donations)
	firstRead, err := s.Donations(ctx)
	assert.NoError(t, err)
	secondRead, err := s.Donations(ctx)
	assert.NoError(t, err)
	assert.Equal(t, firstRead, secondRead)
}

func TestReplaceWalletLinks(t *testing.T) {
	s := newTestStorage()
	ctx := context.Background()
	assert.NoError(t, s.ReplaceWalletLinks(ctx, []string{"l1", "l2"}))
	assert.NoError(t, s.ReplaceWalletLinks(ctx, []string{"l1", "l2"}))
	linkIDs, err := s.WalletLinks(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"l1", "l2"}, linkIDs)
}

func TestStorage_ContextCancelled(t *testing.T) {
	s := newTestStorage()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.ReplaceServices(ctx, nil)
	var expError *storageErrors.ContextTimeoutExceededError
	if err != nil {
		assert.ErrorAs(t, err, &expError)
	}
}

// Benchmarks

func BenchmarkStorage_Donations(b *testing.B) {
	s := newTestStorage()
	ctx := context.Background()
	_ = s.ReplaceDonations(ctx, []modelalert.Donation{{ID: "d1"}, {ID: "d2"}})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Donations(ctx)
	}
}
