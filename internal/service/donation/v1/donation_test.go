package donation

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/dkazarov/dk_go_stream_alerts/internal/client/modeldto"
	"github.com/dkazarov/dk_go_stream_alerts/internal/config"
	"github.com/dkazarov/dk_go_stream_alerts/internal/mocks"
	serviceErrors "github.com/dkazarov/dk_go_stream_alerts/internal/service/errors"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/mapper"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/modelalert"
)

type staticConfirmer struct {
	answer bool
}

func (c staticConfirmer) Confirm(_ string) bool {
	return c.answer
}

var testWallets = []modelalert.Wallet{
	{ID: "w1", Inkey: "inkey1", Adminkey: "adminkey1"},
	{ID: "w2", Inkey: "inkey2", Adminkey: "adminkey2"},
}

func newTestNormalizer(t testing.TB) *mapper.Normalizer {
	n, err := mapper.InitNormalizer(&config.APIConfig{Locale: "en", Timezone: "UTC"})
	if err != nil {
		t.Fatal(err)
	}
	return n
}

// Tests

func TestManager_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c := mocks.NewMockRequester(ctrl)
	st := mocks.NewMockAlertStorage(ctrl)
	m, _ := InitManager(c, st, newTestNormalizer(t), staticConfirmer{true}, zap.NewNop())
	ctx := context.Background()

	c.EXPECT().GetDonations(ctx, "inkey1").Return([]modeldto.DonationResponse{
		{ID: "d1", Wallet: "w1", Sats: 1234, Time: 1700000000000},
	}, nil)
	st.EXPECT().ReplaceDonations(ctx, gomock.Any()).Return(nil)

	donations, err := m.List(ctx, testWallets, "w1")
	assert.NoError(t, err)
	assert.Len(t, donations, 1)
	assert.Equal(t, "1,234", donations[0].FormattedSats)
	assert.Equal(t, "2023-11-14 22:13", donations[0].Date)
}

func TestManager_List_UnknownWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c := mocks.NewMockRequester(ctrl)
	st := mocks.NewMockAlertStorage(ctrl)
	m, _ := InitManager(c, st, newTestNormalizer(t), staticConfirmer{true}, zap.NewNop())

	_, err := m.List(context.Background(), testWallets, "w3")
	var expError *serviceErrors.WalletNotFoundError
	assert.ErrorAs(t, err, &expError)
}

func TestManager_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c := mocks.NewMockRequester(ctrl)
	st := mocks.NewMockAlertStorage(ctrl)
	m, _ := InitManager(c, st, newTestNormalizer(t), staticConfirmer{true}, zap.NewNop())
	ctx := context.Background()

	// the delete operation must run under the read key of the donation's own wallet
	st.EXPECT().GetDonation(ctx, "d1").Return(modelalert.Donation{ID: "d1", Wallet: "w2"}, nil)
	c.EXPECT().DeleteDonation(ctx, "inkey2", "d1").Return(nil)
	st.EXPECT().RemoveDonation(ctx, "d1").Return(nil)

	assert.NoError(t, m.Delete(ctx, testWallets, "d1"))
}

func TestManager_Delete_Declined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c := mocks.NewMockRequester(ctrl)
	st := mocks.NewMockAlertStorage(ctrl)
	m, _ := InitManager(c, st, newTestNormalizer(t), staticConfirmer{false}, zap.NewNop())

	// no client or storage calls are expected
	assert.NoError(t, m.Delete(context.Background(), testWallets, "d1"))
}

func TestManager_Delete_ServerFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c := mocks.NewMockRequester(ctrl)
	st := mocks.NewMockAlertStorage(ctrl)
	m, _ := InitManager(c, st, newTestNormalizer(t), staticConfirmer{true}, zap.NewNop())
	ctx := context.Background()

	st.EXPECT().GetDonation(ctx, "d1").Return(modelalert.Donation{ID: "d1", Wallet: "w1"}, nil)
	// the local entity must be kept when the server rejects the removal
	c.EXPECT().DeleteDonation(ctx, "inkey1", "d1").Return(errors.New("generic error"))

	assert.Error(t, m.Delete(ctx, testWallets, "d1"))
}

func TestManager_ExportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c := mocks.NewMockRequester(ctrl)
	st := mocks.NewMockAlertStorage(ctrl)
	m, _ := InitManager(c, st, newTestNormalizer(t), staticConfirmer{true}, zap.NewNop())
	ctx := context.Background()

	st.EXPECT().Donations(ctx).Return([]modelalert.Donation{
		{ID: "d1", Service: "s1", Name: "Anon", Message: "gg", Sats: 100, Posted: true},
	}, nil)

	var buf bytes.Buffer
	assert.NoError(t, m.ExportCSV(ctx, &buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "service,id,name,message,sats,posted", lines[0])
	assert.Equal(t, "s1,d1,Anon,gg,100,true", lines[1])
}

// Benchmarks

func BenchmarkManager_List(b *testing.B) {
	ctrl := gomock.NewController(b)
	defer ctrl.Finish()
	c := mocks.NewMockRequester(ctrl)
	st := mocks.NewMockAlertStorage(ctrl)
	m, _ := InitManager(c, st, newTestNormalizer(b), staticConfirmer{true}, zap.NewNop())
	ctx := context.Background()
	c.EXPECT().GetDonations(ctx, "inkey1").Return([]modeldto.DonationResponse{{ID: "d1"}}, nil).AnyTimes()
	st.EXPECT().ReplaceDonations(ctx, gomock.Any()).Return(nil).AnyTimes()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.List(ctx, testWallets, "w1")
	}
}
