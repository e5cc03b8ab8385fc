package app

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/dkazarov/dk_go_stream_alerts/internal/client/modeldto"
	"github.com/dkazarov/dk_go_stream_alerts/internal/config"
	"github.com/dkazarov/dk_go_stream_alerts/internal/mocks"
	donationService "github.com/dkazarov/dk_go_stream_alerts/internal/service/donation/v1"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/mapper"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/modelalert"
	servicelinkService "github.com/dkazarov/dk_go_stream_alerts/internal/service/servicelink/v1"
	walletlinkService "github.com/dkazarov/dk_go_stream_alerts/internal/service/walletlink/v1"
)

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(message string) {
	n.messages = append(n.messages, message)
}

type acceptAll struct{}

func (acceptAll) Confirm(_ string) bool { return true }

func newTestSession(t *testing.T, ctrl *gomock.Controller, wallets []modelalert.Wallet) (*Session, *mocks.MockRequester, *mocks.MockAlertStorage, *recordingNotifier) {
	c := mocks.NewMockRequester(ctrl)
	st := mocks.NewMockAlertStorage(ctrl)
	n, err := mapper.InitNormalizer(&config.APIConfig{Locale: "en", Timezone: "UTC"})
	assert.NoError(t, err)
	services, err := servicelinkService.InitManager(c, st, n, acceptAll{}, zap.NewNop())
	assert.NoError(t, err)
	donations, err := donationService.InitManager(c, st, n, acceptAll{}, zap.NewNop())
	assert.NoError(t, err)
	walletLinks, err := walletlinkService.InitManager(c, st, zap.NewNop())
	assert.NoError(t, err)
	notifier := &recordingNotifier{}
	return InitSession(wallets, services, donations, walletLinks, notifier, zap.NewNop()), c, st, notifier
}

// Tests

func TestSession_Bootstrap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	wallets := []modelalert.Wallet{{ID: "w1", Inkey: "inkey1", Adminkey: "adminkey1"}}
	session, c, st, notifier := newTestSession(t, ctrl, wallets)
	ctx := context.Background()

	// all three loads run under the first wallet's read key
	c.EXPECT().GetWalletLinks(ctx, "inkey1").Return([]modeldto.WalletLinkResponse{{ID: "l1"}}, nil)
	st.EXPECT().ReplaceWalletLinks(ctx, []string{"l1"}).Return(nil)
	c.EXPECT().GetDonations(ctx, "inkey1").Return([]modeldto.DonationResponse{{ID: "d1"}}, nil)
	st.EXPECT().ReplaceDonations(ctx, gomock.Any()).Return(nil)
	c.EXPECT().GetServices(ctx, "inkey1").Return([]modeldto.ServiceResponse{{ID: "s1"}}, nil)
	st.EXPECT().ReplaceServices(ctx, gomock.Any()).Return(nil)

	session.Bootstrap(ctx)
	assert.Empty(t, notifier.messages)
}

func TestSession_Bootstrap_NoWallets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	// no client or storage calls are expected for a wallet-less user
	session, _, _, notifier := newTestSession(t, ctrl, nil)
	session.Bootstrap(context.Background())
	assert.Empty(t, notifier.messages)
}

func TestSession_Bootstrap_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	wallets := []modelalert.Wallet{{ID: "w1", Inkey: "inkey1", Adminkey: "adminkey1"}}
	session, c, st, notifier := newTestSession(t, ctrl, wallets)
	ctx := context.Background()

	// a failing load must not suppress the remaining loads
	c.EXPECT().GetWalletLinks(ctx, "inkey1").Return(nil, errors.New("generic error"))
	c.EXPECT().GetDonations(ctx, "inkey1").Return(nil, nil)
	st.EXPECT().ReplaceDonations(ctx, gomock.Any()).Return(nil)
	c.EXPECT().GetServices(ctx, "inkey1").Return(nil, nil)
	st.EXPECT().ReplaceServices(ctx, gomock.Any()).Return(nil)

	session.Bootstrap(ctx)
	assert.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "linked wallets")
}

func TestReadWallets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallets.json")
	wallets := []modelalert.Wallet{{ID: "w1", Inkey: "inkey1", Adminkey: "adminkey1"}}
	raw, err := json.Marshal(wallets)
	assert.NoError(t, err)
	assert.NoError(t, os.WriteFile(path, raw, 0644))

	loaded, err := ReadWallets(path)
	assert.NoError(t, err)
	assert.Equal(t, wallets, loaded)

	_, err = ReadWallets(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestStdinConfirmer(t *testing.T) {
	var out strings.Builder
	c := &StdinConfirmer{In: strings.NewReader("y\n"), Out: &out}
	assert.True(t, c.Confirm("delete?"))
	assert.Contains(t, out.String(), "[y/N]")

	c = &StdinConfirmer{In: strings.NewReader("no\n"), Out: &out}
	assert.False(t, c.Confirm("delete?"))
}
