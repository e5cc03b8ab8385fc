package walletlink

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/dkazarov/dk_go_stream_alerts/internal/client/modeldto"
	"github.com/dkazarov/dk_go_stream_alerts/internal/mocks"
	serviceErrors "github.com/dkazarov/dk_go_stream_alerts/internal/service/errors"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/modelalert"
)

var testWallets = []modelalert.Wallet{
	{ID: "w1", Inkey: "inkey1", Adminkey: "adminkey1"},
}

// Tests

func TestManager_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c := mocks.NewMockRequester(ctrl)
	st := mocks.NewMockAlertStorage(ctrl)
	m, _ := InitManager(c, st, zap.NewNop())
	ctx := context.Background()

	c.EXPECT().GetWalletLinks(ctx, "inkey1").Return([]modeldto.WalletLinkResponse{{ID: "l1"}, {ID: "l2"}}, nil)
	// the collection must be replaced wholesale so repeated loads never accumulate duplicates
	st.EXPECT().ReplaceWalletLinks(ctx, []string{"l1", "l2"}).Return(nil)

	linkIDs, err := m.Load(ctx, testWallets, "w1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"l1", "l2"}, linkIDs)
}

func TestManager_Load_UnknownWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c := mocks.NewMockRequester(ctrl)
	st := mocks.NewMockAlertStorage(ctrl)
	m, _ := InitManager(c, st, zap.NewNop())

	_, err := m.Load(context.Background(), testWallets, "w2")
	var expError *serviceErrors.WalletNotFoundError
	assert.ErrorAs(t, err, &expError)
}

func TestInitManager_NilArguments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c := mocks.NewMockRequester(ctrl)
	st := mocks.NewMockAlertStorage(ctrl)
	_, err := InitManager(nil, st, zap.NewNop())
	var nilClient *serviceErrors.ServiceFoundNilClient
	assert.ErrorAs(t, err, &nilClient)
	_, err = InitManager(c, nil, zap.NewNop())
	var nilStorage *serviceErrors.ServiceFoundNilStorage
	assert.ErrorAs(t, err, &nilStorage)
}
