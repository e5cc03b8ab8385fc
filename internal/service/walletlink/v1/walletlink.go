// Package walletlink provides functionality for loading watch-only linked wallet ids.
package walletlink

import (
	"context"

	"go.uber.org/zap"

	"github.com/dkazarov/dk_go_stream_alerts/internal/client"
	serviceErrors "github.com/dkazarov/dk_go_stream_alerts/internal/service/errors"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/modelalert"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/resolver"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/walletlink"
	"github.com/dkazarov/dk_go_stream_alerts/internal/storage"
)

// Check interface implementation explicitly
var (
	_ walletlink.Loader = (*Manager)(nil)
)

// Manager struct defines data structure handling and provides support for adding new implementations.
type Manager struct {
	client  client.WalletLinkRequester
	storage storage.WalletLinkKeeper
	log     *zap.Logger
}

// InitManager initializes a Manager object and sets its attributes.
func InitManager(c client.WalletLinkRequester, st storage.WalletLinkKeeper, log *zap.Logger) (*Manager, error) {
	if c == nil {
		return nil, &serviceErrors.ServiceFoundNilClient{Msg: "nil client was passed to service initializer"}
	}
	if st == nil {
		return nil, &serviceErrors.ServiceFoundNilStorage{Msg: "nil storage was passed to service initializer"}
	}
	return &Manager{
		client:  c,
		storage: st,
		log:     log,
	}, nil
}

// Load retrieves linked wallet ids under the read key of walletID and resynchronizes the
// local collection wholesale, so repeated loads never accumulate duplicates.
func (m *Manager) Load(ctx context.Context, wallets []modelalert.Wallet, walletID string) ([]string, error) {
	apiKey, err := resolver.ResolveKey(wallets, walletID, resolver.ScopeRead)
	if err != nil {
		return nil, err
	}
	raw, err := m.client.GetWalletLinks(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	linkIDs := make([]string, 0, len(raw))
	for _, record := range raw {
		linkIDs = append(linkIDs, record.ID)
	}
	if err = m.storage.ReplaceWalletLinks(ctx, linkIDs); err != nil {
		return nil, err
	}
	return linkIDs, nil
}
