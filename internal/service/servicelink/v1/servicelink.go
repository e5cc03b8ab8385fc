// Package servicelink provides functionality for managing the service-link lifecycle
// against the remote alerts API and the local collection.
package servicelink

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/dkazarov/dk_go_stream_alerts/internal/client"
	"github.com/dkazarov/dk_go_stream_alerts/internal/client/modeldto"
	serviceErrors "github.com/dkazarov/dk_go_stream_alerts/internal/service/errors"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/mapper"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/modelalert"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/resolver"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/servicelink"
	"github.com/dkazarov/dk_go_stream_alerts/internal/storage"
)

// Check interface implementation explicitly
var (
	_ servicelink.Processor = (*Manager)(nil)
)

var csvHeader = []string{"id", "wallet", "onchain address", "twitchuser", "servicename", "client_id", "client_secret", "authenticated"}

// Manager struct defines data structure handling and provides support for adding new implementations.
type Manager struct {
	mu         sync.Mutex
	client     client.ServiceRequester
	storage    storage.ServiceLinkKeeper
	normalizer *mapper.Normalizer
	confirmer  servicelink.Confirmer
	log        *zap.Logger
	draft      modelalert.ServiceDraft
	dialogOpen bool
}

// InitManager initializes a Manager object and sets its attributes.
func InitManager(c client.ServiceRequester, st storage.ServiceLinkKeeper, n *mapper.Normalizer, cf servicelink.Confirmer, log *zap.Logger) (*Manager, error) {
	if c == nil {
		return nil, &serviceErrors.ServiceFoundNilClient{Msg: "nil client was passed to service initializer"}
	}
	if st == nil {
		return nil, &serviceErrors.ServiceFoundNilStorage{Msg: "nil storage was passed to service initializer"}
	}
	return &Manager{
		client:     c,
		storage:    st,
		normalizer: n,
		confirmer:  cf,
		log:        log,
	}, nil
}

// List retrieves service links under the read key of walletID, resynchronizes the local
// collection wholesale and returns the display-ready entities.
func (m *Manager) List(ctx context.Context, wallets []modelalert.Wallet, walletID string) ([]modelalert.ServiceLink, error) {
	apiKey, err := resolver.ResolveKey(wallets, walletID, resolver.ScopeRead)
	if err != nil {
		return nil, err
	}
	raw, err := m.client.GetServices(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	links := make([]modelalert.ServiceLink, 0, len(raw))
	for _, record := range raw {
		links = append(links, m.normalizer.NormalizeService(record))
	}
	if err = m.storage.ReplaceServices(ctx, links); err != nil {
		return nil, err
	}
	return links, nil
}

// StartCreate opens the dialog with an empty draft.
func (m *Manager) StartCreate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft = modelalert.ServiceDraft{}
	m.dialogOpen = true
}

// StartEdit fills the draft from the locally held entity and opens the dialog. No network
// round trip is made, the collection is the source for editable fields.
func (m *Manager) StartEdit(ctx context.Context, serviceID string) error {
	link, err := m.storage.GetService(ctx, serviceID)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft = modelalert.ServiceDraft{
		ID:           link.ID,
		Wallet:       link.Wallet,
		TwitchUser:   link.TwitchUser,
		ServiceName:  link.ServiceName,
		ClientID:     link.ClientID,
		ClientSecret: link.ClientSecret,
		Onchain:      link.Onchain,
	}
	m.dialogOpen = true
	return nil
}

// SetDraft replaces the dialog draft with the edited field values.
func (m *Manager) SetDraft(draft modelalert.ServiceDraft) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft = draft
}

// Draft returns a snapshot of the dialog draft and whether the dialog is open.
func (m *Manager) Draft() (modelalert.ServiceDraft, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft, m.dialogOpen
}

// CancelDialog discards the draft and closes the dialog.
func (m *Manager) CancelDialog() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft = modelalert.ServiceDraft{}
	m.dialogOpen = false
}

// Submit registers a new service link from the draft under the admin key of the draft's
// wallet, appends the created entity to the collection and resets the dialog on success.
func (m *Manager) Submit(ctx context.Context, wallets []modelalert.Wallet) (modelalert.ServiceLink, error) {
	m.mu.Lock()
	draft := m.draft
	m.mu.Unlock()
	if draft.Wallet == "" {
		return modelalert.ServiceLink{}, &serviceErrors.MissingWalletFieldError{Msg: "draft has no wallet assigned"}
	}
	apiKey, err := resolver.ResolveKey(wallets, draft.Wallet, resolver.ScopeAdmin)
	if err != nil {
		return modelalert.ServiceLink{}, err
	}
	payload := modeldto.CreateServiceRequest{
		TwitchUser:   draft.TwitchUser,
		ClientID:     draft.ClientID,
		ClientSecret: draft.ClientSecret,
		Wallet:       draft.Wallet,
		ServiceName:  draft.ServiceName,
		Onchain:      draft.Onchain,
	}
	raw, err := m.client.CreateService(ctx, apiKey, payload)
	if err != nil {
		return modelalert.ServiceLink{}, err
	}
	link := m.normalizer.NormalizeService(raw)
	if err = m.storage.AppendService(ctx, link); err != nil {
		return modelalert.ServiceLink{}, err
	}
	m.mu.Lock()
	m.draft = modelalert.ServiceDraft{}
	m.dialogOpen = false
	m.mu.Unlock()
	m.log.Info("registered service link", zap.String("id", link.ID), zap.String("wallet", link.Wallet))
	return link, nil
}

// Delete removes a service link under the read key of the entity's own wallet. A declined
// confirmation is a silent no-op, the local entity is removed only after server success.
func (m *Manager) Delete(ctx context.Context, wallets []modelalert.Wallet, serviceID string) error {
	if m.confirmer != nil && !m.confirmer.Confirm("Are you sure you want to delete this service link?") {
		return nil
	}
	link, err := m.storage.GetService(ctx, serviceID)
	if err != nil {
		return err
	}
	apiKey, err := resolver.ResolveKey(wallets, link.Wallet, resolver.ScopeRead)
	if err != nil {
		return err
	}
	if err = m.client.DeleteService(ctx, apiKey, serviceID); err != nil {
		return err
	}
	if err = m.storage.RemoveService(ctx, serviceID); err != nil {
		return err
	}
	m.log.Info("deleted service link", zap.String("id", serviceID))
	return nil
}

// ExportCSV writes the locally held service link collection as CSV.
func (m *Manager) ExportCSV(ctx context.Context, w io.Writer) error {
	links, err := m.storage.Services(ctx)
	if err != nil {
		return err
	}
	writer := csv.NewWriter(w)
	if err = writer.Write(csvHeader); err != nil {
		return err
	}
	for _, link := range links {
		record := []string{
			link.ID,
			link.Wallet,
			link.Onchain,
			link.TwitchUser,
			link.ServiceName,
			link.ClientID,
			link.ClientSecret,
			strconv.FormatBool(link.Authenticated),
		}
		if err = writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
