// Package donation provides functionality for managing the donation lifecycle against the
// remote alerts API and the local collection.
package donation

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/dkazarov/dk_go_stream_alerts/internal/client"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/donation"
	serviceErrors "github.com/dkazarov/dk_go_stream_alerts/internal/service/errors"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/mapper"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/modelalert"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/resolver"
	"github.com/dkazarov/dk_go_stream_alerts/internal/storage"
)

// Check interface implementation explicitly
var (
	_ donation.Processor = (*Manager)(nil)
)

var csvHeader = []string{"service", "id", "name", "message", "sats", "posted"}

// Manager struct defines data structure handling and provides support for adding new implementations.
type Manager struct {
	client     client.DonationRequester
	storage    storage.DonationKeeper
	normalizer *mapper.Normalizer
	confirmer  donation.Confirmer
	log        *zap.Logger
}

// InitManager initializes a Manager object and sets its attributes.
func InitManager(c client.DonationRequester, st storage.DonationKeeper, n *mapper.Normalizer, cf donation.Confirmer, log *zap.Logger) (*Manager, error) {
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

// List retrieves donations under the read key of walletID, resynchronizes the local
// collection wholesale and returns the display-ready entities.
func (m *Manager) List(ctx context.Context, wallets []modelalert.Wallet, walletID string) ([]modelalert.Donation, error) {
	apiKey, err := resolver.ResolveKey(wallets, walletID, resolver.ScopeRead)
	if err != nil {
		return nil, err
	}
	raw, err := m.client.GetDonations(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	donations := make([]modelalert.Donation, 0, len(raw))
	for _, record := range raw {
		donations = append(donations, m.normalizer.NormalizeDonation(record))
	}
	if err = m.storage.ReplaceDonations(ctx, donations); err != nil {
		return nil, err
	}
	return donations, nil
}

// Delete removes a donation under the read key of the donation's own wallet. A declined
// confirmation is a silent no-op, the local entity is removed only after server success.
func (m *Manager) Delete(ctx context.Context, wallets []modelalert.Wallet, donationID string) error {
	if m.confirmer != nil && !m.confirmer.Confirm("Are you sure you want to delete this donation?") {
		return nil
	}
	entity, err := m.storage.GetDonation(ctx, donationID)
	if err != nil {
		return err
	}
	apiKey, err := resolver.ResolveKey(wallets, entity.Wallet, resolver.ScopeRead)
	if err != nil {
		return err
	}
	if err = m.client.DeleteDonation(ctx, apiKey, donationID); err != nil {
		return err
	}
	if err = m.storage.RemoveDonation(ctx, donationID); err != nil {
		return err
	}
	m.log.Info("deleted donation", zap.String("id", donationID))
	return nil
}

// ExportCSV writes the locally held donation collection as CSV.
func (m *Manager) ExportCSV(ctx context.Context, w io.Writer) error {
	donations, err := m.storage.Donations(ctx)
	if err != nil {
		return err
	}
	writer := csv.NewWriter(w)
	if err = writer.Write(csvHeader); err != nil {
		return err
	}
	for _, entity := range donations {
		record := []string{
			entity.Service,
			entity.ID,
			entity.Name,
			entity.Message,
			strconv.FormatInt(entity.Sats, 10),
			strconv.FormatBool(entity.Posted),
		}
		if err = writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
