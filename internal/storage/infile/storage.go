// Package infile provides data types and methods for file-backed session caching of collections.
package infile

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/dkazarov/dk_go_stream_alerts/internal/config"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/modelalert"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/secretary"
	"github.com/dkazarov/dk_go_stream_alerts/internal/storage"
	storageErrors "github.com/dkazarov/dk_go_stream_alerts/internal/storage/errors"
	"github.com/dkazarov/dk_go_stream_alerts/internal/storage/inmemory"
	"github.com/dkazarov/dk_go_stream_alerts/internal/storage/modelstorage"
)

// Check interface implementation explicitly
var (
	_ storage.AlertStorage = (*Storage)(nil)
)

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	mu     sync.Mutex
	cfg    *config.StorageConfig
	sec    secretary.Secretary
	memory *inmemory.Storage
	log    *zap.Logger
}

// InitStorage initializes a Storage object, restores the previous session snapshot and
// starts a listener persisting the final snapshot on shutdown.
func InitStorage(ctx context.Context, wg *sync.WaitGroup, cfg *config.StorageConfig, sec secretary.Secretary, log *zap.Logger) (*Storage, error) {
	st := Storage{
		cfg:    cfg,
		sec:    sec,
		memory: inmemory.InitStorage(log),
		log:    log,
	}
	if err := st.restore(ctx); err != nil {
		return nil, err
	}
	// use sync.WaitGroup to prevent goroutine premature termination when main exits
	go func() {
		defer wg.Done()
		<-ctx.Done()
		if err := st.persist(context.Background()); err != nil {
			st.log.Error("final snapshot persisting failed", zap.Error(err))
			return
		}
		st.log.Info("file storage closed successfully")
	}()
	return &st, nil
}

// ReplaceServices resynchronizes the service link collection wholesale.
func (s *Storage) ReplaceServices(ctx context.Context, links []modelalert.ServiceLink) error {
	if err := s.memory.ReplaceServices(ctx, links); err != nil {
		return err
	}
	return s.persist(ctx)
}

// AppendService appends one service link to the collection.
func (s *Storage) AppendService(ctx context.Context, link modelalert.ServiceLink) error {
	if err := s.memory.AppendService(ctx, link); err != nil {
		return err
	}
	return s.persist(ctx)
}

// GetService returns one service link by its identifier.
func (s *Storage) GetService(ctx context.Context, serviceID string) (modelalert.ServiceLink, error) {
	return s.memory.GetService(ctx, serviceID)
}

// Services returns all service links in collection order.
func (s *Storage) Services(ctx context.Context) ([]modelalert.ServiceLink, error) {
	return s.memory.Services(ctx)
}

// RemoveService removes one service link by identifier equality, removal of an absent id is a no-op.
func (s *Storage) RemoveService(ctx context.Context, serviceID string) error {
	if err := s.memory.RemoveService(ctx, serviceID); err != nil {
		return err
	}
	return s.persist(ctx)
}

// ReplaceDonations resynchronizes the donation collection wholesale.
func (s *Storage) ReplaceDonations(ctx context.Context, donations []modelalert.Donation) error {
	if err := s.memory.ReplaceDonations(ctx, donations); err != nil {
		return err
	}
	return s.persist(ctx)
}

// GetDonation returns one donation by its identifier.
func (s *Storage) GetDonation(ctx context.Context, donationID string) (modelalert.Donation, error) {
	return s.memory.GetDonation(ctx, donationID)
}

// Donations returns all donations in collection order.
func (s *Storage) Donations(ctx context.Context) ([]modelalert.Donation, error) {
	return s.memory.Donations(ctx)
}

// RemoveDonation removes one donation by identifier equality, removal of an absent id is a no-op.
func (s *Storage) RemoveDonation(ctx context.Context, donationID string) error {
	if err := s.memory.RemoveDonation(ctx, donationID); err != nil {
		return err
	}
	return s.persist(ctx)
}

// ReplaceWalletLinks resynchronizes the linked-wallet id collection wholesale.
func (s *Storage) ReplaceWalletLinks(ctx context.Context, linkIDs []string) error {
	if err := s.memory.ReplaceWalletLinks(ctx, linkIDs); err != nil {
		return err
	}
	return s.persist(ctx)
}

// WalletLinks returns all linked-wallet ids in collection order.
func (s *Storage) WalletLinks(ctx context.Context) ([]string, error) {
	return s.memory.WalletLinks(ctx)
}

// CloseDB persists a final snapshot.
func (s *Storage) CloseDB() error {
	return s.persist(context.Background())
}

// restore fills the in-memory collections from the file snapshot, deciphering stored credentials.
func (s *Storage) restore(ctx context.Context) error {
	s.mu.Lock()
	raw, err := os.ReadFile(s.cfg.FileStoragePath)
	s.mu.Unlock()
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Warn("session snapshot not found, initializing new one", zap.String("path", s.cfg.FileStoragePath))
			return nil
		}
		return err
	}
	var snapshot modelstorage.Snapshot
	if err = json.Unmarshal(raw, &snapshot); err != nil {
		return err
	}
	for i := range snapshot.Services {
		secret, decErr := s.sec.Decode(snapshot.Services[i].ClientSecret)
		if decErr != nil {
			return &storageErrors.CipherError{Err: decErr}
		}
		snapshot.Services[i].ClientSecret = secret
	}
	if err = s.memory.ReplaceServices(ctx, snapshot.Services); err != nil {
		return err
	}
	if err = s.memory.ReplaceDonations(ctx, snapshot.Donations); err != nil {
		return err
	}
	if err = s.memory.ReplaceWalletLinks(ctx, snapshot.WalletLinks); err != nil {
		return err
	}
	s.log.Info("session snapshot restored", zap.String("path", s.cfg.FileStoragePath))
	return nil
}

// persist rewrites the file snapshot from the current collections, ciphering stored credentials.
func (s *Storage) persist(ctx context.Context) error {
	services, err := s.memory.Services(ctx)
	if err != nil {
		return err
	}
	donations, err := s.memory.Donations(ctx)
	if err != nil {
		return err
	}
	walletLinks, err := s.memory.WalletLinks(ctx)
	if err != nil {
		return err
	}
	for i := range services {
		services[i].ClientSecret = s.sec.Encode(services[i].ClientSecret)
	}
	snapshot := modelstorage.Snapshot{
		Services:    services,
		Donations:   donations,
		WalletLinks: walletLinks,
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return &storageErrors.FileWriteError{Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err = os.WriteFile(s.cfg.FileStoragePath, raw, 0777); err != nil {
		return &storageErrors.FileWriteError{Err: err}
	}
	return nil
}
