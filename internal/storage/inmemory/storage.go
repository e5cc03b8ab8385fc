// Package inmemory provides data types and methods for in-memory collection handling.
package inmemory

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/dkazarov/dk_go_stream_alerts/internal/service/modelalert"
	"github.com/dkazarov/dk_go_stream_alerts/internal/storage"
	storageErrors "github.com/dkazarov/dk_go_stream_alerts/internal/storage/errors"
)

// Check interface implementation explicitly
var (
	_ storage.AlertStorage = (*Storage)(nil)
)

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	mu          sync.Mutex
	services    []modelalert.ServiceLink
	donations   []modelalert.Donation
	walletLinks []string
	log         *zap.Logger
}

// InitStorage initializes a Storage object and sets its attributes.
func InitStorage(log *zap.Logger) *Storage {
	return &Storage{log: log}
}

// ReplaceServices resynchronizes the service link collection wholesale.
func (s *Storage) ReplaceServices(ctx context.Context, links []modelalert.ServiceLink) error {
	replaceDone := make(chan struct{}, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.services = append([]modelalert.ServiceLink(nil), links...)
		replaceDone <- struct{}{}
	}()

	select {
	case <-ctx.Done():
		s.log.Warn("replacing service links failed", zap.Error(ctx.Err()))
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case <-replaceDone:
		s.log.Info("replaced service links", zap.Int("count", len(links)))
		return nil
	}
}

// AppendService appends one service link to the collection.
func (s *Storage) AppendService(ctx context.Context, link modelalert.ServiceLink) error {
	appendDone := make(chan struct{}, 1)
	appendError := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, existing := range s.services {
			if existing.ID == link.ID {
				appendError <- &storageErrors.AlreadyExistsError{ID: link.ID}
				return
			}
		}
		s.services = append(s.services, link)
		appendDone <- struct{}{}
	}()

	select {
	case <-ctx.Done():
		s.log.Warn("appending service link failed", zap.Error(ctx.Err()))
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case apndError := <-appendError:
		s.log.Warn("appending service link failed", zap.Error(apndError))
		return apndError
	case <-appendDone:
		s.log.Info("appended service link", zap.String("id", link.ID))
		return nil
	}
}

// GetService returns one service link by its identifier.
func (s *Storage) GetService(ctx context.Context, serviceID string) (modelalert.ServiceLink, error) {
	retrieveDone := make(chan modelalert.ServiceLink, 1)
	retrieveError := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, link := range s.services {
			if link.ID == serviceID {
				retrieveDone <- link
				return
			}
		}
		retrieveError <- &storageErrors.NotFoundError{ID: serviceID}
	}()

	select {
	case <-ctx.Done():
		s.log.Warn("retrieving service link failed", zap.Error(ctx.Err()))
		return modelalert.ServiceLink{}, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case rtrvError := <-retrieveError:
		return modelalert.ServiceLink{}, rtrvError
	case link := <-retrieveDone:
		return link, nil
	}
}

// Services returns all service links in collection order.
func (s *Storage) Services(ctx context.Context) ([]modelalert.ServiceLink, error) {
	retrieveDone := make(chan []modelalert.ServiceLink, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		retrieveDone <- append([]modelalert.ServiceLink(nil), s.services...)
	}()

	select {
	case <-ctx.Done():
		s.log.Warn("retrieving service links failed", zap.Error(ctx.Err()))
		return nil, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case links := <-retrieveDone:
		return links, nil
	}
}

// RemoveService removes one service link by identifier equality, removal of an absent id is a no-op.
func (s *Storage) RemoveService(ctx context.Context, serviceID string) error {
	removeDone := make(chan struct{}, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		kept := s.services[:0]
		for _, link := range s.services {
			if link.ID != serviceID {
				kept = append(kept, link)
			}
		}
		s.services = kept
		removeDone <- struct{}{}
	}()

	select {
	case <-ctx.Done():
		s.log.Warn("removing service link failed", zap.Error(ctx.Err()))
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case <-removeDone:
		s.log.Info("removed service link", zap.String("id", serviceID))
		return nil
	}
}

// ReplaceDonations resynchronizes the donation collection wholesale.
func (s *Storage) ReplaceDonations(ctx context.Context, donations []modelalert.Donation) error {
	replaceDone := make(chan struct{}, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.donations = append([]modelalert.Donation(nil), donations...)
		replaceDone <- struct{}{}
	}()

	select {
	case <-ctx.Done():
		s.log.Warn("replacing donations failed", zap.Error(ctx.Err()))
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case <-replaceDone:
		s.log.Info("replaced donations", zap.Int("count", len(donations)))
		return nil
	}
}

// GetDonation returns one donation by its identifier.
func (s *Storage) GetDonation(ctx context.Context, donationID string) (modelalert.Donation, error) {
	retrieveDone := make(chan modelalert.Donation, 1)
	retrieveError := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, donation := range s.donations {
			if donation.ID == donationID {
				retrieveDone <- donation
				return
			}
		}
		retrieveError <- &storageErrors.NotFoundError{ID: donationID}
	}()

	select {
	case <-ctx.Done():
		s.log.Warn("retrieving donation failed", zap.Error(ctx.Err()))
		return modelalert.Donation{}, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case rtrvError := <-retrieveError:
		return modelalert.Donation{}, rtrvError
	case donation := <-retrieveDone:
		return donation, nil
	}
}

// Donations returns all donations in collection order.
func (s *Storage) Donations(ctx context.Context) ([]modelalert.Donation, error) {
	retrieveDone := make(chan []modelalert.Donation, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		retrieveDone <- append([]modelalert.Donation(nil), s.donations...)
	}()

	select {
	case <-ctx.Done():
		s.log.Warn("retrieving donations failed", zap.Error(ctx.Err()))
		return nil, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case donations := <-retrieveDone:
		return donations, nil
	}
}

// RemoveDonation removes one donation by identifier equality, removal of an absent id is a no-op.
func (s *Storage) RemoveDonation(ctx context.Context, donationID string) error {
	removeDone := make(chan struct{}, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		kept := s.donations[:0]
		for _, donation := range s.donations {
			if donation.ID != donationID {
				kept = append(kept, donation)
			}
		}
		s.donations = kept
		removeDone <- struct{}{}
	}()

	select {
	case <-ctx.Done():
		s.log.Warn("removing donation failed", zap.Error(ctx.Err()))
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case <-removeDone:
		s.log.Info("removed donation", zap.String("id", donationID))
		return nil
	}
}

// ReplaceWalletLinks resynchronizes the linked-wallet id collection wholesale.
func (s *Storage) ReplaceWalletLinks(ctx context.Context, linkIDs []string) error {
	replaceDone := make(chan struct{}, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.walletLinks = append([]string(nil), linkIDs...)
		replaceDone <- struct{}{}
	}()

	select {
	case <-ctx.Done():
		s.log.Warn("replacing wallet links failed", zap.Error(ctx.Err()))
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case <-replaceDone:
		s.log.Info("replaced wallet links", zap.Int("count", len(linkIDs)))
		return nil
	}
}

// WalletLinks returns all linked-wallet ids in collection order.
func (s *Storage) WalletLinks(ctx context.Context) ([]string, error) {
	retrieveDone := make(chan []string, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		retrieveDone <- append([]string(nil), s.walletLinks...)
	}()

	select {
	case <-ctx.Done():
		s.log.Warn("retrieving wallet links failed", zap.Error(ctx.Err()))
		return nil, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case linkIDs := <-retrieveDone:
		return linkIDs, nil
	}
}

// CloseDB is a mock for persistent storage closers.
func (s *Storage) CloseDB() error {
	return nil
}
