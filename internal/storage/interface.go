// Package storage provides interfaces for types to be in compliance with.
package storage

import (
	"context"

	"github.com/dkazarov/dk_go_stream_alerts/internal/service/modelalert"
)

// ServiceLinkKeeper defines a set of methods for types implementing ServiceLinkKeeper.
type ServiceLinkKeeper interface {
	ReplaceServices(ctx context.Context, links []modelalert.ServiceLink) error
	AppendService(ctx context.Context, link modelalert.ServiceLink) error
	GetService(ctx context.Context, serviceID string) (modelalert.ServiceLink, error)
	Services(ctx context.Context) ([]modelalert.ServiceLink, error)
	RemoveService(ctx context.Context, serviceID string) error
}

// DonationKeeper defines a set of methods for types implementing DonationKeeper.
type DonationKeeper interface {
	ReplaceDonations(ctx context.Context, donations []modelalert.Donation) error
	GetDonation(ctx context.Context, donationID string) (modelalert.Donation, error)
	Donations(ctx context.Context) ([]modelalert.Donation, error)
	RemoveDonation(ctx context.Context, donationID string) error
}

// WalletLinkKeeper defines a set of methods for types implementing WalletLinkKeeper.
type WalletLinkKeeper interface {
	ReplaceWalletLinks(ctx context.Context, linkIDs []string) error
	WalletLinks(ctx context.Context) ([]string, error)
}

// Closer defines a set of methods for types implementing Closer.
type Closer interface {
	CloseDB() error
}

// AlertStorage defines a set of embedded interfaces for types implementing AlertStorage.
type AlertStorage interface {
	ServiceLinkKeeper
	DonationKeeper
	WalletLinkKeeper
	Closer
}
