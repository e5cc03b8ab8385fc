// Package client provides interfaces for types to be in compliance with.
package client

import (
	"context"

	"github.com/dkazarov/dk_go_stream_alerts/internal/client/modeldto"
)

// ServiceRequester defines a set of methods for types implementing ServiceRequester.
type ServiceRequester interface {
	GetServices(ctx context.Context, apiKey string) ([]modeldto.ServiceResponse, error)
	CreateService(ctx context.Context, apiKey string, data modeldto.CreateServiceRequest) (modeldto.ServiceResponse, error)
	DeleteService(ctx context.Context, apiKey string, serviceID string) error
}

// DonationRequester defines a set of methods for types implementing DonationRequester.
type DonationRequester interface {
	GetDonations(ctx context.Context, apiKey string) ([]modeldto.DonationResponse, error)
	DeleteDonation(ctx context.Context, apiKey string, donationID string) error
}

// WalletLinkRequester defines a set of methods for types implementing WalletLinkRequester.
type WalletLinkRequester interface {
	GetWalletLinks(ctx context.Context, apiKey string) ([]modeldto.WalletLinkResponse, error)
}

// Requester defines a set of embedded interfaces for types implementing Requester.
type Requester interface {
	ServiceRequester
	DonationRequester
	WalletLinkRequester
}
