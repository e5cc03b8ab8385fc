// Package client provides a remote stream-alerts API client with per-request key injection.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dkazarov/dk_go_stream_alerts/internal/client"
	clientErrors "github.com/dkazarov/dk_go_stream_alerts/internal/client/errors"
	"github.com/dkazarov/dk_go_stream_alerts/internal/client/modeldto"
	"github.com/dkazarov/dk_go_stream_alerts/internal/config"
)

const (
	servicesPath    = "/streamalerts/api/v1/services"
	donationsPath   = "/streamalerts/api/v1/donations"
	walletLinksPath = "/watchonly/api/v1/wallet"
)

// Check interface implementation explicitly
var (
	_ client.Requester = (*Client)(nil)
)

// Client struct defines data structure handling and provides support for adding new implementations.
type Client struct {
	resty *resty.Client
	log   *zap.Logger
}

// InitClient initializes a Client object and sets its attributes.
func InitClient(cfg *config.APIConfig, log *zap.Logger) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil APIConfig was passed to client initializer")
	}
	r := resty.New()
	r.SetBaseURL(cfg.BaseURL)
	r.SetHeader("Content-Type", "application/json")
	return &Client{resty: r, log: log}, nil
}

// GetServices fetches all service links visible under the given API key.
func (c *Client) GetServices(ctx context.Context, apiKey string) ([]modeldto.ServiceResponse, error) {
	res, err := c.request(ctx, apiKey).Get(servicesPath)
	if err != nil {
		return nil, &clientErrors.TransportError{Err: err}
	}
	if err := c.checkStatus(res); err != nil {
		return nil, err
	}
	var services []modeldto.ServiceResponse
	if err := json.Unmarshal(res.Body(), &services); err != nil {
		return nil, &clientErrors.TransportError{Err: err}
	}
	c.log.Info("retrieved service links", zap.Int("count", len(services)))
	return services, nil
}

// CreateService registers a new service link using the wallet's admin key.
func (c *Client) CreateService(ctx context.Context, apiKey string, data modeldto.CreateServiceRequest) (modeldto.ServiceResponse, error) {
	var service modeldto.ServiceResponse
	res, err := c.request(ctx, apiKey).SetBody(data).Post(servicesPath)
	if err != nil {
		return service, &clientErrors.TransportError{Err: err}
	}
	if err := c.checkStatus(res); err != nil {
		return service, err
	}
	if err := json.Unmarshal(res.Body(), &service); err != nil {
		return service, &clientErrors.TransportError{Err: err}
	}
	c.log.Info("created service link", zap.String("id", service.ID))
	return service, nil
}

// DeleteService deletes the service link with the given identifier.
func (c *Client) DeleteService(ctx context.Context, apiKey string, serviceID string) error {
	res, err := c.request(ctx, apiKey).Delete(servicesPath + "/" + serviceID)
	if err != nil {
		return &clientErrors.TransportError{Err: err}
	}
	if err := c.checkStatus(res); err != nil {
		return err
	}
	c.log.Info("deleted service link", zap.String("id", serviceID))
	return nil
}

// GetDonations fetches all donations visible under the given API key.
func (c *Client) GetDonations(ctx context.Context, apiKey string) ([]modeldto.DonationResponse, error) {
	res, err := c.request(ctx, apiKey).Get(donationsPath)
	if err != nil {
		return nil, &clientErrors.TransportError{Err: err}
	}
	if err := c.checkStatus(res); err != nil {
		return nil, err
	}
	var donations []modeldto.DonationResponse
	if err := json.Unmarshal(res.Body(), &donations); err != nil {
		return nil, &clientErrors.TransportError{Err: err}
	}
	c.log.Info("retrieved donations", zap.Int("count", len(donations)))
	return donations, nil
}

// DeleteDonation deletes the donation with the given identifier.
func (c *Client) DeleteDonation(ctx context.Context, apiKey string, donationID string) error {
	res, err := c.request(ctx, apiKey).Delete(donationsPath + "/" + donationID)
	if err != nil {
		return &clientErrors.TransportError{Err: err}
	}
	if err := c.checkStatus(res); err != nil {
		return err
	}
	c.log.Info("deleted donation", zap.String("id", donationID))
	return nil
}

// GetWalletLinks fetches watch-only linked wallets visible under the given API key.
func (c *Client) GetWalletLinks(ctx context.Context, apiKey string) ([]modeldto.WalletLinkResponse, error) {
	res, err := c.request(ctx, apiKey).Get(walletLinksPath)
	if err != nil {
		return nil, &clientErrors.TransportError{Err: err}
	}
	if err := c.checkStatus(res); err != nil {
		return nil, err
	}
	var links []modeldto.WalletLinkResponse
	if err := json.Unmarshal(res.Body(), &links); err != nil {
		return nil, &clientErrors.TransportError{Err: err}
	}
	c.log.Info("retrieved wallet links", zap.Int("count", len(links)))
	return links, nil
}

// request prepares a resty request carrying the caller-supplied API key.
func (c *Client) request(ctx context.Context, apiKey string) *resty.Request {
	return c.resty.R().
		SetContext(ctx).
		SetHeader("X-Api-Key", apiKey).
		SetHeader("X-Request-Id", uuid.New().String())
}

// checkStatus maps non-2xx responses to an APIError with the server-provided detail.
func (c *Client) checkStatus(res *resty.Response) error {
	if res.StatusCode() < http.StatusBadRequest {
		return nil
	}
	var body modeldto.APIErrorResponse
	// the error body is best-effort, a plain-text detail must not mask the status
	_ = json.Unmarshal(res.Body(), &body)
	if body.Detail == "" {
		body.Detail = res.Status()
	}
	c.log.Warn("remote API rejected request", zap.Int("status", res.StatusCode()), zap.String("detail", body.Detail))
	return &clientErrors.APIError{Status: res.StatusCode(), Detail: body.Detail}
}
