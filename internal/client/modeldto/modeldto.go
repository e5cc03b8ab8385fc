// Package modeldto provides locally used types and their structure for data transfer objects.
package modeldto

type (
	// ServiceResponse reproduces the wire shape of a service link record.
	ServiceResponse struct {
		ID            string `json:"id"`
		State         string `json:"state"`
		TwitchUser    string `json:"twitchuser"`
		ClientID      string `json:"client_id"`
		ClientSecret  string `json:"client_secret"`
		Wallet        string `json:"wallet"`
		ServiceName   string `json:"servicename"`
		Authenticated bool   `json:"authenticated"`
		Onchain       string `json:"onchain"`
	}

	// CreateServiceRequest is the payload for registering a new service link.
	CreateServiceRequest struct {
		TwitchUser   string `json:"twitchuser"`
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
		Wallet       string `json:"wallet"`
		ServiceName  string `json:"servicename"`
		Onchain      string `json:"onchain,omitempty"`
	}

	// DonationResponse reproduces the wire shape of a donation record.
	DonationResponse struct {
		ID      string  `json:"id"`
		Wallet  string  `json:"wallet"`
		Name    string  `json:"name"`
		Message string  `json:"message"`
		CurCode string  `json:"cur_code"`
		Sats    int64   `json:"sats"`
		Amount  float64 `json:"amount"`
		Service string  `json:"service"`
		Posted  bool    `json:"posted"`
		Time    int64   `json:"time"`
	}

	// CreateDonationRequest is the payload accepted by the public donation endpoint.
	CreateDonationRequest struct {
		Name    string `json:"name"`
		Sats    int64  `json:"sats"`
		Service string `json:"service"`
		Message string `json:"message"`
		CurCode string `json:"cur_code"`
	}

	// WalletLinkResponse reproduces the wire shape of a watch-only linked wallet.
	WalletLinkResponse struct {
		ID string `json:"id"`
	}

	// APIErrorResponse reproduces the error body returned by the remote API.
	APIErrorResponse struct {
		Detail string `json:"detail"`
	}
)
