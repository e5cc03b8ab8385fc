// Package modelalert provides locally used types and their structure for display-ready entities.
package modelalert

// Wallet holds the identifiers and scoped API keys of one wallet the user controls.
type Wallet struct {
	ID       string `json:"id"`
	Inkey    string `json:"inkey"`
	Adminkey string `json:"adminkey"`
}

// ServiceLink is a display-ready service link entity with derived URL fields.
type ServiceLink struct {
	ID            string `json:"id"`
	State         string `json:"state"`
	TwitchUser    string `json:"twitchuser"`
	ClientID      string `json:"client_id"`
	ClientSecret  string `json:"client_secret"`
	Wallet        string `json:"wallet"`
	ServiceName   string `json:"servicename"`
	Authenticated bool   `json:"authenticated"`
	Onchain       string `json:"onchain"`
	RedirectURI   string `json:"redirectURI"`
	AuthURL       string `json:"authUrl"`
	DisplayURL    string `json:"displayUrl"`
}

// Donation is a display-ready donation entity with derived date and amount fields.
type Donation struct {
	ID            string  `json:"id"`
	Wallet        string  `json:"wallet"`
	Name          string  `json:"name"`
	Message       string  `json:"message"`
	CurCode       string  `json:"cur_code"`
	Sats          int64   `json:"sats"`
	Amount        float64 `json:"amount"`
	Service       string  `json:"service"`
	Posted        bool    `json:"posted"`
	Time          int64   `json:"time"`
	Date          string  `json:"date"`
	FormattedSats string  `json:"fsat"`
}

// ServiceDraft holds the editable fields of the service link dialog buffer.
type ServiceDraft struct {
	ID           string
	Wallet       string
	TwitchUser   string
	ServiceName  string
	ClientID     string
	ClientSecret string
	Onchain      string
}
