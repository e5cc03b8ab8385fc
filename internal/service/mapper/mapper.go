// Package mapper provides normalization of raw API records into display-ready entities.
package mapper

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dkazarov/dk_go_stream_alerts/internal/client/modeldto"
	"github.com/dkazarov/dk_go_stream_alerts/internal/config"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/modelalert"
)

const (
	apiBasePath       = "/streamalerts/api/v1"
	displayBasePath   = "/streamalerts/"
	displayTimeLayout = "2006-01-02 15:04"
)

// Normalizer struct defines data structure handling and provides support for adding new implementations.
type Normalizer struct {
	printer  *message.Printer
	location *time.Location
}

// InitNormalizer initializes a Normalizer object and sets its attributes.
func InitNormalizer(cfg *config.APIConfig) (*Normalizer, error) {
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return nil, err
	}
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	return &Normalizer{
		printer:  message.NewPrinter(tag),
		location: location,
	}, nil
}

// NormalizeService derives the display fields of a raw service link record.
func (n *Normalizer) NormalizeService(raw modeldto.ServiceResponse) modelalert.ServiceLink {
	return modelalert.ServiceLink{
		ID:            raw.ID,
		State:         raw.State,
		TwitchUser:    raw.TwitchUser,
		ClientID:      raw.ClientID,
		ClientSecret:  raw.ClientSecret,
		Wallet:        raw.Wallet,
		ServiceName:   raw.ServiceName,
		Authenticated: raw.Authenticated,
		Onchain:       raw.Onchain,
		RedirectURI:   apiBasePath + "/authenticate/" + raw.ID,
		AuthURL:       apiBasePath + "/getaccess/" + raw.ID,
		// a missing state yields a bare display path rather than an error
		DisplayURL: displayBasePath + raw.State,
	}
}

// NormalizeDonation derives the display fields of a raw donation record.
func (n *Normalizer) NormalizeDonation(raw modeldto.DonationResponse) modelalert.Donation {
	return modelalert.Donation{
		ID:            raw.ID,
		Wallet:        raw.Wallet,
		Name:          raw.Name,
		Message:       raw.Message,
		CurCode:       raw.CurCode,
		Sats:          raw.Sats,
		Amount:        raw.Amount,
		Service:       raw.Service,
		Posted:        raw.Posted,
		Time:          raw.Time,
		Date:          time.UnixMilli(raw.Time).In(n.location).Format(displayTimeLayout),
		FormattedSats: n.printer.Sprintf("%d", raw.Sats),
	}
}
