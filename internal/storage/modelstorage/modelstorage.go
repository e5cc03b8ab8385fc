// Package modelstorage provides locally used types and their structure for storage entries.
package modelstorage

import (
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/modelalert"
)

// Snapshot is one persisted state of all client-visible collections.
type Snapshot struct {
	Services    []modelalert.ServiceLink `json:"services"`
	Donations   []modelalert.Donation    `json:"donations"`
	WalletLinks []string                 `json:"wallet_links"`
}
