// Package donation provides interfaces for types to be in compliance with.
package donation

import (
	"context"
	"io"

	"github.com/dkazarov/dk_go_stream_alerts/internal/service/modelalert"
)

// Confirmer defines a set of methods for types prompting the user before destructive operations.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Processor defines a set of methods for types implementing Processor.
type Processor interface {
	List(ctx context.Context, wallets []modelalert.Wallet, walletID string) ([]modelalert.Donation, error)
	Delete(ctx context.Context, wallets []modelalert.Wallet, donationID string) error
	ExportCSV(ctx context.Context, w io.Writer) error
}
