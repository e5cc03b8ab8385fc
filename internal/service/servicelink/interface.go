// Package servicelink provides interfaces for types to be in compliance with.
package servicelink

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
	List(ctx context.Context, wallets []modelalert.Wallet, walletID string) ([]modelalert.ServiceLink, error)
	StartCreate()
	StartEdit(ctx context.Context, serviceID string) error
	SetDraft(draft modelalert.ServiceDraft)
	Draft() (modelalert.ServiceDraft, bool)
	CancelDialog()
	Submit(ctx context.Context, wallets []modelalert.Wallet) (modelalert.ServiceLink, error)
	Delete(ctx context.Context, wallets []modelalert.Wallet, serviceID string) error
	ExportCSV(ctx context.Context, w io.Writer) error
}
