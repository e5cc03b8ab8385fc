// Package walletlink provides interfaces for types to be in compliance with.
package walletlink

import (
	"context"

	"github.com/dkazarov/dk_go_stream_alerts/internal/service/modelalert"
)

// Loader defines a set of methods for types implementing Loader.
type Loader interface {
	Load(ctx context.Context, wallets []modelalert.Wallet, walletID string) ([]string, error)
}
