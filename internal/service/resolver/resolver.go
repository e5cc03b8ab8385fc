// Package resolver provides wallet-scoped credential resolution for remote API operations.
package resolver

import (
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/errors"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/modelalert"
)

// Scope selects which of a wallet's API keys an operation requires.
type Scope int

const (
	// ScopeRead selects the wallet's invoice/read key used for list and delete operations.
	ScopeRead Scope = iota
	// ScopeAdmin selects the wallet's admin key used for create operations.
	ScopeAdmin
)

// ResolveKey looks up walletID among the caller's wallets and returns the key matching scope.
// A missing wallet is a data-consistency error and fails fast instead of defaulting.
func ResolveKey(wallets []modelalert.Wallet, walletID string, scope Scope) (string, error) {
	for _, w := range wallets {
		if w.ID != walletID {
			continue
		}
		if scope == ScopeAdmin {
			return w.Adminkey, nil
		}
		return w.Inkey, nil
	}
	return "", &errors.WalletNotFoundError{WalletID: walletID}
}

// DefaultReadKey returns the first available wallet's read key for session-start loads.
func DefaultReadKey(wallets []modelalert.Wallet) (string, error) {
	if len(wallets) == 0 {
		return "", &errors.NoWalletsError{Msg: "no wallets available for credential resolution"}
	}
	return wallets[0].Inkey, nil
}
