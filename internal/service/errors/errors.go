// Package errors provides custom errors for the service-link and donation managers.
package errors

import (
	"fmt"
)

type (
	ServiceFoundNilStorage struct {
		Msg string
	}
	ServiceFoundNilClient struct {
		Msg string
	}
	WalletNotFoundError struct {
		WalletID string
	}
	NoWalletsError struct {
		Msg string
	}
	MissingWalletFieldError struct {
		Msg string
	}
	EntityNotFoundError struct {
		ID string
	}
)

func (e *ServiceFoundNilStorage) Error() string {
	return e.Msg
}

func (e *ServiceFoundNilClient) Error() string {
	return e.Msg
}

func (e *WalletNotFoundError) Error() string {
	return fmt.Sprintf("%s: no such wallet among the user's wallets", e.WalletID)
}

func (e *NoWalletsError) Error() string {
	return e.Msg
}

func (e *MissingWalletFieldError) Error() string {
	return e.Msg
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("%s: not found in collection", e.ID)
}
