// Package errors provides custom errors for types implementing the Requester interface.
package errors

import (
	"fmt"
)

type (
	// TransportError wraps a network-level failure of a remote API call.
	TransportError struct {
		Err error
	}
	// APIError carries a server-rejected request (validation or authorization failure).
	APIError struct {
		Status int
		Detail string
	}
)

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: could not reach remote API", e.Err.Error())
}

func (e *APIError) Error() string {
	return fmt.Sprintf("remote API rejected request with status %d: %s", e.Status, e.Detail)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
