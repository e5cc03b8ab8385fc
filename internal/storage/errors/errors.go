// Package errors provides custom errors for types implementing the AlertStorage interface.
package errors

import (
	"fmt"
)

type (
	NotFoundError struct {
		ID  string
		Err error
	}
	AlreadyExistsError struct {
		ID  string
		Err error
	}
	ContextTimeoutExceededError struct {
		Err error
	}
	FileWriteError struct {
		Err error
	}
	CipherError struct {
		Err error
	}
	StatementPSQLError struct {
		Err error
	}
	ExecutionPSQLError struct {
		Err error
	}
	ScanningPSQLError struct {
		Err error
	}
)

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: not found in storage", e.ID)
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s: already exists in storage", e.ID)
}

func (e *ContextTimeoutExceededError) Error() string {
	return fmt.Sprintf("%s: context timeout exceeded", e.Err.Error())
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("%s: could not persist to file", e.Err.Error())
}

func (e *CipherError) Error() string {
	return fmt.Sprintf("%s: could not decipher stored credential", e.Err.Error())
}

func (e *StatementPSQLError) Error() string {
	return fmt.Sprintf("%s: could not compile statement", e.Err.Error())
}

func (e *ExecutionPSQLError) Error() string {
	return fmt.Sprintf("%s: could not query", e.Err.Error())
}

func (e *ScanningPSQLError) Error() string {
	return fmt.Sprintf("%s: could not scan rows", e.Err.Error())
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

func (e *AlreadyExistsError) Unwrap() error {
	return e.Err
}

func (e *ContextTimeoutExceededError) Unwrap() error {
	return e.Err
}

func (e *FileWriteError) Unwrap() error {
	return e.Err
}

func (e *CipherError) Unwrap() error {
	return e.Err
}

func (e *StatementPSQLError) Unwrap() error {
	return e.Err
}

func (e *ExecutionPSQLError) Unwrap() error {
	return e.Err
}

func (e *ScanningPSQLError) Unwrap() error {
	return e.Err
}
