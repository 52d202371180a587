package service

import (
	"errors"
	"fmt"
)

var (
	// ErrAPIKeyMissing means no Asaas key was resolved for the active
	// environment. Nothing remote is attempted in that state.
	ErrAPIKeyMissing = errors.New("asaas api key not configured")

	// ErrUnusableCharge means the gateway returned a PIX payload too short
	// to be scannable; the charge is not persisted.
	ErrUnusableCharge = errors.New("pix qr code payload is unusable")
)

// PersistenceError marks a database write that failed after the remote
// charge was already created. The charge is live on the gateway side; the
// status check endpoint is the recovery path.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
