package app

import (
	"errors"
	"fmt"
)

// Error kinds surfaced at the action boundary. The controller maps
// every failure to a rendered "Error: <message>" line; nothing here is
// retried.
var (
	// ErrWalletConnection marks a failed wallet negotiation: the
	// provider declined or disclosed no account.
	ErrWalletConnection = errors.New("wallet connection failed")
	// ErrInvalidAddress is returned before any network call when an
	// address fails syntactic validation.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrMissingAddress is returned when a balance check has neither
	// an explicit address nor a connected session to fall back on.
	ErrMissingAddress = errors.New("no address given and no connected session")
	// ErrNotConnected is returned when an action requires a live
	// session and there is none.
	ErrNotConnected = errors.New("not connected")
	// ErrNetworkMismatch is returned when the wallet reports a chain
	// id other than the active network's.
	ErrNetworkMismatch = errors.New("wallet network mismatch")
	// ErrBusy is returned when an action of the same kind is still in
	// flight.
	ErrBusy = errors.New("action already in progress")
)

// QueryError wraps a rejected read call. The underlying cause (node
// error, unreachable endpoint, malformed response) is carried verbatim.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
