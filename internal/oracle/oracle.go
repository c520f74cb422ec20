// Package oracle defines the on-chain address-lookup boundary and its
// concrete adapters. The search driver holds at most one Lookup at a time
// and treats it as a synchronous blocking call.
package oracle

import "context"

// Lookup is the single-method capability an address-activity oracle must
// implement. Check must be idempotent: calling it twice with the same
// address returns the same answer (modulo the address's real on-chain
// state changing between calls, which the driver does not guard against).
type Lookup interface {
	Check(ctx context.Context, stakeAddress string) (active bool, err error)
}

// Inactive is a sentinel error kind: once an adapter returns it, the
// oracle is considered terminally unavailable for the rest of the run and
// the driver stops calling it.
var Inactive = &Error{Kind: KindInactive, Message: "oracle marked inactive"}

// Kind distinguishes a terminal oracle failure from a merely recoverable
// one.
type Kind int

const (
	_ Kind = iota
	// KindUnavailable marks a recoverable failure (network hiccup, rate
	// limit, transient 5xx): the driver logs once and disables the oracle
	// for the remainder of the run, but the search itself never aborts.
	KindUnavailable
	// KindInactive marks the oracle's own terminal state.
	KindInactive
)

// Error is the typed error oracles return.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Unavailable wraps cause as a recoverable OracleUnavailable error.
func Unavailable(cause error) *Error {
	msg := "oracle unavailable"
	if cause != nil {
		msg = "oracle unavailable: " + cause.Error()
	}
	return &Error{Kind: KindUnavailable, Message: msg}
}
