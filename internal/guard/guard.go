// Package guard provides a single-flight lock keyed by deposit-request id so
// a reconciliation action cannot be re-entered while one is in flight.
package guard

import (
	"context"
	"errors"
)

// ErrLocked indicates a reconciliation action for the request is already in
// flight and the new action must be refused before any store write.
var ErrLocked = errors.New("request is already being processed")

// Guard admits at most one in-flight reconciliation per request id. Release
// must be called on every exit path, including failures, so an error can
// never wedge later attempts.
type Guard interface {
	Acquire(ctx context.Context, requestID string) error
	Release(ctx context.Context, requestID string)
}
