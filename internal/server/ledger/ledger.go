// Package ledger is the Challenge Ledger: an ephemeral, time-bounded
// store holding at most one pending challenge per username. Consumption
// is a single atomic get-and-delete, which is what makes challenges
// single-use under concurrent verify attempts.
package ledger

import (
	"context"
	"time"
)

// Challenge is a pending challenge awaiting the client's response. R and
// C are kept in their wire encodings so the record survives a trip
// through an external store unchanged. Records are never mutated; a new
// Put replaces the old record wholesale.
type Challenge struct {
	Username  string    `json:"username"`
	R         string    `json:"R"`
	C         string    `json:"c"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Ledger interface {
	// Put stores the challenge under its username with the given TTL,
	// unconditionally replacing any existing entry and resetting its
	// lifetime. IssuedAt/ExpiresAt are stamped by the implementation.
	Put(ctx context.Context, challenge *Challenge, ttl time.Duration) error

	// TakeIfPresent atomically removes and returns the live challenge
	// for username. Misses (never issued, already consumed, expired)
	// all surface as common.ErrorNotFound; expiry is decided by the
	// clock, not by whether a sweep has physically removed the entry.
	// At most one caller observes a non-miss for a given Put.
	TakeIfPresent(ctx context.Context, username string) (*Challenge, error)
}
