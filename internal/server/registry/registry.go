// Package registry is the Identity Registry: the durable mapping from
// username to registered public key. The protocol engine only ever
// reads single entries, inserts once, and deletes; the narrow interface
// keeps it swappable for an in-memory fake in tests.
package registry

import (
	"context"
	"time"
)

// Identity is a registered public identity. The public key is kept in
// its wire encoding; the engine decodes it against the active group.
// Identities are never mutated after creation.
type Identity struct {
	Username  string
	PubKey    string
	CreatedAt time.Time
}

type Repository interface {
	// Insert stores a new identity. It returns
	// common.ErrAlreadyRegistered if the username is taken; under a
	// register race at most one caller succeeds.
	Insert(ctx context.Context, identity *Identity) error

	// Get returns the identity for username, or common.ErrorNotFound.
	Get(ctx context.Context, username string) (*Identity, error)

	// Delete removes the identity. Deleting invalidates all outstanding
	// credentials referencing it. Returns common.ErrorNotFound if no
	// such identity exists.
	Delete(ctx context.Context, username string) error
}
