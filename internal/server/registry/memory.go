package registry

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/sonarauth/internal/common"
)

// InMemoryRepository keeps identities in a map. Used in tests and for
// running the server without a database.
type InMemoryRepository struct {
	mu         sync.Mutex
	identities map[string]*Identity
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{identities: make(map[string]*Identity)}
}

func (r *InMemoryRepository) Insert(ctx context.Context, identity *Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.identities[identity.Username]; ok {
		return common.ErrAlreadyRegistered
	}

	stored := *identity
	stored.CreatedAt = time.Now()
	r.identities[identity.Username] = &stored
	identity.CreatedAt = stored.CreatedAt

	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, username string) (*Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	identity, ok := r.identities[username]
	if !ok {
		return nil, common.ErrorNotFound
	}

	found := *identity
	return &found, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.identities[username]; !ok {
		return common.ErrorNotFound
	}
	delete(r.identities, username)

	return nil
}
