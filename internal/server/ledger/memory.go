package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/sonarauth/internal/common"
)

// InMemoryLedger keeps pending challenges in a mutex-guarded map.
// Expiry is checked on every take, so a challenge past its deadline is a
// miss even before the sweeper has removed it.
type InMemoryLedger struct {
	mu         sync.Mutex
	challenges map[string]*Challenge

	// test seam
	now func() time.Time
}

func NewInMemoryLedger() *InMemoryLedger {
	return &InMemoryLedger{
		challenges: make(map[string]*Challenge),
		now:        time.Now,
	}
}

func (l *InMemoryLedger) Put(ctx context.Context, challenge *Challenge, ttl time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	stored := *challenge
	stored.IssuedAt = l.now()
	stored.ExpiresAt = stored.IssuedAt.Add(ttl)
	l.challenges[challenge.Username] = &stored

	challenge.IssuedAt = stored.IssuedAt
	challenge.ExpiresAt = stored.ExpiresAt

	return nil
}

func (l *InMemoryLedger) TakeIfPresent(ctx context.Context, username string) (*Challenge, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	challenge, ok := l.challenges[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(l.challenges, username)

	if l.now().After(challenge.ExpiresAt) {
		return nil, common.ErrorNotFound
	}

	return challenge, nil
}

// Run sweeps expired entries until ctx is cancelled. The sweep only
// bounds memory; correctness never depends on it because TakeIfPresent
// checks expiry itself.
func (l *InMemoryLedger) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.sweep()
		}
	}
}

func (l *InMemoryLedger) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for username, challenge := range l.challenges {
		if now.After(challenge.ExpiresAt) {
			delete(l.challenges, username)
		}
	}
}
