package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sonarauth/internal/common"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "challenge:"

// RedisLedger stores pending challenges as JSON values with a native
// per-key TTL. SET replaces any previous entry and resets the lifetime;
// GETDEL makes consumption a single atomic operation on the server, so
// concurrent verifies for the same username cannot both win.
type RedisLedger struct {
	client *redis.Client
}

func NewRedisLedger(client *redis.Client) *RedisLedger {
	return &RedisLedger{client: client}
}

func (l *RedisLedger) Put(ctx context.Context, challenge *Challenge, ttl time.Duration) error {
	challenge.IssuedAt = time.Now()
	challenge.ExpiresAt = challenge.IssuedAt.Add(ttl)

	payload, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("challenge marshal error: %w", err)
	}

	if err := l.client.Set(ctx, redisKeyPrefix+challenge.Username, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis error: %w", err)
	}

	return nil
}

func (l *RedisLedger) TakeIfPresent(ctx context.Context, username string) (*Challenge, error) {
	payload, err := l.client.GetDel(ctx, redisKeyPrefix+username).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("redis error: %w", err)
	}

	challenge := &Challenge{}
	if err := json.Unmarshal([]byte(payload), challenge); err != nil {
		return nil, fmt.Errorf("challenge unmarshal error: %w", err)
	}

	return challenge, nil
}
