package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dmitrijs2005/sonarauth/internal/common"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newRedisLedger(t *testing.T) (*RedisLedger, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLedger(client), mr
}

func TestRedisLedger_PutTake(t *testing.T) {
	l, _ := newRedisLedger(t)
	ctx := context.Background()

	ch := &Challenge{Username: "alice", R: "02aa", C: "0f"}
	require.NoError(t, l.Put(ctx, ch, time.Minute))

	got, err := l.TakeIfPresent(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, "02aa", got.R)
	require.Equal(t, "0f", got.C)

	_, err = l.TakeIfPresent(ctx, "alice")
	require.ErrorIs(t, err, common.ErrorNotFound, "GETDEL must consume the entry")
}

func TestRedisLedger_PutOverwrites(t *testing.T) {
	l, _ := newRedisLedger(t)
	ctx := context.Background()

	require.NoError(t, l.Put(ctx, &Challenge{Username: "alice", R: "02aa", C: "01"}, time.Minute))
	require.NoError(t, l.Put(ctx, &Challenge{Username: "alice", R: "02bb", C: "02"}, time.Minute))

	got, err := l.TakeIfPresent(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "02bb", got.R)
}

func TestRedisLedger_TTLExpires(t *testing.T) {
	l, mr := newRedisLedger(t)
	ctx := context.Background()

	require.NoError(t, l.Put(ctx, &Challenge{Username: "alice", R: "02aa", C: "01"}, time.Minute))

	mr.FastForward(61 * time.Second)

	_, err := l.TakeIfPresent(ctx, "alice")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRedisLedger_MissForUnknownUser(t *testing.T) {
	l, _ := newRedisLedger(t)

	_, err := l.TakeIfPresent(context.Background(), "nobody")
	require.ErrorIs(t, err, common.ErrorNotFound)
}
