package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-academy/backend/internal/application/adapter"
)

func newRedisStore(t *testing.T) (adapter.SessionStore, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client), server
}

func TestSessionStores(t *testing.T) {
	redisStore, _ := newRedisStore(t)

	stores := map[string]adapter.SessionStore{
		"redis":  redisStore,
		"memory": NewMemoryStore(),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			userID := uuid.New()

			_, found, err := store.GetToken(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, store.SetToken(ctx, "k1", userID, time.Hour))

			owner, found, err := store.GetToken(ctx, "k1")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, userID, owner)

			require.NoError(t, store.ClearToken(ctx, "k1"))
			require.NoError(t, store.ClearToken(ctx, "k1"))

			_, found, err = store.GetToken(ctx, "k1")
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestRedisStore_Expiry(t *testing.T) {
	store, server := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetToken(ctx, "k", uuid.New(), time.Minute))
	server.FastForward(2 * time.Minute)

	_, found, err := store.GetToken(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStore_ExpiryAndCleanup(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.SetToken(ctx, "short", uuid.New(), time.Minute))
	require.NoError(t, store.SetToken(ctx, "long", uuid.New(), time.Hour))

	now = now.Add(2 * time.Minute)

	_, found, _ := store.GetToken(ctx, "short")
	assert.False(t, found)
	_, found, _ = store.GetToken(ctx, "long")
	assert.True(t, found)

	assert.Equal(t, 1, store.Cleanup())
	assert.Len(t, store.entries, 1)
}
