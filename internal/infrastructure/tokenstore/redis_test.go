package tokenstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, "", zerolog.Nop()), mr
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Persist(ctx, sampleSession()))
	assert.True(t, mr.Exists(DefaultKey))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sampleSession(), *got)
}

func TestRedisStore_EmptySlot(t *testing.T) {
	store, _ := newRedisStore(t)

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, store.Clear(context.Background()))
}

func TestRedisStore_CorruptSlotIsErased(t *testing.T) {
	store, mr := newRedisStore(t)
	require.NoError(t, mr.Set(DefaultKey, `{"user":{},"tokens":{}}`))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, mr.Exists(DefaultKey))
}

func TestRedisStore_Clear(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Persist(ctx, sampleSession()))
	require.NoError(t, store.Clear(ctx))
	assert.False(t, mr.Exists(DefaultKey))
}

func TestDialRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := DialRedis(context.Background(), mr.Addr(), 0)
	require.NoError(t, err)
	defer client.Close()

	store := NewRedisStore(client, "custom", zerolog.Nop())
	assert.NoError(t, store.Ping(context.Background()))
}

func TestDialRedis_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := DialRedis(context.Background(), addr, 0)
	assert.Error(t, err)
}
