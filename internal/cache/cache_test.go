package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisWithClient(client, time.Minute), mr
}

func TestRedisCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedis(t)

	_, ok, err := c.Get(ctx, "jobs")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "jobs", `[{"id":1}]`))
	v, ok, err := c.Get(ctx, "jobs")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, v)

	assert.True(t, mr.Exists("scheduler:jobs"))
	assert.Equal(t, time.Minute, mr.TTL("scheduler:jobs"))

	mr.FastForward(2 * time.Minute)
	_, ok, err = c.Get(ctx, "jobs")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_DeletePrefix(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedis(t)

	require.NoError(t, c.Set(ctx, "persons:job:1", "a"))
	require.NoError(t, c.Set(ctx, "persons:job:2", "b"))
	require.NoError(t, c.Set(ctx, "jobs", "c"))

	require.NoError(t, c.DeletePrefix(ctx, "persons:"))
	assert.False(t, mr.Exists("scheduler:persons:job:1"))
	assert.False(t, mr.Exists("scheduler:persons:job:2"))
	assert.True(t, mr.Exists("scheduler:jobs"))

	require.NoError(t, c.DeletePrefix(ctx, "nothing:"))
}

func TestNewRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	c, err := NewRedis(context.Background(), "redis://"+mr.Addr()+"/0", time.Minute)
	require.NoError(t, err)
	assert.NoError(t, c.Close())

	_, err = NewRedis(context.Background(), "not a url", time.Minute)
	assert.Error(t, err)
}

type item struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func TestRemember_LoadsOnceThenHits(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestRedis(t)

	calls := 0
	load := func(context.Context) ([]item, error) {
		calls++
		return []item{{ID: 1, Name: "Electrician"}}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := Remember(ctx, c, "jobs", load)
		require.NoError(t, err)
		assert.Equal(t, []item{{ID: 1, Name: "Electrician"}}, got)
	}
	assert.Equal(t, 1, calls)

	Invalidate(ctx, c, "jobs")
	_, err := Remember(ctx, c, "jobs", load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRemember_CacheDownFallsThrough(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedis(t)
	mr.Close()

	got, err := Remember(ctx, c, "jobs", func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestRemember_LoadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Remember(context.Background(), Nop{}, "k", func(context.Context) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
}
