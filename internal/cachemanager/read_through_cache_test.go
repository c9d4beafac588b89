package cachemanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestCache() *InMemoryCacheManager[string, int] {
	return NewInMemoryCacheManager[string, int]("test", DefaultExpiration, DefaultCleanupInterval)
}

func TestInMemoryCacheManager_SetGet(t *testing.T) {
	ctx := context.Background()
	c := newTestCache()

	_, ok := c.Get(ctx, "missing")
	require.False(t, ok)

	c.Set(ctx, "a", 42, time.Minute)
	v, ok := c.Get(ctx, "a")
	require.True(t, ok)
	require.Equal(t, 42, v)
}

func TestInMemoryCacheManager_DeleteAndFlush(t *testing.T) {
	ctx := context.Background()
	c := newTestCache()
	c.Set(ctx, "a", 1, time.Minute)
	c.Set(ctx, "b", 2, time.Minute)

	require.NoError(t, c.Delete(ctx, "a"))
	_, ok := c.Get(ctx, "a")
	require.False(t, ok)

	require.NoError(t, c.Flush(ctx))
	_, ok = c.Get(ctx, "b")
	require.False(t, ok)
}

func TestReadThroughCache_LoadsOnceThenCaches(t *testing.T) {
	ctx := context.Background()
	calls := 0
	loader := func(ctx context.Context, input string) (int, error) {
		calls++
		return len(input), nil
	}
	rtc := NewReadThroughCache[string, int, string](newTestCache(), loader, false)

	v, err := rtc.Get(ctx, "k", "hello", time.Minute)
	require.NoError(t, err)
	require.Equal(t, 5, v)
	require.Equal(t, 1, calls)

	v, err = rtc.Get(ctx, "k", "hello", time.Minute)
	require.NoError(t, err)
	require.Equal(t, 5, v)
	require.Equal(t, 1, calls, "second get should be served from cache")
}

func TestReadThroughCache_ErrorsNotCached(t *testing.T) {
	ctx := context.Background()
	calls := 0
	loader := func(ctx context.Context, input string) (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("transient")
		}
		return 7, nil
	}
	rtc := NewReadThroughCache[string, int, string](newTestCache(), loader, false)

	_, err := rtc.Get(ctx, "k", "x", time.Minute)
	require.Error(t, err)

	v, err := rtc.Get(ctx, "k", "x", time.Minute)
	require.NoError(t, err)
	require.Equal(t, 7, v)
	require.Equal(t, 2, calls)
}

func TestReadThroughCache_SkipCache(t *testing.T) {
	ctx := context.Background()
	calls := 0
	loader := func(ctx context.Context, input string) (int, error) {
		calls++
		return calls, nil
	}
	rtc := NewReadThroughCache[string, int, string](newTestCache(), loader, true)

	_, _ = rtc.Get(ctx, "k", "x", time.Minute)
	_, _ = rtc.Get(ctx, "k", "x", time.Minute)
	require.Equal(t, 2, calls, "skip-cache mode always hits the loader")
}

func TestReadThroughCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	calls := 0
	loader := func(ctx context.Context, input string) (int, error) {
		calls++
		return calls, nil
	}
	rtc := NewReadThroughCache[string, int, string](newTestCache(), loader, false)

	_, _ = rtc.Get(ctx, "k", "x", time.Minute)
	require.NoError(t, rtc.Invalidate(ctx, "k"))
	_, _ = rtc.Get(ctx, "k", "x", time.Minute)
	require.Equal(t, 2, calls, "invalidated key reloads")
}
