package pagecache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock двигается руками в тестах вместо wall-clock sleep.
type fakeClock struct {
	current time.Time
}

func (f *fakeClock) now() time.Time {
	return f.current
}

func (f *fakeClock) advance(d time.Duration) {
	f.current = f.current.Add(d)
}

func TestMemoryCache_GetOrRender(t *testing.T) {
	ctx := context.Background()

	t.Run("First read renders, second read within TTL returns cached bytes", func(t *testing.T) {
		clock := &fakeClock{current: time.Unix(1000, 0)}
		cache := NewMemoryCacheWithClock(clock.now)

		calls := 0
		render := func() ([]byte, error) {
			calls++
			return []byte("page v1"), nil
		}

		first, err := cache.GetOrRender(ctx, "index_page:1", 20*time.Second, render)
		require.NoError(t, err)
		assert.Equal(t, []byte("page v1"), first)
		assert.Equal(t, 1, calls)

		clock.advance(10 * time.Second)

		// Рендер-функция уже отдает другой контент, но кеш еще жив
		second, err := cache.GetOrRender(ctx, "index_page:1", 20*time.Second, func() ([]byte, error) {
			calls++
			return []byte("page v2"), nil
		})
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, calls)
	})

	t.Run("Read after TTL expiry re-renders", func(t *testing.T) {
		clock := &fakeClock{current: time.Unix(1000, 0)}
		cache := NewMemoryCacheWithClock(clock.now)

		_, err := cache.GetOrRender(ctx, "index_page:1", 20*time.Second, func() ([]byte, error) {
			return []byte("page v1"), nil
		})
		require.NoError(t, err)

		clock.advance(21 * time.Second)

		data, err := cache.GetOrRender(ctx, "index_page:1", 20*time.Second, func() ([]byte, error) {
			return []byte("page v2"), nil
		})
		require.NoError(t, err)
		assert.Equal(t, []byte("page v2"), data)
	})

	t.Run("Keys are independent", func(t *testing.T) {
		clock := &fakeClock{current: time.Unix(1000, 0)}
		cache := NewMemoryCacheWithClock(clock.now)

		page1, err := cache.GetOrRender(ctx, "index_page:1", 20*time.Second, func() ([]byte, error) {
			return []byte("page 1"), nil
		})
		require.NoError(t, err)

		page2, err := cache.GetOrRender(ctx, "index_page:2", 20*time.Second, func() ([]byte, error) {
			return []byte("page 2"), nil
		})
		require.NoError(t, err)

		assert.NotEqual(t, page1, page2)
	})

	t.Run("Render error is not cached", func(t *testing.T) {
		clock := &fakeClock{current: time.Unix(1000, 0)}
		cache := NewMemoryCacheWithClock(clock.now)

		_, err := cache.GetOrRender(ctx, "index_page:1", 20*time.Second, func() ([]byte, error) {
			return nil, errors.New("render failed")
		})
		assert.Error(t, err)

		data, err := cache.GetOrRender(ctx, "index_page:1", 20*time.Second, func() ([]byte, error) {
			return []byte("recovered"), nil
		})
		require.NoError(t, err)
		assert.Equal(t, []byte("recovered"), data)
	})
}

func TestMemoryCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{current: time.Unix(1000, 0)}
	cache := NewMemoryCacheWithClock(clock.now)

	_, err := cache.GetOrRender(ctx, "index_page:1", 20*time.Second, func() ([]byte, error) {
		return []byte("stale"), nil
	})
	require.NoError(t, err)

	// Явная инвалидация - единственный способ получить свежие байты до истечения TTL
	require.NoError(t, cache.Invalidate(ctx, "index_page:1"))

	data, err := cache.GetOrRender(ctx, "index_page:1", 20*time.Second, func() ([]byte, error) {
		return []byte("fresh"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("fresh"), data)
}

func TestMemoryCache_Clear(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{current: time.Unix(1000, 0)}
	cache := NewMemoryCacheWithClock(clock.now)

	for _, key := range []string{"index_page:1", "index_page:2"} {
		_, err := cache.GetOrRender(ctx, key, 20*time.Second, func() ([]byte, error) {
			return []byte("stale " + key), nil
		})
		require.NoError(t, err)
	}

	require.NoError(t, cache.Clear(ctx))

	data, err := cache.GetOrRender(ctx, "index_page:2", 20*time.Second, func() ([]byte, error) {
		return []byte("fresh"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("fresh"), data)
}

func TestMemoryCache_ConcurrentReaders(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{current: time.Unix(1000, 0)}
	cache := NewMemoryCacheWithClock(clock.now)

	_, err := cache.GetOrRender(ctx, "index_page:1", 20*time.Second, func() ([]byte, error) {
		return []byte("shared"), nil
	})
	require.NoError(t, err)

	done := make(chan []byte, 10)
	for i := 0; i < 10; i++ {
		go func() {
			data, err := cache.GetOrRender(ctx, "index_page:1", 20*time.Second, func() ([]byte, error) {
				return []byte("should not render"), nil
			})
			assert.NoError(t, err)
			done <- data
		}()
	}

	for i := 0; i < 10; i++ {
		assert.Equal(t, []byte("shared"), <-done)
	}
}
