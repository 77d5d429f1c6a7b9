package pagecache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	data   []byte
	expiry time.Time
}

// MemoryCache - кеш в памяти процесса. Часы инъектируются,
// чтобы тесты могли двигать время без sleep.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return NewMemoryCacheWithClock(time.Now)
}

func NewMemoryCacheWithClock(now func() time.Time) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]entry),
		now:     now,
	}
}

func (c *MemoryCache) GetOrRender(ctx context.Context, key string, ttl time.Duration, render RenderFunc) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok && c.now().Before(e.expiry) {
		return e.data, nil
	}

	data, err := render()
	if err != nil {
		return nil, err
	}

	c.entries[key] = entry{
		data:   data,
		expiry: c.now().Add(ttl),
	}

	return data, nil
}

func (c *MemoryCache) Invalidate(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}

func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
	return nil
}
