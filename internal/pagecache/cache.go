package pagecache

import (
	"context"
	"time"
)

// RenderFunc отдает свежие байты страницы, когда в кеше пусто или запись протухла.
type RenderFunc func() ([]byte, error)

// Cache - кеш отрендеренных страниц целиком. В окно TTL читатели получают
// одни и те же байты, даже если посты под страницей менялись: запись в
// хранилище кеш не инвалидирует, только Invalidate/Clear или истечение TTL.
type Cache interface {
	GetOrRender(ctx context.Context, key string, ttl time.Duration, render RenderFunc) ([]byte, error)
	Invalidate(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
