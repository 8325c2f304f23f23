package kv

import (
	"context"
	"errors"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/wishlistbuddy/wishlist-backend/pkg/config"
)

// Memcache adapts a memcached cluster to the Store contract. Values
// are not durable across restarts, which matches the throwaway nature
// of demo deployments.
type Memcache struct {
	client *memcache.Client
}

func NewMemcache(cfg config.MemcacheConfig) *Memcache {
	return &Memcache{client: memcache.New(cfg.Addrs...)}
}

func (m *Memcache) Get(_ context.Context, key string) ([]byte, bool, error) {
	item, err := m.client.Get(key)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return item.Value, true, nil
}

func (m *Memcache) Set(_ context.Context, key string, value []byte) error {
	return m.client.Set(&memcache.Item{Key: key, Value: value})
}

func (m *Memcache) Ping(_ context.Context) error {
	return m.client.Ping()
}

func (m *Memcache) Close() error {
	return m.client.Close()
}
