package kv

import (
	"context"

	gocache "github.com/patrickmn/go-cache"
)

// Memory is the in-process backend. It is the default for local runs
// and the storage double used throughout the tests.
type Memory struct {
	cache *gocache.Cache
}

func NewMemory() *Memory {
	return &Memory{cache: gocache.New(gocache.NoExpiration, 0)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	raw, found := m.cache.Get(key)
	if !found {
		return nil, false, nil
	}
	value, ok := raw.([]byte)
	if !ok {
		return nil, false, nil
	}
	return value, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	copied := append([]byte(nil), value...)
	m.cache.Set(key, copied, gocache.NoExpiration)
	return nil
}

func (m *Memory) Close() error {
	return nil
}
