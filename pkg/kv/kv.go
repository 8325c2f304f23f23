// Package kv provides the flat key-value storage the document store
// persists into. Each key holds one opaque serialized value; writes are
// whole-value replacements and a missing key reads as absent.
package kv

import (
	"context"
	"fmt"

	"github.com/wishlistbuddy/wishlist-backend/pkg/config"
	"github.com/wishlistbuddy/wishlist-backend/pkg/logger"
)

// Store is the storage contract required by the document store.
type Store interface {
	// Get returns the value stored at key. found is false when the key
	// has never been written.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set replaces the whole value stored at key.
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Pinger is implemented by backends that can verify connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// New selects and boots the backend named by the configuration.
func New(ctx context.Context, cfg *config.Config, logg *logger.Logger) (Store, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		return NewMemory(), nil
	case config.BackendRedis:
		return NewRedis(ctx, cfg.Redis, cfg.Store.Namespace, logg)
	case config.BackendSQL:
		return NewSQL(ctx, cfg.DB, logg)
	case config.BackendMemcache:
		return NewMemcache(cfg.Memcache), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
