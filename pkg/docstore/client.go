package docstore

import (
	"context"
	"errors"
	"sync"

	pkgerrors "github.com/wishlistbuddy/wishlist-backend/pkg/errors"
	"github.com/wishlistbuddy/wishlist-backend/pkg/kv"
	"github.com/wishlistbuddy/wishlist-backend/pkg/logger"
)

// ErrNoDocuments is returned when a lookup matches nothing.
var ErrNoDocuments = errors.New("docstore: no documents in result")

// Client owns the connection state over a key-value backend. It is
// constructed once at startup and injected into repositories; the
// connect step runs once on first use and is reused afterwards.
type Client struct {
	store kv.Store
	logg  *logger.Logger

	mu        sync.Mutex
	connected bool
}

func NewClient(store kv.Store, logg *logger.Logger) (*Client, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "kv store is required")
	}
	return &Client{store: store, logg: logg}, nil
}

// Connect verifies the backend once and marks the client connected.
// Subsequent calls are no-ops.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.connected {
		return nil
	}
	if pinger, ok := c.store.(kv.Pinger); ok {
		if err := pinger.Ping(ctx); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "connecting to store")
		}
	}
	c.connected = true
	if c.logg != nil {
		c.logg.Info(ctx, "document store connected")
	}
	return nil
}

// Connected reports the connection flag.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// Close disconnects and releases the backend.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected = false
	return c.store.Close()
}

// Database returns a handle on the named database. Handle construction
// is pure; no per-call connection cost.
func (c *Client) Database(name string) *Database {
	return &Database{client: c, name: name}
}
