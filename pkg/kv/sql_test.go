package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wishlistbuddy/wishlist-backend/pkg/config"
)

func newSQLStore(t *testing.T) *SQL {
	t.Helper()
	store, err := NewSQL(context.Background(), config.DBConfig{
		DSN:    "file::memory:?cache=shared",
		Driver: config.DriverSQLite,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLAbsentKey(t *testing.T) {
	store := newSQLStore(t)

	_, found, err := store.Get(context.Background(), "never-written")
	require.NoError(t, err)
	require.False(t, found)
}

func TestSQLUpsertReplacesValue(t *testing.T) {
	ctx := context.Background()
	store := newSQLStore(t)

	require.NoError(t, store.Set(ctx, "wishlists", []byte(`["a"]`)))
	require.NoError(t, store.Set(ctx, "wishlists", []byte(`["a","b"]`)))

	value, found, err := store.Get(ctx, "wishlists")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, `["a","b"]`, string(value))
}

func TestSQLKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := newSQLStore(t)

	require.NoError(t, store.Set(ctx, "users", []byte(`[1]`)))
	require.NoError(t, store.Set(ctx, "wishlists", []byte(`[2]`)))

	users, _, err := store.Get(ctx, "users")
	require.NoError(t, err)
	require.Equal(t, `[1]`, string(users))

	wishlists, _, err := store.Get(ctx, "wishlists")
	require.NoError(t, err)
	require.Equal(t, `[2]`, string(wishlists))
}

func TestSQLPing(t *testing.T) {
	store := newSQLStore(t)
	require.NoError(t, store.Ping(context.Background()))
}

func TestNewSQLRejectsUnknownDriver(t *testing.T) {
	_, err := NewSQL(context.Background(), config.DBConfig{DSN: "x", Driver: "oracle"}, nil)
	require.Error(t, err)
}
