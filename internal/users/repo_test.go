package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wishlistbuddy/wishlist-backend/pkg/docstore"
	pkgerrors "github.com/wishlistbuddy/wishlist-backend/pkg/errors"
	"github.com/wishlistbuddy/wishlist-backend/pkg/kv"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	client, err := docstore.NewClient(kv.NewMemory(), nil)
	require.NoError(t, err)
	return NewRepository(client.Database("wishlist-buddy"))
}

func TestCreateAssignsID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	user, err := repo.Create(ctx, CreateUserDTO{Name: "Ann", Email: "a@x.com"})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, "a@x.com", user.Email)

	loaded, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, loaded)
}

func TestFindByEmailReturnsFirstMatch(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	first, err := repo.Create(ctx, CreateUserDTO{Name: "Ann", Email: "dup@x.com"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, CreateUserDTO{Name: "Other Ann", Email: "dup@x.com"})
	require.NoError(t, err)

	found, err := repo.FindByEmail(ctx, "dup@x.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
}

func TestLookupsReportNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	_, err := repo.FindByID(ctx, "missing")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	_, err = repo.FindByEmail(ctx, "nobody@x.com")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestListAllPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	ann, err := repo.Create(ctx, CreateUserDTO{Name: "Ann", Email: "a@x.com"})
	require.NoError(t, err)
	bob, err := repo.Create(ctx, CreateUserDTO{Name: "Bob", Email: "b@x.com"})
	require.NoError(t, err)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, ann.ID, all[0].ID)
	assert.Equal(t, bob.ID, all[1].ID)
}
