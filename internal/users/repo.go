package users

import (
	"context"
	"errors"

	"github.com/wishlistbuddy/wishlist-backend/pkg/docstore"
	pkgerrors "github.com/wishlistbuddy/wishlist-backend/pkg/errors"
)

const collectionName = "users"

// Repository exposes user persistence over the users collection.
type Repository struct {
	coll *docstore.Collection
}

// NewRepository constructs a users repo bound to the provided database.
func NewRepository(db *docstore.Database) *Repository {
	return &Repository{coll: db.Collection(collectionName)}
}

// Create assigns an id, inserts the user and returns the persisted
// record.
func (r *Repository) Create(ctx context.Context, dto CreateUserDTO) (*User, error) {
	user := dto.toModel()
	user.ID = docstore.ObjectID()

	doc, err := docstore.Encode(user)
	if err != nil {
		return nil, err
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return user, nil
}

// FindByID loads a user by their application id.
func (r *Repository) FindByID(ctx context.Context, id string) (*User, error) {
	doc, err := r.coll.FindByID(ctx, id)
	if err != nil {
		return nil, asLookupError(err, "user not found")
	}
	return decodeUser(doc)
}

// FindByEmail retrieves the first user matching the provided email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	doc, err := r.coll.FindOne(ctx, docstore.Query{"email": email})
	if err != nil {
		return nil, asLookupError(err, "user not found")
	}
	return decodeUser(doc)
}

// ListAll returns every user in insertion order.
func (r *Repository) ListAll(ctx context.Context) ([]User, error) {
	docs, err := r.coll.Find(ctx, docstore.Query{})
	if err != nil {
		return nil, err
	}
	return docstore.DecodeSlice[User](docs)
}

func decodeUser(doc docstore.Document) (*User, error) {
	var user User
	if err := docstore.Decode(doc, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func asLookupError(err error, message string) error {
	if errors.Is(err, docstore.ErrNoDocuments) {
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, message)
	}
	return err
}
