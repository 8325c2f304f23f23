package wishlist

import (
	"context"
	"errors"
	"time"

	"github.com/wishlistbuddy/wishlist-backend/pkg/docstore"
	pkgerrors "github.com/wishlistbuddy/wishlist-backend/pkg/errors"
)

const collectionName = "wishlists"

// Repository exposes wishlist persistence over the wishlists
// collection, including the embedded-product mutations.
type Repository struct {
	coll *docstore.Collection
}

// NewRepository constructs a wishlist repo bound to the provided
// database.
func NewRepository(db *docstore.Database) *Repository {
	return &Repository{coll: db.Collection(collectionName)}
}

// Create assigns an id, stamps the creation time and inserts the
// wishlist with no members and no products.
func (r *Repository) Create(ctx context.Context, dto CreateWishlistDTO) (*Wishlist, error) {
	list := &Wishlist{
		ID:          docstore.ObjectID(),
		Name:        dto.Name,
		Description: dto.Description,
		CreatorID:   dto.CreatorID,
		Members:     []string{},
		Products:    []Product{},
		CreatedAt:   time.Now().UTC(),
	}

	doc, err := docstore.Encode(list)
	if err != nil {
		return nil, err
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return list, nil
}

// FindByID loads a wishlist by its application id.
func (r *Repository) FindByID(ctx context.Context, id string) (*Wishlist, error) {
	doc, err := r.coll.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNoDocuments) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "wishlist not found")
		}
		return nil, err
	}
	var list Wishlist
	if err := docstore.Decode(doc, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ListAll returns every wishlist in insertion order.
func (r *Repository) ListAll(ctx context.Context) ([]Wishlist, error) {
	docs, err := r.coll.Find(ctx, docstore.Query{})
	if err != nil {
		return nil, err
	}
	return docstore.DecodeSlice[Wishlist](docs)
}

// ListForUser returns the wishlists the user created or collaborates
// on. The creator is never required to appear in members.
func (r *Repository) ListForUser(ctx context.Context, userID string) ([]Wishlist, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	owned := make([]Wishlist, 0, len(all))
	for _, list := range all {
		if list.CreatorID == userID || containsMember(list.Members, userID) {
			owned = append(owned, list)
		}
	}
	return owned, nil
}

// Update shallow-merges patch onto the wishlist's top-level fields.
func (r *Repository) Update(ctx context.Context, id string, patch docstore.Document) error {
	_, err := r.coll.UpdateOne(ctx, docstore.Query{"id": id}, docstore.Set(patch))
	return err
}

// Delete removes the wishlist outright.
func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, docstore.Query{"id": id})
	return err
}

// AddProduct assigns the product an id, stamps it and appends it to
// the wishlist's products. Fails with NOT_FOUND when the wishlist does
// not exist.
func (r *Repository) AddProduct(ctx context.Context, wishlistID string, dto CreateProductDTO) (*Product, error) {
	if _, err := r.FindByID(ctx, wishlistID); err != nil {
		return nil, err
	}

	product := dto.toModel()
	product.ID = docstore.ObjectID()
	product.CreatedAt = time.Now().UTC()

	doc, err := docstore.Encode(product)
	if err != nil {
		return nil, err
	}
	if _, err := r.coll.UpdateOne(ctx, docstore.Query{"id": wishlistID}, docstore.Push("products", doc)); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct shallow-merges patch onto the product with the given
// id and rewrites the whole products field. Other products are left
// untouched; an unknown productID is a silent no-op. Fails with
// NOT_FOUND when the wishlist does not exist.
func (r *Repository) UpdateProduct(ctx context.Context, wishlistID, productID string, patch docstore.Document) error {
	list, err := r.FindByID(ctx, wishlistID)
	if err != nil {
		return err
	}

	rebuilt := make([]docstore.Document, 0, len(list.Products))
	for _, product := range list.Products {
		doc, err := docstore.Encode(product)
		if err != nil {
			return err
		}
		if product.ID == productID {
			for k, v := range patch {
				doc[k] = v
			}
		}
		rebuilt = append(rebuilt, doc)
	}

	_, err = r.coll.UpdateOne(ctx, docstore.Query{"id": wishlistID},
		docstore.Set(docstore.Document{"products": rebuilt}))
	return err
}

// RemoveProduct drops the product with the given id from the wishlist.
// Fails with NOT_FOUND when the wishlist does not exist.
func (r *Repository) RemoveProduct(ctx context.Context, wishlistID, productID string) error {
	list, err := r.FindByID(ctx, wishlistID)
	if err != nil {
		return err
	}

	remaining := make([]docstore.Document, 0, len(list.Products))
	for _, product := range list.Products {
		if product.ID == productID {
			continue
		}
		doc, err := docstore.Encode(product)
		if err != nil {
			return err
		}
		remaining = append(remaining, doc)
	}

	_, err = r.coll.UpdateOne(ctx, docstore.Query{"id": wishlistID},
		docstore.Set(docstore.Document{"products": remaining}))
	return err
}

// AddMember appends userID to the wishlist's members. No existence
// check and no deduplication: calling this twice with the same user
// produces a duplicate entry, matching the historical behavior.
func (r *Repository) AddMember(ctx context.Context, wishlistID, userID string) error {
	_, err := r.coll.UpdateOne(ctx, docstore.Query{"id": wishlistID}, docstore.Push("members", userID))
	return err
}

func containsMember(members []string, userID string) bool {
	for _, member := range members {
		if member == userID {
			return true
		}
	}
	return false
}
