package docstore

import (
	"context"
	"encoding/json"

	pkgerrors "github.com/wishlistbuddy/wishlist-backend/pkg/errors"
)

// Collection is a generic CRUD+query engine over one named record set,
// stored as a single JSON array under the collection's storage key.
type Collection struct {
	client   *Client
	database string
	name     string
}

// Name returns the collection name.
func (c *Collection) Name() string {
	return c.name
}

func (c *Collection) storageKey() string {
	return c.name
}

func (c *Collection) load(ctx context.Context) ([]Document, error) {
	if err := c.client.Connect(ctx); err != nil {
		return nil, err
	}
	raw, found, err := c.client.store.Get(ctx, c.storageKey())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reading collection "+c.name)
	}
	if !found || len(raw) == 0 {
		return []Document{}, nil
	}
	var docs []Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeCorrupted, err, "decoding collection "+c.name)
	}
	return docs, nil
}

func (c *Collection) persist(ctx context.Context, docs []Document) error {
	raw, err := json.Marshal(docs)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding collection "+c.name)
	}
	if err := c.client.store.Set(ctx, c.storageKey(), raw); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "writing collection "+c.name)
	}
	return nil
}

// Find returns every record matching query, in insertion order. An
// empty query returns the stored sequence verbatim without running the
// matcher.
func (c *Collection) Find(ctx context.Context, query Query) ([]Document, error) {
	docs, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	if len(query) == 0 {
		return docs, nil
	}
	matched := make([]Document, 0, len(docs))
	for _, doc := range docs {
		if matches(doc, query) {
			matched = append(matched, doc)
		}
	}
	return matched, nil
}

// FindOne returns the first record matching query, or ErrNoDocuments.
func (c *Collection) FindOne(ctx context.Context, query Query) (Document, error) {
	docs, err := c.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}
	return docs[0], nil
}

// FindByID returns the first record whose application-level id field
// equals id. The storage _id is not consulted.
func (c *Collection) FindByID(ctx context.Context, id string) (Document, error) {
	docs, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		if valueEqual(doc["id"], id) {
			return doc, nil
		}
	}
	return nil, ErrNoDocuments
}

// InsertOne appends document to the collection with a freshly assigned
// storage _id and returns that id. The application-level id field is
// the caller's responsibility.
func (c *Collection) InsertOne(ctx context.Context, document Document) (string, error) {
	docs, err := c.load(ctx)
	if err != nil {
		return "", err
	}
	stored := cloneDocument(document)
	stored["_id"] = ObjectID()
	docs = append(docs, stored)
	if err := c.persist(ctx, docs); err != nil {
		return "", err
	}
	return stored["_id"].(string), nil
}

// InsertMany appends every document, assigning storage ids in input
// order, and returns the assigned ids.
func (c *Collection) InsertMany(ctx context.Context, documents []Document) ([]string, error) {
	docs, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	insertedIDs := make([]string, 0, len(documents))
	for _, document := range documents {
		stored := cloneDocument(document)
		stored["_id"] = ObjectID()
		docs = append(docs, stored)
		insertedIDs = append(insertedIDs, stored["_id"].(string))
	}
	if err := c.persist(ctx, docs); err != nil {
		return nil, err
	}
	return insertedIDs, nil
}

// UpdateOne applies update to the first record matching query and
// returns the modified count (0 or 1). The sequence is persisted even
// when nothing matched.
func (c *Collection) UpdateOne(ctx context.Context, query Query, update Update) (int64, error) {
	docs, err := c.load(ctx)
	if err != nil {
		return 0, err
	}
	var modified int64
	for i, doc := range docs {
		if matches(doc, query) {
			docs[i] = update.apply(doc)
			modified = 1
			break
		}
	}
	if err := c.persist(ctx, docs); err != nil {
		return 0, err
	}
	return modified, nil
}

// DeleteOne removes the first record matching query and returns the
// deleted count (0 or 1).
func (c *Collection) DeleteOne(ctx context.Context, query Query) (int64, error) {
	docs, err := c.load(ctx)
	if err != nil {
		return 0, err
	}
	foundIndex := -1
	for i, doc := range docs {
		if matches(doc, query) {
			foundIndex = i
			break
		}
	}
	if foundIndex == -1 {
		return 0, nil
	}
	docs = append(docs[:foundIndex], docs[foundIndex+1:]...)
	if err := c.persist(ctx, docs); err != nil {
		return 0, err
	}
	return 1, nil
}

// DeleteMany removes every record matching query and returns the
// deleted count.
func (c *Collection) DeleteMany(ctx context.Context, query Query) (int64, error) {
	docs, err := c.load(ctx)
	if err != nil {
		return 0, err
	}
	remaining := make([]Document, 0, len(docs))
	for _, doc := range docs {
		if matches(doc, query) {
			continue
		}
		remaining = append(remaining, doc)
	}
	deleted := int64(len(docs) - len(remaining))
	if err := c.persist(ctx, remaining); err != nil {
		return 0, err
	}
	return deleted, nil
}
