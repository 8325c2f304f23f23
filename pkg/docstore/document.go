// Package docstore emulates a document database's query and mutation
// semantics on top of flat key-value storage. Each collection is one
// JSON array persisted under its collection name; every operation
// reads the whole array, mutates it in memory and writes it back.
package docstore

import (
	"encoding/json"
	"strings"

	pkgerrors "github.com/wishlistbuddy/wishlist-backend/pkg/errors"
)

// Document is one stored record, field name to value.
type Document = map[string]any

// Query filters records by exact field equality. Keys starting with
// "$" are reserved for operators and ignored by the matcher.
type Query = map[string]any

const operatorPrefix = "$"

// matches reports whether every non-operator key in query equals the
// document's corresponding field.
func matches(doc Document, query Query) bool {
	for key, want := range query {
		if strings.HasPrefix(key, operatorPrefix) {
			continue
		}
		if !valueEqual(doc[key], want) {
			return false
		}
	}
	return true
}

// valueEqual compares two field values under strict scalar equality.
// Numbers are normalized to float64 (the JSON round-trip form);
// composite values never compare equal, mirroring reference identity.
func valueEqual(a, b any) bool {
	a = normalizeScalar(a)
	b = normalizeScalar(b)
	switch a.(type) {
	case nil, bool, string, float64:
		return a == b
	}
	return false
}

func normalizeScalar(v any) any {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint64:
		return float64(n)
	case float32:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return v
		}
		return f
	}
	return v
}

func cloneDocument(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

// Encode converts a typed model into its stored document form.
func Encode(v any) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding document")
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding document")
	}
	return doc, nil
}

// Decode converts a stored document into the typed model out points to.
func Decode(doc Document, out any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decoding document")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeCorrupted, err, "decoding document")
	}
	return nil
}

// DecodeSlice converts a slice of stored documents into typed models.
func DecodeSlice[T any](docs []Document) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var item T
		if err := Decode(doc, &item); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
