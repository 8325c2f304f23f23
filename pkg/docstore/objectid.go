package docstore

import (
	"strings"

	"github.com/google/uuid"
)

// ObjectID returns an opaque unique identifier for a new record. IDs
// carry no ordering property; callers must not parse them.
func ObjectID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
