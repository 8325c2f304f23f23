package docstore

type updateOp int

const (
	opSet updateOp = iota
	opPush
	opPull
	opReplace
)

// Update is a closed description of a single-document mutation. Exactly
// one operator applies per update; construct it with Set, Push, Pull or
// Replace.
type Update struct {
	op     updateOp
	fields Document
	field  string
	value  any
}

// Set merges the given fields into the matched document.
func Set(fields Document) Update {
	return Update{op: opSet, fields: fields}
}

// Push appends value to the named sequence field, creating the
// sequence if the field is absent.
func Push(field string, value any) Update {
	return Update{op: opPush, field: field, value: value}
}

// Pull removes every element strictly equal to value from the named
// sequence field. Missing fields are a no-op.
func Pull(field string, value any) Update {
	return Update{op: opPull, field: field, value: value}
}

// Replace shallow-merges the given fields onto the matched document,
// the fallback behavior when no operator is requested.
func Replace(fields Document) Update {
	return Update{op: opReplace, fields: fields}
}

// apply returns a mutated copy of doc; the input is never modified.
func (u Update) apply(doc Document) Document {
	out := cloneDocument(doc)
	switch u.op {
	case opSet, opReplace:
		for k, v := range u.fields {
			out[k] = v
		}
	case opPush:
		seq, ok := out[u.field].([]any)
		if !ok {
			seq = []any{}
		}
		out[u.field] = append(seq, u.value)
	case opPull:
		existing, ok := out[u.field].([]any)
		if !ok {
			break
		}
		filtered := make([]any, 0, len(existing))
		for _, item := range existing {
			if valueEqual(item, u.value) {
				continue
			}
			filtered = append(filtered, item)
		}
		out[u.field] = filtered
	}
	return out
}
