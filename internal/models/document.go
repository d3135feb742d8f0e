package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Document is a schemaless record stored in a collection. Every persisted
// document carries an "id" and a "createdAt" field assigned at insert time;
// everything else is caller-supplied.
type Document map[string]any

// ID returns the document id coerced to its string form.
func (d Document) ID() string {
	return CoerceString(d["id"])
}

// Clone returns a deep copy of the document by round-tripping through JSON,
// so callers can mutate the copy without aliasing stored state.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	b, _ := json.Marshal(d)
	var out Document
	_ = json.Unmarshal(b, &out)
	return out
}

// CoerceString normalizes a JSON value to its canonical string form. Id and
// filter matching go through this single helper: ids are strings in
// practice, but values that arrived as JSON numbers or booleans still match
// their string rendering. This is a deliberate normalization boundary, not
// per-call-site coercion.
func CoerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// StringSlice converts a JSON array value into a slice of coerced strings.
// Non-array values yield an empty slice.
func StringSlice(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, CoerceString(item))
		}
		return out
	default:
		return []string{}
	}
}
