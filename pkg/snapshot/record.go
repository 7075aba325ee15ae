package snapshot

import (
	"fmt"
	"strings"
)

// Record is one raw resource record from the snapshot tree. Field sets are
// family-specific and differ across producer versions, so access goes
// through tolerant extractors rather than typed structs.
type Record map[string]interface{}

// Str extracts a string field. Missing or mistyped fields yield "".
func (r Record) Str(key string) string {
	if v, ok := r[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// StrAny returns the first present string field from the given keys.
func (r Record) StrAny(keys ...string) string {
	for _, key := range keys {
		if s := r.Str(key); s != "" {
			return s
		}
	}
	return ""
}

// Int extracts an integer field, tolerating JSON's float64 decoding.
func (r Record) Int(key string, defaultVal int) int {
	if v, ok := r[key]; ok {
		switch val := v.(type) {
		case float64:
			return int(val)
		case int:
			return val
		case int64:
			return int(val)
		}
	}
	return defaultVal
}

// Bool extracts a boolean field.
func (r Record) Bool(key string, defaultVal bool) bool {
	if v, ok := r[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

// Nested extracts a nested value using dot notation, e.g. "origin.0.domain".
func (r Record) Nested(path string) interface{} {
	parts := strings.Split(path, ".")
	current := interface{}(map[string]interface{}(r))

	for _, part := range parts {
		switch node := current.(type) {
		case map[string]interface{}:
			current = node[part]
		case Record:
			current = node[part]
		case []interface{}:
			var idx int
			if _, err := fmt.Sscanf(part, "%d", &idx); err == nil && idx >= 0 && idx < len(node) {
				current = node[idx]
			} else {
				return nil
			}
		default:
			return nil
		}
	}
	return current
}

// Clone returns a shallow copy. Handlers that synthesize normalized records
// copy first so the snapshot itself stays untouched.
func (r Record) Clone() Record {
	out := make(Record, len(r)+3)
	for k, v := range r {
		out[k] = v
	}
	return out
}
