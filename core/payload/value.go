package payload

import (
	"strings"

	"tunebridge/core/utils"
)

// Value wraps a decoded JSON value (the result of json.Unmarshal into any)
// and exposes tolerant accessors. Every accessor treats a missing key, a nil
// value, or a type mismatch as "not there" and returns a zero value, so
// callers can chain lookups over adversarially nested payloads without
// guarding every step.
type Value struct {
	raw any
}

// From wraps a decoded JSON value.
func From(raw any) Value {
	return Value{raw: raw}
}

// Raw returns the underlying decoded value.
func (v Value) Raw() any {
	return v.raw
}

// IsNil reports whether the value is absent.
func (v Value) IsNil() bool {
	return v.raw == nil
}

// Object returns the value as a JSON object.
func (v Value) Object() (map[string]any, bool) {
	m, ok := v.raw.(map[string]any)
	return m, ok
}

// Array returns the value as a JSON array.
func (v Value) Array() ([]any, bool) {
	a, ok := v.raw.([]any)
	return a, ok
}

// IsObject reports whether the value is a JSON object.
func (v Value) IsObject() bool {
	_, ok := v.Object()
	return ok
}

// IsArray reports whether the value is a JSON array.
func (v Value) IsArray() bool {
	_, ok := v.Array()
	return ok
}

// Has reports whether the value is an object carrying the given key,
// regardless of what the key maps to.
func (v Value) Has(key string) bool {
	m, ok := v.Object()
	if !ok {
		return false
	}
	_, present := m[key]
	return present
}

// Field returns the named field of an object value. A non-object receiver or
// an absent key yields the nil Value.
func (v Value) Field(key string) Value {
	m, ok := v.Object()
	if !ok {
		return Value{}
	}
	return Value{raw: m[key]}
}

// Path walks a chain of object fields, stopping at the first miss.
func (v Value) Path(keys ...string) Value {
	cur := v
	for _, key := range keys {
		cur = cur.Field(key)
		if cur.IsNil() {
			return Value{}
		}
	}
	return cur
}

// At returns the i-th element of an array value.
func (v Value) At(i int) Value {
	a, ok := v.Array()
	if !ok || i < 0 || i >= len(a) {
		return Value{}
	}
	return Value{raw: a[i]}
}

// Len returns the element count of an array value, zero otherwise.
func (v Value) Len() int {
	a, ok := v.Array()
	if !ok {
		return 0
	}
	return len(a)
}

// Str returns the scalar value rendered as a trimmed string. Objects and
// arrays render as empty so containers never masquerade as display text.
func (v Value) Str() string {
	if v.IsNil() || v.IsObject() || v.IsArray() {
		return ""
	}
	return strings.TrimSpace(utils.ToString(v.raw))
}

// Int returns the scalar value as an int, zero when absent or unparsable.
func (v Value) Int() int {
	if v.IsNil() || v.IsObject() || v.IsArray() {
		return 0
	}
	return utils.ToInt(v.raw)
}

// IsEmpty reports whether the value carries no data: nil, an empty string,
// an empty object, or an empty array.
func (v Value) IsEmpty() bool {
	switch raw := v.raw.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(raw) == ""
	case map[string]any:
		return len(raw) == 0
	case []any:
		return len(raw) == 0
	default:
		return false
	}
}
