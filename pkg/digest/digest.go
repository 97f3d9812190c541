// Package digest provides content hashing, composite-type validation, and
// JSON round-trip transformation.
// Implements: prd003-utilities R1 (hash), R2 (validate), R3 (transform).
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"reflect"
)

// Hash returns the hex-encoded SHA-256 digest of data. The result is always
// 64 lowercase hex characters and deterministic for a given input.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashString returns the hex-encoded SHA-256 digest of s.
func HashString(s string) string {
	return Hash([]byte(s))
}

// Validate reports whether v is a non-nil composite value: a map, slice,
// array, struct, or a non-nil pointer to one of those. Primitives and nil
// values are not composite.
func Validate(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		// Nil maps and slices are still typed nils, not composites.
		if (rv.Kind() == reflect.Map || rv.Kind() == reflect.Slice) && rv.IsNil() {
			return false
		}
		return true
	default:
		return false
	}
}

// Transform returns a deep copy of v produced by a JSON serialize/deserialize
// round trip. The copy shares no structure with the input. Values that cannot
// be serialized (functions, channels, cycles) propagate the encoder's error
// unchanged.
func Transform(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Clone returns a deep copy of v with its concrete type preserved, using the
// same JSON round trip as Transform.
func Clone[T any](v T) (T, error) {
	var out T
	raw, err := json.Marshal(v)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, err
	}
	return out, nil
}
