// Package dataproc provides payload processing helpers: slice copying,
// presence validation, and JSON serialization.
// Implements: prd003-utilities R5.
package dataproc

import (
	"encoding/json"
	"reflect"
)

// Process returns a shallow copy of v when v is a slice: the result is a new
// slice of the same element type with a fresh backing array. All other values
// pass through unchanged.
func Process(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.IsNil() {
		return v
	}
	out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	reflect.Copy(out, rv)
	return out.Interface()
}

// ProcessSlice returns a shallow copy of s with a fresh backing array.
// A nil slice comes back nil.
func ProcessSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// Validate reports whether v is present: neither nil nor a typed nil
// (nil pointer, map, slice, channel, function, or interface).
func Validate(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return !rv.IsNil()
	default:
		return true
	}
}

// Serialize returns the JSON text representation of v. Encoding errors
// propagate unchanged.
func Serialize(v any) ([]byte, error) {
	return json.Marshal(v)
}
