// Package pathutil provides thin passthroughs to the platform's path
// manipulation primitives. No semantics are added; behavior is exactly that
// of path/filepath.
// Implements: prd003-utilities R4.
package pathutil

import "path/filepath"

// Normalize returns the shortest equivalent of p by lexical processing.
func Normalize(p string) string {
	return filepath.Clean(p)
}

// Join joins any number of path elements into a single path, separating them
// with the platform separator. Empty elements are ignored.
func Join(parts ...string) string {
	return filepath.Join(parts...)
}

// Resolve returns the absolute representation of p, joining it with the
// current working directory when p is relative.
func Resolve(p string) (string, error) {
	return filepath.Abs(p)
}
