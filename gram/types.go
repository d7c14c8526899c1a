// SPDX-License-Identifier: MIT

// Package gram: domain types shared by the pair iterators and the dense
// builders. Errors live in errors.go per the global conventions.
package gram

// Evaluator is a pure pairwise similarity function (the "kernel").
// It must be stateless and side-effect free; when used in symmetric
// contexts it is additionally assumed to satisfy eval(a, b) == eval(b, a).
// Neither property is verified.
type Evaluator[T any] func(a, b T) float64

// Indexed couples an element with its zero-based position in the source
// sequence. Pair iterators yield Indexed values so that consumers can
// address matrix cells without re-deriving positions.
type Indexed[T any] struct {
	// Index is the element's zero-based position in its sequence.
	Index int
	// Value is the element itself.
	Value T
}
