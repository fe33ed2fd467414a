// Package seq defines the pull-based sequence abstraction the rest of the
// project exports across the guest boundary, plus a small set of producers
// used by the built-in generators and the tests.
package seq

import "io"

// Sequence produces values one at a time until exhaustion.
//
// Next returns the next element and true, or the zero value and false once
// the sequence is exhausted. A Sequence is single-threaded: callers must not
// invoke Next concurrently, and behavior after the first false is undefined.
//
// A Sequence that owns resources may additionally implement io.Closer; the
// handle layer closes it exactly once, on the call that observes exhaustion.
type Sequence[T any] interface {
	Next() (T, bool)
}

// SequenceFunc adapts a plain function to a Sequence.
type SequenceFunc[T any] func() (T, bool)

func (f SequenceFunc[T]) Next() (T, bool) { return f() }

// Collect drains s to exhaustion and returns all produced values in order.
// It never returns for an infinite sequence.
func Collect[T any](s Sequence[T]) []T {
	var out []T
	for {
		v, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

type closeSequence[T any] struct {
	inner Sequence[T]
	close func() error
}

func (c *closeSequence[T]) Next() (T, bool) { return c.inner.Next() }

func (c *closeSequence[T]) Close() error { return c.close() }

// WithClose attaches a release hook to s. The hook runs when the owning
// handle observes exhaustion, not when s itself runs dry.
func WithClose[T any](s Sequence[T], close func() error) Sequence[T] {
	return &closeSequence[T]{inner: s, close: close}
}

// Compile-time interface compliance check
var _ io.Closer = (*closeSequence[int])(nil)
