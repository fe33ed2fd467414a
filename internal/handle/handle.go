// Package handle packages a seq.Sequence behind a stable, callable handle so
// a foreign caller can pull values one at a time until exhaustion.
//
// The contract mirrors a C-style iterator export: the handle is two machine
// words (a call target and an opaque token), the caller owns the destination
// slot, and the wrapped sequence is released automatically on the call that
// observes exhaustion. There is no error channel and no dispose entry point;
// a caller that stops pulling before exhaustion leaks its sequence. This
// package is the narrow boundary where that by-convention ownership handoff
// lives — nothing outside it touches the live-handle table.
package handle

import (
	"io"

	"github.com/seqhost/seqhost/internal/seq"
)

// Handle is the by-value record handed to the foreign side.
//
// Call is always the shared trampoline for the handle's element type; it is
// carried in the record so both sides agree on a single call target
// regardless of which concrete sequence was wrapped. Token identifies the
// wrapped sequence in the live table.
type Handle[T any] struct {
	Call  func(Token, *T) bool
	Token Token
}

// Form wraps s behind a new Handle. Ownership of s moves into the live
// table; it stays there until the trampoline observes exhaustion. Form
// performs no I/O and cannot fail.
func Form[T any](s seq.Sequence[T]) Handle[T] {
	return Handle[T]{
		Call:  Next[T],
		Token: live.put(s),
	}
}

// Next is the trampoline: it advances the sequence behind tok by one step.
//
// If a value is available it is written to *dst and Next returns true. On
// exhaustion the sequence is removed from the live table, closed if it
// implements io.Closer, and Next returns false; *dst is left untouched. The
// caller must not call again with tok after a false return.
//
// Calling with a token that is stale, or whose sequence has a different
// element type than T, is out of contract. Neither is reported as an error;
// the type assertion below panics instead.
func Next[T any](tok Token, dst *T) bool {
	s := live.get(tok).(seq.Sequence[T])
	v, ok := s.Next()
	if !ok {
		live.remove(tok)
		if c, isCloser := s.(io.Closer); isCloser {
			_ = c.Close()
		}
		return false
	}
	*dst = v
	return true
}
