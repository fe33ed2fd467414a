package seq

import (
	"errors"
	"iter"

	go_iterators "github.com/lezhnev74/go-iterators"
)

type pullSequence[T any] struct {
	next func() (T, bool)
	stop func()
}

func (p *pullSequence[T]) Next() (T, bool) { return p.next() }

func (p *pullSequence[T]) Close() error {
	p.stop()
	return nil
}

// FromSeq bridges a stdlib push iterator into a pull Sequence. The returned
// Sequence implements io.Closer so the underlying coroutine is released even
// when the consumer never reaches exhaustion.
func FromSeq[T any](s iter.Seq[T]) Sequence[T] {
	next, stop := iter.Pull(s)
	return &pullSequence[T]{next: next, stop: stop}
}

type iteratorSequence[T any] struct {
	inner go_iterators.Iterator[T]
}

func (a *iteratorSequence[T]) Next() (T, bool) {
	v, err := a.inner.Next()
	if err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

func (a *iteratorSequence[T]) Close() error {
	err := a.inner.Close()
	if errors.Is(err, go_iterators.ClosedIterator) {
		return nil
	}
	return err
}

// FromIterator adapts a go-iterators pull iterator. Its error channel
// collapses onto the exhaustion signal: any error, EmptyIterator included,
// ends the sequence.
func FromIterator[T any](it go_iterators.Iterator[T]) Sequence[T] {
	return &iteratorSequence[T]{inner: it}
}
