package seq

// FromSlice produces the elements of values in order.
func FromSlice[T any](values []T) Sequence[T] {
	i := 0
	return SequenceFunc[T](func() (T, bool) {
		if i >= len(values) {
			var zero T
			return zero, false
		}
		v := values[i]
		i++
		return v, true
	})
}

// Range produces start, start+1, ..., stop-1. Empty when stop <= start.
func Range(start, stop uint64) Sequence[uint64] {
	next := start
	return SequenceFunc[uint64](func() (uint64, bool) {
		if next >= stop {
			return 0, false
		}
		v := next
		next++
		return v, true
	})
}

// Counter produces start, start+1, ... without end.
func Counter(start uint64) Sequence[uint64] {
	next := start
	return SequenceFunc[uint64](func() (uint64, bool) {
		v := next
		next++
		return v, true
	})
}

// Map transforms each element of s with fn.
func Map[T, U any](s Sequence[T], fn func(T) U) Sequence[U] {
	return SequenceFunc[U](func() (U, bool) {
		v, ok := s.Next()
		if !ok {
			var zero U
			return zero, false
		}
		return fn(v), true
	})
}

// Take caps s at n elements.
func Take[T any](s Sequence[T], n int) Sequence[T] {
	taken := 0
	return SequenceFunc[T](func() (T, bool) {
		if taken >= n {
			var zero T
			return zero, false
		}
		taken++
		return s.Next()
	})
}
