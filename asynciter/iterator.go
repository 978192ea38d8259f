package asynciter

import (
	"context"
	"math"
)

// Iterator provides pull-based sequential access to a stream of values.
// Next may block; that is where the iterator suspends.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	// Exhaustion is terminal.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Sized is implemented by iterators that can estimate how many items remain.
type Sized interface {
	SizeHint() SizeHint
}

// SizeHint is a remaining-length estimate. Upper is meaningful only when
// Bounded is set.
type SizeHint struct {
	Lower   int
	Upper   int
	Bounded bool
}

// Unbounded is the default hint: at least zero items, no known maximum.
func Unbounded() SizeHint { return SizeHint{} }

// Exact is the hint of an iterator that knows its remaining length.
func Exact(n int) SizeHint { return SizeHint{Lower: n, Upper: n, Bounded: true} }

// HintOf returns the size hint of it, or Unbounded when it does not report one.
func HintOf[T any](it Iterator[T]) SizeHint {
	if s, ok := it.(Sized); ok {
		return s.SizeHint()
	}
	return Unbounded()
}

func addHints(a, b SizeHint) SizeHint {
	h := SizeHint{Lower: satAdd(a.Lower, b.Lower)}
	if a.Bounded && b.Bounded && a.Upper <= math.MaxInt-b.Upper {
		h.Upper = a.Upper + b.Upper
		h.Bounded = true
	}
	return h
}

func satAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
