package asynciter

import (
	"fmt"
	"iter"
)

// SyncSeq is a materialized, ordered sequence consumed forward without
// suspending. It is produced by draining an Iterator and cannot be rewound.
type SyncSeq[T any] struct {
	items []T
	pos   int
}

// NewSyncSeq wraps items. The slice is not copied.
func NewSyncSeq[T any](items []T) *SyncSeq[T] {
	return &SyncSeq[T]{items: items}
}

// Next returns the next item, or false once the sequence is consumed.
func (s *SyncSeq[T]) Next() (T, bool) {
	if s.pos >= len(s.items) {
		var zero T
		return zero, false
	}
	val := s.items[s.pos]
	s.pos++
	return val, true
}

// Len returns the number of items not yet consumed.
func (s *SyncSeq[T]) Len() int { return len(s.items) - s.pos }

// SizeHint reports the exact remaining length.
func (s *SyncSeq[T]) SizeHint() SizeHint { return Exact(s.Len()) }

// All yields the remaining items, consuming each one as it is yielded.
func (s *SyncSeq[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			val, ok := s.Next()
			if !ok || !yield(val) {
				return
			}
		}
	}
}

// Filter yields the remaining items that satisfy keep. Rejected items are
// consumed too.
func (s *SyncSeq[T]) Filter(keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for val := range s.All() {
			if keep(val) && !yield(val) {
				return
			}
		}
	}
}

// Collect returns the remaining items in a new slice and consumes them.
func (s *SyncSeq[T]) Collect() []T {
	out := make([]T, s.Len())
	copy(out, s.items[s.pos:])
	s.pos = len(s.items)
	return out
}

func (s *SyncSeq[T]) String() string {
	return fmt.Sprintf("SyncSeq%v", s.items[s.pos:])
}
