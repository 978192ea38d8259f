package asynciter

import (
	"context"
	"iter"
)

// FromSlice returns an iterator over items with an exact size hint.
func FromSlice[T any](items []T) Iterator[T] {
	return &sliceIter[T]{items: items}
}

// FromSeq adapts a range-over-func sequence. The sequence is started on the
// first Next; Close stops it.
func FromSeq[T any](seq iter.Seq[T]) Iterator[T] {
	return &seqIter[T]{seq: seq}
}

// FromNext adapts a plain next function that never suspends.
func FromNext[T any](next func() (T, bool)) Iterator[T] {
	return &nextIter[T]{next: next}
}

// FromFunc adapts a context-aware pull function.
func FromFunc[T any](next func(context.Context) (T, bool, error)) Iterator[T] {
	return &funcIter[T]{next: next}
}

// FromSyncSeq re-enters the asynchronous world from a materialized sequence.
func FromSyncSeq[T any](s *SyncSeq[T]) Iterator[T] {
	return &syncSeqIter[T]{seq: s}
}

// Empty returns an exhausted iterator.
func Empty[T any]() Iterator[T] {
	return &sliceIter[T]{}
}

// WithSizeHint makes it report hint. The hint is trusted as given: terminals
// stop pulling after hint.Upper items when it is bounded.
func WithSizeHint[T any](it Iterator[T], hint SizeHint) Iterator[T] {
	return &hintedIter[T]{Iterator: it, hint: hint}
}

// --- Source iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) SizeHint() SizeHint { return Exact(len(it.items) - it.index) }

func (it *sliceIter[T]) Close() error { return nil }

type seqIter[T any] struct {
	seq  iter.Seq[T]
	next func() (T, bool)
	stop func()
	done bool
}

func (it *seqIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.done {
		var zero T
		return zero, false, nil
	}
	if it.next == nil {
		it.next, it.stop = iter.Pull(it.seq)
	}
	val, ok := it.next()
	if !ok {
		it.done = true
		it.stop()
	}
	return val, ok, nil
}

func (it *seqIter[T]) Close() error {
	it.done = true
	if it.stop != nil {
		it.stop()
	}
	return nil
}

type nextIter[T any] struct {
	next func() (T, bool)
	done bool
}

func (it *nextIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.done {
		var zero T
		return zero, false, nil
	}
	val, ok := it.next()
	if !ok {
		it.done = true
	}
	return val, ok, nil
}

func (it *nextIter[T]) Close() error { return nil }

type funcIter[T any] struct {
	next func(context.Context) (T, bool, error)
	done bool
}

func (it *funcIter[T]) Next(ctx context.Context) (T, bool, error) {
	if it.done {
		var zero T
		return zero, false, nil
	}
	val, ok, err := it.next(ctx)
	if err == nil && !ok {
		it.done = true
	}
	return val, ok, err
}

func (it *funcIter[T]) Close() error { return nil }

type syncSeqIter[T any] struct {
	seq *SyncSeq[T]
}

func (it *syncSeqIter[T]) Next(_ context.Context) (T, bool, error) {
	val, ok := it.seq.Next()
	return val, ok, nil
}

func (it *syncSeqIter[T]) SizeHint() SizeHint { return Exact(it.seq.Len()) }

func (it *syncSeqIter[T]) Close() error { return nil }

type hintedIter[T any] struct {
	Iterator[T]
	hint SizeHint
}

func (it *hintedIter[T]) SizeHint() SizeHint { return it.hint }
