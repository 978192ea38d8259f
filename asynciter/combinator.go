package asynciter

import (
	"context"

	"github.com/kbukum/asyncit/future"
	"github.com/kbukum/asyncit/result"
)

// Map returns a lazy iterator yielding fn applied to every item of source.
//
// The returned *MapIter is also a future.Future: awaiting it drains the whole
// chain and yields the outputs as a SyncSeq.
func Map[I, O any](source Iterator[I], fn func(context.Context, I) O) *MapIter[I, O] {
	return &MapIter[I, O]{source: source, fn: fn}
}

// TryMap is Map for fallible functions. Failures become result.Err items and
// do not stop the iteration; pair it with the partition package to classify
// them.
func TryMap[I, O any](source Iterator[I], fn func(context.Context, I) (O, error)) *MapIter[I, result.Result[O]] {
	return Map(source, func(ctx context.Context, in I) result.Result[O] {
		out, err := fn(ctx, in)
		return result.Of(out, err)
	})
}

// Filter returns a lazy iterator yielding the items of source that satisfy
// keep. keep receives a copy of each item; the item itself is yielded. For
// pointer or reference types keep must not mutate what it is given.
//
// The returned *FilterIter is also a future.Future, like MapIter.
func Filter[T any](source Iterator[T], keep func(context.Context, T) bool) *FilterIter[T] {
	return &FilterIter[T]{source: source, keep: keep}
}

// MapIter is the iterator returned by Map.
type MapIter[I, O any] struct {
	source Iterator[I]
	fn     func(context.Context, I) O
	drain  *drain[O]
}

var (
	_ Iterator[int]                = (*MapIter[int, int])(nil)
	_ future.Future[*SyncSeq[int]] = (*MapIter[int, int])(nil)
	_ Iterator[int]                = (*FilterIter[int])(nil)
	_ future.Future[*SyncSeq[int]] = (*FilterIter[int])(nil)
)

func (it *MapIter[I, O]) Next(ctx context.Context) (O, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		var zero O
		return zero, false, err
	}
	return it.fn(ctx, val), true, nil
}

// SizeHint passes the source's hint through; Map yields one output per input.
func (it *MapIter[I, O]) SizeHint() SizeHint { return HintOf(it.source) }

func (it *MapIter[I, O]) Close() error { return it.source.Close() }

// Poll advances the drain by one pull and reports the materialized outputs
// once the source is exhausted (or its size hint is reached).
func (it *MapIter[I, O]) Poll(ctx context.Context) (*SyncSeq[O], bool, error) {
	if it.drain == nil {
		it.drain = newDrain[O](it, "asynciter.map")
	}
	return pollDrain(ctx, it.drain)
}

// Await drains the chain through future.Await and returns its outputs.
func (it *MapIter[I, O]) Await(ctx context.Context) (*SyncSeq[O], error) {
	return future.Await[*SyncSeq[O]](ctx, it)
}

// FilterIter is the iterator returned by Filter.
type FilterIter[T any] struct {
	source Iterator[T]
	keep   func(context.Context, T) bool
	drain  *drain[T]
}

// Next pulls from the source until an item passes, the source is exhausted
// or ctx is done.
func (it *FilterIter[T]) Next(ctx context.Context) (T, bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, false, err
		}
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			var zero T
			return zero, false, err
		}
		if it.keep(ctx, val) {
			return val, true, nil
		}
	}
}

// SizeHint passes the source's hint through unchanged. Only its upper bound
// holds after filtering.
func (it *FilterIter[T]) SizeHint() SizeHint { return HintOf(it.source) }

func (it *FilterIter[T]) Close() error { return it.source.Close() }

// Poll advances the drain by one upstream pull of the filter.
func (it *FilterIter[T]) Poll(ctx context.Context) (*SyncSeq[T], bool, error) {
	if it.drain == nil {
		it.drain = newDrain[T](it, "asynciter.filter")
	}
	return pollDrain(ctx, it.drain)
}

// Await drains the chain through future.Await and returns the kept items.
func (it *FilterIter[T]) Await(ctx context.Context) (*SyncSeq[T], error) {
	return future.Await[*SyncSeq[T]](ctx, it)
}

func pollDrain[T any](ctx context.Context, d *drain[T]) (*SyncSeq[T], bool, error) {
	done, err := d.step(ctx)
	if err != nil {
		return nil, false, err
	}
	if !done {
		return nil, false, nil
	}
	return NewSyncSeq(d.items), true, nil
}
