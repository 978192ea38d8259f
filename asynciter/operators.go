package asynciter

import "context"

// Tap calls fn for each item as a side effect and passes the item through.
func Tap[T any](source Iterator[T], fn func(context.Context, T)) Iterator[T] {
	return &tapIter[T]{source: source, fn: fn}
}

// Take yields at most n items of source.
func Take[T any](source Iterator[T], n int) Iterator[T] {
	return &takeIter[T]{source: source, remaining: max(n, 0)}
}

// Concat joins iterators sequentially.
// All items of the first iterator are yielded before the second, etc.
func Concat[T any](iters ...Iterator[T]) Iterator[T] {
	return &concatIter[T]{iters: iters}
}

type tapIter[T any] struct {
	source Iterator[T]
	fn     func(context.Context, T)
}

func (it *tapIter[T]) Next(ctx context.Context) (T, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return val, ok, err
	}
	it.fn(ctx, val)
	return val, true, nil
}

func (it *tapIter[T]) SizeHint() SizeHint { return HintOf(it.source) }

func (it *tapIter[T]) Close() error { return it.source.Close() }

type takeIter[T any] struct {
	source    Iterator[T]
	remaining int
}

func (it *takeIter[T]) Next(ctx context.Context) (T, bool, error) {
	if it.remaining <= 0 {
		var zero T
		return zero, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		it.remaining = 0
		return val, false, err
	}
	it.remaining--
	return val, true, nil
}

func (it *takeIter[T]) SizeHint() SizeHint {
	h := HintOf(it.source)
	h.Lower = min(h.Lower, it.remaining)
	if !h.Bounded || h.Upper > it.remaining {
		h.Upper = it.remaining
	}
	h.Bounded = true
	return h
}

func (it *takeIter[T]) Close() error { return it.source.Close() }

type concatIter[T any] struct {
	iters []Iterator[T]
	index int
}

func (it *concatIter[T]) Next(ctx context.Context) (T, bool, error) {
	for it.index < len(it.iters) {
		val, ok, err := it.iters[it.index].Next(ctx)
		if err != nil {
			return val, false, err
		}
		if ok {
			return val, true, nil
		}
		it.index++
	}
	var zero T
	return zero, false, nil
}

func (it *concatIter[T]) SizeHint() SizeHint {
	h := Exact(0)
	for _, sub := range it.iters[it.index:] {
		h = addHints(h, HintOf(sub))
	}
	return h
}

func (it *concatIter[T]) Close() error {
	var firstErr error
	for _, iter := range it.iters {
		if err := iter.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
