package asynciter

import (
	"context"
	"iter"
	"slices"

	"github.com/kbukum/asyncit/future"
	"github.com/kbukum/asyncit/logger"
	"github.com/kbukum/asyncit/observability"
)

// maxPrealloc bounds the capacity reserved up front from a size hint.
const maxPrealloc = 4096

// drain materializes an iterator one pull per step. When the source reports
// a bounded size hint the drain pulls at most hint.Upper times, so items the
// source would yield past its own bound are never seen.
type drain[T any] struct {
	source    Iterator[T]
	operation string

	limit   int
	bounded bool
	items   []T
	pulls   int
	capped  bool
	started bool
	done    bool
	err     error

	obs *observability.Drain
	ctx context.Context
}

func newDrain[T any](source Iterator[T], operation string) *drain[T] {
	return &drain[T]{source: source, operation: operation}
}

func (d *drain[T]) start(ctx context.Context) {
	d.started = true
	hint := HintOf(d.source)
	d.limit, d.bounded = hint.Upper, hint.Bounded

	capacity := hint.Lower
	if d.bounded {
		capacity = d.limit
	}
	d.items = make([]T, 0, min(max(capacity, 0), maxPrealloc))
	d.ctx, d.obs = observability.StartDrain(ctx, d.operation)
}

// step performs at most one pull. It reports true once the drain is finished.
func (d *drain[T]) step(ctx context.Context) (bool, error) {
	if d.done {
		return true, d.err
	}
	if !d.started {
		d.start(ctx)
	}
	if err := ctx.Err(); err != nil {
		return true, d.finish(err)
	}
	if d.bounded && d.pulls >= d.limit {
		d.capped = true
		return true, d.finish(nil)
	}

	val, ok, err := d.source.Next(ctx)
	d.pulls++
	if err != nil {
		return true, d.finish(err)
	}
	if !ok {
		return true, d.finish(nil)
	}
	d.items = append(d.items, val)
	return false, nil
}

// run steps the drain until it finishes.
func (d *drain[T]) run(ctx context.Context) ([]T, error) {
	for {
		done, err := d.step(ctx)
		if err != nil {
			return nil, err
		}
		if done {
			return d.items, nil
		}
	}
}

func (d *drain[T]) finish(err error) error {
	d.done = true
	d.err = err
	log := logger.Get("asynciter").WithContext(d.ctx)
	if cerr := d.source.Close(); cerr != nil {
		log.Debug("close after drain failed", logger.ErrorFields(d.operation, cerr))
	}

	elapsed := d.obs.Finish(d.ctx, len(d.items), d.capped, err)
	fields := logger.Fields(
		logger.FieldOperation, d.operation,
		logger.FieldItems, len(d.items),
		logger.FieldCapped, d.capped,
	)
	if err != nil {
		d.items = nil
		log.Debug("drain aborted", logger.MergeWithDuration(fields, elapsed), logger.Fields(logger.FieldError, err.Error()))
		return err
	}
	log.Debug("drain finished", logger.MergeWithDuration(fields, elapsed))
	return nil
}

// --- Terminals ---

// Collect drains it into a SyncSeq, preserving arrival order, and closes it.
//
// A bounded size hint caps the number of pulls at its upper bound. An iterator
// that yields more items than it declared loses the surplus.
func Collect[T any](ctx context.Context, it Iterator[T]) (*SyncSeq[T], error) {
	items, err := newDrain(it, "asynciter.collect").run(ctx)
	if err != nil {
		return nil, err
	}
	return NewSyncSeq(items), nil
}

// CollectInto drains it like Collect and hands the items to build, which
// chooses the container:
//
//	set, err := asynciter.CollectInto(ctx, it, func(seq iter.Seq[string]) map[string]struct{} {
//	    m := map[string]struct{}{}
//	    for s := range seq {
//	        m[s] = struct{}{}
//	    }
//	    return m
//	})
func CollectInto[T, B any](ctx context.Context, it Iterator[T], build func(iter.Seq[T]) B) (B, error) {
	seq, err := Collect(ctx, it)
	if err != nil {
		var zero B
		return zero, err
	}
	return build(seq.All()), nil
}

// ToSlice drains it into a slice.
func ToSlice[T any](ctx context.Context, it Iterator[T]) ([]T, error) {
	return CollectInto(ctx, it, slices.Collect[T])
}

// ForEach pulls every item and calls fn on it, one at a time, in order.
// fn finishes before the next item is pulled.
func ForEach[T any](ctx context.Context, it Iterator[T], fn func(context.Context, T)) error {
	defer it.Close()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		val, ok, err := it.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		fn(ctx, val)
	}
}

// Reduce folds every item into an accumulator.
func Reduce[T, R any](ctx context.Context, it Iterator[T], init R, fn func(context.Context, R, T) R) (R, error) {
	acc := init
	err := ForEach(ctx, it, func(ctx context.Context, val T) {
		acc = fn(ctx, acc, val)
	})
	if err != nil {
		var zero R
		return zero, err
	}
	return acc, nil
}

// Drain returns a future that materializes it the way Collect does, one pull
// per poll. Awaiting it is equivalent to Collect.
func Drain[T any](it Iterator[T]) future.Future[*SyncSeq[T]] {
	return &drainFuture[T]{d: newDrain(it, "asynciter.collect")}
}

type drainFuture[T any] struct {
	d *drain[T]
}

func (f *drainFuture[T]) Poll(ctx context.Context) (*SyncSeq[T], bool, error) {
	return pollDrain(ctx, f.d)
}
