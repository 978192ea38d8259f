package future

import (
	"context"
	"errors"
)

// ErrClosed is returned by a channel-backed future whose channel closed
// before delivering a value.
var ErrClosed = errors.New("future: channel closed before a value was delivered")

// Future is a computation that is advanced by repeated polling.
// Poll returns (value, true, nil) once the computation has finished,
// (zero, false, nil) while it still has work left, or a non-nil error.
// A future must not be polled again after it reported ready or failed.
type Future[T any] interface {
	Poll(ctx context.Context) (T, bool, error)
}

// Await drives f to completion on the calling goroutine and returns its value.
//
// It is a busy drain: f is polled again immediately after every "not ready"
// answer. Nothing is parked and no wake-up is registered between attempts, so
// the only way out besides completion is an error from f or from ctx.
//
// Once ctx is done f is polled one last time with it, so a future holding
// resources sees the cancellation and releases them. Await then returns
// ctx.Err().
func Await[T any](ctx context.Context, f Future[T]) (T, error) {
	for {
		if err := ctx.Err(); err != nil {
			f.Poll(ctx)
			var zero T
			return zero, err
		}
		val, ready, err := f.Poll(ctx)
		if err != nil {
			var zero T
			return zero, err
		}
		if ready {
			return val, nil
		}
	}
}

// --- Constructors ---

// Ready returns a future that is complete on its first poll.
func Ready[T any](val T) Future[T] {
	return &readyFuture[T]{val: val}
}

// FromFunc returns a future that calls fn on its first poll and completes
// with whatever fn returns. fn is not called once ctx is done.
func FromFunc[T any](fn func(context.Context) (T, error)) Future[T] {
	return &funcFuture[T]{fn: fn}
}

// FromChan returns a future that completes with the first value received from
// ch. Each poll performs a non-blocking receive; a done ctx receives nothing.
func FromChan[T any](ch <-chan T) Future[T] {
	return &chanFuture[T]{ch: ch}
}

// Map returns a future that completes with fn applied to the value of f.
func Map[T, U any](f Future[T], fn func(T) U) Future[U] {
	return &mapFuture[T, U]{inner: f, fn: fn}
}

// --- Future implementations ---

type readyFuture[T any] struct {
	val T
}

func (f *readyFuture[T]) Poll(_ context.Context) (T, bool, error) {
	return f.val, true, nil
}

type funcFuture[T any] struct {
	fn func(context.Context) (T, error)
}

func (f *funcFuture[T]) Poll(ctx context.Context) (T, bool, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, false, err
	}
	val, err := f.fn(ctx)
	if err != nil {
		var zero T
		return zero, false, err
	}
	return val, true, nil
}

type chanFuture[T any] struct {
	ch <-chan T
}

func (f *chanFuture[T]) Poll(ctx context.Context) (T, bool, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, false, err
	}
	select {
	case val, open := <-f.ch:
		if !open {
			var zero T
			return zero, false, ErrClosed
		}
		return val, true, nil
	default:
		var zero T
		return zero, false, nil
	}
}

type mapFuture[T, U any] struct {
	inner Future[T]
	fn    func(T) U
}

func (f *mapFuture[T, U]) Poll(ctx context.Context) (U, bool, error) {
	val, ready, err := f.inner.Poll(ctx)
	if err != nil || !ready {
		var zero U
		return zero, false, err
	}
	return f.fn(val), true, nil
}
