// Package result provides a success-or-error value for carrying element-level
// failures through iterators, plus single-value helpers that apply a
// context-aware function to one branch.
package result

import (
	"context"
	"fmt"
)

// Result holds either a value or an error. A non-nil Err means failure.
type Result[T any] struct {
	Value T
	Err   error
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Err wraps a failure. Err(nil) is an Ok holding the zero value, since a
// Result fails exactly when Err is non-nil.
func Err[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

// Of builds a Result from a conventional (value, error) pair.
func Of[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool { return r.Err == nil }

// IsErr reports whether r holds an error.
func (r Result[T]) IsErr() bool { return r.Err != nil }

// Unwrap returns the conventional (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	if r.Err != nil {
		var zero T
		return zero, r.Err
	}
	return r.Value, nil
}

func (r Result[T]) String() string {
	if r.Err != nil {
		return fmt.Sprintf("Err(%v)", r.Err)
	}
	return fmt.Sprintf("Ok(%v)", r.Value)
}

// IsOkAnd reports whether r holds a value that satisfies fn. fn is not
// called for a failure.
func IsOkAnd[T any](ctx context.Context, r Result[T], fn func(context.Context, T) bool) bool {
	if r.Err != nil {
		return false
	}
	return fn(ctx, r.Value)
}

// Map applies fn to a held value; failures pass through untouched.
func Map[T, U any](ctx context.Context, r Result[T], fn func(context.Context, T) U) Result[U] {
	if r.Err != nil {
		return Err[U](r.Err)
	}
	return Ok(fn(ctx, r.Value))
}

// AndThen applies a fallible fn to a held value; failures pass through.
func AndThen[T, U any](ctx context.Context, r Result[T], fn func(context.Context, T) Result[U]) Result[U] {
	if r.Err != nil {
		return Err[U](r.Err)
	}
	return fn(ctx, r.Value)
}

// MapErr applies fn to a held error; values pass through. When fn returns
// nil the original error is kept, so MapErr never turns a failure into Ok.
func MapErr[T any](ctx context.Context, r Result[T], fn func(context.Context, error) error) Result[T] {
	if r.Err == nil {
		return r
	}
	if mapped := fn(ctx, r.Err); mapped != nil {
		return Err[T](mapped)
	}
	return r
}

// OrElse calls fn to recover from a held error; values pass through.
func OrElse[T any](ctx context.Context, r Result[T], fn func(context.Context, error) Result[T]) Result[T] {
	if r.Err == nil {
		return r
	}
	return fn(ctx, r.Err)
}
