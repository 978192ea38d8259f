// Package option provides an optional value and single-value helpers that
// apply a context-aware function when the value is present.
package option

import (
	"context"
	"fmt"
)

// Option holds a value or nothing. The zero Option is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns None for nil and Some(*p) otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool { return !o.ok }

// OrElse returns the value, or fallback when empty.
func (o Option[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// IsSomeAnd reports whether a value is present and satisfies fn.
func IsSomeAnd[T any](ctx context.Context, o Option[T], fn func(context.Context, T) bool) bool {
	if !o.ok {
		return false
	}
	return fn(ctx, o.value)
}

// IsNoneOr reports true for None, otherwise the result of fn.
func IsNoneOr[T any](ctx context.Context, o Option[T], fn func(context.Context, T) bool) bool {
	if !o.ok {
		return true
	}
	return fn(ctx, o.value)
}

// Map applies fn to a present value.
func Map[T, U any](ctx context.Context, o Option[T], fn func(context.Context, T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(fn(ctx, o.value))
}
