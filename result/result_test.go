package result

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

var errInvalid = errors.New("invalid")

func slowDouble(ctx context.Context, n int) int {
	select {
	case <-time.After(time.Millisecond):
	case <-ctx.Done():
	}
	return n * 2
}

func TestOf(t *testing.T) {
	if r := Of(1, nil); !r.IsOk() || r.Value != 1 {
		t.Errorf("expected Ok(1), got %v", r)
	}
	if r := Of(1, errInvalid); !r.IsErr() || r.Value != 0 {
		t.Errorf("expected Err with zero value, got %v", r)
	}
}

func TestUnwrap(t *testing.T) {
	v, err := Ok("x").Unwrap()
	if err != nil || v != "x" {
		t.Errorf("got (%q, %v), want (x, nil)", v, err)
	}
	_, err = Err[string](errInvalid).Unwrap()
	if !errors.Is(err, errInvalid) {
		t.Errorf("expected errInvalid, got %v", err)
	}
}

func TestIsOkAnd(t *testing.T) {
	isOne := func(_ context.Context, v int) bool { return v == 1 }
	tests := []struct {
		name string
		in   Result[int]
		want bool
	}{
		{"ok match", Ok(1), true},
		{"ok no match", Ok(2), false},
		{"err", Err[int](errInvalid), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOkAnd(context.Background(), tt.in, isOne); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsOkAnd_SkipsFnOnErr(t *testing.T) {
	called := false
	IsOkAnd(context.Background(), Err[int](errInvalid), func(context.Context, int) bool {
		called = true
		return true
	})
	if called {
		t.Error("predicate must not run for a failure")
	}
}

func TestMap(t *testing.T) {
	got := Map(context.Background(), Ok(3), slowDouble)
	if got.Err != nil || got.Value != 6 {
		t.Errorf("got %v, want Ok(6)", got)
	}
	failed := Map(context.Background(), Err[int](errInvalid), slowDouble)
	if !errors.Is(failed.Err, errInvalid) {
		t.Errorf("expected error to pass through, got %v", failed)
	}
}

func TestAndThen(t *testing.T) {
	half := func(_ context.Context, n int) Result[int] {
		if n%2 != 0 {
			return Err[int](fmt.Errorf("%d is odd", n))
		}
		return Ok(n / 2)
	}
	if got := AndThen(context.Background(), Ok(4), half); got.Value != 2 || got.Err != nil {
		t.Errorf("got %v, want Ok(2)", got)
	}
	if got := AndThen(context.Background(), Ok(3), half); got.Err == nil {
		t.Error("expected odd error")
	}
	if got := AndThen(context.Background(), Err[int](errInvalid), half); !errors.Is(got.Err, errInvalid) {
		t.Errorf("expected original error, got %v", got)
	}
}

func TestMapErr(t *testing.T) {
	wrap := func(_ context.Context, err error) error { return fmt.Errorf("wrapped: %w", err) }
	got := MapErr(context.Background(), Err[int](errInvalid), wrap)
	if !errors.Is(got.Err, errInvalid) || got.Err.Error() != "wrapped: invalid" {
		t.Errorf("got %v", got)
	}
	if ok := MapErr(context.Background(), Ok(1), wrap); ok.Err != nil || ok.Value != 1 {
		t.Errorf("value should pass through, got %v", ok)
	}
}

func TestMapErr_NilKeepsOriginalError(t *testing.T) {
	drop := func(context.Context, error) error { return nil }
	got := MapErr(context.Background(), Err[int](errInvalid), drop)
	if !errors.Is(got.Err, errInvalid) {
		t.Errorf("a nil mapping should keep the original error, got %v", got)
	}
}

func TestErr_NilIsOk(t *testing.T) {
	if r := Err[int](nil); !r.IsOk() {
		t.Errorf("Err(nil) should be Ok, got %v", r)
	}
}

func TestOrElse(t *testing.T) {
	fallback := func(_ context.Context, _ error) Result[int] { return Ok(-1) }
	if got := OrElse(context.Background(), Err[int](errInvalid), fallback); got.Value != -1 || got.Err != nil {
		t.Errorf("got %v, want Ok(-1)", got)
	}
	if got := OrElse(context.Background(), Ok(5), fallback); got.Value != 5 {
		t.Errorf("got %v, want Ok(5)", got)
	}
}

func TestString(t *testing.T) {
	if s := Ok(1).String(); s != "Ok(1)" {
		t.Errorf("got %q", s)
	}
	if s := Err[int](errInvalid).String(); s != "Err(invalid)" {
		t.Errorf("got %q", s)
	}
}
