package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad strategy")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidInput, err.Code)
	}
	if err.Message != "bad strategy" {
		t.Errorf("expected message 'bad strategy', got %q", err.Message)
	}
	if err.Retryable {
		t.Error("INVALID_INPUT should not be retryable")
	}
}

func TestAppError_New_Retryable(t *testing.T) {
	err := New(ErrCodeTimeout, "timed out")
	if !err.Retryable {
		t.Error("TIMEOUT should be retryable")
	}
}

func TestAppError_InvalidInput_Success(t *testing.T) {
	err := InvalidInput("strategy", "unknown value 7")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}
	if err.Details["field"] != "strategy" {
		t.Errorf("expected field=strategy, got %v", err.Details["field"])
	}
	if !strings.Contains(err.Message, "unknown value 7") {
		t.Errorf("message should carry the reason, got %q", err.Message)
	}
}

func TestAppError_InvalidInput_EmptyField(t *testing.T) {
	err := InvalidInput("", "whatever")
	if _, ok := err.Details["field"]; ok {
		t.Error("expected no 'field' key in details when field is empty")
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	cause := context.DeadlineExceeded
	err := Timeout("drain").WithCause(cause)
	if !stderrors.Is(err, context.DeadlineExceeded) {
		t.Error("errors.Is should reach the cause")
	}
	if !strings.Contains(err.Error(), "cause:") {
		t.Errorf("Error() should mention the cause, got %q", err.Error())
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := &AppError{Code: ErrCodeInternal}
	err.WithDetail("k", 1)
	if err.Details["k"] != 1 {
		t.Errorf("expected k=1, got %v", err.Details["k"])
	}
}

func TestAppError_Error_Format(t *testing.T) {
	err := MissingField("demo.items")
	want := "MISSING_FIELD: Missing required field: demo.items"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestAppError_Constructors_Table(t *testing.T) {
	tests := []struct {
		name      string
		err       *AppError
		code      ErrorCode
		retryable bool
	}{
		{"InvalidInput", InvalidInput("f", "r"), ErrCodeInvalidInput, false},
		{"Validation", Validation("m"), ErrCodeInvalidInput, false},
		{"MissingField", MissingField("f"), ErrCodeMissingField, false},
		{"InvalidFormat", InvalidFormat("f", "int"), ErrCodeInvalidFormat, false},
		{"Timeout", Timeout("op"), ErrCodeTimeout, true},
		{"Unavailable", Unavailable("otlp"), ErrCodeUnavailable, true},
		{"Internal", Internal(fmt.Errorf("x")), ErrCodeInternal, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("code: got %s, want %s", tt.err.Code, tt.code)
			}
			if tt.err.Retryable != tt.retryable {
				t.Errorf("retryable: got %v, want %v", tt.err.Retryable, tt.retryable)
			}
		})
	}
}

func TestErrorCode_IsRetryableCode_Table(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want bool
	}{
		{ErrCodeTimeout, true},
		{ErrCodeUnavailable, true},
		{ErrCodeInvalidInput, false},
		{ErrCodeInternal, false},
		{ErrorCode("UNKNOWN"), false},
	}
	for _, tt := range tests {
		if got := IsRetryableCode(tt.code); got != tt.want {
			t.Errorf("IsRetryableCode(%s) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestAsAppError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", InvalidFormat("demo.delay", "duration"))
	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AppError in chain")
	}
	if appErr.Code != ErrCodeInvalidFormat {
		t.Errorf("got %s, want INVALID_FORMAT", appErr.Code)
	}
	if !HasCode(wrapped, ErrCodeInvalidFormat) {
		t.Error("HasCode should see through wrapping")
	}
	if _, ok := AsAppError(fmt.Errorf("plain")); ok {
		t.Error("plain error should not be an AppError")
	}
}

func TestAppError_Is_MatchesCode(t *testing.T) {
	err := fmt.Errorf("wrap: %w", InvalidInput("strategy", "bad"))
	if !stderrors.Is(err, &AppError{Code: ErrCodeInvalidInput}) {
		t.Error("errors.Is should match by code")
	}
	if stderrors.Is(err, &AppError{Code: ErrCodeTimeout}) {
		t.Error("errors.Is should not match a different code")
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(fmt.Errorf("w: %w", Unavailable("collector"))) {
		t.Error("Unavailable should be retryable")
	}
	if IsRetryable(stderrors.New("plain")) {
		t.Error("plain errors are not retryable")
	}
}
