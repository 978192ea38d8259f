package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Usage errors: the caller handed over something that cannot run.
const (
	// ErrCodeInvalidInput indicates an argument or setting is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required setting is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a value could not be parsed.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Runtime errors
const (
	// ErrCodeTimeout indicates an operation ran out of time.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeUnavailable indicates a dependency such as an exporter is unreachable.
	ErrCodeUnavailable ErrorCode = "UNAVAILABLE"
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeTimeout:     true,
	ErrCodeUnavailable: true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
