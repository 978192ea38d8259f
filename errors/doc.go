// Package errors provides the structured error type used by asyncit for usage
// mistakes (invalid strategies, bad configuration) and runtime failures of the
// CLI. Element-level failures produced by user functions are never wrapped in
// AppError; they travel through iterators as result.Result values.
package errors
