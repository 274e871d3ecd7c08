package apperr

import "fmt"

// ValidationError means the caller sent missing or empty required input.
// It is always raised before any external call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// GenerationError wraps a failure from the external generation service:
// a non-retryable API response, or retries exhausted. It is surfaced as a
// single error, never alongside partial results.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
