// Package apperr defines the error kinds surfaced by the learning engine.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an engine error so callers can decide whether to retry.
type Kind string

const (
	// KindValidation indicates malformed input rejected before any state mutation.
	KindValidation Kind = "VALIDATION"
	// KindNotFound indicates a referenced item, question or session does not exist.
	KindNotFound Kind = "NOT_FOUND"
	// KindStoreUnavailable indicates a transient store failure. The whole call is safe to retry.
	KindStoreUnavailable Kind = "STORE_UNAVAILABLE"
	// KindAugmentationUnavailable indicates the optional question augmentation service failed.
	KindAugmentationUnavailable Kind = "AUGMENTATION_UNAVAILABLE"
)

// Error is a classified engine error.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Validation creates a validation error.
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound creates a not-found error.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// StoreUnavailable wraps a store failure as retryable.
func StoreUnavailable(msg string, cause error) *Error {
	return &Error{Kind: KindStoreUnavailable, Message: msg, Cause: cause}
}

// AugmentationUnavailable wraps a failure of the question augmentation service.
func AugmentationUnavailable(msg string, cause error) *Error {
	return &Error{Kind: KindAugmentationUnavailable, Message: msg, Cause: cause}
}

// KindOf returns the kind of the first *Error in the chain, or "" if there is none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind anywhere in its chain.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Retryable reports whether the failed call can be retried as a whole.
func Retryable(err error) bool {
	return IsKind(err, KindStoreUnavailable)
}
