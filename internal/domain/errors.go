package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the ride search system.
// Validation failures surface as statuses, not errors; these errors cover the
// infrastructure boundary where a status would hide a real fault.
var (
	// ErrStoreUnavailable indicates the ride store could not serve a query.
	ErrStoreUnavailable = errors.New("ride store unavailable")

	// ErrRideNotFound indicates a ride lookup by identifier found nothing.
	ErrRideNotFound = errors.New("ride not found")
)

// StoreError wraps a failure from a concrete ride store implementation,
// keeping the operation name for logs while staying matchable with
// errors.Is(err, ErrStoreUnavailable).
type StoreError struct {
	// Op is the store operation that failed (e.g., "searchExact")
	Op string

	// Err is the underlying driver error
	Err error
}

// NewStoreError creates a StoreError for the given operation.
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return fmt.Sprintf("ride store: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying error for errors.Is/As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is makes every StoreError match ErrStoreUnavailable.
func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}
