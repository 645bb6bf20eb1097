// Package domain holds the quote entity, its rules and the error taxonomy
// shared by every layer. Errors here describe business outcomes only; adapters
// translate them into HTTP statuses.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates no quote exists with the requested id.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the write would duplicate an existing quote.
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates caller input broke a catalog rule.
	ErrValidation = errors.New("validation failed")

	// ErrUnavailable indicates the repository could not serve the call.
	ErrUnavailable = errors.New("unavailable")

	// ErrInvariantViolation marks stored state outside its allowed range.
	// It is logged and corrected, never returned to callers.
	ErrInvariantViolation = errors.New("invariant violation")
)

// NotFoundError names the entity and id that could not be found.
type NotFoundError struct {
	Entity string
	ID     int64
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error for the entity and id.
func NewNotFoundError(entity string, id int64) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError describes a write rejected because equivalent data exists.
type ConflictError struct {
	Entity string
	Reason string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Entity, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NewConflictError creates a conflict error.
func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

// ValidationError identifies the offending field and why it was rejected.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error for a field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the rejected value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// UnavailableError reports that a backing service failed or timed out.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s unavailable: %s", e.Service, e.Reason)
	}

	return e.Service + " unavailable"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// InvariantViolationError records a stored value found outside its range and
// the value it was corrected to.
type InvariantViolationError struct {
	QuoteID   int64
	Field     string
	Value     int64
	Corrected int64
}

// Error implements the error interface.
func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("quote %d: %s=%d out of range, corrected to %d",
		e.QuoteID, e.Field, e.Value, e.Corrected)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *InvariantViolationError) Unwrap() error {
	return ErrInvariantViolation
}

// NewInvariantViolationError creates an invariant violation record.
func NewInvariantViolationError(quoteID int64, field string, value, corrected int64) error {
	return &InvariantViolationError{QuoteID: quoteID, Field: field, Value: value, Corrected: corrected}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsInvariantViolation checks if an error is an invariant violation.
func IsInvariantViolation(err error) bool {
	return errors.Is(err, ErrInvariantViolation)
}
