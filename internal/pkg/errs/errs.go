package errs

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for each failure class. Callers classify errors with
// errors.Is against these values.
var (
	ErrValidation       = errors.New("validation fails")
	ErrNotFound         = errors.New("object not found")
	ErrConflict         = errors.New("object already exists")
	ErrInvalidWindow    = errors.New("start date is outside business hours")
	ErrCapacityExceeded = errors.New("daily order capacity exceeded")
	ErrOrdering         = errors.New("date not permitted")
	ErrAuth             = errors.New("authentication required")
)

// sanitize strips newlines from values interpolated into error messages.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ValidationError reports malformed or missing input.
type ValidationError struct {
	ParamName string
	Cause     error
}

func NewValidationError(paramName string) *ValidationError {
	return &ValidationError{ParamName: paramName}
}

func NewValidationErrorWithCause(paramName string, cause error) *ValidationError {
	return &ValidationError{ParamName: paramName, Cause: cause}
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValidation, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, e.ParamName)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NotFoundError reports a missing referenced entity.
type NotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewNotFoundError(paramName string, id any) *NotFoundError {
	return &NotFoundError{ParamName: paramName, ID: id}
}

func NewNotFoundErrorWithCause(paramName string, id any, cause error) *NotFoundError {
	return &NotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *NotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (cause: %s)", ErrNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrNotFound, e.ParamName, sanitize(e.ID))
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ConflictError reports a duplicate submission of an existing entity.
type ConflictError struct {
	ParamName string
}

func NewConflictError(paramName string) *ConflictError {
	return &ConflictError{ParamName: paramName}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists", e.ParamName)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// InvalidWindowError reports a pickup hour outside the business window.
// Min and Max are both inclusive.
type InvalidWindowError struct {
	Hour int
	Min  int
	Max  int
}

func NewInvalidWindowError(hour, minHour, maxHour int) *InvalidWindowError {
	return &InvalidWindowError{Hour: hour, Min: minHour, Max: maxHour}
}

func (e *InvalidWindowError) Error() string {
	return fmt.Sprintf("%s: hour %d is not between %d and %d", ErrInvalidWindow, e.Hour, e.Min, e.Max)
}

func (e *InvalidWindowError) Unwrap() error {
	return ErrInvalidWindow
}

// CapacityError reports that the daily order quota for a calendar day
// is already exhausted.
type CapacityError struct {
	Day   time.Time
	Limit int
}

func NewCapacityError(day time.Time, limit int) *CapacityError {
	return &CapacityError{Day: day, Limit: limit}
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: %d orders already scheduled on %s",
		ErrCapacityExceeded, e.Limit, e.Day.Format("2006-01-02"))
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}

// OrderingError reports a completion timestamp earlier than the pickup
// timestamp.
type OrderingError struct {
	StartDate time.Time
	EndDate   time.Time
}

func NewOrderingError(startDate, endDate time.Time) *OrderingError {
	return &OrderingError{StartDate: startDate, EndDate: endDate}
}

func (e *OrderingError) Error() string {
	return fmt.Sprintf("%s: end date %s is before start date %s",
		ErrOrdering, e.EndDate.Format(time.RFC3339), e.StartDate.Format(time.RFC3339))
}

func (e *OrderingError) Unwrap() error {
	return ErrOrdering
}

// AuthError reports a request without an authenticated caller identity.
type AuthError struct {
	Cause error
}

func NewAuthError() *AuthError {
	return &AuthError{}
}

func NewAuthErrorWithCause(cause error) *AuthError {
	return &AuthError{Cause: cause}
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", ErrAuth, e.Cause)
	}
	return ErrAuth.Error()
}

func (e *AuthError) Unwrap() error {
	return ErrAuth
}
