// Package errs provides standardized error types for the delivery application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines one error type per failure class of the order workflow
// and its surrounding CRUD operations:
//   - ValidationError: malformed or missing input
//   - NotFoundError: a referenced entity does not exist
//   - ConflictError: a duplicate of an existing entity was submitted
//   - InvalidWindowError: a pickup time outside business hours
//   - CapacityError: the daily order quota is exhausted
//   - OrderingError: a completion date before the pickup date
//   - AuthError: the caller is not authenticated
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The sentinels let callers classify failures with errors.Is without
// depending on concrete types, which is how the HTTP layer maps errors
// to status codes.
package errs
