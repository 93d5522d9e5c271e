// Package errs provides standardized error types for the canteen application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the common failure scenarios of the
// order lifecycle:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or out of its legal domain
//   - ObjectNotFoundError: an object cannot be found
//   - StateConflictError: an operation is illegal for the order's current status
//   - InvalidTransitionError: a status change is not in the legal transition table
//   - NotificationError: a best-effort notification could not be delivered
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Callers classify failures with errors.Is against the sentinels; the HTTP
// adapter relies on this to map domain errors to response codes.
package errs
