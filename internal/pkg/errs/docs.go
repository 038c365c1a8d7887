// Package errs provides the typed errors shared by the FreshCart order service.
//
// Every error type follows the same shape:
//   - a sentinel variable (e.g. ErrValueIsRequired) usable with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - NewXxxError and NewXxxErrorWithCause constructors
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The types map onto the lifecycle error taxonomy:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation
//   - ObjectNotFoundError: the referenced aggregate does not exist
//   - InvalidStateError: the current lifecycle state forbids the operation
//   - VersionIsInvalidError: a conditional write lost an optimistic concurrency race
//
// Kind turns any of them into a short machine-checkable code for API clients.
package errs
