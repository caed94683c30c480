// Package errs provides the typed errors used across the roadside service.
//
// Every error type follows the same pattern:
//   - a sentinel variable (e.g. ErrValueIsRequired) matched with errors.Is
//   - a struct carrying the details of the failure
//   - constructors with and without a cause
//   - Error() for the message and Unwrap() returning the sentinel
//
// Adapters translate the sentinels into transport statuses: ErrObjectNotFound
// becomes 404, the value errors become 400, ErrTransitionIsNotAllowed and
// ErrConcurrencyConflict become 409.
package errs
