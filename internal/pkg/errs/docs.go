// Package errs provides the error taxonomy shared by the restaurant service.
//
// Every lifecycle operation fails with one of three caller-visible families:
//   - not found: ObjectNotFoundError (ErrObjectNotFound)
//   - conflict: StatusConflictError and ConcurrentUpdateError (ErrConflict)
//   - validation: ValueIsRequiredError, ValueIsInvalidError (ErrValueIsRequired, ErrValueIsInvalid)
//
// Each error type follows the same pattern:
//   - a sentinel error variable returned by Unwrap, so errors.Is works
//   - a struct type carrying the details of the failure
//   - constructors with and without a cause
//
// The transport layer classifies errors with errors.Is against the sentinels and
// never inspects messages.
package errs
