// Package errs provides the typed errors shared by the ordering service.
//
// Every error type follows the same shape: a sentinel variable
// (ErrValueIsRequired, ErrObjectNotFound, ...), a struct carrying the details,
// constructors with and without a cause, and an Unwrap method returning the
// sentinel so callers can branch with errors.Is.
//
// The HTTP adapter maps the sentinels onto status codes:
//   - ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange: 400
//   - ErrUnauthorized: 401
//   - ErrForbidden: 403
//   - ErrObjectNotFound: 404
//   - ErrConflict: 409
package errs
