// Package api is the REST client for the StuDeaf backend.
//
// # Overview
//
// Client is the transport-agnostic contract the services depend on.
// HTTPClient implements it over net/http: every request carries the JSON
// content headers and, when a session credential is stored, an
// "Authorization: Bearer <token>" header. A 401 from any endpoint clears
// the stored credential; the request itself is not retried.
//
// # Errors
//
// Failures are reported through sentinel errors matched with errors.Is:
//
//   - ErrUnavailable: the request never got an HTTP response (transport).
//   - ErrRejected:    any non-2xx response; the concrete error is *StatusError.
//   - ErrUnauthorized: a 401 response (also matches ErrRejected).
//   - ErrEmptyBody:   a 2xx response without a parseable payload.
package api
