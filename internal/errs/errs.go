// Package errs defines the error types returned to API clients.
//
// Every failed request is answered from an *HTTPError: a status, a
// message the client may see, optional per-field errors and the
// underlying cause, which is logged and never serialized.
package errs
