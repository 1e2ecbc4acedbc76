package errs

import (
	"net/http"
	"strings"
)

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "userId", "error": "is required" }
type FieldError struct {
	// Field is the field name/key the error relates to (e.g. "email").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error().
// It is never serialized directly: Response() renders the client-facing envelope.
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST"), used in logs.
//   - Message: human-friendly message sent to the client.
//   - Status: HTTP status code.
//   - Override: flag to let middleware decide whether to override the message.
//   - Errors: list of per-field errors (validation).
//   - Cause: the underlying error. Logged server-side, never sent.
type HTTPError struct {
	Code     string
	Message  string
	Status   int
	Override bool

	// Errors holds field-level validation errors, typically for request bodies.
	Errors []FieldError

	// Cause is the error that produced this one (driver error, bind error, ...).
	Cause error
}

// ErrorResponse is the JSON body written for every failed request.
//
// Most failures use the "error" key:
//
//	{ "error": "Error creating the post", "success": false }
//
// Method-not-allowed responses use the "message" key instead:
//
//	{ "message": "Method not allowed", "success": false }
type ErrorResponse struct {
	Error   string       `json:"error,omitempty"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
	Success bool         `json:"success"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
//
// It returns the Message, so printing the error shows what the client sees.
// Use Cause for the real reason.
func (e *HTTPError) Error() string {
	return e.Message
}

// Unwrap exposes Cause to errors.Is / errors.As.
func (e *HTTPError) Unwrap() error {
	return e.Cause
}

// Is customizes how errors.Is(...) treats HTTPError.
//
// This implementation returns true if `target` is also a *HTTPError.
// It does NOT compare Code/Status/etc.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a *copy* of this HTTPError with Message replaced.
//
// Useful if you have a base error template and want to customize message
// without mutating the original.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	cp := *e
	cp.Message = message
	return &cp
}

// WithCause returns a *copy* of this HTTPError carrying err as its cause.
func (e *HTTPError) WithCause(err error) *HTTPError {
	cp := *e
	cp.Cause = err
	return &cp
}

// Response renders the client-facing body for this error.
func (e *HTTPError) Response() ErrorResponse {
	if e.Status == http.StatusMethodNotAllowed {
		return ErrorResponse{Message: e.Message, Success: false}
	}

	return ErrorResponse{
		Error:   e.Message,
		Errors:  e.Errors,
		Success: false,
	}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
//
// Used to create stable machine-readable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
