package errs

import (
	"net/http"
)

// statusCode builds the default machine code for an HTTP status.
// http.StatusText(404) => "Not Found" => "NOT_FOUND"
func statusCode(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// This supports extra payload:
//   - code: optional custom code string (if nil, defaults to "BAD_REQUEST")
//   - errors: optional slice of field errors (validation errors)
//
// This is designed for validation and “you sent garbage” cases.
func NewBadRequestError(message string, override bool, code *string, errors []FieldError) *HTTPError {
	formattedCode := statusCode(http.StatusBadRequest)

	// If caller supplies custom code pointer, use it.
	// Note: this assumes the caller already formatted it the way they want.
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
	}
}

// NewMissingParameterError creates the 400 returned when a required
// query or path parameter is absent, e.g. "email parameter missing".
func NewMissingParameterError(field string) *HTTPError {
	code := "MISSING_PARAMETER"
	return NewBadRequestError(field+" parameter missing", true, &code, []FieldError{
		{Field: field, Error: "parameter missing"},
	})
}

// NewNotFoundError creates a 404 Not Found HTTPError.
//
// Supports optional custom code override similar to NewBadRequestError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := statusCode(http.StatusNotFound)

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewMethodNotAllowedError creates the 405 returned for any method outside a route's allow-list.
//
// The message is fixed; clients match on it.
func NewMethodNotAllowedError() *HTTPError {
	return &HTTPError{
		Code:    statusCode(http.StatusMethodNotAllowed),
		Message: "Method not allowed",
		Status:  http.StatusMethodNotAllowed,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// Note:
//   - message is the generic status text, not the real internal error message.
//   - callers usually replace it with WithMessage("Error creating the post").
//   - Override is false by default: you usually don't want to override generic 500s.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusInternalServerError),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}
