// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls store methods to interact
// with the data. Every error it returns is an *errs.HTTPError.
package service

import (
	"net/http"

	"github.com/deppfellow/blog-api/internal/errs"
	"github.com/deppfellow/blog-api/internal/sqlerr"
)

// storeError maps a store failure to an HTTP error. Client-caused database
// errors (constraint violations) keep their 400; anything else becomes a
// 500 carrying message, with the driver error kept only as the cause.
func storeError(err error, message string) *errs.HTTPError {
	httpErr := sqlerr.HandleError(err)
	if httpErr.Status == http.StatusInternalServerError {
		return httpErr.WithMessage(message)
	}
	return httpErr
}
