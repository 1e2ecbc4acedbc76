// Package sqlerr classifies PostgreSQL driver errors.
//
// It maps SQLSTATE codes to a small set of categories and turns
// them into *errs.HTTPError values: constraint violations caused
// by client input become 400s with a readable message, everything
// else becomes a 500 that keeps the driver error as its cause.
package sqlerr
