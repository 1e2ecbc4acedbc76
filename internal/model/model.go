// Package model defines the entities the API reads and writes
// and the request payloads bound from HTTP requests.
//
// Entities mirror the database rows (db tags) and the JSON
// projections sent to clients (json tags). Request payloads
// implement validation.Validatable.
package model
