// Package models defines the record types persisted by the storage facade
// and the validation guards applied at the point of entry. Callers should
// match sentinel errors with errors.Is.
package models

import "errors"

var (
	// ErrValidation wraps every input rejection produced by a Validate method.
	ErrValidation = errors.New("validation error")

	// ErrNotFound is returned by lookups that require the record to exist.
	// Deletes treat a missing record as a no-op and never return it.
	ErrNotFound = errors.New("not found")
)
