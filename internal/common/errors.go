// Package common defines sentinel errors shared by the storage, service and
// HTTP layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors for request payloads.
	ErrorValidation = errors.New("validation error")
	ErrorNoGeometry = errors.New("no geometry provided")

	// ErrInvalidGeometry is returned when the spatial store rejects a
	// GeoJSON value it was asked to persist.
	ErrInvalidGeometry = errors.New("invalid geometry")
)
