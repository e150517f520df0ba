package repository

import "errors"

var (
	// ErrNotFound is returned when no supplier matches the id, or when
	// the id exists but belongs to a different company.
	ErrNotFound = errors.New("supplier not found")

	// ErrCompanyRequired is returned when an operation that must be
	// company-scoped is called without a company id.
	ErrCompanyRequired = errors.New("company id is required")

	// ErrUnknownCity is returned when a write references a city that is
	// not an active entry in the city reference set.
	ErrUnknownCity = errors.New("city does not reference an active city entry")
)
