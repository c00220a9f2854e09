package httpapi

import "errors"

var (
	// ErrNilCatalog is returned when New is given a nil catalog.
	ErrNilCatalog = errors.New("catalog must not be nil")

	// ErrNilLogger is returned when WithLogger is given nil.
	ErrNilLogger = errors.New("logger must not be nil")

	// ErrNilEntryLister is returned when WithEntryLister is given nil.
	ErrNilEntryLister = errors.New("entry lister must not be nil")

	// ErrInvalidRateLimit is returned when WithRateLimit is given a non-positive rate or burst.
	ErrInvalidRateLimit = errors.New("rate limit and burst must be positive")
)
