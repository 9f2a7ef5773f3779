package domain

import (
	"errors"
)

var (
	// ErrBaristaNotFound is returned when a referenced barista id does not exist.
	ErrBaristaNotFound = errors.New("BARISTA_NOT_FOUND")

	// ErrStoreUnavailable wraps connectivity and timeout failures from the
	// store so the boundary can degrade to a cached view instead of failing.
	ErrStoreUnavailable = errors.New("STORE_UNAVAILABLE")
)
