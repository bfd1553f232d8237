package repository

import "errors"

// ErrNotFound is returned when a query matches no rows, including lookups
// filtered out by organization scoping.
var ErrNotFound = errors.New("record not found")
