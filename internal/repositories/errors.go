package repositories

import "errors"

// ErrRecordNotFound is returned when a lookup, update or delete matches no row.
var ErrRecordNotFound = errors.New("record not found")
