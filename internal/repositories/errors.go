package repositories

import "errors"

// ErrRecordNotFound is returned when no record matches the requested id and status.
var ErrRecordNotFound = errors.New("record not found")
