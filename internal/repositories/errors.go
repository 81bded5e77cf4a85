package repositories

import "errors"

// ErrNotFound is returned when a row does not exist. Callers should match it
// with errors.Is; the wrapping message carries the entity and id.
var ErrNotFound = errors.New("not found")
