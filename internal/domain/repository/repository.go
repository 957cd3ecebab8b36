package repository

import "errors"

// ErrNotFound is returned when a row does not exist or is not visible to the
// caller. Handlers translate it to 404 without distinguishing the two cases.
var ErrNotFound = errors.New("not found")
