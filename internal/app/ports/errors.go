package ports

import "errors"

var (
	ErrNotFound = errors.New("environment not seeded")
	ErrConflict = errors.New("environment version conflict")
)
