package roster

import "errors"

// Sentinel kinds for directory errors.
var (
	ErrNotFound     = errors.New("athlete not found")
	ErrEmptyName    = errors.New("name must not be empty")
	ErrEmptyID      = errors.New("id must not be empty")
	ErrInvalidLevel = errors.New("level must be between 1 and 10")
	ErrInvalidEvent = errors.New("unknown event")
)
