package videostore

import "errors"

var (
	// ErrVideoNotFound indicates no saved video exists with the given ID.
	ErrVideoNotFound = errors.New("video not found")

	// ErrEmptyName indicates a save attempt without a display name.
	ErrEmptyName = errors.New("video name cannot be empty")

	// ErrEmptyMedia indicates a save attempt without media bytes.
	ErrEmptyMedia = errors.New("video media cannot be empty")
)
