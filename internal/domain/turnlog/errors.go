package turnlog

import "errors"

// Sentinel kinds for aggregator errors.
var (
	ErrEmptyAthlete  = errors.New("athlete id must not be empty")
	ErrEmptySkill    = errors.New("skill id must not be empty")
	ErrInvalidEvent  = errors.New("unknown event")
	ErrNegativeCount = errors.New("count must not be negative")
	ErrInvalidWindow = errors.New("window must be at least one day")
)
