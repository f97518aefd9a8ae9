package seedcheck

import "time"

// HTTP status code constants.
const (
	StatusOK        = 200
	StatusCreated   = 201
	StatusNoContent = 204
)

// Runner configuration constants.
const (
	HealthCheckTimeout   = 10 * time.Second
	PercentageMultiplier = 100
)
