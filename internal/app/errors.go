package service

import (
	"errors"
	"fmt"

	"github.com/okian/apex/internal/domain/roster"
)

// Sentinel errors for the service layer.
var (
	ErrAlreadyStarted      = errors.New("service already started")
	ErrAnalyzerUnavailable = errors.New("analyzer not configured")

	// ErrNoActiveAthlete wraps the roster's not-found kind so the API
	// layer answers 404 without knowing about this package.
	ErrNoActiveAthlete = fmt.Errorf("no active athlete: %w", roster.ErrNotFound)
)
