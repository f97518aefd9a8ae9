package ai

import "errors"

var (
	// ErrMissingAPIKey indicates the client was constructed without a key.
	ErrMissingAPIKey = errors.New("api key not configured")

	// ErrEmptyMedia indicates an analysis request without media bytes.
	ErrEmptyMedia = errors.New("media cannot be empty")

	// ErrEmptyText indicates a speech request without text.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrNoAudio indicates the model returned no audio data.
	ErrNoAudio = errors.New("no audio data in response")

	// ErrUpstream indicates the model call itself failed.
	ErrUpstream = errors.New("upstream model request failed")
)
