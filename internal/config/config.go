// Package config defines service configuration structures and loading.
//
// Conventions:
// - Provide New() for defaults and Load(ctx) for layered loading.
// - External errors are wrapped via this package's sentinel kinds.
package config

import "time"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// StoreDSN selects the key-value store backend. "memory" keeps state
	// in process; anything else is passed to the libsql driver, e.g.
	// "file:./apex.db?cache=shared&mode=rwc" or a turso URL.
	StoreDSN string `koanf:"store_dsn"`

	// GeminiAPIKey authenticates against the Gemini API. Empty disables
	// the analysis and speech endpoints.
	GeminiAPIKey string `koanf:"gemini_api_key"`

	// GeminiModel is used for image and video analysis.
	GeminiModel string `koanf:"gemini_model"`

	// GeminiTTSModel is used for speech synthesis.
	GeminiTTSModel string `koanf:"gemini_tts_model"`

	// MaxMediaBytes caps decoded media payload size for analysis requests.
	MaxMediaBytes int `koanf:"max_media_bytes"`

	// AIConcurrency bounds inflight upstream AI calls.
	AIConcurrency int `koanf:"ai_concurrency"`

	// AITimeoutSeconds is the hard ceiling for a single analysis request.
	AITimeoutSeconds int `koanf:"ai_timeout_seconds"`

	// ReplayCacheSize bounds the analysis replay cache.
	ReplayCacheSize int `koanf:"replay_cache_size"`
}

// AITimeout returns the analysis request ceiling as a duration.
func (c *Config) AITimeout() time.Duration {
	return time.Duration(c.AITimeoutSeconds) * time.Second
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":9080",
		StoreDSN:         "file:./apex.db?cache=shared&mode=rwc",
		GeminiModel:      "gemini-2.5-pro",
		GeminiTTSModel:   "gemini-2.5-flash-preview-tts",
		MaxMediaBytes:    24 << 20, // keep under the inline-media ceiling upstream
		AIConcurrency:    4,
		AITimeoutSeconds: 60,
		ReplayCacheSize:  64,
	}
}
