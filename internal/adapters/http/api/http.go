// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/okian/apex/internal/adapters/ai"
	"github.com/okian/apex/internal/adapters/videostore"
	"github.com/okian/apex/internal/domain/roster"
	"github.com/okian/apex/internal/domain/turnlog"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	RosterDependencies
	SkillDependencies
	TurnDependencies
	AnalysisDependencies
	VideoDependencies
}

const (
	defaultMaxMediaBytes = 24 << 20
	defaultAITimeout     = 60 * time.Second
)

// Server wires HTTP routes for the business API.
type Server struct {
	athletesHandler *AthletesHandler
	skillsHandler   *SkillsHandler
	turnsHandler    *TurnsHandler
	analysisHandler *AnalysisHandler
	videosHandler   *VideosHandler
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
}

// ServerOption applies a configuration option to the server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	maxMediaBytes int64
	aiTimeout     time.Duration
}

// WithMaxMediaBytes bounds decoded media size for analysis uploads.
func WithMaxMediaBytes(n int64) ServerOption {
	return func(c *serverConfig) {
		if n > 0 {
			c.maxMediaBytes = n
		}
	}
}

// WithAITimeout bounds how long a single analysis request may run.
func WithAITimeout(d time.Duration) ServerOption {
	return func(c *serverConfig) {
		if d > 0 {
			c.aiTimeout = d
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...ServerOption) *Server {
	cfg := serverConfig{
		maxMediaBytes: defaultMaxMediaBytes,
		aiTimeout:     defaultAITimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Server{
		athletesHandler: NewAthletesHandler(deps),
		skillsHandler:   NewSkillsHandler(deps),
		turnsHandler:    NewTurnsHandler(deps),
		analysisHandler: NewAnalysisHandler(deps, cfg.maxMediaBytes, cfg.aiTimeout),
		videosHandler:   NewVideosHandler(deps, cfg.maxMediaBytes),
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/athletes/active", MetricsMiddleware(s.athletesHandler.HandleActive, "athletes_active"))
	mux.HandleFunc("/athletes/", MetricsMiddleware(s.athletesHandler.HandleAthleteByID, "athlete"))
	mux.HandleFunc("/athletes", MetricsMiddleware(s.athletesHandler.HandleAthletes, "athletes"))
	mux.HandleFunc("/skills/library", MetricsMiddleware(s.skillsHandler.HandleLibrary, "skills_library"))
	mux.HandleFunc("/skills", MetricsMiddleware(s.skillsHandler.HandleRelevant, "skills"))
	mux.HandleFunc("/turns/today", MetricsMiddleware(s.turnsHandler.HandleToday, "turns_today"))
	mux.HandleFunc("/turns/summary", MetricsMiddleware(s.turnsHandler.HandleSummary, "turns_summary"))
	mux.HandleFunc("/turns", MetricsMiddleware(s.turnsHandler.HandleUpsert, "turns"))
	mux.HandleFunc("/analysis/image", MetricsMiddleware(s.analysisHandler.HandleImage, "analysis_image"))
	mux.HandleFunc("/analysis/video", MetricsMiddleware(s.analysisHandler.HandleVideo, "analysis_video"))
	mux.HandleFunc("/speech", MetricsMiddleware(s.analysisHandler.HandleSpeech, "speech"))
	mux.HandleFunc("/videos/", MetricsMiddleware(s.videosHandler.HandleVideoByID, "video"))
	mux.HandleFunc("/videos", MetricsMiddleware(s.videosHandler.HandleVideos, "videos"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates domain sentinels to HTTP statuses. Validation
// errors map to 400, missing resources to 404, upstream model failures to
// 502, and anything else to 500.
func writeDomainError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, roster.ErrNotFound), errors.Is(err, videostore.ErrVideoNotFound):
		writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
	case errors.Is(err, roster.ErrEmptyName),
		errors.Is(err, roster.ErrEmptyID),
		errors.Is(err, roster.ErrInvalidLevel),
		errors.Is(err, roster.ErrInvalidEvent),
		errors.Is(err, turnlog.ErrEmptySkill),
		errors.Is(err, turnlog.ErrEmptyAthlete),
		errors.Is(err, turnlog.ErrInvalidEvent),
		errors.Is(err, turnlog.ErrNegativeCount),
		errors.Is(err, turnlog.ErrInvalidWindow),
		errors.Is(err, videostore.ErrEmptyName),
		errors.Is(err, videostore.ErrEmptyMedia):
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
	case errors.Is(err, ai.ErrUpstream), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusBadGateway, "upstream_error", NewKind(op, ErrUpstream))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}
