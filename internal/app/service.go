// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/okian/apex/internal/adapters/ai"
	"github.com/okian/apex/internal/adapters/kvstore"
	"github.com/okian/apex/internal/adapters/videostore"
	"github.com/okian/apex/internal/domain/model"
	"github.com/okian/apex/internal/domain/replay"
	"github.com/okian/apex/internal/domain/roster"
	"github.com/okian/apex/internal/domain/skills"
	"github.com/okian/apex/internal/domain/turnlog"
	"github.com/okian/apex/pkg/logger"
)

// Service implements the API dependencies for the training tracker.
type Service struct {
	mu sync.RWMutex

	// Core components
	store    kvstore.Store
	roster   *roster.Service
	turns    *turnlog.Service
	videos   videostore.Store
	analyzer ai.Analyzer
	cache    replay.Cache

	// Configuration
	replayCacheSize int
	clock           func() time.Time

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the key-value store backing athlete and turn data.
func WithStore(store kvstore.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithAnalyzer sets the AI analyzer. Without one, analysis endpoints fail
// with a configuration error.
func WithAnalyzer(analyzer ai.Analyzer) Option {
	return func(s *Service) {
		if analyzer != nil {
			s.analyzer = analyzer
		}
	}
}

// WithVideoStore sets the saved-video store.
func WithVideoStore(store videostore.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.videos = store
		}
	}
}

// WithReplayCacheSize bounds the analysis replay cache.
func WithReplayCacheSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.replayCacheSize = size
		}
	}
}

// WithClock overrides the time source.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		replayCacheSize: 64,
		clock:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return ErrAlreadyStarted
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	if s.store == nil {
		s.store = kvstore.NewMemoryStore()
	}
	if s.videos == nil {
		s.videos = videostore.NewMemoryStore()
	}
	s.cache = replay.NewInMemoryCache(replay.WithMaxSize(s.replayCacheSize))
	s.roster = roster.New(s.store, roster.WithLogger(s.logger.Named("roster")))
	s.turns = turnlog.New(s.store,
		turnlog.WithLogger(s.logger.Named("turnlog")),
		turnlog.WithClock(s.clock),
	)

	s.started = true
	s.logger.Info(ctx, "service started")
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn(context.Background(), "store close failed", logger.Error(err))
	}
	s.started = false
	s.logger.Info(context.Background(), "service stopped")
}

// Athletes returns the full roster.
func (s *Service) Athletes(ctx context.Context) ([]model.Athlete, error) {
	return s.roster.Athletes(ctx)
}

// AddAthlete creates a roster entry. The first athlete becomes active.
func (s *Service) AddAthlete(ctx context.Context, name string, level int) (model.Athlete, error) {
	return s.roster.AddAthlete(ctx, name, level)
}

// UpdateAthlete replaces an existing athlete wholesale.
func (s *Service) UpdateAthlete(ctx context.Context, athlete model.Athlete) error {
	return s.roster.UpdateAthlete(ctx, athlete)
}

// ActiveAthlete returns the current selection, self-healing stale state.
func (s *Service) ActiveAthlete(ctx context.Context) (*model.Athlete, error) {
	return s.roster.ActiveAthlete(ctx)
}

// SetActiveAthlete switches the current selection.
func (s *Service) SetActiveAthlete(ctx context.Context, id string) error {
	return s.roster.SetActiveAthlete(ctx, id)
}

// Logout clears the active selection without touching the roster.
func (s *Service) Logout(ctx context.Context) error {
	return s.roster.Logout(ctx)
}

// AddCustomSkill attaches an athlete-owned skill.
func (s *Service) AddCustomSkill(ctx context.Context, athleteID, name string, event model.Event) (model.CustomSkill, error) {
	return s.roster.AddCustomSkill(ctx, athleteID, name, event)
}

// RemoveCustomSkill detaches an athlete-owned skill.
func (s *Service) RemoveCustomSkill(ctx context.Context, athleteID, skillID string) error {
	return s.roster.RemoveCustomSkill(ctx, athleteID, skillID)
}

// RelevantSkills resolves the pick list for an athlete on an event. An empty
// athleteID means the active athlete.
func (s *Service) RelevantSkills(ctx context.Context, athleteID string, event model.Event) ([]skills.Variant, error) {
	athlete, err := s.resolveAthlete(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	return skills.RelevantFromLibrary(event, athlete.Level, athlete.CustomSkills), nil
}

// SkillLibrary returns the full predefined catalog.
func (s *Service) SkillLibrary(_ context.Context) []model.Skill {
	return skills.Library()
}

// UpsertTurn sets today's rep total for a skill. An empty athleteID means
// the active athlete.
func (s *Service) UpsertTurn(ctx context.Context, athleteID, skillID string, event model.Event, count int) error {
	athlete, err := s.resolveAthlete(ctx, athleteID)
	if err != nil {
		return err
	}
	return s.turns.UpsertTurn(ctx, athlete.ID, skillID, event, count)
}

// TurnsForToday returns today's per-skill counts.
func (s *Service) TurnsForToday(ctx context.Context, athleteID string) (map[string]int, error) {
	athlete, err := s.resolveAthlete(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	return s.turns.TurnsForToday(ctx, athlete.ID)
}

// AggregateForWindow totals reps per event over a trailing window of days.
func (s *Service) AggregateForWindow(ctx context.Context, athleteID string, days int) (map[model.Event]int, error) {
	athlete, err := s.resolveAthlete(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	return s.turns.AggregateForWindow(ctx, athlete.ID, days)
}

// AnalyzeImage proxies a still-frame feedback request to the model.
func (s *Service) AnalyzeImage(ctx context.Context, media []byte, mimeType string) (string, error) {
	if s.analyzer == nil {
		return "", ErrAnalyzerUnavailable
	}
	return s.analyzer.AnalyzeImage(ctx, media, mimeType)
}

// AnalyzeVideo proxies a routine analysis request, answering identical
// resubmissions from the replay cache.
func (s *Service) AnalyzeVideo(ctx context.Context, media []byte, mimeType, prompt string) (model.AnalysisResult, error) {
	if s.analyzer == nil {
		return model.AnalysisResult{}, ErrAnalyzerUnavailable
	}

	key := replay.Key(media, prompt)
	if result, ok := s.cache.Get(ctx, key); ok {
		return result, nil
	}

	result, err := s.analyzer.AnalyzeVideo(ctx, media, mimeType, prompt)
	if err != nil {
		return model.AnalysisResult{}, err
	}
	s.cache.Put(ctx, key, result)
	return result, nil
}

// Synthesize converts feedback text to speech.
func (s *Service) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if s.analyzer == nil {
		return nil, ErrAnalyzerUnavailable
	}
	return s.analyzer.Synthesize(ctx, text)
}

// SaveVideo stores an analyzed routine, stamping the save time.
func (s *Service) SaveVideo(ctx context.Context, video model.SavedVideo) (model.SavedVideo, error) {
	video.Date = s.clock().UTC().Format(time.RFC3339)
	return s.videos.Save(ctx, video)
}

// ListVideos returns saved video metadata, newest first.
func (s *Service) ListVideos(ctx context.Context) ([]model.SavedVideo, error) {
	return s.videos.List(ctx)
}

// GetVideo returns a saved video including media bytes.
func (s *Service) GetVideo(ctx context.Context, id string) (model.SavedVideo, error) {
	return s.videos.Get(ctx, id)
}

// DeleteVideo removes a saved video and releases its media.
func (s *Service) DeleteVideo(ctx context.Context, id string) error {
	return s.videos.Delete(ctx, id)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":         s.started,
		"replayCacheSize": s.replayCacheSize,
	}

	if s.started {
		if athletes, err := s.roster.Athletes(ctx); err == nil {
			stats["athletes"] = len(athletes)
		}
		if videos, err := s.videos.List(ctx); err == nil {
			stats["savedVideos"] = len(videos)
		}
		stats["replayCached"] = s.cache.Size()
		stats["analyzerConfigured"] = s.analyzer != nil
	}

	return stats
}

// resolveAthlete finds the athlete by ID, or the active athlete when id is
// empty.
func (s *Service) resolveAthlete(ctx context.Context, id string) (model.Athlete, error) {
	if id == "" {
		active, err := s.roster.ActiveAthlete(ctx)
		if err != nil {
			return model.Athlete{}, err
		}
		if active == nil {
			return model.Athlete{}, ErrNoActiveAthlete
		}
		return *active, nil
	}

	athletes, err := s.roster.Athletes(ctx)
	if err != nil {
		return model.Athlete{}, err
	}
	for _, a := range athletes {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Athlete{}, roster.ErrNotFound
}
