// Package turnlog maintains and queries an athlete's daily skill-rep log.
//
// One log partition exists per athlete in the key-value store. Entries are
// upserted, never appended: at most one entry exists per (day, skill) pair,
// and a count reduced to zero removes the entry entirely. Every upsert
// rewrites the athlete's whole partition; the log is small and local, so
// there is no delta write path.
//
// Calendar days are UTC. The clock is injectable for tests.
package turnlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/okian/apex/internal/adapters/kvstore"
	"github.com/okian/apex/internal/domain/model"
	"github.com/okian/apex/pkg/logger"
	"github.com/okian/apex/pkg/metrics"
)

const (
	logKeyPrefix = "turn_log:"
	dayFormat    = "2006-01-02"
)

// Service implements the turn log aggregator over a key-value store.
type Service struct {
	store kvstore.Store
	log   logger.Logger
	now   func() time.Time
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock sets the time source used to derive "today".
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs an aggregator backed by store.
func New(store kvstore.Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		log:   logger.Named("turnlog"),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Entries returns the athlete's full log in storage order. An absent
// partition reads as an empty log.
func (s *Service) Entries(ctx context.Context, athleteID string) ([]model.TurnEntry, error) {
	if athleteID == "" {
		return nil, ErrEmptyAthlete
	}

	raw, err := s.store.Get(ctx, logKeyPrefix+athleteID)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return []model.TurnEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load turn log: %w", err)
	}

	var entries []model.TurnEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode turn log: %w", err)
	}
	return entries, nil
}

// UpsertTurn sets today's rep count for one skill. A positive count creates
// or replaces the (today, skill) entry; zero removes it. Later calls for the
// same key win.
func (s *Service) UpsertTurn(ctx context.Context, athleteID, skillID string, event model.Event, count int) error {
	if strings.TrimSpace(skillID) == "" {
		return ErrEmptySkill
	}
	if !event.Valid() {
		return ErrInvalidEvent
	}
	if count < 0 {
		return ErrNegativeCount
	}

	entries, err := s.Entries(ctx, athleteID)
	if err != nil {
		return err
	}

	today := s.today()
	idx := -1
	for i, e := range entries {
		if e.Date == today && e.SkillID == skillID {
			idx = i
			break
		}
	}

	switch {
	case idx >= 0 && count > 0:
		entries[idx].Count = count
		entries[idx].Event = event
	case idx >= 0:
		entries = append(entries[:idx], entries[idx+1:]...)
		metrics.RecordTurnRemoved()
	case count > 0:
		entries = append(entries, model.TurnEntry{
			Date:    today,
			SkillID: skillID,
			Event:   event,
			Count:   count,
		})
	default:
		// Zero count for a key with no entry; nothing to do.
		return nil
	}

	if err := s.saveEntries(ctx, athleteID, entries); err != nil {
		return err
	}
	metrics.RecordTurnUpserted()
	return nil
}

// TurnsForToday returns skill id to count for every entry dated today.
// Pure read; an empty log yields an empty map.
func (s *Service) TurnsForToday(ctx context.Context, athleteID string) (map[string]int, error) {
	entries, err := s.Entries(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	today := s.today()
	out := make(map[string]int)
	for _, e := range entries {
		if e.Date == today {
			out[e.SkillID] = e.Count
		}
	}
	return out, nil
}

// AggregateForWindow sums counts per event across the trailing window of
// days calendar days ending today, inclusive. Entries with an unparsable
// date are silently excluded.
func (s *Service) AggregateForWindow(ctx context.Context, athleteID string, days int) (map[model.Event]int, error) {
	if days < 1 {
		return nil, ErrInvalidWindow
	}

	entries, err := s.Entries(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	end := s.day(s.now())
	start := end.AddDate(0, 0, -(days - 1))

	out := make(map[model.Event]int)
	for _, e := range entries {
		d, err := time.ParseInLocation(dayFormat, e.Date, time.UTC)
		if err != nil {
			continue
		}
		if d.Before(start) || d.After(end) {
			continue
		}
		out[e.Event] += e.Count
	}
	return out, nil
}

func (s *Service) saveEntries(ctx context.Context, athleteID string, entries []model.TurnEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode turn log: %w", err)
	}
	if err := s.store.Set(ctx, logKeyPrefix+athleteID, raw); err != nil {
		s.log.Error(ctx, "failed to persist turn log",
			logger.String("athleteID", athleteID),
			logger.Error(err),
		)
		return fmt.Errorf("save turn log: %w", err)
	}
	return nil
}

func (s *Service) today() string {
	return s.day(s.now()).Format(dayFormat)
}

func (s *Service) day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
