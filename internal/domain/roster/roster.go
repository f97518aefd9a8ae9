// Package roster manages athlete profiles and the active-athlete selection.
//
// State lives in the key-value store: the full roster under one key, the
// active athlete id under another. Every mutation is a read-modify-write of
// the whole roster; the active-athlete invariant (at most one, and always a
// roster member) is re-established synchronously inside each mutation and
// read, so no call ever observes a dangling active id.
package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/okian/apex/internal/adapters/kvstore"
	"github.com/okian/apex/internal/domain/model"
	"github.com/okian/apex/pkg/logger"
	"github.com/okian/apex/pkg/metrics"
)

// Storage keys.
const (
	rosterKey = "athletes"
	activeKey = "active_athlete"
)

// Level bounds for athlete profiles.
const (
	MinLevel = 1
	MaxLevel = 10
)

// Service implements the athlete directory over a key-value store.
type Service struct {
	store kvstore.Store
	log   logger.Logger
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

// New constructs a directory service backed by store.
func New(store kvstore.Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		log:   logger.Named("roster"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Athletes returns the roster in insertion order. An absent roster key reads
// as an empty roster.
func (s *Service) Athletes(ctx context.Context) ([]model.Athlete, error) {
	raw, err := s.store.Get(ctx, rosterKey)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return []model.Athlete{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	var athletes []model.Athlete
	if err := json.Unmarshal(raw, &athletes); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	return athletes, nil
}

// AddAthlete appends a new athlete with an empty custom-skill list. The first
// athlete added to an empty roster becomes the active athlete.
func (s *Service) AddAthlete(ctx context.Context, name string, level int) (model.Athlete, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Athlete{}, ErrEmptyName
	}
	if level < MinLevel || level > MaxLevel {
		return model.Athlete{}, ErrInvalidLevel
	}

	athletes, err := s.Athletes(ctx)
	if err != nil {
		return model.Athlete{}, err
	}

	athlete := model.Athlete{
		ID:           "athlete-" + uuid.NewString(),
		Name:         name,
		Level:        level,
		CustomSkills: []model.CustomSkill{},
	}
	athletes = append(athletes, athlete)

	if err := s.saveRoster(ctx, athletes); err != nil {
		return model.Athlete{}, err
	}
	if err := s.ensureActive(ctx, athletes); err != nil {
		return model.Athlete{}, err
	}
	return athlete, nil
}

// UpdateAthlete replaces the stored record matching athlete.ID wholesale.
// Returns ErrNotFound when no record matches.
func (s *Service) UpdateAthlete(ctx context.Context, athlete model.Athlete) error {
	if strings.TrimSpace(athlete.Name) == "" {
		return ErrEmptyName
	}
	if athlete.Level < MinLevel || athlete.Level > MaxLevel {
		return ErrInvalidLevel
	}

	athletes, err := s.Athletes(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range athletes {
		if athletes[i].ID == athlete.ID {
			athletes[i] = athlete
			found = true
			break
		}
	}
	if !found {
		return ErrNotFound
	}

	if err := s.saveRoster(ctx, athletes); err != nil {
		return err
	}
	return s.ensureActive(ctx, athletes)
}

// SetActiveAthlete marks id as the active athlete. The id should reference a
// roster member; a stale id is corrected on the next read or mutation.
func (s *Service) SetActiveAthlete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyID
	}
	if err := s.store.Set(ctx, activeKey, []byte(id)); err != nil {
		s.log.Error(ctx, "failed to persist active athlete", logger.Error(err))
		return fmt.Errorf("save active athlete: %w", err)
	}
	return nil
}

// ActiveAthlete returns the active athlete, or nil when the roster is empty.
// An invalid or missing active id self-heals to the first roster athlete.
func (s *Service) ActiveAthlete(ctx context.Context) (*model.Athlete, error) {
	athletes, err := s.Athletes(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.ensureActive(ctx, athletes); err != nil {
		return nil, err
	}
	if len(athletes) == 0 {
		return nil, nil
	}

	raw, err := s.store.Get(ctx, activeKey)
	if err != nil {
		return nil, fmt.Errorf("load active athlete: %w", err)
	}
	id := string(raw)
	for i := range athletes {
		if athletes[i].ID == id {
			return &athletes[i], nil
		}
	}
	// ensureActive just wrote a valid id; reaching here means a concurrent
	// writer raced us. Fall back deterministically.
	return &athletes[0], nil
}

// Logout clears the active-athlete designation without altering the roster.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, activeKey); err != nil {
		return fmt.Errorf("clear active athlete: %w", err)
	}
	return nil
}

// AddCustomSkill appends a custom skill to the athlete's list.
func (s *Service) AddCustomSkill(ctx context.Context, athleteID, name string, event model.Event) (model.CustomSkill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.CustomSkill{}, ErrEmptyName
	}
	if !event.Valid() {
		return model.CustomSkill{}, ErrInvalidEvent
	}

	athlete, err := s.athleteByID(ctx, athleteID)
	if err != nil {
		return model.CustomSkill{}, err
	}

	skill := model.CustomSkill{
		ID:       "custom-" + uuid.NewString(),
		Name:     name,
		Event:    event,
		IsCustom: true,
	}
	athlete.CustomSkills = append(athlete.CustomSkills, skill)

	if err := s.UpdateAthlete(ctx, athlete); err != nil {
		return model.CustomSkill{}, err
	}
	return skill, nil
}

// RemoveCustomSkill removes a custom skill from the athlete's list.
// Returns ErrNotFound when the athlete or the skill is unknown.
func (s *Service) RemoveCustomSkill(ctx context.Context, athleteID, skillID string) error {
	athlete, err := s.athleteByID(ctx, athleteID)
	if err != nil {
		return err
	}

	kept := athlete.CustomSkills[:0]
	found := false
	for _, cs := range athlete.CustomSkills {
		if cs.ID == skillID {
			found = true
			continue
		}
		kept = append(kept, cs)
	}
	if !found {
		return ErrNotFound
	}
	athlete.CustomSkills = kept

	return s.UpdateAthlete(ctx, athlete)
}

func (s *Service) athleteByID(ctx context.Context, id string) (model.Athlete, error) {
	athletes, err := s.Athletes(ctx)
	if err != nil {
		return model.Athlete{}, err
	}
	for _, a := range athletes {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Athlete{}, ErrNotFound
}

func (s *Service) saveRoster(ctx context.Context, athletes []model.Athlete) error {
	raw, err := json.Marshal(athletes)
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	if err := s.store.Set(ctx, rosterKey, raw); err != nil {
		s.log.Error(ctx, "failed to persist roster", logger.Error(err))
		return fmt.Errorf("save roster: %w", err)
	}
	metrics.UpdateRosterSize(len(athletes))
	return nil
}

// ensureActive re-establishes the active-athlete invariant against the given
// roster: an empty roster clears the designation, an invalid or missing
// active id falls back to the first athlete.
func (s *Service) ensureActive(ctx context.Context, athletes []model.Athlete) error {
	if len(athletes) == 0 {
		if err := s.store.Delete(ctx, activeKey); err != nil {
			return fmt.Errorf("clear active athlete: %w", err)
		}
		return nil
	}

	raw, err := s.store.Get(ctx, activeKey)
	if err == nil {
		id := string(raw)
		for _, a := range athletes {
			if a.ID == id {
				return nil
			}
		}
	} else if !errors.Is(err, kvstore.ErrKeyNotFound) {
		return fmt.Errorf("load active athlete: %w", err)
	}

	if err := s.store.Set(ctx, activeKey, []byte(athletes[0].ID)); err != nil {
		return fmt.Errorf("save active athlete: %w", err)
	}
	return nil
}
