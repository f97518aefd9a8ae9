// Package videostore keeps analyzed videos for the session so athletes can
// revisit past analyses. Media bytes live only in memory and are released on
// delete.
package videostore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/okian/apex/internal/domain/model"
	"github.com/okian/apex/pkg/metrics"
)

// Store holds saved analysis videos, newest first.
type Store interface {
	// Save records a video with its analysis and returns the stored copy,
	// including the assigned ID.
	Save(ctx context.Context, video model.SavedVideo) (model.SavedVideo, error)

	// List returns saved video metadata, newest first, without media bytes.
	List(ctx context.Context) ([]model.SavedVideo, error)

	// Get returns the full video, including media bytes.
	Get(ctx context.Context, id string) (model.SavedVideo, error)

	// Delete removes a video and releases its media.
	Delete(ctx context.Context, id string) error

	// Clear removes all saved videos.
	Clear(ctx context.Context) error
}

type memoryStore struct {
	mu     sync.RWMutex
	videos []model.SavedVideo
}

// NewMemoryStore creates an in-memory video store.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Save(_ context.Context, video model.SavedVideo) (model.SavedVideo, error) {
	if video.Name == "" {
		return model.SavedVideo{}, ErrEmptyName
	}
	if len(video.Media) == 0 {
		return model.SavedVideo{}, ErrEmptyMedia
	}

	video.ID = "video-" + uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Newest first so listings mirror recency.
	s.videos = append([]model.SavedVideo{video}, s.videos...)
	metrics.UpdateSavedVideoCount(len(s.videos))
	return video, nil
}

func (s *memoryStore) List(_ context.Context) ([]model.SavedVideo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.SavedVideo, 0, len(s.videos))
	for _, v := range s.videos {
		v.Media = nil
		out = append(out, v)
	}
	return out, nil
}

func (s *memoryStore) Get(_ context.Context, id string) (model.SavedVideo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.videos {
		if v.ID == id {
			return v, nil
		}
	}
	return model.SavedVideo{}, ErrVideoNotFound
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, v := range s.videos {
		if v.ID == id {
			s.videos = append(s.videos[:i], s.videos[i+1:]...)
			metrics.UpdateSavedVideoCount(len(s.videos))
			return nil
		}
	}
	return ErrVideoNotFound
}

func (s *memoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.videos = nil
	metrics.UpdateSavedVideoCount(0)
	return nil
}
