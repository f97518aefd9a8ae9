// Package replay caches video-analysis results by media digest so that an
// identical resubmission within a session does not trigger a second upstream
// model call.
package replay

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/okian/apex/internal/domain/model"
	"github.com/okian/apex/pkg/metrics"
)

// Cache stores analysis results keyed by submission digest.
type Cache interface {
	// Get returns the cached result for key, if present.
	Get(ctx context.Context, key string) (model.AnalysisResult, bool)

	// Put records the result for key, evicting the oldest entry when full.
	Put(ctx context.Context, key string, result model.AnalysisResult)

	// Size returns the current number of cached results.
	Size() int
}

// Key derives the cache key for a submission: the hex SHA-256 of the media
// bytes and the prompt. Different prompts over the same media analyze
// differently and must not collide.
func Key(media []byte, prompt string) string {
	h := sha256.New()
	h.Write(media)
	h.Write([]byte(prompt))
	return hex.EncodeToString(h.Sum(nil))
}

const defaultMaxSize = 64

// inMemoryCache implements Cache with a map plus insertion-ordered keys for
// oldest-first eviction.
type inMemoryCache struct {
	mu      sync.RWMutex
	results map[string]model.AnalysisResult
	order   []string
	maxSize int
}

// Option applies a configuration option to the in-memory cache.
type Option func(*inMemoryCache)

// WithMaxSize bounds the number of cached results. Values below one fall
// back to the default.
func WithMaxSize(maxSize int) Option {
	return func(c *inMemoryCache) {
		if maxSize > 0 {
			c.maxSize = maxSize
		}
	}
}

// NewInMemoryCache creates a bounded in-memory replay cache.
func NewInMemoryCache(opts ...Option) Cache {
	c := &inMemoryCache{
		results: make(map[string]model.AnalysisResult),
		maxSize: defaultMaxSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *inMemoryCache) Get(_ context.Context, key string) (model.AnalysisResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, ok := c.results[key]
	if ok {
		metrics.RecordReplayHit()
	} else {
		metrics.RecordReplayMiss()
	}
	return result, ok
}

func (c *inMemoryCache) Put(_ context.Context, key string, result model.AnalysisResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.results[key]; exists {
		c.results[key] = result
		return
	}

	if len(c.order) >= c.maxSize {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.results, oldest)
	}

	c.results[key] = result
	c.order = append(c.order, key)
}

func (c *inMemoryCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.results)
}
