package kvstore

import (
	"context"
	"sync"
	"time"

	"github.com/okian/apex/pkg/metrics"
)

// MemoryStore implements Store with a process-local map. It backs tests and
// the "memory" DSN; state does not survive a restart.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	start := time.Now()
	defer func() { metrics.ObserveStoreOp("get", float64(time.Since(start).Milliseconds())) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		metrics.RecordStoreError("get")
		return nil, ErrClosed
	}
	v, ok := s.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	start := time.Now()
	defer func() { metrics.ObserveStoreOp("set", float64(time.Since(start).Milliseconds())) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		metrics.RecordStoreError("set")
		return ErrClosed
	}
	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	start := time.Now()
	defer func() { metrics.ObserveStoreOp("delete", float64(time.Since(start).Milliseconds())) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		metrics.RecordStoreError("delete")
		return ErrClosed
	}
	delete(s.data, key)
	return nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
