package ai

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okian/apex/internal/domain/model"
)

// blockingAnalyzer holds every call until released, tracking peak concurrency.
type blockingAnalyzer struct {
	gate    chan struct{}
	current atomic.Int32
	peak    atomic.Int32
}

func newBlockingAnalyzer() *blockingAnalyzer {
	return &blockingAnalyzer{gate: make(chan struct{})}
}

func (b *blockingAnalyzer) enter() {
	n := b.current.Add(1)
	for {
		p := b.peak.Load()
		if n <= p || b.peak.CompareAndSwap(p, n) {
			break
		}
	}
	<-b.gate
	b.current.Add(-1)
}

func (b *blockingAnalyzer) AnalyzeImage(context.Context, []byte, string) (string, error) {
	b.enter()
	return "ok", nil
}

func (b *blockingAnalyzer) AnalyzeVideo(context.Context, []byte, string, string) (model.AnalysisResult, error) {
	b.enter()
	return model.AnalysisResult{}, nil
}

func (b *blockingAnalyzer) Synthesize(context.Context, string) ([]byte, error) {
	b.enter()
	return []byte("audio"), nil
}

func TestLimiterBoundsConcurrency(t *testing.T) {
	inner := newBlockingAnalyzer()
	limiter := NewLimiter(inner, 2)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := limiter.AnalyzeImage(context.Background(), []byte{1}, "image/png")
			assert.NoError(t, err)
		}()
	}

	// Let goroutines reach the gate before releasing them.
	time.Sleep(50 * time.Millisecond)
	close(inner.gate)
	wg.Wait()

	assert.LessOrEqual(t, inner.peak.Load(), int32(2))
}

func TestLimiterRespectsContext(t *testing.T) {
	inner := newBlockingAnalyzer()
	limiter := NewLimiter(inner, 1)

	go func() {
		_, _ = limiter.Synthesize(context.Background(), "hold the slot")
	}()
	time.Sleep(20 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := limiter.AnalyzeVideo(ctx, []byte{1}, "video/mp4", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(inner.gate)
}

func TestLimiterFloorsBound(t *testing.T) {
	inner := newBlockingAnalyzer()
	close(inner.gate)

	limiter := NewLimiter(inner, 0)
	audio, err := limiter.Synthesize(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, []byte("audio"), audio)
}

func TestNewGeminiClientRequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
