package ai

import (
	"context"

	"github.com/okian/apex/internal/domain/model"
)

// Limiter bounds concurrent model calls so a burst of uploads cannot saturate
// the upstream quota. Callers block until a slot frees or their context ends.
type Limiter struct {
	inner Analyzer
	slots chan struct{}
}

// NewLimiter wraps an Analyzer with a concurrency bound. A bound below one
// falls back to one.
func NewLimiter(inner Analyzer, maxInflight int) *Limiter {
	if maxInflight < 1 {
		maxInflight = 1
	}
	return &Limiter{
		inner: inner,
		slots: make(chan struct{}, maxInflight),
	}
}

func (l *Limiter) acquire(ctx context.Context) error {
	select {
	case l.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Limiter) release() {
	<-l.slots
}

func (l *Limiter) AnalyzeImage(ctx context.Context, media []byte, mimeType string) (string, error) {
	if err := l.acquire(ctx); err != nil {
		return "", err
	}
	defer l.release()
	return l.inner.AnalyzeImage(ctx, media, mimeType)
}

func (l *Limiter) AnalyzeVideo(ctx context.Context, media []byte, mimeType, prompt string) (model.AnalysisResult, error) {
	if err := l.acquire(ctx); err != nil {
		return model.AnalysisResult{}, err
	}
	defer l.release()
	return l.inner.AnalyzeVideo(ctx, media, mimeType, prompt)
}

func (l *Limiter) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if err := l.acquire(ctx); err != nil {
		return nil, err
	}
	defer l.release()
	return l.inner.Synthesize(ctx, text)
}
