// Package ai proxies form-feedback requests to the Gemini API. The server
// holds the API key; browsers never talk to the model directly.
package ai

import (
	"context"

	"github.com/okian/apex/internal/domain/model"
)

// Analyzer produces form feedback from still images and routine videos, and
// turns feedback text into speech.
type Analyzer interface {
	// AnalyzeImage returns free-form coaching feedback on a single frame.
	AnalyzeImage(ctx context.Context, media []byte, mimeType string) (string, error)

	// AnalyzeVideo returns structured judging feedback on a routine video.
	// The prompt carries the athlete's specific concerns and may be empty.
	AnalyzeVideo(ctx context.Context, media []byte, mimeType, prompt string) (model.AnalysisResult, error)

	// Synthesize converts feedback text to spoken audio.
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
