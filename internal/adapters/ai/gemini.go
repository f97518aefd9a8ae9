package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/okian/apex/internal/domain/model"
	"github.com/okian/apex/pkg/logger"
	"github.com/okian/apex/pkg/metrics"
)

const (
	judgeSystemInstruction = "You are 'Apex AI Judge,' an expert gymnastics judge and coach. " +
		"Your purpose is to analyze a gymnast's routine from a video. First, provide constructive " +
		"feedback on form. Second, identify potential deductions based on scoring rules (e.g., bent " +
		"legs, flexed feet, steps on landing). For each deduction, provide a timestamp, a description, " +
		"and a potential deduction range (e.g., 0.1 to 0.3). Finally, calculate a final score range, " +
		"assuming a 10.0 start value."

	coachImagePrompt = "You are 'Apex AI Coach,' an expert gymnastics coaching assistant. " +
		"Analyze the gymnast's form and position in this image. Provide constructive, safe, and " +
		"encouraging feedback. Focus on alignment, posture, and extension."

	speechTonePrefix = "Say with a helpful and encouraging tone: "

	ttsVoiceName = "Kore"
)

// GeminiClient implements Analyzer against the Gemini API.
type GeminiClient struct {
	client   *genai.Client
	model    string
	ttsModel string
	log      logger.Logger
}

// GeminiOption applies a configuration option to the Gemini client.
type GeminiOption func(*GeminiClient)

// WithModel overrides the analysis model.
func WithModel(name string) GeminiOption {
	return func(c *GeminiClient) {
		if name != "" {
			c.model = name
		}
	}
}

// WithTTSModel overrides the speech synthesis model.
func WithTTSModel(name string) GeminiOption {
	return func(c *GeminiClient) {
		if name != "" {
			c.ttsModel = name
		}
	}
}

// WithGeminiLogger overrides the client's logger.
func WithGeminiLogger(log logger.Logger) GeminiOption {
	return func(c *GeminiClient) {
		if log != nil {
			c.log = log
		}
	}
}

// NewGeminiClient creates an Analyzer backed by the Gemini API.
func NewGeminiClient(ctx context.Context, apiKey string, opts ...GeminiOption) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	c := &GeminiClient{
		client:   client,
		model:    "gemini-2.5-pro",
		ttsModel: "gemini-2.5-flash-preview-tts",
		log:      logger.Get().Named("ai"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *GeminiClient) AnalyzeImage(ctx context.Context, media []byte, mimeType string) (string, error) {
	if len(media) == 0 {
		return "", ErrEmptyMedia
	}

	metrics.RecordAIRequest("image")
	start := time.Now()

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(coachImagePrompt),
			genai.NewPartFromBytes(media, mimeType),
		}, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	metrics.ObserveAILatency("image", float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordAIError("image")
		c.log.Error(ctx, "image analysis failed", logger.Error(err))
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	return resp.Text(), nil
}

func (c *GeminiClient) AnalyzeVideo(ctx context.Context, media []byte, mimeType, prompt string) (model.AnalysisResult, error) {
	if len(media) == 0 {
		return model.AnalysisResult{}, ErrEmptyMedia
	}

	metrics.RecordAIRequest("video")
	start := time.Now()

	concerns := prompt
	if concerns == "" {
		concerns = "No specific concerns mentioned"
	}
	fullPrompt := fmt.Sprintf("Please analyze the routine in this video. Here are my specific concerns: %q. "+
		"Provide both form corrections and a list of potential deductions with ranges. "+
		"Then, give me an estimated final score range for the routine.", concerns)

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(fullPrompt),
			genai.NewPartFromBytes(media, mimeType),
		}, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(judgeSystemInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    analysisSchema(),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	metrics.ObserveAILatency("video", float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordAIError("video")
		c.log.Error(ctx, "video analysis failed", logger.Error(err))
		return model.AnalysisResult{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	var result model.AnalysisResult
	if err := json.Unmarshal([]byte(resp.Text()), &result); err != nil {
		metrics.RecordAIError("video")
		return model.AnalysisResult{}, fmt.Errorf("%w: decode analysis: %w", ErrUpstream, err)
	}
	return result, nil
}

func (c *GeminiClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	metrics.RecordAIRequest("speech")
	start := time.Now()

	contents := genai.Text(speechTonePrefix + text)
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: ttsVoiceName},
			},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.ttsModel, contents, config)
	metrics.ObserveAILatency("speech", float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordAIError("speech")
		c.log.Error(ctx, "speech synthesis failed", logger.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, nil
			}
		}
	}

	metrics.RecordAIError("speech")
	return nil, ErrNoAudio
}

// analysisSchema constrains the model's JSON output to the analysis shape.
func analysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"formCorrections": {
				Type:        genai.TypeArray,
				Description: "A list of feedback points for the gymnast's form.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"timestamp": {Type: genai.TypeNumber, Description: "The timestamp in seconds for the form correction."},
						"feedback":  {Type: genai.TypeString, Description: "The constructive feedback on form."},
					},
					Required: []string{"timestamp", "feedback"},
				},
			},
			"deductions": {
				Type:        genai.TypeArray,
				Description: "A list of potential deductions a judge might take.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"timestamp":         {Type: genai.TypeNumber, Description: "The timestamp in seconds where the error occurs."},
						"description":       {Type: genai.TypeString, Description: "Description of the error leading to a deduction."},
						"deductionRangeMin": {Type: genai.TypeNumber, Description: "The minimum deduction amount (e.g., 0.1)."},
						"deductionRangeMax": {Type: genai.TypeNumber, Description: "The maximum deduction amount (e.g., 0.3)."},
					},
					Required: []string{"timestamp", "description", "deductionRangeMin", "deductionRangeMax"},
				},
			},
			"finalScoreRange": {
				Type:        genai.TypeObject,
				Description: "The estimated final score range for the routine.",
				Properties: map[string]*genai.Schema{
					"min": {Type: genai.TypeNumber, Description: "The minimum estimated score."},
					"max": {Type: genai.TypeNumber, Description: "The maximum estimated score."},
				},
				Required: []string{"min", "max"},
			},
		},
		Required: []string{"formCorrections", "deductions", "finalScoreRange"},
	}
}
