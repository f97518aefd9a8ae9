// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/okian/apex/internal/domain/model"
	"github.com/okian/apex/pkg/metrics"
)

// AnalysisDependencies defines the interface for AI form feedback operations.
type AnalysisDependencies interface {
	AnalyzeImage(ctx context.Context, media []byte, mimeType string) (string, error)
	AnalyzeVideo(ctx context.Context, media []byte, mimeType, prompt string) (model.AnalysisResult, error)
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// AnalysisHandler handles AI analysis requests.
type AnalysisHandler struct {
	deps          AnalysisDependencies
	maxMediaBytes int64
	timeout       time.Duration
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(deps AnalysisDependencies, maxMediaBytes int64, timeout time.Duration) *AnalysisHandler {
	return &AnalysisHandler{
		deps:          deps,
		maxMediaBytes: maxMediaBytes,
		timeout:       timeout,
	}
}

type analysisRequest struct {
	Media    string `json:"media"` // base64
	MimeType string `json:"mimeType"`
	Prompt   string `json:"prompt,omitempty"`
}

type imageAnalysisResponse struct {
	Feedback string `json:"feedback"`
}

type speechRequest struct {
	Text string `json:"text"`
}

type speechResponse struct {
	Audio string `json:"audio"` // base64 PCM
}

// decodeMedia parses the request body and decodes the media payload,
// answering 400 on malformed input and a distinct 413 when the media
// exceeds the configured bound.
func (h *AnalysisHandler) decodeMedia(w http.ResponseWriter, r *http.Request, op string) (analysisRequest, []byte, bool) {
	// Base64 inflates payloads by a third; allow for it plus envelope.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxMediaBytes*4/3+4096)

	var req analysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			metrics.RecordPayloadTooLarge()
			writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large",
				NewKind(op, ErrPayloadTooLarge))
			return analysisRequest{}, nil, false
		}
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return analysisRequest{}, nil, false
	}
	if req.Media == "" || req.MimeType == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return analysisRequest{}, nil, false
	}

	media, err := base64.StdEncoding.DecodeString(req.Media)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return analysisRequest{}, nil, false
	}
	if int64(len(media)) > h.maxMediaBytes {
		metrics.RecordPayloadTooLarge()
		writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large",
			NewKind(op, ErrPayloadTooLarge))
		return analysisRequest{}, nil, false
	}
	return req, media, true
}

// HandleImage handles POST /analysis/image requests.
func (h *AnalysisHandler) HandleImage(w http.ResponseWriter, r *http.Request) {
	const op = "api.analyze_image"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	req, media, ok := h.decodeMedia(w, r, op)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	feedback, err := h.deps.AnalyzeImage(ctx, media, req.MimeType)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, imageAnalysisResponse{Feedback: feedback})
}

// HandleVideo handles POST /analysis/video requests.
func (h *AnalysisHandler) HandleVideo(w http.ResponseWriter, r *http.Request) {
	const op = "api.analyze_video"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	req, media, ok := h.decodeMedia(w, r, op)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.deps.AnalyzeVideo(ctx, media, req.MimeType, req.Prompt)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// HandleSpeech handles POST /speech requests.
func (h *AnalysisHandler) HandleSpeech(w http.ResponseWriter, r *http.Request) {
	const op = "api.synthesize_speech"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req speechRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	audio, err := h.deps.Synthesize(ctx, req.Text)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, speechResponse{Audio: base64.StdEncoding.EncodeToString(audio)})
}
