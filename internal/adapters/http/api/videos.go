// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/okian/apex/internal/domain/model"
)

// VideoDependencies defines the interface for saved video operations.
type VideoDependencies interface {
	SaveVideo(ctx context.Context, video model.SavedVideo) (model.SavedVideo, error)
	ListVideos(ctx context.Context) ([]model.SavedVideo, error)
	GetVideo(ctx context.Context, id string) (model.SavedVideo, error)
	DeleteVideo(ctx context.Context, id string) error
}

// VideosHandler handles saved video requests.
type VideosHandler struct {
	deps          VideoDependencies
	maxMediaBytes int64
}

// NewVideosHandler creates a new videos handler.
func NewVideosHandler(deps VideoDependencies, maxMediaBytes int64) *VideosHandler {
	return &VideosHandler{deps: deps, maxMediaBytes: maxMediaBytes}
}

type saveVideoRequest struct {
	Name     string               `json:"name"`
	Media    string               `json:"media"` // base64
	MimeType string               `json:"mimeType"`
	Prompt   string               `json:"prompt"`
	Analysis model.AnalysisResult `json:"analysis"`
}

// savedVideoResponse carries media bytes as base64 when requested by ID.
type savedVideoResponse struct {
	model.SavedVideo
	Media string `json:"media,omitempty"`
}

// HandleVideos handles GET and POST /videos requests.
func (h *VideosHandler) HandleVideos(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleSave(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *VideosHandler) handleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_videos"
	videos, err := h.deps.ListVideos(r.Context())
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, videos)
}

func (h *VideosHandler) handleSave(w http.ResponseWriter, r *http.Request) {
	const op = "api.save_video"
	r.Body = http.MaxBytesReader(w, r.Body, h.maxMediaBytes*4/3+4096)

	var req saveVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	media, err := base64.StdEncoding.DecodeString(req.Media)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	saved, err := h.deps.SaveVideo(r.Context(), model.SavedVideo{
		Name:     req.Name,
		Media:    media,
		MimeType: req.MimeType,
		Prompt:   req.Prompt,
		Analysis: req.Analysis,
	})
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

// HandleVideoByID handles GET and DELETE /videos/{id} requests.
func (h *VideosHandler) HandleVideoByID(w http.ResponseWriter, r *http.Request) {
	const op = "api.video_by_id"
	id := strings.TrimPrefix(r.URL.Path, "/videos/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r, id)
	case http.MethodDelete:
		h.handleDelete(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

func (h *VideosHandler) handleGet(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.get_video"
	video, err := h.deps.GetVideo(r.Context(), id)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, savedVideoResponse{
		SavedVideo: video,
		Media:      base64.StdEncoding.EncodeToString(video.Media),
	})
}

func (h *VideosHandler) handleDelete(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.delete_video"
	if err := h.deps.DeleteVideo(r.Context(), id); err != nil {
		writeDomainError(w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
