// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/apex/internal/domain/model"
	"github.com/okian/apex/internal/domain/skills"
)

// SkillDependencies defines the interface for skill catalog operations.
type SkillDependencies interface {
	// RelevantSkills resolves the pick list for an athlete on an event:
	// level-gated predefined skills plus every custom skill for the event.
	// An empty athleteID means the active athlete.
	RelevantSkills(ctx context.Context, athleteID string, event model.Event) ([]skills.Variant, error)

	// SkillLibrary returns the full predefined catalog.
	SkillLibrary(ctx context.Context) []model.Skill
}

// SkillsHandler handles skill catalog requests.
type SkillsHandler struct {
	deps SkillDependencies
}

// NewSkillsHandler creates a new skills handler.
func NewSkillsHandler(deps SkillDependencies) *SkillsHandler {
	return &SkillsHandler{deps: deps}
}

// skillResponse is the wire shape for both predefined and custom skills.
type skillResponse struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Event    model.Event `json:"event"`
	IsCustom bool        `json:"isCustom"`
}

// HandleRelevant handles GET /skills?event=Floor&athleteId=... requests.
func (h *SkillsHandler) HandleRelevant(w http.ResponseWriter, r *http.Request) {
	const op = "api.relevant_skills"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	event := model.Event(r.URL.Query().Get("event"))
	if !event.Valid() {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	athleteID := r.URL.Query().Get("athleteId")

	variants, err := h.deps.RelevantSkills(r.Context(), athleteID, event)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}

	out := make([]skillResponse, 0, len(variants))
	for _, v := range variants {
		out = append(out, skillResponse{
			ID:       v.ID(),
			Name:     v.Name(),
			Event:    v.Event(),
			IsCustom: v.Kind() == skills.KindCustom,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleLibrary handles GET /skills/library requests.
func (h *SkillsHandler) HandleLibrary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.SkillLibrary(r.Context()))
}
