// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/okian/apex/internal/domain/model"
)

// RosterDependencies defines the interface for athlete roster operations.
type RosterDependencies interface {
	Athletes(ctx context.Context) ([]model.Athlete, error)
	AddAthlete(ctx context.Context, name string, level int) (model.Athlete, error)
	UpdateAthlete(ctx context.Context, athlete model.Athlete) error
	ActiveAthlete(ctx context.Context) (*model.Athlete, error)
	SetActiveAthlete(ctx context.Context, id string) error
	Logout(ctx context.Context) error
	AddCustomSkill(ctx context.Context, athleteID, name string, event model.Event) (model.CustomSkill, error)
	RemoveCustomSkill(ctx context.Context, athleteID, skillID string) error
}

// AthletesHandler handles roster requests.
type AthletesHandler struct {
	deps RosterDependencies
}

// NewAthletesHandler creates a new athletes handler.
func NewAthletesHandler(deps RosterDependencies) *AthletesHandler {
	return &AthletesHandler{deps: deps}
}

type addAthleteRequest struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type setActiveRequest struct {
	ID string `json:"id"`
}

type addCustomSkillRequest struct {
	Name  string      `json:"name"`
	Event model.Event `json:"event"`
}

// HandleAthletes handles GET and POST /athletes requests.
func (h *AthletesHandler) HandleAthletes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleAdd(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *AthletesHandler) handleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_athletes"
	athletes, err := h.deps.Athletes(r.Context())
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, athletes)
}

func (h *AthletesHandler) handleAdd(w http.ResponseWriter, r *http.Request) {
	const op = "api.add_athlete"
	var req addAthleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	athlete, err := h.deps.AddAthlete(r.Context(), req.Name, req.Level)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, athlete)
}

// HandleActive handles GET, PUT and DELETE /athletes/active requests.
func (h *AthletesHandler) HandleActive(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGetActive(w, r)
	case http.MethodPut:
		h.handleSetActive(w, r)
	case http.MethodDelete:
		h.handleLogout(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *AthletesHandler) handleGetActive(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_active_athlete"
	athlete, err := h.deps.ActiveAthlete(r.Context())
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	// An empty roster has no active athlete; null is the honest answer.
	writeJSON(w, http.StatusOK, athlete)
}

func (h *AthletesHandler) handleSetActive(w http.ResponseWriter, r *http.Request) {
	const op = "api.set_active_athlete"
	var req setActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	if err := h.deps.SetActiveAthlete(r.Context(), req.ID); err != nil {
		writeDomainError(w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AthletesHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	const op = "api.logout"
	if err := h.deps.Logout(r.Context()); err != nil {
		writeDomainError(w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAthleteByID handles requests under /athletes/{id}:
// PUT /athletes/{id}, POST /athletes/{id}/skills and
// DELETE /athletes/{id}/skills/{skillID}.
func (h *AthletesHandler) HandleAthleteByID(w http.ResponseWriter, r *http.Request) {
	const op = "api.athlete_by_id"
	rest := strings.TrimPrefix(r.URL.Path, "/athletes/")
	if rest == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	parts := strings.Split(rest, "/")
	switch {
	case len(parts) == 1 && r.Method == http.MethodPut:
		h.handleUpdate(w, r, parts[0])
	case len(parts) == 2 && parts[1] == "skills" && r.Method == http.MethodPost:
		h.handleAddSkill(w, r, parts[0])
	case len(parts) == 3 && parts[1] == "skills" && r.Method == http.MethodDelete:
		h.handleRemoveSkill(w, r, parts[0], parts[2])
	default:
		http.NotFound(w, r)
	}
}

func (h *AthletesHandler) handleUpdate(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.update_athlete"
	var athlete model.Athlete
	if err := json.NewDecoder(r.Body).Decode(&athlete); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	// The path owns the identity; the body may omit or mismatch it.
	athlete.ID = id
	if err := h.deps.UpdateAthlete(r.Context(), athlete); err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, athlete)
}

func (h *AthletesHandler) handleAddSkill(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.add_custom_skill"
	var req addCustomSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	skill, err := h.deps.AddCustomSkill(r.Context(), id, req.Name, req.Event)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, skill)
}

func (h *AthletesHandler) handleRemoveSkill(w http.ResponseWriter, r *http.Request, id, skillID string) {
	const op = "api.remove_custom_skill"
	if err := h.deps.RemoveCustomSkill(r.Context(), id, skillID); err != nil {
		writeDomainError(w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
