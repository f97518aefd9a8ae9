// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/okian/apex/internal/domain/model"
)

// TurnDependencies defines the interface for turn log operations. An empty
// athleteID means the active athlete.
type TurnDependencies interface {
	UpsertTurn(ctx context.Context, athleteID, skillID string, event model.Event, count int) error
	TurnsForToday(ctx context.Context, athleteID string) (map[string]int, error)
	AggregateForWindow(ctx context.Context, athleteID string, days int) (map[model.Event]int, error)
}

// TurnsHandler handles turn log requests.
type TurnsHandler struct {
	deps TurnDependencies
}

// NewTurnsHandler creates a new turns handler.
func NewTurnsHandler(deps TurnDependencies) *TurnsHandler {
	return &TurnsHandler{deps: deps}
}

type upsertTurnRequest struct {
	AthleteID string      `json:"athleteId"`
	SkillID   string      `json:"skillId"`
	Event     model.Event `json:"event"`
	Count     int         `json:"count"`
}

// HandleUpsert handles POST /turns requests. The count is the new total for
// today; zero removes the entry.
func (h *TurnsHandler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	const op = "api.upsert_turn"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req upsertTurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	if err := h.deps.UpsertTurn(r.Context(), req.AthleteID, req.SkillID, req.Event, req.Count); err != nil {
		writeDomainError(w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleToday handles GET /turns/today?athleteId=... requests.
func (h *TurnsHandler) HandleToday(w http.ResponseWriter, r *http.Request) {
	const op = "api.turns_today"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	counts, err := h.deps.TurnsForToday(r.Context(), r.URL.Query().Get("athleteId"))
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

// HandleSummary handles GET /turns/summary?days=7&athleteId=... requests.
func (h *TurnsHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	const op = "api.turns_summary"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil || days < 1 {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	totals, err := h.deps.AggregateForWindow(r.Context(), r.URL.Query().Get("athleteId"), days)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, totals)
}
