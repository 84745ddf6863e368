package api

import (
	"errors"
	"net/http"
	"sort"

	"github.com/hamready/backend/internal/domain/exam"
	"github.com/hamready/backend/internal/domain/readiness"
)

// ── Request / Response types ────────────────────────────────────────────────

type ReadinessResponse struct {
	LearnerID string              `json:"learner_id" example:"x9y8z7w6v5u4t3s2"`
	Snapshot  *readiness.Snapshot `json:"snapshot"`
	Stale     bool                `json:"stale"` // true when serving a fallback after a failed recompute
}

type PriorityEntry struct {
	Subelement    string  `json:"subelement" example:"T5"`
	Label         string  `json:"label,omitempty"`
	PriorityScore float64 `json:"priority_score" example:"1.44"`
	RiskScore     float64 `json:"risk_score" example:"2.88"`
	Accuracy      float64 `json:"accuracy" example:"0.6"`
	Coverage      float64 `json:"coverage" example:"0.2"`
}

type PrioritiesResponse struct {
	LearnerID  string          `json:"learner_id"`
	Priorities []PriorityEntry `json:"priorities"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getReadiness serves the stored snapshot; ?recompute=true forces a fresh
// computation. When a forced recompute fails, the last good snapshot is
// returned with stale=true rather than a zeroed score, since a fabricated
// number would mislead the learner.
// @Summary      Get readiness snapshot
// @Description  Return the learner's readiness snapshot, computing one if none is stored yet.
// @Tags         Readiness
// @Produce      json
// @Param        learnerID  path      string  true   "Learner ID"
// @Param        recompute  query     bool    false  "Force a fresh computation"
// @Success      200        {object}  ReadinessResponse
// @Failure      404        {object}  map[string]string  "learner not found"
// @Failure      422        {object}  map[string]string  "stored data out of range"
// @Failure      500        {object}  map[string]string
// @Router       /learners/{learnerID}/readiness [get]
func (h *Handler) getReadiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	learnerID := r.PathValue("learnerID")

	if _, err := h.store.GetLearner(ctx, learnerID); h.handleStoreError(w, err, "learner") {
		return
	}

	if r.URL.Query().Get("recompute") == "true" {
		snap, err := h.readiness.Recompute(ctx, learnerID)
		if err == nil {
			respondJSON(w, http.StatusOK, ReadinessResponse{LearnerID: learnerID, Snapshot: snap})
			return
		}

		h.logger.Error("recompute failed, serving last snapshot", "learner_id", learnerID, "error", err)
		last, lastErr := h.store.LatestSnapshot(ctx, learnerID)
		if lastErr != nil {
			respondError(w, http.StatusInternalServerError, "failed to compute readiness")
			return
		}
		respondJSON(w, http.StatusOK, ReadinessResponse{LearnerID: learnerID, Snapshot: last, Stale: true})
		return
	}

	snap, err := h.readiness.Latest(ctx, learnerID)
	if err != nil {
		var inputErr *readiness.InputError
		if errors.As(err, &inputErr) {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.logger.Error("failed to load readiness", "learner_id", learnerID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load readiness")
		return
	}

	respondJSON(w, http.StatusOK, ReadinessResponse{LearnerID: learnerID, Snapshot: snap})
}

// getPriorities returns subelements ranked by priority score, the order
// adaptive practice should attack them in.
// @Summary      Get study priorities
// @Description  Rank the learner's subelements by priority score, highest first.
// @Tags         Readiness
// @Produce      json
// @Param        learnerID  path      string  true  "Learner ID"
// @Success      200        {object}  PrioritiesResponse
// @Failure      404        {object}  map[string]string  "learner not found"
// @Failure      500        {object}  map[string]string
// @Router       /learners/{learnerID}/readiness/priorities [get]
func (h *Handler) getPriorities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	learnerID := r.PathValue("learnerID")

	l, err := h.store.GetLearner(ctx, learnerID)
	if h.handleStoreError(w, err, "learner") {
		return
	}
	structure, err := exam.StructureFor(l.Class)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	snap, err := h.readiness.Latest(ctx, learnerID)
	if err != nil {
		h.logger.Error("failed to load readiness", "learner_id", learnerID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load readiness")
		return
	}

	priorities := make([]PriorityEntry, 0, len(snap.Subelements))
	for code, m := range snap.Subelements {
		entry := PriorityEntry{
			Subelement:    code,
			PriorityScore: m.PriorityScore,
			RiskScore:     m.RiskScore,
			Accuracy:      m.Accuracy,
			Coverage:      m.Coverage,
		}
		if sub, ok := structure.Subelement(code); ok {
			entry.Label = sub.Label
		}
		priorities = append(priorities, entry)
	}

	sort.Slice(priorities, func(i, j int) bool {
		if priorities[i].PriorityScore != priorities[j].PriorityScore {
			return priorities[i].PriorityScore > priorities[j].PriorityScore
		}
		return priorities[i].Subelement < priorities[j].Subelement
	})

	respondJSON(w, http.StatusOK, PrioritiesResponse{LearnerID: learnerID, Priorities: priorities})
}
