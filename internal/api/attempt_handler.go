package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/hamready/backend/internal/domain/exam"
	"github.com/hamready/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type RecordAttemptRequest struct {
	Subelement string  `json:"subelement" example:"T1"`
	QuestionID string  `json:"question_id" example:"T1A03"`
	Correct    bool    `json:"correct"`
	AnsweredAt *string `json:"answered_at,omitempty"` // RFC3339; defaults to now
}

func (r *RecordAttemptRequest) Validate() error {
	if r.Subelement == "" {
		return errors.New("subelement is required")
	}
	if r.QuestionID == "" {
		return errors.New("question_id is required")
	}
	return nil
}

type RecordAttemptResponse struct {
	Status string `json:"status" example:"recorded"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// recordAttempt stores a single practice-question answer.
// @Summary      Record a practice attempt
// @Description  Store one answered practice question and schedule a readiness refresh.
// @Tags         Attempts
// @Accept       json
// @Produce      json
// @Param        learnerID  path      string                true  "Learner ID"
// @Param        body       body      RecordAttemptRequest  true  "Attempt to record"
// @Success      202        {object}  RecordAttemptResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string  "learner not found"
// @Failure      500        {object}  map[string]string
// @Router       /learners/{learnerID}/attempts [post]
func (h *Handler) recordAttempt(w http.ResponseWriter, r *http.Request) {
	learnerID := r.PathValue("learnerID")

	var req RecordAttemptRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	l, err := h.store.GetLearner(r.Context(), learnerID)
	if h.handleStoreError(w, err, "learner") {
		return
	}

	structure, err := exam.StructureFor(l.Class)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if _, ok := structure.Subelement(req.Subelement); !ok {
		respondError(w, http.StatusBadRequest, "subelement not part of the learner's exam")
		return
	}

	answeredAt := time.Now()
	if req.AnsweredAt != nil {
		answeredAt, err = time.Parse(time.RFC3339, *req.AnsweredAt)
		if err != nil {
			respondError(w, http.StatusBadRequest, "answered_at must be RFC3339")
			return
		}
	}

	attempt := store.Attempt{
		LearnerID:  learnerID,
		Subelement: req.Subelement,
		QuestionID: req.QuestionID,
		Correct:    req.Correct,
		AnsweredAt: answeredAt,
	}
	if err := h.store.RecordAttempt(r.Context(), attempt); err != nil {
		h.logger.Error("failed to record attempt", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to record attempt")
		return
	}

	// The snapshot refresh happens off the request path; the stored one
	// stays authoritative until the recompute lands.
	h.readiness.RecomputeAsync(learnerID)

	respondJSON(w, http.StatusAccepted, RecordAttemptResponse{Status: "recorded"})
}
