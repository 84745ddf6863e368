package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/hamready/backend/internal/domain/exam"
	"github.com/hamready/backend/internal/domain/learner"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateLearnerRequest struct {
	LicenseClass string  `json:"license_class" example:"technician"`
	Callsign     *string `json:"callsign,omitempty" example:"KJ7ABC"`
}

func (r *CreateLearnerRequest) Validate() error {
	if r.LicenseClass == "" {
		return errors.New("license_class is required")
	}
	if _, err := exam.ParseClass(r.LicenseClass); err != nil {
		return errors.New("invalid license_class: must be technician, general, or extra")
	}
	return nil
}

type LearnerResponse struct {
	ID           string  `json:"id" example:"x9y8z7w6v5u4t3s2"`
	LicenseClass string  `json:"license_class" example:"technician"`
	Callsign     *string `json:"callsign,omitempty" example:"KJ7ABC"`
	CreatedAt    string  `json:"created_at"`
}

func toLearnerResponse(l *learner.Learner) LearnerResponse {
	return LearnerResponse{
		ID:           l.ID,
		LicenseClass: string(l.Class),
		Callsign:     l.Callsign,
		CreatedAt:    l.CreatedAt.Format(time.RFC3339),
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createLearner registers a new learner.
// @Summary      Create a learner
// @Description  Register a learner studying for a given license class.
// @Tags         Learners
// @Accept       json
// @Produce      json
// @Param        body  body      CreateLearnerRequest  true  "Learner to create"
// @Success      201   {object}  LearnerResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /learners [post]
func (h *Handler) createLearner(w http.ResponseWriter, r *http.Request) {
	var req CreateLearnerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	class, _ := exam.ParseClass(req.LicenseClass)
	l := learner.New(class, req.Callsign, time.Now())

	if err := h.store.CreateLearner(r.Context(), l); err != nil {
		h.logger.Error("failed to save learner", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save learner")
		return
	}

	respondJSON(w, http.StatusCreated, toLearnerResponse(l))
}

// getLearner returns a single learner.
// @Summary      Get a learner
// @Description  Fetch a learner by ID.
// @Tags         Learners
// @Produce      json
// @Param        learnerID  path      string  true  "Learner ID"
// @Success      200        {object}  LearnerResponse
// @Failure      404        {object}  map[string]string  "learner not found"
// @Failure      500        {object}  map[string]string
// @Router       /learners/{learnerID} [get]
func (h *Handler) getLearner(w http.ResponseWriter, r *http.Request) {
	l, err := h.store.GetLearner(r.Context(), r.PathValue("learnerID"))
	if h.handleStoreError(w, err, "learner") {
		return
	}

	respondJSON(w, http.StatusOK, toLearnerResponse(l))
}
