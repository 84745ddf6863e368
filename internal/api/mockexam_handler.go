package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/hamready/backend/internal/domain/exam"
	"github.com/hamready/backend/internal/domain/mockexam"
)

// ── Request / Response types ────────────────────────────────────────────────

type MockExamResponse struct {
	ID             string  `json:"id" example:"q1w2e3r4t5y6u7i8"`
	LicenseClass   string  `json:"license_class" example:"technician"`
	TotalQuestions int     `json:"total_questions" example:"35"`
	PassingScore   int     `json:"passing_score" example:"26"`
	Score          *int    `json:"score,omitempty" example:"28"`
	Passed         *bool   `json:"passed,omitempty" example:"true"`
	StartedAt      string  `json:"started_at"`
	CompletedAt    *string `json:"completed_at,omitempty"`
}

type CompleteMockExamRequest struct {
	Correct int `json:"correct" example:"28"`
}

func toMockExamResponse(m *mockexam.MockExam) MockExamResponse {
	resp := MockExamResponse{
		ID:             m.ID,
		LicenseClass:   string(m.Class),
		TotalQuestions: m.TotalQuestions,
		PassingScore:   m.PassingScore,
		Score:          m.Score,
		Passed:         m.Passed,
		StartedAt:      m.StartedAt.Format(time.RFC3339),
	}
	if m.CompletedAt != nil {
		v := m.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &v
	}
	return resp
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createMockExam starts a mock exam sized for the learner's license class.
// @Summary      Start a mock exam
// @Description  Create a mock exam with the question count and passing score of the learner's exam.
// @Tags         Mock exams
// @Produce      json
// @Param        learnerID  path      string  true  "Learner ID"
// @Success      201        {object}  MockExamResponse
// @Failure      404        {object}  map[string]string  "learner not found"
// @Failure      500        {object}  map[string]string
// @Router       /learners/{learnerID}/mock-exams [post]
func (h *Handler) createMockExam(w http.ResponseWriter, r *http.Request) {
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

	m := mockexam.New(learnerID, structure, time.Now())
	if err := h.store.SaveMockExam(ctx, m); err != nil {
		h.logger.Error("failed to save mock exam", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save mock exam")
		return
	}

	respondJSON(w, http.StatusCreated, toMockExamResponse(m))
}

// completeMockExam records the final score of a mock exam.
// @Summary      Complete a mock exam
// @Description  Record the number of correct answers and mark the exam finished.
// @Tags         Mock exams
// @Accept       json
// @Produce      json
// @Param        learnerID  path      string                   true  "Learner ID"
// @Param        examID     path      string                   true  "Mock exam ID"
// @Param        body       body      CompleteMockExamRequest  true  "Final result"
// @Success      200        {object}  MockExamResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string  "mock exam not found"
// @Failure      409        {object}  map[string]string  "already completed"
// @Failure      500        {object}  map[string]string
// @Router       /learners/{learnerID}/mock-exams/{examID}/complete [post]
func (h *Handler) completeMockExam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	learnerID := r.PathValue("learnerID")

	var req CompleteMockExamRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	m, err := h.store.GetMockExam(ctx, r.PathValue("examID"))
	if h.handleStoreError(w, err, "mock exam") {
		return
	}
	if m.LearnerID != learnerID {
		respondError(w, http.StatusNotFound, "mock exam not found")
		return
	}

	if err := m.Complete(req.Correct, time.Now()); err != nil {
		if errors.Is(err, mockexam.ErrAlreadyCompleted) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.UpdateMockExam(ctx, m); err != nil {
		h.logger.Error("failed to update mock exam", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to update mock exam")
		return
	}

	// A finished mock exam moves the test-rate signal, so refresh the
	// snapshot in the background.
	h.readiness.RecomputeAsync(learnerID)

	respondJSON(w, http.StatusOK, toMockExamResponse(m))
}
