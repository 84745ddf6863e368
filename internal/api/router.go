// internal/api/router.go
package api

import "net/http"

// RegisterRoutes mounts all API routes on the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Health
	mux.HandleFunc("GET /health", h.healthCheck)

	// Learners
	mux.HandleFunc("POST /learners", h.createLearner)
	mux.HandleFunc("GET /learners/{learnerID}", h.getLearner)

	// Attempts
	mux.HandleFunc("POST /learners/{learnerID}/attempts", h.recordAttempt)

	// Readiness
	mux.HandleFunc("GET /learners/{learnerID}/readiness", h.getReadiness)
	mux.HandleFunc("GET /learners/{learnerID}/readiness/priorities", h.getPriorities)

	// Mock exams
	mux.HandleFunc("POST /learners/{learnerID}/mock-exams", h.createMockExam)
	mux.HandleFunc("POST /learners/{learnerID}/mock-exams/{examID}/complete", h.completeMockExam)

	// Exam structure
	mux.HandleFunc("GET /exam-structure/{class}", h.getExamStructure)

	// Admin
	mux.HandleFunc("POST /admin/recompute", h.recomputeAll)
}
