package api

import "net/http"

// ── Response types ──────────────────────────────────────────────────────────

type RecomputeAllResponse struct {
	Status   string `json:"status" example:"completed"`
	Failures int    `json:"failures" example:"0"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// recomputeAll refreshes every learner's snapshot.
// @Summary      Recompute all snapshots
// @Description  Refresh the readiness snapshot of every learner. Runs synchronously; intended for operators and schedulers.
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  RecomputeAllResponse
// @Failure      500  {object}  map[string]string
// @Router       /admin/recompute [post]
func (h *Handler) recomputeAll(w http.ResponseWriter, r *http.Request) {
	failures, err := h.readiness.RecomputeAll(r.Context())
	if err != nil {
		h.logger.Error("batch recompute failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to recompute")
		return
	}

	respondJSON(w, http.StatusOK, RecomputeAllResponse{Status: "completed", Failures: failures})
}

// healthCheck reports service liveness.
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
