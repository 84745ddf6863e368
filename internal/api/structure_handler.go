package api

import (
	"net/http"

	"github.com/hamready/backend/internal/domain/exam"
)

// ── Response types ──────────────────────────────────────────────────────────

type SubelementResponse struct {
	Code          string `json:"code" example:"T1"`
	Label         string `json:"label" example:"FCC Rules and station licensee responsibilities"`
	ExamQuestions int    `json:"exam_questions" example:"6"`
	PoolQuestions int    `json:"pool_questions" example:"61"`
}

type ExamStructureResponse struct {
	LicenseClass   string               `json:"license_class" example:"technician"`
	TotalQuestions int                  `json:"total_questions" example:"35"`
	PassingScore   int                  `json:"passing_score" example:"26"`
	PoolSize       int                  `json:"pool_size" example:"384"`
	Subelements    []SubelementResponse `json:"subelements"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getExamStructure returns the blueprint of one license exam.
// @Summary      Get exam structure
// @Description  Return the subelements, question counts, and passing score for a license class.
// @Tags         Exam structure
// @Produce      json
// @Param        class  path      string  true  "License class (technician, general, extra)"
// @Success      200    {object}  ExamStructureResponse
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /exam-structure/{class} [get]
func (h *Handler) getExamStructure(w http.ResponseWriter, r *http.Request) {
	class, err := exam.ParseClass(r.PathValue("class"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	structure, err := exam.StructureFor(class)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	subs := make([]SubelementResponse, len(structure.Subelements))
	for i, sub := range structure.Subelements {
		subs[i] = SubelementResponse{
			Code:          sub.Code,
			Label:         sub.Label,
			ExamQuestions: sub.ExamQuestions,
			PoolQuestions: sub.PoolQuestions,
		}
	}

	respondJSON(w, http.StatusOK, ExamStructureResponse{
		LicenseClass:   string(structure.Class),
		TotalQuestions: structure.TotalQuestions,
		PassingScore:   structure.PassingScore,
		PoolSize:       structure.PoolSize(),
		Subelements:    subs,
	})
}
