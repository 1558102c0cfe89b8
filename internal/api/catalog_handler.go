package api

import (
	"net/http"

	"github.com/quizdrill/backend/internal/domain/exam"
)

// ── Request / Response types ────────────────────────────────────────────────

type ExamSummary struct {
	ID            string `json:"id" example:"aws-clf"`
	Title         string `json:"title" example:"AWS Cloud Practitioner"`
	Description   string `json:"description,omitempty"`
	Version       string `json:"version,omitempty" example:"CLF-C02"`
	CategoryID    string `json:"categoryId" example:"aws"`
	CategoryName  string `json:"categoryName" example:"AWS"`
	QuestionCount int    `json:"questionCount" example:"65"`
}

type CatalogResponse struct {
	Exams       []ExamSummary   `json:"exams"`
	Categories  []exam.Category `json:"categories"`
	Diagnostics []string        `json:"diagnostics"`
}

type ExamDetailResponse struct {
	ExamSummary
	// PoolSizes reports how many questions each difficulty selection
	// would draw from, so the client can cap the count input.
	PoolSizes map[string]int `json:"poolSizes"`
}

type SearchResponse struct {
	Query string        `json:"query"`
	Exams []ExamSummary `json:"exams"`
}

func summarize(e exam.Exam) ExamSummary {
	return ExamSummary{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		Version:       e.Version,
		CategoryID:    e.Category.ID,
		CategoryName:  e.Category.Name,
		QuestionCount: e.QuestionCount(),
	}
}

func summarizeAll(exams []exam.Exam) []ExamSummary {
	out := make([]ExamSummary, len(exams))
	for i, e := range exams {
		out[i] = summarize(e)
	}
	return out
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getCatalog returns the loaded exam catalog.
// @Summary      Get the exam catalog
// @Description  Returns every loaded exam with question counts, the category index, and any ingestion diagnostics.
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  CatalogResponse
// @Router       /catalog [get]
func (h *Handler) getCatalog(w http.ResponseWriter, _ *http.Request) {
	cat := h.catalog.Catalog()
	respondJSON(w, http.StatusOK, CatalogResponse{
		Exams:       summarizeAll(cat.Exams),
		Categories:  cat.Categories,
		Diagnostics: cat.Diagnostics,
	})
}

// reloadCatalog re-ingests the questions directory.
// @Summary      Reload the catalog
// @Description  Re-reads the questions directory and swaps in the new catalog. Active quiz sessions are unaffected.
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  CatalogResponse
// @Router       /catalog/reload [post]
func (h *Handler) reloadCatalog(w http.ResponseWriter, _ *http.Request) {
	cat := h.catalog.Reload()
	respondJSON(w, http.StatusOK, CatalogResponse{
		Exams:       summarizeAll(cat.Exams),
		Categories:  cat.Categories,
		Diagnostics: cat.Diagnostics,
	})
}

// searchExams finds exams matching every keyword in q.
// @Summary      Search exams
// @Description  Case- and width-insensitive keyword search over exam metadata. All keywords must match.
// @Tags         Catalog
// @Produce      json
// @Param        q  query  string  false  "Space-separated keywords"
// @Success      200  {object}  SearchResponse
// @Router       /catalog/search [get]
func (h *Handler) searchExams(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	matches := h.catalog.Search(query)
	respondJSON(w, http.StatusOK, SearchResponse{
		Query: query,
		Exams: summarizeAll(matches),
	})
}

// getExam returns one exam with its per-difficulty pool sizes.
// @Summary      Get an exam
// @Tags         Catalog
// @Produce      json
// @Param        examID  path  string  true  "Exam ID"
// @Success      200  {object}  ExamDetailResponse
// @Failure      404  {object}  map[string]string
// @Router       /exams/{examID} [get]
func (h *Handler) getExam(w http.ResponseWriter, r *http.Request) {
	e, ok := h.catalog.ExamByID(r.PathValue("examID"))
	if !ok {
		respondError(w, http.StatusNotFound, "exam not found")
		return
	}

	pools := make(map[string]int, 4)
	for _, d := range []exam.Difficulty{exam.DifficultyEasy, exam.DifficultyNormal, exam.DifficultyHard, exam.DifficultyRandom} {
		pools[string(d)] = len(exam.FilterByDifficulty(e.Questions, d))
	}

	respondJSON(w, http.StatusOK, ExamDetailResponse{
		ExamSummary: summarize(e),
		PoolSizes:   pools,
	})
}
