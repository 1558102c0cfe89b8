// internal/api/router.go
package api

import "net/http"

// RegisterRoutes wires every handler onto the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Catalog
	mux.HandleFunc("GET /catalog", h.getCatalog)
	mux.HandleFunc("POST /catalog/reload", h.reloadCatalog)
	mux.HandleFunc("GET /catalog/search", h.searchExams)
	mux.HandleFunc("GET /exams/{examID}", h.getExam)

	// Selection
	mux.HandleFunc("GET /selection", h.getSelection)
	mux.HandleFunc("PUT /selection", h.updateSelection)
	mux.HandleFunc("DELETE /selection", h.clearSelection)

	// Quiz
	mux.HandleFunc("POST /quiz/start", h.startQuiz)
	mux.HandleFunc("GET /quiz", h.getActiveQuiz)
	mux.HandleFunc("POST /quiz/submit", h.submitAnswers)
	mux.HandleFunc("POST /quiz/reset", h.resetQuiz)

	// History
	mux.HandleFunc("POST /history/view", h.viewHistoryResult)
}
