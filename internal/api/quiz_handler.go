package api

import (
	"net/http"
	"time"

	"github.com/quizdrill/backend/internal/domain/quiz"
	"github.com/quizdrill/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type StartQuizRequest struct {
	ExamID     string `json:"exam_id" example:"aws-clf"`
	Difficulty string `json:"difficulty,omitempty" example:"random"`
	Count      int    `json:"count" example:"10"`
}

// QuizChoice is a choice as shown during a quiz: no explanation, and
// never the answer keys.
type QuizChoice struct {
	Key  string `json:"key" example:"A"`
	Text string `json:"text"`
}

type QuizQuestion struct {
	Number         int          `json:"number" example:"1"`
	ID             string       `json:"id"`
	Text           string       `json:"text"`
	Choices        []QuizChoice `json:"choices"`
	Difficulty     string       `json:"difficulty" example:"normal"`
	MultipleAnswer bool         `json:"isMultipleAnswer"`
}

type QuizResponse struct {
	Exam       quiz.ExamInfo  `json:"exam"`
	Difficulty string         `json:"difficulty" example:"random"`
	Questions  []QuizQuestion `json:"questions"`
	StartedAt  string         `json:"startedAt" example:"2025-04-01T09:00:00Z"`
}

type SubmitAnswersRequest struct {
	// Answers maps question ID to a key or a list of keys.
	Answers map[string]any `json:"answers"`
}

type SubmitAnswersResponse struct {
	Result quiz.CanonicalResult `json:"result"`
	// Record is the entry the client appends to its local history.
	Record quiz.ClientRecord `json:"record"`
}

type HistoryViewRequest struct {
	// Result is a previously client-stored record, in whatever shape
	// an older client saved it.
	Result any `json:"result"`
}

func quizView(s *quiz.Session) QuizResponse {
	questions := make([]QuizQuestion, len(s.Questions))
	for i, q := range s.Questions {
		choices := make([]QuizChoice, len(q.Choices))
		for j, c := range q.Choices {
			choices[j] = QuizChoice{Key: c.Key, Text: c.Text}
		}
		questions[i] = QuizQuestion{
			Number:         i + 1,
			ID:             q.ID,
			Text:           q.Text,
			Choices:        choices,
			Difficulty:     string(q.Difficulty),
			MultipleAnswer: q.MultipleAnswer,
		}
	}
	return QuizResponse{
		Exam:       s.Exam,
		Difficulty: string(s.Difficulty),
		Questions:  questions,
		StartedAt:  s.StartedAt.UTC().Format(time.RFC3339),
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getSelection returns the visitor's sticky selection.
// @Summary      Get the sticky selection
// @Tags         Selection
// @Produce      json
// @Success      200  {object}  store.Preferences
// @Router       /selection [get]
func (h *Handler) getSelection(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.quiz.Selection(r.Context(), quizToken(w, r))
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, prefs)
}

// updateSelection stores the visitor's selection.
// @Summary      Update the sticky selection
// @Description  Stores category, exam, and difficulty. An unrecognized difficulty is coerced to "random".
// @Tags         Selection
// @Accept       json
// @Produce      json
// @Param        body  body      store.Preferences  true  "Selection"
// @Success      200   {object}  store.Preferences
// @Failure      400   {object}  map[string]string
// @Router       /selection [put]
func (h *Handler) updateSelection(w http.ResponseWriter, r *http.Request) {
	var req store.Preferences
	if !decodeJSON(w, r, &req) {
		return
	}
	prefs, err := h.quiz.UpdateSelection(r.Context(), quizToken(w, r), req)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, prefs)
}

// clearSelection resets the selection to its defaults.
// @Summary      Clear the sticky selection
// @Tags         Selection
// @Produce      json
// @Success      200  {object}  store.Preferences
// @Router       /selection [delete]
func (h *Handler) clearSelection(w http.ResponseWriter, r *http.Request) {
	token := quizToken(w, r)
	if err := h.quiz.ClearSelection(r.Context(), token); h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, store.DefaultPreferences())
}

// startQuiz starts a quiz session for the visitor.
// @Summary      Start a quiz
// @Description  Samples questions from the chosen exam and difficulty pool. Answer keys are withheld until submission.
// @Tags         Quiz
// @Accept       json
// @Produce      json
// @Param        body  body      StartQuizRequest  true  "Exam, difficulty, and question count"
// @Success      201   {object}  QuizResponse
// @Failure      400   {object}  map[string]string
// @Router       /quiz/start [post]
func (h *Handler) startQuiz(w http.ResponseWriter, r *http.Request) {
	var req StartQuizRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	session, err := h.quiz.StartQuiz(r.Context(), quizToken(w, r), req.ExamID, req.Difficulty, req.Count)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, quizView(session))
}

// getActiveQuiz re-serves the visitor's in-progress quiz.
// @Summary      Get the active quiz
// @Description  Returns the in-progress session so a page reload resumes the quiz. 404 when none is active.
// @Tags         Quiz
// @Produce      json
// @Success      200  {object}  QuizResponse
// @Failure      404  {object}  map[string]string
// @Router       /quiz [get]
func (h *Handler) getActiveQuiz(w http.ResponseWriter, r *http.Request) {
	session, err := h.quiz.ActiveSession(r.Context(), quizToken(w, r))
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, quizView(session))
}

// submitAnswers grades the active quiz.
// @Summary      Submit answers
// @Description  Grades the active session against its answer keys, clears it, and returns the result together with the record the client stores locally. Nothing is retained server-side.
// @Tags         Quiz
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitAnswersRequest  true  "Answers keyed by question ID"
// @Success      200   {object}  SubmitAnswersResponse
// @Failure      404   {object}  map[string]string  "no active session"
// @Router       /quiz/submit [post]
func (h *Handler) submitAnswers(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswersRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	result, err := h.quiz.SubmitAnswers(r.Context(), quizToken(w, r), req.Answers)
	if h.handleServiceError(w, err) {
		return
	}
	canonical := quiz.BuildClientResult(result)
	respondJSON(w, http.StatusOK, SubmitAnswersResponse{
		Result: canonical,
		Record: quiz.BuildClientRecord(canonical, time.Now()),
	})
}

// resetQuiz abandons the active quiz.
// @Summary      Reset the quiz
// @Description  Clears the active session. The sticky selection is kept.
// @Tags         Quiz
// @Success      204
// @Router       /quiz/reset [post]
func (h *Handler) resetQuiz(w http.ResponseWriter, r *http.Request) {
	if err := h.quiz.ResetSession(r.Context(), quizToken(w, r)); h.handleServiceError(w, err) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// viewHistoryResult rebuilds a result from a client-stored record.
// @Summary      View a stored result
// @Description  Normalizes a record saved by this or an older client into the canonical result shape. Does not touch the active session.
// @Tags         History
// @Accept       json
// @Produce      json
// @Param        body  body      HistoryViewRequest  true  "Stored record"
// @Success      200   {object}  quiz.CanonicalResult
// @Failure      422   {object}  map[string]string  "record cannot be displayed"
// @Router       /history/view [post]
func (h *Handler) viewHistoryResult(w http.ResponseWriter, r *http.Request) {
	var req HistoryViewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	result, err := h.quiz.ViewHistoryResult(req.Result)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "stored result cannot be displayed")
		return
	}
	respondJSON(w, http.StatusOK, result)
}
