package quiz

import (
	"math"
	"strings"
	"time"

	"github.com/quizdrill/backend/internal/domain/exam"
)

// CanonicalResult is the one shape the rendering layer and the
// client-side history store consume. A just-graded Result and a
// previously serialized history payload both converge on it.
type CanonicalResult struct {
	Exam               ExamInfo         `json:"exam"`
	Total              int              `json:"total"`
	Correct            int              `json:"correct"`
	Incorrect          int              `json:"incorrect"`
	Difficulty         exam.Difficulty  `json:"difficulty"`
	Questions          []ResultQuestion `json:"questions"`
	IncorrectQuestions []Mistake        `json:"incorrectQuestions"`
	CompletedAt        string           `json:"completedAt"`
	ResultID           string           `json:"resultId"`
}

type ResultQuestion struct {
	Number         int             `json:"number"`
	ID             string          `json:"id"`
	Text           string          `json:"text"`
	Choices        []ResultChoice  `json:"choices"`
	Answers        []string        `json:"answers"`
	UserAnswers    []string        `json:"userAnswers"`
	Correct        bool            `json:"isCorrect"`
	Unanswered     bool            `json:"isUnanswered"`
	Difficulty     exam.Difficulty `json:"difficulty"`
	MultipleAnswer bool            `json:"isMultipleAnswer"`
	Explanation    exam.Explanation `json:"explanation"`
}

type ResultChoice struct {
	Key         string           `json:"key"`
	Text        string           `json:"text"`
	Explanation exam.Explanation `json:"explanation"`
}

// ClientRecord is the entry the browser persists in its history store,
// keyed by ResultID. The server never retains it.
type ClientRecord struct {
	ID                 string          `json:"id"`
	ResultID           string          `json:"resultId"`
	ExamID             string          `json:"examId"`
	ExamTitle          string          `json:"examTitle"`
	CategoryID         string          `json:"categoryId"`
	CategoryName       string          `json:"categoryName"`
	Difficulty         exam.Difficulty `json:"difficulty"`
	Correct            int             `json:"correct"`
	Incorrect          int             `json:"incorrect"`
	Total              int             `json:"total"`
	ScorePercent       int             `json:"scorePercent"`
	CompletedAt        string          `json:"completedAt"`
	SavedAt            string          `json:"savedAt"`
	IncorrectQuestions []Mistake       `json:"incorrectQuestions"`
	FullResult         CanonicalResult `json:"fullResult"`
}

// BuildClientResult re-expresses a just-graded Result as the canonical
// client shape. Counters are recomputed from the question list so a
// stored record can never disagree with its own questions.
func BuildClientResult(r *Result) CanonicalResult {
	cr := CanonicalResult{
		Exam:        r.Exam,
		Difficulty:  r.Difficulty,
		CompletedAt: r.CompletedAt.UTC().Format(time.RFC3339),
		ResultID:    r.ResultID,
	}

	for _, gq := range r.Questions {
		choices := make([]ResultChoice, len(gq.Choices))
		for i, c := range gq.Choices {
			choices[i] = ResultChoice{Key: c.Key, Text: c.Text, Explanation: c.Explanation}
		}
		cr.Questions = append(cr.Questions, ResultQuestion{
			Number:         gq.Number,
			ID:             gq.ID,
			Text:           gq.Text,
			Choices:        choices,
			Answers:        append([]string(nil), gq.AnswerKeys...),
			UserAnswers:    append([]string(nil), gq.UserAnswers...),
			Correct:        gq.Correct,
			Unanswered:     gq.Unanswered,
			Difficulty:     gq.Question.Difficulty,
			MultipleAnswer: gq.MultipleAnswer,
			Explanation:    gq.Question.Explanation,
		})
	}

	correct := 0
	for _, q := range cr.Questions {
		if q.Correct {
			correct++
		}
	}
	total := r.Total
	if total < len(cr.Questions) {
		total = len(cr.Questions)
	}
	cr.Total = total
	cr.Correct = correct
	cr.Incorrect = total - correct
	cr.IncorrectQuestions = append([]Mistake(nil), r.Mistakes...)
	return cr
}

// BuildClientRecord projects a canonical result into the summary shape
// the browser's history store keeps per entry.
func BuildClientRecord(cr CanonicalResult, savedAt time.Time) ClientRecord {
	percent := 0
	if cr.Total > 0 {
		percent = int(math.Round(100 * float64(cr.Correct) / float64(cr.Total)))
	}
	return ClientRecord{
		ID:                 cr.ResultID,
		ResultID:           cr.ResultID,
		ExamID:             cr.Exam.ExamID,
		ExamTitle:          cr.Exam.ExamTitle,
		CategoryID:         cr.Exam.CategoryID,
		CategoryName:       cr.Exam.CategoryName,
		Difficulty:         cr.Difficulty,
		Correct:            cr.Correct,
		Incorrect:          cr.Incorrect,
		Total:              cr.Total,
		ScorePercent:       percent,
		CompletedAt:        cr.CompletedAt,
		SavedAt:            savedAt.UTC().Format(time.RFC3339),
		IncorrectQuestions: cr.IncorrectQuestions,
		FullResult:         cr,
	}
}

// NormalizeHistoryResult rebuilds a canonical result from a previously
// serialized payload of uncertain shape and version. It tolerates
// missing fields, two exam-metadata layouts, and scalar legacy forms
// of the answer fields. The only failure mode is "nothing to display":
// zero valid questions yields nil.
func NormalizeHistoryResult(payload any) *CanonicalResult {
	m, ok := payload.(map[string]any)
	if !ok {
		return nil
	}

	cr := &CanonicalResult{
		Exam:        historyExamInfo(m),
		Difficulty:  exam.SanitizeDifficultySelection(historyString(m, "difficulty")),
		CompletedAt: historyString(m, "completedAt"),
		ResultID:    historyString(m, "resultId", "id"),
	}

	rawQuestions, _ := m["questions"].([]any)
	for _, rq := range rawQuestions {
		if q, ok := normalizeResultQuestion(rq); ok {
			cr.Questions = append(cr.Questions, q)
		}
	}
	if len(cr.Questions) == 0 {
		return nil
	}

	counted := 0
	for _, q := range cr.Questions {
		if q.Correct {
			counted++
		}
	}
	total, ok := historyInt(m, "total")
	if !ok || total < len(cr.Questions) {
		total = len(cr.Questions)
	}
	// A stored correct counter that disagrees with the per-question
	// flags is inconsistent; the flags win, as when grading.
	cr.Total = total
	cr.Correct = counted
	cr.Incorrect = total - counted

	if raw, ok := m["incorrectQuestions"].([]any); ok {
		for _, rm := range raw {
			mm, ok := rm.(map[string]any)
			if !ok {
				continue
			}
			number, _ := historyInt(mm, "number")
			cr.IncorrectQuestions = append(cr.IncorrectQuestions, Mistake{
				Number:        number,
				Question:      historyString(mm, "question"),
				CorrectAnswer: historyString(mm, "correctAnswer"),
				UserAnswer:    historyString(mm, "userAnswer"),
				CorrectKeys:   toStringSlice(mm["correctKeys"]),
				UserKeys:      toStringSlice(mm["userKeys"]),
			})
		}
	}
	if len(cr.IncorrectQuestions) == 0 {
		cr.IncorrectQuestions = deriveMistakes(cr.Questions)
	}

	return cr
}

// normalizeResultQuestion converges one stored question onto the
// canonical shape, with safe defaults for everything missing.
func normalizeResultQuestion(raw any) (ResultQuestion, bool) {
	qm, ok := raw.(map[string]any)
	if !ok {
		return ResultQuestion{}, false
	}

	number, _ := historyInt(qm, "number")
	q := ResultQuestion{
		Number:      number,
		ID:          historyString(qm, "id"),
		Text:        historyString(qm, "text", "question"),
		Difficulty:  exam.NormalizeDifficulty(qm["difficulty"]),
		Explanation: exam.NormalizeExplanation(qm["explanation"]),
	}

	if rawChoices, ok := qm["choices"].([]any); ok {
		for _, rc := range rawChoices {
			switch c := rc.(type) {
			case map[string]any:
				q.Choices = append(q.Choices, ResultChoice{
					Key:         historyString(c, "key"),
					Text:        historyString(c, "text"),
					Explanation: exam.NormalizeExplanation(c["explanation"]),
				})
			case string:
				if t := strings.TrimSpace(c); t != "" {
					q.Choices = append(q.Choices, ResultChoice{Text: t})
				}
			}
		}
	}

	q.Answers = toStringSlice(qm["answers"])
	if len(q.Answers) == 0 {
		// legacy single-answer scalar
		q.Answers = toStringSlice(qm["answer"])
	}
	q.UserAnswers = toStringSlice(qm["userAnswers"])
	if len(q.UserAnswers) == 0 {
		q.UserAnswers = toStringSlice(qm["userAnswer"])
	}

	q.Correct, _ = qm["isCorrect"].(bool)
	if !q.Correct && len(q.Answers) > 0 && len(q.UserAnswers) > 0 {
		// legacy payloads lack the flag; recompute from the key sets
		q.Correct = sortedEqual(q.Answers, q.UserAnswers)
	}
	q.Unanswered = len(q.UserAnswers) == 0

	if mult, ok := qm["isMultipleAnswer"].(bool); ok {
		q.MultipleAnswer = mult
	} else {
		q.MultipleAnswer = len(q.Answers) > 1
	}

	return q, true
}

func deriveMistakes(questions []ResultQuestion) []Mistake {
	var out []Mistake
	for _, q := range questions {
		if q.Correct {
			continue
		}
		out = append(out, Mistake{
			Number:        q.Number,
			Question:      q.Text,
			CorrectAnswer: strings.Join(q.Answers, ", "),
			UserAnswer:    strings.Join(q.UserAnswers, ", "),
			CorrectKeys:   append([]string(nil), q.Answers...),
			UserKeys:      append([]string(nil), q.UserAnswers...),
		})
	}
	return out
}

// historyExamInfo reads either the nested exam{category{}} layout or
// the flat examId/examTitle/categoryId/categoryName one, preferring
// the nested shape.
func historyExamInfo(m map[string]any) ExamInfo {
	if em, ok := m["exam"].(map[string]any); ok {
		info := ExamInfo{
			ExamID:    historyString(em, "examId", "id"),
			ExamTitle: historyString(em, "examTitle", "title"),
		}
		if cm, ok := em["category"].(map[string]any); ok {
			info.CategoryID = historyString(cm, "id", "categoryId")
			info.CategoryName = historyString(cm, "name", "categoryName")
		} else {
			info.CategoryID = historyString(em, "categoryId")
			info.CategoryName = historyString(em, "categoryName")
		}
		return info
	}
	return ExamInfo{
		ExamID:       historyString(m, "examId"),
		ExamTitle:    historyString(m, "examTitle"),
		CategoryID:   historyString(m, "categoryId"),
		CategoryName: historyString(m, "categoryName"),
	}
}

func historyString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok {
			if t := strings.TrimSpace(s); t != "" {
				return t
			}
		}
	}
	return ""
}

func historyInt(m map[string]any, key string) (int, bool) {
	if f, ok := m[key].(float64); ok {
		return int(f), true
	}
	return 0, false
}

func toStringSlice(value any) []string {
	switch v := value.(type) {
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				if t := strings.TrimSpace(s); t != "" {
					out = append(out, t)
				}
			}
		}
		return out
	case string:
		if t := strings.TrimSpace(v); t != "" {
			return []string{t}
		}
		return nil
	default:
		return nil
	}
}
