package quiz

import (
	"sort"
	"strings"
	"time"

	"github.com/quizdrill/backend/internal/domain/exam"
	"github.com/quizdrill/backend/internal/id"
)

// GradedQuestion is a sampled question plus the visitor's validated
// submission. Unanswered is display-only: an empty submission is still
// scored as incorrect.
type GradedQuestion struct {
	exam.Question
	Number      int
	UserAnswers []string
	Correct     bool
	Unanswered  bool
}

// Mistake summarizes one incorrect question for the result's
// side-list, both as display strings and raw key arrays.
type Mistake struct {
	Number        int      `json:"number"`
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correctAnswer"`
	UserAnswer    string   `json:"userAnswer"`
	CorrectKeys   []string `json:"correctKeys"`
	UserKeys      []string `json:"userKeys"`
}

// Result is a fully graded attempt. Built exactly once per grading
// event and owned by the caller; the server keeps nothing.
type Result struct {
	Exam        ExamInfo
	Total       int
	Correct     int
	Incorrect   int
	Difficulty  exam.Difficulty
	Questions   []GradedQuestion
	Mistakes    []Mistake
	CompletedAt time.Time
	ResultID    string
}

// Grade scores a submission against the session's sampled questions,
// in sampled order. A question is correct iff the submitted keys,
// resolved against that question's own choices, equal the canonical
// answer keys as a set.
func Grade(s *Session, submitted map[string]any) *Result {
	r := &Result{
		Exam:        s.Exam,
		Total:       len(s.Questions),
		Difficulty:  s.Difficulty,
		CompletedAt: time.Now(),
		ResultID:    id.NewToken(),
	}

	for i, q := range s.Questions {
		user := exam.NormalizeAnswerKeys(submitted[q.ID], q.ChoiceKeys())
		correct := len(q.AnswerKeys) > 0 && sortedEqual(q.AnswerKeys, user)

		r.Questions = append(r.Questions, GradedQuestion{
			Question:    q,
			Number:      i + 1,
			UserAnswers: user,
			Correct:     correct,
			Unanswered:  len(user) == 0,
		})

		if correct {
			r.Correct++
			continue
		}
		r.Mistakes = append(r.Mistakes, Mistake{
			Number:        i + 1,
			Question:      q.Text,
			CorrectAnswer: strings.Join(q.AnswerKeys, ", "),
			UserAnswer:    strings.Join(user, ", "),
			CorrectKeys:   append([]string(nil), q.AnswerKeys...),
			UserKeys:      user,
		})
	}

	r.Incorrect = r.Total - r.Correct
	return r
}

func sortedEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
