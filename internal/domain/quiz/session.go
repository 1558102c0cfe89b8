package quiz

import (
	"math/rand"
	"time"

	"github.com/quizdrill/backend/internal/domain/exam"
)

// ExamInfo is the exam metadata snapshot a session carries. Results
// keep a copy so a stored result stays renderable after the catalog
// changes.
type ExamInfo struct {
	ExamID       string `json:"examId"`
	ExamTitle    string `json:"examTitle"`
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

// Session is one visitor's in-progress quiz. It owns an immutable
// snapshot of the sampled questions, so a catalog reload mid-quiz
// cannot affect it.
type Session struct {
	Exam       ExamInfo        `json:"exam"`
	Questions  []exam.Question `json:"questions"`
	Difficulty exam.Difficulty `json:"difficulty"`
	StartedAt  time.Time       `json:"startedAt"`
}

// NewSession samples count questions from the eligible pool, uniformly
// without replacement. The caller validates count against the pool.
func NewSession(e exam.Exam, difficulty exam.Difficulty, count int, pool []exam.Question) *Session {
	return &Session{
		Exam: ExamInfo{
			ExamID:       e.ID,
			ExamTitle:    e.Title,
			CategoryID:   e.Category.ID,
			CategoryName: e.Category.Name,
		},
		Questions:  sampleQuestions(pool, count),
		Difficulty: difficulty,
		StartedAt:  time.Now(),
	}
}

// sampleQuestions shuffles a copy of the pool and takes the first
// count entries.
func sampleQuestions(pool []exam.Question, count int) []exam.Question {
	shuffled := make([]exam.Question, len(pool))
	copy(shuffled, pool)

	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count < len(shuffled) {
		shuffled = shuffled[:count]
	}
	return shuffled
}
