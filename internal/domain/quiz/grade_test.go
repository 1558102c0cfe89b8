package quiz_test

import (
	"testing"

	"github.com/quizdrill/backend/internal/domain/exam"
	"github.com/quizdrill/backend/internal/domain/quiz"
)

func gradingSession() *quiz.Session {
	multi := exam.Question{
		ID:   "multi",
		Text: "Pick two.",
		Choices: []exam.Choice{
			{Key: "A", Text: "a"}, {Key: "B", Text: "b"},
			{Key: "C", Text: "c"}, {Key: "D", Text: "d"},
		},
		AnswerKeys:     []string{"B", "D"},
		MultipleAnswer: true,
	}
	single := exam.Question{
		ID:   "single",
		Text: "Pick one.",
		Choices: []exam.Choice{
			{Key: "A", Text: "a"}, {Key: "B", Text: "b"},
		},
		AnswerKeys: []string{"A"},
	}
	return &quiz.Session{
		Exam:       quiz.ExamInfo{ExamID: "e1", ExamTitle: "Exam"},
		Questions:  []exam.Question{multi, single},
		Difficulty: exam.DifficultyRandom,
	}
}

func TestGrade_ExactSetEquality(t *testing.T) {
	r := quiz.Grade(gradingSession(), map[string]any{
		"multi":  []any{"D", "B"}, // order must not matter
		"single": "A",
	})

	if r.Correct != 2 || r.Incorrect != 0 || r.Total != 2 {
		t.Fatalf("expected 2/2 correct, got correct=%d incorrect=%d total=%d", r.Correct, r.Incorrect, r.Total)
	}
	if len(r.Mistakes) != 0 {
		t.Errorf("expected no mistakes, got %v", r.Mistakes)
	}
	// user answers come back in choice order
	if got := r.Questions[0].UserAnswers; len(got) != 2 || got[0] != "B" || got[1] != "D" {
		t.Errorf("expected user answers [B D], got %v", got)
	}
}

func TestGrade_PartialOverlapIsIncorrect(t *testing.T) {
	r := quiz.Grade(gradingSession(), map[string]any{
		"multi":  []any{"B"}, // one of two
		"single": "A",
	})

	if r.Correct != 1 || r.Incorrect != 1 {
		t.Fatalf("expected 1 correct 1 incorrect, got %d/%d", r.Correct, r.Incorrect)
	}
	if len(r.Mistakes) != 1 {
		t.Fatalf("expected 1 mistake, got %d", len(r.Mistakes))
	}
	m := r.Mistakes[0]
	if m.Number != 1 || m.Question != "Pick two." {
		t.Errorf("unexpected mistake %+v", m)
	}
	if m.CorrectAnswer != "B, D" || m.UserAnswer != "B" {
		t.Errorf("unexpected mistake display strings %+v", m)
	}
}

func TestGrade_SupersetIsIncorrect(t *testing.T) {
	r := quiz.Grade(gradingSession(), map[string]any{
		"multi":  []any{"A", "B", "D"},
		"single": []any{"A", "B"},
	})

	if r.Correct != 0 {
		t.Errorf("supersets must not count as correct, got %d correct", r.Correct)
	}
}

func TestGrade_UnansweredIsIncorrect(t *testing.T) {
	r := quiz.Grade(gradingSession(), map[string]any{"single": "A"})

	if r.Correct != 1 {
		t.Fatalf("expected 1 correct, got %d", r.Correct)
	}
	gq := r.Questions[0]
	if gq.Correct {
		t.Error("unanswered question must be scored incorrect")
	}
	if !gq.Unanswered {
		t.Error("expected unanswered flag")
	}
	if r.Questions[1].Unanswered {
		t.Error("answered question should not be flagged unanswered")
	}
}

func TestGrade_ForeignKeysDropped(t *testing.T) {
	// keys that belong to a different question are ignored
	r := quiz.Grade(gradingSession(), map[string]any{
		"single": []any{"A", "Z", "C"},
	})

	gq := r.Questions[1]
	if len(gq.UserAnswers) != 1 || gq.UserAnswers[0] != "A" {
		t.Errorf("expected foreign keys dropped, got %v", gq.UserAnswers)
	}
	if !gq.Correct {
		t.Error("expected question to be correct after dropping foreign keys")
	}
}

func TestGrade_GeneratesResultID(t *testing.T) {
	a := quiz.Grade(gradingSession(), nil)
	b := quiz.Grade(gradingSession(), nil)

	if a.ResultID == "" || b.ResultID == "" {
		t.Fatal("expected result ids")
	}
	if a.ResultID == b.ResultID {
		t.Error("expected unique result ids")
	}
	if a.CompletedAt.IsZero() {
		t.Error("expected completion timestamp")
	}
}
