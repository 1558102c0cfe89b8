package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/quizdrill/backend/internal/catalog"
	"github.com/quizdrill/backend/internal/domain/exam"
	"github.com/quizdrill/backend/internal/domain/quiz"
	"github.com/quizdrill/backend/internal/store"
)

// ErrNoActiveSession is returned when an operation needs an active
// quiz but the visitor has none (expired, submitted, or never
// started). The caller should send the visitor back to selection.
var ErrNoActiveSession = errors.New("no active quiz session")

// ValidationError carries a user-facing message for a recoverable
// request problem. The quiz stays in (or returns to) the selection
// state.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Store is the per-visitor state the quiz flow needs: the active
// session and the sticky selection, keyed by the visitor token.
type Store interface {
	SaveSession(ctx context.Context, token string, s *quiz.Session) error
	GetSession(ctx context.Context, token string) (*quiz.Session, error)
	DeleteSession(ctx context.Context, token string) error
	SavePreferences(ctx context.Context, token string, p store.Preferences) error
	GetPreferences(ctx context.Context, token string) (store.Preferences, error)
	DeletePreferences(ctx context.Context, token string) error
}

// QuizService drives the quiz flow: selection, start, submit, reset,
// and history replay.
type QuizService struct {
	catalog *catalog.Manager
	store   Store
	logger  *slog.Logger
}

func NewQuizService(cat *catalog.Manager, st Store, logger *slog.Logger) *QuizService {
	return &QuizService{
		catalog: cat,
		store:   st,
		logger:  logger,
	}
}

// Selection returns the visitor's sticky category/exam/difficulty.
func (s *QuizService) Selection(ctx context.Context, token string) (store.Preferences, error) {
	return s.store.GetPreferences(ctx, token)
}

// UpdateSelection stores a new sticky selection. The difficulty is
// sanitized to a canonical selection value; unknown values mean "any".
func (s *QuizService) UpdateSelection(ctx context.Context, token string, p store.Preferences) (store.Preferences, error) {
	p.Difficulty = string(exam.SanitizeDifficultySelection(p.Difficulty))
	if err := s.store.SavePreferences(ctx, token, p); err != nil {
		return store.Preferences{}, err
	}
	return p, nil
}

// ClearSelection drops the sticky selection, as when the visitor
// navigates back to the landing page.
func (s *QuizService) ClearSelection(ctx context.Context, token string) error {
	return s.store.DeletePreferences(ctx, token)
}

// StartQuiz validates the request, samples the questions, and makes
// the result the visitor's active session.
func (s *QuizService) StartQuiz(ctx context.Context, token, examID, difficulty string, count int) (*quiz.Session, error) {
	e, ok := s.catalog.ExamByID(examID)
	if !ok {
		return nil, validationf("unknown exam %q", examID)
	}
	if count < 1 {
		return nil, validationf("question count must be at least 1")
	}
	if len(e.Questions) == 0 {
		return nil, validationf("exam %q has no questions", examID)
	}

	d := exam.SanitizeDifficultySelection(difficulty)
	pool := exam.FilterByDifficulty(e.Questions, d)
	if len(pool) == 0 {
		return nil, validationf("no questions available for difficulty %q", d)
	}
	if count > len(pool) {
		return nil, validationf("only %d question(s) available for this selection", len(pool))
	}

	session := quiz.NewSession(e, d, count, pool)
	if err := s.store.SaveSession(ctx, token, session); err != nil {
		return nil, err
	}

	// The selection becomes the sticky default for the next visit.
	if err := s.store.SavePreferences(ctx, token, store.Preferences{
		CategoryID: e.Category.ID,
		ExamID:     e.ID,
		Difficulty: string(d),
	}); err != nil {
		s.logger.Warn("failed to save selection preferences", "error", err)
	}

	s.logger.Info("quiz started", "exam", e.ID, "difficulty", d, "count", count)
	return session, nil
}

// ActiveSession returns the visitor's in-progress quiz, so a page
// reload can resume it.
func (s *QuizService) ActiveSession(ctx context.Context, token string) (*quiz.Session, error) {
	session, err := s.store.GetSession(ctx, token)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNoActiveSession
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// SubmitAnswers grades the active session and clears it. The graded
// result is returned to the caller and not retained.
func (s *QuizService) SubmitAnswers(ctx context.Context, token string, answers map[string]any) (*quiz.Result, error) {
	session, err := s.store.GetSession(ctx, token)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNoActiveSession
	}
	if err != nil {
		return nil, err
	}

	result := quiz.Grade(session, answers)

	if err := s.store.DeleteSession(ctx, token); err != nil {
		s.logger.Warn("failed to clear graded session", "error", err)
	}

	s.logger.Info("quiz graded",
		"exam", result.Exam.ExamID,
		"correct", result.Correct,
		"total", result.Total,
		"resultId", result.ResultID,
	)
	return result, nil
}

// ResetSession abandons the active quiz, keeping the sticky selection
// so the visitor lands back on a pre-filled form.
func (s *QuizService) ResetSession(ctx context.Context, token string) error {
	return s.store.DeleteSession(ctx, token)
}

// ViewHistoryResult rebuilds a canonical result from a client-stored
// payload. It never touches the active session.
func (s *QuizService) ViewHistoryResult(payload any) (*quiz.CanonicalResult, error) {
	result := quiz.NormalizeHistoryResult(payload)
	if result == nil {
		return nil, validationf("stored result cannot be displayed")
	}
	return result, nil
}
