// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	_ "modernc.org/sqlite"

	"github.com/quizdrill/backend/internal/domain/exam"
	"github.com/quizdrill/backend/internal/domain/quiz"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
    token TEXT PRIMARY KEY,
    exam_id TEXT NOT NULL,
    exam_title TEXT NOT NULL,
    category_id TEXT NOT NULL,
    category_name TEXT NOT NULL,
    difficulty TEXT NOT NULL,
    started_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS session_questions (
    token TEXT NOT NULL,
    question_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    payload TEXT NOT NULL,
    PRIMARY KEY (token, question_id),
    FOREIGN KEY (token) REFERENCES sessions(token)
);

CREATE TABLE IF NOT EXISTS preferences (
    token TEXT PRIMARY KEY,
    category_id TEXT NOT NULL DEFAULT '',
    exam_id TEXT NOT NULL DEFAULT '',
    difficulty TEXT NOT NULL DEFAULT 'random'
);
`

// SQLiteStore persists per-visitor quiz sessions and sticky selection
// preferences, keyed by the visitor's opaque token. Results are never
// stored here; the history lives with the client.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Sessions
// ============================================================================

// SaveSession replaces the visitor's active session. Sampled questions
// are stored JSON-encoded, position-ordered, so the session snapshot
// survives server restarts and catalog reloads untouched.
func (s *SQLiteStore) SaveSession(ctx context.Context, token string, session *quiz.Session) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM session_questions WHERE token = ?", token); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?", token); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO sessions (token, exam_id, exam_title, category_id, category_name, difficulty, started_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		token, session.Exam.ExamID, session.Exam.ExamTitle, session.Exam.CategoryID, session.Exam.CategoryName,
		string(session.Difficulty), session.StartedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}

	for i, q := range session.Questions {
		payload, err := json.Marshal(q)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO session_questions (token, question_id, position, payload) VALUES (?, ?, ?, ?)",
			token, q.ID, i, string(payload),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetSession(ctx context.Context, token string) (*quiz.Session, error) {
	var session quiz.Session
	var difficulty, startedAt string

	err := s.db.QueryRowContext(ctx,
		"SELECT exam_id, exam_title, category_id, category_name, difficulty, started_at FROM sessions WHERE token = ?",
		token,
	).Scan(&session.Exam.ExamID, &session.Exam.ExamTitle, &session.Exam.CategoryID, &session.Exam.CategoryName, &difficulty, &startedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	session.Difficulty = exam.Difficulty(difficulty)
	if t, err := time.Parse(time.RFC3339, startedAt); err == nil {
		session.StartedAt = t
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT payload FROM session_questions WHERE token = ? ORDER BY position",
		token,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var q exam.Question
		if err := json.Unmarshal([]byte(payload), &q); err != nil {
			return nil, err
		}
		session.Questions = append(session.Questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &session, nil
}

func (s *SQLiteStore) DeleteSession(ctx context.Context, token string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM session_questions WHERE token = ?", token); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?", token); err != nil {
		return err
	}

	return tx.Commit()
}

// ============================================================================
// Preferences
// ============================================================================

func (s *SQLiteStore) SavePreferences(ctx context.Context, token string, p Preferences) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (token, category_id, exam_id, difficulty) VALUES (?, ?, ?, ?)
		ON CONFLICT(token) DO UPDATE SET category_id = excluded.category_id, exam_id = excluded.exam_id, difficulty = excluded.difficulty
	`, token, p.CategoryID, p.ExamID, p.Difficulty)
	return err
}

// GetPreferences returns the visitor's sticky selection, or the
// defaults when nothing is stored yet.
func (s *SQLiteStore) GetPreferences(ctx context.Context, token string) (Preferences, error) {
	var p Preferences
	err := s.db.QueryRowContext(ctx,
		"SELECT category_id, exam_id, difficulty FROM preferences WHERE token = ?",
		token,
	).Scan(&p.CategoryID, &p.ExamID, &p.Difficulty)
	if err == sql.ErrNoRows {
		return DefaultPreferences(), nil
	}
	if err != nil {
		return Preferences{}, err
	}
	return p, nil
}

func (s *SQLiteStore) DeletePreferences(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM preferences WHERE token = ?", token)
	return err
}
