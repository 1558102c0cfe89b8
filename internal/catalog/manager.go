package catalog

import (
	"log/slog"
	"sync"

	"github.com/quizdrill/backend/internal/domain/exam"
)

// Manager caches the loaded catalog process-wide. The question-bank
// directory is operator-curated, so reloads happen on an explicit
// trigger (API call or scheduler), never implicitly per request.
// Sessions hold their own snapshot of sampled questions, so a reload
// only affects future selections.
type Manager struct {
	dir    string
	logger *slog.Logger

	mu      sync.RWMutex
	current Catalog
}

func NewManager(dir string, logger *slog.Logger) *Manager {
	return &Manager{dir: dir, logger: logger}
}

// Reload re-ingests the question-bank directory and swaps the cached
// catalog.
func (m *Manager) Reload() Catalog {
	cat := Load(m.dir)

	m.mu.Lock()
	m.current = cat
	m.mu.Unlock()

	m.logger.Info("catalog loaded",
		"dir", m.dir,
		"exams", len(cat.Exams),
		"categories", len(cat.Categories),
		"diagnostics", len(cat.Diagnostics),
	)
	for _, d := range cat.Diagnostics {
		m.logger.Warn("catalog diagnostic", "detail", d)
	}
	return cat
}

// Catalog returns the cached catalog.
func (m *Manager) Catalog() Catalog {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// ExamByID looks up an exam in the cached catalog.
func (m *Manager) ExamByID(id string) (exam.Exam, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.current.Exams {
		if e.ID == id {
			return e, true
		}
	}
	return exam.Exam{}, false
}

// Search matches a free-text query against the cached catalog.
func (m *Manager) Search(query string) []exam.Exam {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return SearchExams(m.current.Exams, query)
}
