package store

import "errors"

var (
	ErrNotFound = errors.New("not found")
)

// Preferences is the sticky selection a returning visitor resumes
// with: last category, exam, and difficulty.
type Preferences struct {
	CategoryID string `json:"categoryId"`
	ExamID     string `json:"examId"`
	Difficulty string `json:"difficulty"`
}

// DefaultPreferences is what a visitor without stored preferences
// gets.
func DefaultPreferences() Preferences {
	return Preferences{Difficulty: "random"}
}
