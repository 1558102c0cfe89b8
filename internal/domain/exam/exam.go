package exam

// Difficulty tags a question. Random is only valid as a selection value
// and means "any difficulty".
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
	DifficultyRandom Difficulty = "random"
)

// Explanation is the canonical form of the several explanation shapes
// found in hand-authored question files.
type Explanation struct {
	Text           string `json:"text"`
	Reference      string `json:"reference"`
	ReferenceLabel string `json:"referenceLabel"`
}

// HasContent reports whether any field carries non-whitespace text.
func (e Explanation) HasContent() bool {
	return trimmed(e.Text) != "" || trimmed(e.Reference) != "" || trimmed(e.ReferenceLabel) != ""
}

type Choice struct {
	Key         string      `json:"key"`
	Text        string      `json:"text"`
	Explanation Explanation `json:"explanation"`
}

type Question struct {
	ID          string      `json:"id"`
	Text        string      `json:"text"`
	Choices     []Choice    `json:"choices"`
	AnswerKeys  []string    `json:"answers"` // always in choice-defined order
	Explanation Explanation `json:"explanation"`
	Difficulty  Difficulty  `json:"difficulty"`

	// MultipleAnswer is derived at load time: len(AnswerKeys) > 1.
	MultipleAnswer bool `json:"isMultipleAnswer"`
}

// ChoiceKeys returns the question's choice keys in their defined order.
func (q Question) ChoiceKeys() []string {
	keys := make([]string, len(q.Choices))
	for i, c := range q.Choices {
		keys[i] = c.Key
	}
	return keys
}

type Category struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	ExamIDs []string `json:"examIds"`
}

type Exam struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Version     string     `json:"version"`
	SourceFile  string     `json:"sourceFile"`
	Category    Category   `json:"category"`
	Questions   []Question `json:"questions"`
}

func (e Exam) QuestionCount() int {
	return len(e.Questions)
}
