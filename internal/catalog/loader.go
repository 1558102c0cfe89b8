package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/quizdrill/backend/internal/domain/exam"
	"github.com/quizdrill/backend/internal/worker"
)

// parseWorkers bounds the per-file parse fan-out during a load.
const parseWorkers = 4

// Catalog is the result of ingesting a question-bank directory. Every
// per-file and per-question problem is a diagnostic, never a failure:
// a bad file contributes nothing but the rest of the catalog loads.
type Catalog struct {
	Exams       []exam.Exam
	Categories  []exam.Category
	Diagnostics []string
}

type fileResult struct {
	exam  *exam.Exam
	diags []string
}

// Load reads every exam file in dir and assembles the catalog. Files
// are processed in natural filename order so diagnostics and
// duplicate-id resolution are deterministic; a missing directory
// yields an empty catalog with one diagnostic.
func Load(dir string) Catalog {
	cat := Catalog{Diagnostics: []string{}}

	entries, err := os.ReadDir(dir)
	if err != nil {
		cat.Diagnostics = append(cat.Diagnostics, fmt.Sprintf("question bank directory %q cannot be read: %v", dir, err))
		return cat
	}

	var files []string
	for _, ent := range entries {
		if ent.IsDir() || !strings.EqualFold(filepath.Ext(ent.Name()), ".json") {
			continue
		}
		files = append(files, ent.Name())
	}
	sort.Slice(files, func(i, j int) bool { return naturalLess(files[i], files[j]) })
	if len(files) == 0 {
		return cat
	}

	// Parse files concurrently, then merge in filename order.
	pool := worker.NewPool[fileResult](parseWorkers, len(files))
	for _, name := range files {
		pool.Submit(name, func() fileResult { return parseFile(dir, name) })
	}
	byFile := make(map[string]fileResult, len(files))
	for range files {
		r := <-pool.Results()
		byFile[r.JobID] = r.Output
	}
	pool.Close()

	seenExam := make(map[string]string) // exam id -> source file
	catByID := make(map[string]*exam.Category)
	var catOrder []string

	for _, name := range files {
		r := byFile[name]
		cat.Diagnostics = append(cat.Diagnostics, r.diags...)
		if r.exam == nil {
			continue
		}
		e := *r.exam

		if prev, dup := seenExam[e.ID]; dup {
			cat.Diagnostics = append(cat.Diagnostics, fmt.Sprintf("%s: duplicate exam id %q, keeping the one from %s", name, e.ID, prev))
			continue
		}
		seenExam[e.ID] = name

		if existing, ok := catByID[e.Category.ID]; ok {
			// First occurrence establishes the display name.
			if e.Category.Name != existing.Name && e.Category.Name != "" {
				cat.Diagnostics = append(cat.Diagnostics, fmt.Sprintf("%s: category %q is already named %q, ignoring name %q", name, e.Category.ID, existing.Name, e.Category.Name))
			}
			e.Category.Name = existing.Name
		} else {
			c := e.Category
			c.ExamIDs = nil
			catByID[c.ID] = &c
			catOrder = append(catOrder, c.ID)
		}

		cat.Exams = append(cat.Exams, e)
	}

	sort.SliceStable(cat.Exams, func(i, j int) bool {
		a := strings.ToLower(cat.Exams[i].Title)
		b := strings.ToLower(cat.Exams[j].Title)
		if a == b {
			return cat.Exams[i].ID < cat.Exams[j].ID
		}
		return a < b
	})

	// Category exam lists mirror the sorted exam order, not insertion
	// order, so every listing presents exams consistently.
	for _, e := range cat.Exams {
		c := catByID[e.Category.ID]
		c.ExamIDs = append(c.ExamIDs, e.ID)
	}
	for _, id := range catOrder {
		c := catByID[id]
		if len(c.ExamIDs) == 0 {
			continue
		}
		cat.Categories = append(cat.Categories, *c)
	}
	sort.SliceStable(cat.Categories, func(i, j int) bool {
		a := strings.ToLower(cat.Categories[i].Name)
		b := strings.ToLower(cat.Categories[j].Name)
		if a == b {
			return cat.Categories[i].ID < cat.Categories[j].ID
		}
		return a < b
	})

	return cat
}

func parseFile(dir, name string) fileResult {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fileResult{diags: []string{fmt.Sprintf("%s: cannot read file: %v", name, err)}}
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fileResult{diags: []string{fmt.Sprintf("%s: invalid JSON: %v", name, err)}}
	}

	meta, ok := doc["exam"].(map[string]any)
	if !ok {
		return fileResult{diags: []string{fmt.Sprintf("%s: missing \"exam\" section", name)}}
	}
	rawQuestions, ok := doc["questions"].([]any)
	if !ok {
		return fileResult{diags: []string{fmt.Sprintf("%s: missing \"questions\" section", name)}}
	}

	examID := stringField(meta, "id")
	if examID == "" {
		examID = strings.TrimSuffix(name, filepath.Ext(name))
	}
	title := stringField(meta, "title")
	if title == "" {
		title = examID
	}

	e := exam.Exam{
		ID:          examID,
		Title:       title,
		Description: stringField(meta, "description"),
		Version:     stringField(meta, "version"),
		SourceFile:  name,
		Category:    exam.NormalizeCategory(meta["category"]),
	}

	var skipped, duplicated []string
	seenID := make(map[string]struct{}, len(rawQuestions))
	for i, rq := range rawQuestions {
		q, skipID, ok := buildQuestion(examID, i, rq)
		if !ok {
			skipped = append(skipped, skipID)
			continue
		}
		// Question ids key answer submissions and session rows, so
		// they must be unique within the exam. First occurrence wins,
		// like duplicate exam ids across files.
		if _, dup := seenID[q.ID]; dup {
			duplicated = append(duplicated, q.ID)
			continue
		}
		seenID[q.ID] = struct{}{}
		e.Questions = append(e.Questions, q)
	}

	var diags []string
	if len(skipped) > 0 {
		diags = append(diags, fmt.Sprintf("%s: skipped %d invalid question(s): %s", name, len(skipped), strings.Join(skipped, ", ")))
	}
	if len(duplicated) > 0 {
		diags = append(diags, fmt.Sprintf("%s: skipped %d question(s) with duplicate id(s): %s", name, len(duplicated), strings.Join(duplicated, ", ")))
	}
	if len(e.Questions) == 0 {
		diags = append(diags, fmt.Sprintf("%s: no usable questions, exam not loaded", name))
		return fileResult{diags: diags}
	}
	return fileResult{exam: &e, diags: diags}
}

// buildQuestion validates and normalizes one raw question entry. The
// bool result is false when the entry must be skipped; skipID is then
// the id to cite in the file's skip diagnostic.
func buildQuestion(examID string, index int, raw any) (exam.Question, string, bool) {
	syntheticID := fmt.Sprintf("%s-q%d", examID, index+1)

	qm, ok := raw.(map[string]any)
	if !ok {
		return exam.Question{}, syntheticID, false
	}
	id := stringField(qm, "id")
	if id == "" {
		id = syntheticID
	}

	text := stringField(qm, "question")
	if text == "" {
		return exam.Question{}, id, false
	}

	rawChoices, ok := qm["choices"].([]any)
	if !ok || len(rawChoices) == 0 {
		return exam.Question{}, id, false
	}

	rawAnswer, ok := qm["answers"]
	if !ok {
		rawAnswer, ok = qm["answer"]
	}
	if !ok || len(exam.ExtractAnswerKeyCandidates(rawAnswer)) == 0 {
		return exam.Question{}, id, false
	}

	choiceExpl, _ := qm["choice_explanations"].(map[string]any)
	choices := buildChoices(rawChoices, choiceExpl)
	if len(choices) < 2 {
		return exam.Question{}, id, false
	}

	keys := make([]string, len(choices))
	for i, c := range choices {
		keys[i] = c.Key
	}
	answers := exam.NormalizeAnswerKeys(rawAnswer, keys)
	if len(answers) == 0 {
		return exam.Question{}, id, false
	}

	return exam.Question{
		ID:             id,
		Text:           text,
		Choices:        choices,
		AnswerKeys:     answers,
		Explanation:    exam.NormalizeExplanation(qm["explanation"]),
		Difficulty:     exam.NormalizeDifficulty(qm["difficulty"]),
		MultipleAnswer: len(answers) > 1,
	}, "", true
}

// buildChoices normalizes raw choices in source order: keys default to
// the position letter, colliding keys get a numeric suffix, and
// choices without text are dropped silently.
func buildChoices(rawChoices []any, choiceExpl map[string]any) []exam.Choice {
	seen := make(map[string]struct{}, len(rawChoices))
	var out []exam.Choice

	for i, rc := range rawChoices {
		var key, text string
		var expl exam.Explanation

		switch c := rc.(type) {
		case map[string]any:
			key = stringField(c, "key")
			text = stringField(c, "text")
			expl = exam.NormalizeExplanation(c["explanation"])
			if !expl.HasContent() {
				// Legacy per-choice fields predate the explanation object.
				legacy := exam.Explanation{
					Text:           stringField(c, "detail"),
					Reference:      stringField(c, "reference"),
					ReferenceLabel: stringField(c, "reference_label"),
				}
				if legacy.HasContent() {
					expl = legacy
				}
			}
		case string:
			text = strings.TrimSpace(c)
		case float64:
			text = strconv.FormatFloat(c, 'f', -1, 64)
		default:
			continue
		}

		if text == "" {
			continue
		}
		if key == "" {
			key = autoKey(i)
		}
		if !expl.HasContent() && choiceExpl != nil {
			if v, ok := choiceExpl[key]; ok {
				expl = exam.NormalizeExplanation(v)
			}
		}

		final := key
		for n := 2; ; n++ {
			if _, dup := seen[final]; !dup {
				break
			}
			final = key + strconv.Itoa(n)
		}
		seen[final] = struct{}{}

		out = append(out, exam.Choice{Key: final, Text: text, Explanation: expl})
	}
	return out
}

func autoKey(index int) string {
	return string(rune('A' + index%26))
}

// stringField returns the first of the given keys holding a non-empty
// string, trimmed.
func stringField(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok {
			if t := strings.TrimSpace(s); t != "" {
				return t
			}
		}
	}
	return ""
}

// naturalLess orders filenames so that embedded numbers compare
// numerically: exam2.json before exam10.json.
func naturalLess(a, b string) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		if isDigit(ca) && isDigit(cb) {
			si, sj := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			na := strings.TrimLeft(a[si:i], "0")
			nb := strings.TrimLeft(b[sj:j], "0")
			if len(na) != len(nb) {
				return len(na) < len(nb)
			}
			if na != nb {
				return na < nb
			}
			continue
		}
		if ca != cb {
			return ca < cb
		}
		i++
		j++
	}
	return len(a)-i < len(b)-j
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
