package catalog

import (
	"strings"

	"github.com/quizdrill/backend/internal/domain/exam"
)

// ExtractSearchKeywords splits a free-text query into normalized
// tokens, dropping empties and duplicates (first occurrence wins).
func ExtractSearchKeywords(query string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, tok := range strings.Fields(query) {
		t := exam.NormalizeSearchText(tok)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// BuildExamSearchIndex denormalizes an exam's metadata into one
// normalized string for substring matching.
func BuildExamSearchIndex(e exam.Exam) string {
	var parts []string
	for _, s := range []string{e.ID, e.Title, e.Description, e.Version, e.Category.ID, e.Category.Name} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return exam.NormalizeSearchText(strings.Join(parts, " "))
}

// SearchExams returns the exams whose search index contains every
// keyword of the query as a substring, preserving the exams' relative
// order. An empty query matches nothing.
func SearchExams(exams []exam.Exam, query string) []exam.Exam {
	keywords := ExtractSearchKeywords(query)
	if len(keywords) == 0 {
		return nil
	}

	var out []exam.Exam
	for _, e := range exams {
		index := BuildExamSearchIndex(e)
		matched := true
		for _, kw := range keywords {
			if !strings.Contains(index, kw) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, e)
		}
	}
	return out
}
