package exam

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

// Default category used when a file carries no usable category info.
const (
	DefaultCategoryID   = "uncategorized"
	DefaultCategoryName = "その他"
)

var (
	nonIdentRun  = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
	underscoreRun = regexp.MustCompile(`_+`)
)

// NormalizeCategoryID turns arbitrary free text into a slug matching
// [a-z0-9_-]+. It never fails: input that normalizes to nothing yields
// the literal "category".
func NormalizeCategoryID(label string) string {
	s := strings.TrimSpace(label)
	if s == "" {
		return "category"
	}
	s = nonIdentRun.ReplaceAllString(s, "_")
	s = underscoreRun.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "category"
	}
	return strings.ToLower(s)
}

// NormalizeCategory resolves the category field of an exam file, which
// may be absent, a bare string, or an object with id/name fields (name
// also appears as "title" or "label" in older files).
func NormalizeCategory(value any) Category {
	switch v := value.(type) {
	case string:
		name := strings.TrimSpace(v)
		if name == "" {
			return defaultCategory()
		}
		return Category{ID: NormalizeCategoryID(name), Name: name}
	case map[string]any:
		id := stringField(v, "id")
		name := stringField(v, "name", "title", "label")
		if name == "" {
			return defaultCategory()
		}
		if id == "" {
			id = name
		}
		return Category{ID: NormalizeCategoryID(id), Name: name}
	default:
		return defaultCategory()
	}
}

func defaultCategory() Category {
	return Category{ID: DefaultCategoryID, Name: DefaultCategoryName}
}

// difficultySynonyms covers the English and Japanese labels seen in
// hand-authored banks.
var difficultySynonyms = map[string]Difficulty{
	"easy":         DifficultyEasy,
	"beginner":     DifficultyEasy,
	"basic":        DifficultyEasy,
	"simple":       DifficultyEasy,
	"初級":           DifficultyEasy,
	"易しい":          DifficultyEasy,
	"やさしい":         DifficultyEasy,
	"簡単":           DifficultyEasy,
	"normal":       DifficultyNormal,
	"medium":       DifficultyNormal,
	"standard":     DifficultyNormal,
	"intermediate": DifficultyNormal,
	"中級":           DifficultyNormal,
	"普通":           DifficultyNormal,
	"標準":           DifficultyNormal,
	"hard":         DifficultyHard,
	"difficult":    DifficultyHard,
	"advanced":     DifficultyHard,
	"expert":       DifficultyHard,
	"上級":           DifficultyHard,
	"難しい":          DifficultyHard,
	"むずかしい":        DifficultyHard,
	"難問":           DifficultyHard,
}

// NormalizeDifficulty maps a raw per-question difficulty value to its
// canonical tag. Non-string, empty, and unknown values all fall back to
// normal.
func NormalizeDifficulty(value any) Difficulty {
	s, ok := value.(string)
	if !ok {
		return DifficultyNormal
	}
	s = strings.ToLower(strings.TrimSpace(s))
	if d, ok := difficultySynonyms[s]; ok {
		return d
	}
	return DifficultyNormal
}

// SanitizeDifficultySelection validates a difficulty chosen in the
// selection UI. Unlike NormalizeDifficulty it accepts only the exact
// canonical keys, and anything else means "any difficulty".
func SanitizeDifficultySelection(value string) Difficulty {
	switch Difficulty(value) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyRandom:
		return Difficulty(value)
	default:
		return DifficultyRandom
	}
}

// NormalizeSearchText canonicalizes text for substring matching: runs
// of whitespace collapse to a single space, half/full-width variants
// are folded, and the result is lowercased.
func NormalizeSearchText(text string) string {
	s := strings.Join(strings.Fields(text), " ")
	if s == "" {
		return ""
	}
	return strings.ToLower(width.Fold.String(s))
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}

// stringField returns the first of the given keys that holds a
// non-empty string, trimmed.
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
