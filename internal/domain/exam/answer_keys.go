package exam

import (
	"strconv"
	"strings"
	"unicode"
)

// ExtractAnswerKeyCandidates pulls candidate answer keys out of a raw
// answer value: a sequence of scalars, or a single scalar. Candidates
// containing whitespace or commas are split further; empties are
// dropped. Unsupported values yield no candidates.
func ExtractAnswerKeyCandidates(value any) []string {
	switch v := value.(type) {
	case []any:
		var out []string
		for _, item := range v {
			out = append(out, splitCandidate(item)...)
		}
		return out
	default:
		return splitCandidate(value)
	}
}

func splitCandidate(value any) []string {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(v)
	default:
		return nil
	}
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// NormalizeAnswerKeys resolves a raw answer value against a question's
// actual choice keys. The result is always a duplicate-free subsequence
// of validKeys in validKeys' own order, so grading can compare answer
// sets regardless of how the input was ordered or serialized.
func NormalizeAnswerKeys(value any, validKeys []string) []string {
	if len(validKeys) == 0 {
		return nil
	}
	candidates := ExtractAnswerKeyCandidates(value)
	if len(candidates) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		seen[c] = struct{}{}
	}
	var out []string
	for _, k := range validKeys {
		if _, ok := seen[k]; ok {
			out = append(out, k)
		}
	}
	return out
}
