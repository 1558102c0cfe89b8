package exam

import "strings"

// NormalizeExplanation converges the explanation shapes found in
// question files into one Explanation. A bare string is explanation
// text; an object may name its fields text/description,
// reference/url/link and referenceLabel/reference_label/label.
// Anything else yields an empty Explanation — this never fails.
func NormalizeExplanation(value any) Explanation {
	switch v := value.(type) {
	case string:
		return Explanation{Text: strings.TrimSpace(v)}
	case map[string]any:
		return Explanation{
			Text:           stringField(v, "text", "description"),
			Reference:      stringField(v, "reference", "url", "link"),
			ReferenceLabel: stringField(v, "referenceLabel", "reference_label", "label"),
		}
	default:
		return Explanation{}
	}
}
