package exam_test

import (
	"testing"

	"github.com/quizdrill/backend/internal/domain/exam"
)

func TestNormalizeExplanation_String(t *testing.T) {
	e := exam.NormalizeExplanation("  because DNS  ")

	if e.Text != "because DNS" {
		t.Errorf("expected trimmed text, got %q", e.Text)
	}
	if e.Reference != "" || e.ReferenceLabel != "" {
		t.Errorf("expected empty reference fields, got %+v", e)
	}
}

func TestNormalizeExplanation_Object(t *testing.T) {
	e := exam.NormalizeExplanation(map[string]any{
		"text":      " see the docs ",
		"reference": "https://example.com/vpc",
		"label":     "VPC guide",
	})

	if e.Text != "see the docs" {
		t.Errorf("unexpected text %q", e.Text)
	}
	if e.Reference != "https://example.com/vpc" {
		t.Errorf("unexpected reference %q", e.Reference)
	}
	if e.ReferenceLabel != "VPC guide" {
		t.Errorf("unexpected label %q", e.ReferenceLabel)
	}
}

func TestNormalizeExplanation_Aliases(t *testing.T) {
	e := exam.NormalizeExplanation(map[string]any{
		"description": "alias text",
		"url":         "https://example.com",
	})
	if e.Text != "alias text" || e.Reference != "https://example.com" {
		t.Errorf("aliases not resolved: %+v", e)
	}

	e = exam.NormalizeExplanation(map[string]any{"link": "https://example.org"})
	if e.Reference != "https://example.org" {
		t.Errorf("link alias not resolved: %+v", e)
	}
}

func TestNormalizeExplanation_Garbage(t *testing.T) {
	for _, in := range []any{nil, 12.0, true, []any{"x"}} {
		e := exam.NormalizeExplanation(in)
		if e.HasContent() {
			t.Errorf("NormalizeExplanation(%v) should be empty, got %+v", in, e)
		}
	}
}

func TestExplanationHasContent(t *testing.T) {
	if (exam.Explanation{}).HasContent() {
		t.Error("empty explanation should have no content")
	}
	if (exam.Explanation{Text: "   "}).HasContent() {
		t.Error("whitespace-only explanation should have no content")
	}
	if !(exam.Explanation{Reference: "https://example.com"}).HasContent() {
		t.Error("reference-only explanation should have content")
	}
	if !(exam.Explanation{ReferenceLabel: "RFC 1034"}).HasContent() {
		t.Error("label-only explanation should have content")
	}
}
