package exam_test

import (
	"reflect"
	"testing"

	"github.com/quizdrill/backend/internal/domain/exam"
)

func TestExtractAnswerKeyCandidates(t *testing.T) {
	cases := []struct {
		in   any
		want []string
	}{
		{[]any{"A, B", " C "}, []string{"A", "B", "C"}},
		{"A B", []string{"A", "B"}},
		{"A", []string{"A"}},
		{[]any{"A", 2.0}, []string{"A", "2"}},
		{[]any{"", "  ", ","}, nil},
		{[]any{map[string]any{"k": "A"}, "B"}, []string{"B"}},
		{nil, nil},
		{map[string]any{}, nil},
	}
	for _, c := range cases {
		got := exam.ExtractAnswerKeyCandidates(c.in)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("ExtractAnswerKeyCandidates(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNormalizeAnswerKeys_ChoiceOrder(t *testing.T) {
	// Output order follows the choice keys, never the input.
	got := exam.NormalizeAnswerKeys([]any{"C", "A", "B"}, []string{"A", "B", "C"})
	want := []string{"A", "B", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	got = exam.NormalizeAnswerKeys([]any{"A, B", " C "}, []string{"A", "B", "C", "D"})
	if !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Errorf("expected [A B C], got %v", got)
	}
}

func TestNormalizeAnswerKeys_Dedupes(t *testing.T) {
	got := exam.NormalizeAnswerKeys([]any{"B", "B", "B, A"}, []string{"A", "B"})
	if !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("expected [A B], got %v", got)
	}
}

func TestNormalizeAnswerKeys_DropsUnknownKeys(t *testing.T) {
	got := exam.NormalizeAnswerKeys([]any{"A", "Z", "E"}, []string{"A", "B"})
	if !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("expected [A], got %v", got)
	}
}

func TestNormalizeAnswerKeys_Empty(t *testing.T) {
	if got := exam.NormalizeAnswerKeys("A", nil); got != nil {
		t.Errorf("expected nil for empty valid keys, got %v", got)
	}
	if got := exam.NormalizeAnswerKeys(nil, []string{"A"}); got != nil {
		t.Errorf("expected nil for nil input, got %v", got)
	}
}

func TestNormalizeAnswerKeys_SubsequenceProperty(t *testing.T) {
	validKeys := []string{"A", "B", "C", "D", "E"}
	inputs := []any{
		[]any{"E", "A", "C"},
		"D C B A",
		[]any{"B,E", "A", "A"},
		[]any{"E", nil, "B"},
	}
	for _, in := range inputs {
		got := exam.NormalizeAnswerKeys(in, validKeys)
		pos := -1
		seen := map[string]bool{}
		for _, k := range got {
			if seen[k] {
				t.Fatalf("duplicate key %q in %v", k, got)
			}
			seen[k] = true
			idx := indexOf(validKeys, k)
			if idx < 0 {
				t.Fatalf("key %q not in valid keys", k)
			}
			if idx <= pos {
				t.Fatalf("output %v is not a subsequence of %v", got, validKeys)
			}
			pos = idx
		}
	}
}

func indexOf(keys []string, k string) int {
	for i, v := range keys {
		if v == k {
			return i
		}
	}
	return -1
}
