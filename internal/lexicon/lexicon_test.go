package lexicon

import (
	"reflect"
	"testing"
)

func TestContainsPhone(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"dashes", "call 555-123-4567 today", true},
		{"dots", "555.123.4567", true},
		{"bare_digits", "5551234567", true},
		{"too_short", "555-1234", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ContainsPhone(tc.text); got != tc.want {
				t.Fatalf("ContainsPhone(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestHasStandardHeader(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"uppercase_heading", "John Doe\nEXPERIENCE\nstuff", true},
		{"objective_counts", "Objective\nTo build things", true},
		{"leading_whitespace_trimmed", "   skills\npython", true},
		{"mid_line_does_not_count", "I have experience with Go", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasStandardHeader(tc.text); got != tc.want {
				t.Fatalf("HasStandardHeader(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestHasSectionHeadingExcludesObjective(t *testing.T) {
	if HasSectionHeading("objective\nget a job") {
		t.Fatalf("objective should not satisfy the ATS heading check")
	}
	if !HasSectionHeading("intro line\nexperience\nAcme Corp") {
		t.Fatalf("expected multiline heading match")
	}
}

func TestYearTokens(t *testing.T) {
	got := YearTokens("2019 - 2021, phone 555-123-4567")
	want := []string{"2019", "2021", "4567"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("YearTokens = %v, want %v", got, want)
	}
}

func TestFilterPresentPreservesVocabularyOrder(t *testing.T) {
	text := "We use Docker and Python, sometimes JavaScript."
	got := FilterPresent(TechKeywords, text)
	want := []string{"javascript", "python", "docker"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FilterPresent = %v, want %v", got, want)
	}
}

func TestFilterMissingComplementsPresent(t *testing.T) {
	text := "react and aws"
	present := FilterPresent(JobVocabulary, text)
	missing := FilterMissing(JobVocabulary, text)
	if len(present)+len(missing) != len(JobVocabulary) {
		t.Fatalf("present (%d) + missing (%d) != vocabulary (%d)",
			len(present), len(missing), len(JobVocabulary))
	}
}

func TestFirstEmailAndPhone(t *testing.T) {
	text := "Jane Smith\njane.smith@email.com | (555) 987-6543"
	if got := FirstEmail(text); got != "jane.smith@email.com" {
		t.Fatalf("FirstEmail = %q", got)
	}
	if got := FirstPhone(text); got != "(555) 987-6543" {
		t.Fatalf("FirstPhone = %q", got)
	}
	if got := FirstEmail("no contact here"); got != "" {
		t.Fatalf("FirstEmail on plain text = %q, want empty", got)
	}
}

func TestHasCapitalizedPair(t *testing.T) {
	if !HasCapitalizedPair("worked at Tech Corp in 2020") {
		t.Fatalf("expected capitalized pair match")
	}
	if HasCapitalizedPair("worked at tech corp in 2020") {
		t.Fatalf("lowercase words should not match")
	}
}
