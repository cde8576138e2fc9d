package scoring

import (
	"reflect"
	"strings"
	"testing"
)

const sampleResume = `John Doe
Software Engineer
john@x.com 555-123-4567
EXPERIENCE
Led development of systems
EDUCATION
BS CS
SKILLS
javascript, react, aws`

func TestScoreSampleResume(t *testing.T) {
	got := Score(sampleResume)

	// Formatting: base 60, +20 headers. Too short for the word-count
	// bonus and no blank lines.
	if got.Formatting != 80 {
		t.Errorf("formatting = %d, want 80", got.Formatting)
	}
	// Content: base 50, +30 sections, +10 email, +10 phone, +5 "led",
	// clamped to 100.
	if got.Content != 100 {
		t.Errorf("content = %d, want 100", got.Content)
	}
	// Keywords: base 40 + 8*4 tech hits (javascript, java, react, aws —
	// "java" matches inside "javascript") = 72.
	if got.Keywords != 72 {
		t.Errorf("keywords = %d, want 72", got.Keywords)
	}
	// Experience: base 50, +15 "John Doe" capitalized pair, +5 "engineer".
	// Only one 4-digit token (the phone tail), so no year bonus.
	if got.Experience != 70 {
		t.Errorf("experience = %d, want 70", got.Experience)
	}

	if overall := Overall(got); overall != 81 {
		t.Errorf("overall = %d, want 81", overall)
	}
}

func TestScoreBounds(t *testing.T) {
	inputs := []string{
		"",
		sampleResume,
		strings.Repeat("developed managed led created implemented improved ", 200),
		strings.Join(TechHeavyLines(), "\n"),
	}
	for _, text := range inputs {
		s := Score(text)
		for name, v := range map[string]int{
			"formatting": s.Formatting,
			"content":    s.Content,
			"keywords":   s.Keywords,
			"experience": s.Experience,
			"overall":    Overall(s),
		} {
			if v < 0 || v > 100 {
				t.Errorf("%s out of range for %q...: %d", name, truncate(text), v)
			}
		}
	}
}

// TechHeavyLines builds a resume-shaped text stuffed with vocabulary hits.
func TechHeavyLines() []string {
	return []string{
		"Jane Smith",
		"jane@email.com 555-987-6543",
		"EXPERIENCE",
		"Senior Engineer at Tech Corp 2018 - 2024",
		"javascript python java react node.js sql mongodb aws docker kubernetes",
		"leadership communication teamwork analytical strategic adaptable",
	}
}

func truncate(s string) string {
	if len(s) > 30 {
		return s[:30]
	}
	return s
}

func TestScoreIdempotent(t *testing.T) {
	first := Score(sampleResume)
	second := Score(sampleResume)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("scores differ across runs: %+v vs %+v", first, second)
	}
}

func TestKeywordsMonotonicUnderNewHit(t *testing.T) {
	base := "plain text with no technology words at all"
	before := Keywords(base)
	after := Keywords(base + " kubernetes")
	if after < before {
		t.Fatalf("adding a keyword lowered the score: %d -> %d", before, after)
	}
	if after != before+8 {
		t.Fatalf("expected +8 for a fresh keyword below the cap, got %d -> %d", before, after)
	}
}

func TestKeywordsCap(t *testing.T) {
	all := strings.Join(append(append([]string{}, TechKeywords()...), SoftKeywords()...), " ")
	if got := Keywords(all); got != 100 {
		t.Fatalf("fully stuffed keywords score = %d, want 100", got)
	}
}

func TechKeywords() []string {
	return []string{"javascript", "python", "java", "react", "node.js", "sql", "mongodb", "aws", "docker", "kubernetes"}
}

func SoftKeywords() []string {
	return []string{"leadership", "communication", "problem solving", "teamwork", "project management", "analytical"}
}

func TestContentNearVariantStem(t *testing.T) {
	// "skills" has no near-variant; "education" matches via "ionducation"
	// only literally, so presence of the plain word is the realistic path.
	with := Content("experience education skills")
	without := Content("nothing relevant here")
	if with != 80 {
		t.Fatalf("content with all sections = %d, want 80", with)
	}
	if without != 50 {
		t.Fatalf("content with nothing = %d, want 50", without)
	}
}

func TestExperienceYearBonusNeedsTwoTokens(t *testing.T) {
	one := Experience("joined in 2019")
	two := Experience("worked 2019 - 2021")
	if two-one != 20 {
		t.Fatalf("expected +20 between one and two year tokens, got %d vs %d", one, two)
	}
}

func TestSections(t *testing.T) {
	got := Sections(strings.ToLower(sampleResume))
	want := SectionScores{
		ContactInfo: 100,
		Summary:     50,
		Experience:  80,
		Education:   100,
		Skills:      60,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sections = %+v, want %+v", got, want)
	}
}

func TestSectionsDefaults(t *testing.T) {
	got := Sections("nothing useful")
	want := SectionScores{
		ContactInfo: 60,
		Summary:     50,
		Experience:  40,
		Education:   70,
		Skills:      30,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sections defaults = %+v, want %+v", got, want)
	}
}
