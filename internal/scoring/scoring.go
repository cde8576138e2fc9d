// Package scoring implements the heuristic résumé scorers: four rubric
// sub-scores, per-section scores, and the ATS compatibility checklist.
package scoring

import (
	"math"
	"strings"

	"resume-analyzer/internal/lexicon"
)

// Scores holds the four rubric sub-scores, each in [0,100].
type Scores struct {
	Formatting int `json:"formatting"`
	Content    int `json:"content"`
	Keywords   int `json:"keywords"`
	Experience int `json:"experience"`
}

// SectionScores grades the canonical résumé sections.
type SectionScores struct {
	ContactInfo int `json:"contactInfo"`
	Summary     int `json:"summary"`
	Experience  int `json:"experience"`
	Education   int `json:"education"`
	Skills      int `json:"skills"`
}

// Score runs all four scorers over text. The formatting and experience
// scorers see the original casing; the rest work on the lowercased text.
func Score(text string) Scores {
	lower := strings.ToLower(text)
	return Scores{
		Formatting: Formatting(text),
		Content:    Content(lower),
		Keywords:   Keywords(lower),
		Experience: Experience(text),
	}
}

// Overall is the unweighted rounded mean of the four sub-scores.
func Overall(s Scores) int {
	return int(math.Round(float64(s.Formatting+s.Content+s.Keywords+s.Experience) / 4.0))
}

// Formatting scores layout signals: section headers, spacing, and length.
func Formatting(text string) int {
	score := 60

	if lexicon.HasStandardHeader(text) {
		score += 20
	}

	emptyLines := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			emptyLines++
		}
	}
	if emptyLines > 5 {
		score += 10
	}

	wordCount := len(strings.Fields(text))
	if wordCount >= 200 && wordCount <= 800 {
		score += 10
	}

	return clamp(score)
}

// Content scores the presence of key sections, contact info, and action
// verbs. Expects lowercased text.
func Content(lower string) int {
	score := 50

	for _, section := range []string{"experience", "education", "skills"} {
		if strings.Contains(lower, section) || strings.Contains(lower, strings.Replace(section, "e", "ion", 1)) {
			score += 10
		}
	}

	if lexicon.ContainsEmail(lower) {
		score += 10
	}
	if lexicon.ContainsPhone(lower) {
		score += 10
	}

	verbs := len(lexicon.FilterPresent(lexicon.ActionVerbs, lower))
	score += capped(verbs*5, 20)

	return clamp(score)
}

// Keywords scores technical and soft-skill vocabulary hits. Expects
// lowercased text.
func Keywords(lower string) int {
	score := 40
	score += capped(len(lexicon.FilterPresent(lexicon.TechKeywords, lower))*8, 40)
	score += capped(len(lexicon.FilterPresent(lexicon.SoftSkillKeywords, lower))*4, 20)
	return clamp(score)
}

// Experience scores year tokens, a capitalized company-name proxy, and
// job-title keywords. Takes the original-case text: the company check
// needs real capitalization to mean anything.
func Experience(text string) int {
	score := 50

	if len(lexicon.YearTokens(text)) >= 2 {
		score += 20
	}
	if lexicon.HasCapitalizedPair(text) {
		score += 15
	}

	titles := len(lexicon.FilterPresent(lexicon.TitleKeywords, text))
	score += capped(titles*5, 15)

	return clamp(score)
}

// Sections grades each canonical section on simple presence signals.
// Expects lowercased text.
func Sections(lower string) SectionScores {
	s := SectionScores{
		ContactInfo: 60,
		Summary:     50,
		Experience:  40,
		Education:   70,
		Skills:      30,
	}
	if lexicon.ContainsEmail(lower) && lexicon.ContainsPhone(lower) {
		s.ContactInfo = 100
	}
	if strings.Contains(lower, "summary") || strings.Contains(lower, "objective") {
		s.Summary = 75
	}
	if strings.Contains(lower, "experience") {
		s.Experience = 80
	}
	if strings.Contains(lower, "education") {
		s.Education = 100
	}
	if strings.Contains(lower, "skills") {
		s.Skills = 60
	}
	return s
}

func capped(value, cap int) int {
	if value > cap {
		return cap
	}
	return value
}

func clamp(score int) int {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
