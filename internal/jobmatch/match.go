// Package jobmatch computes the overlap between a job description's skill
// vocabulary and a résumé, and optionally enriches it through an external
// AI advisor.
package jobmatch

import (
	"math"
	"strings"

	"resume-analyzer/internal/lexicon"
)

const (
	maxDisplayedSkills     = 10
	maxFallbackSuggestions = 5
)

// Suggestion is one rule-based recommendation for a missing skill.
type Suggestion struct {
	Skill      string `json:"skill"`
	Suggestion string `json:"suggestion"`
}

// Result is the deterministic job-match outcome.
type Result struct {
	MatchScore      int          `json:"matchScore"`
	MatchedSkills   []string     `json:"matchedSkills"`
	MissingSkills   []string     `json:"missingSkills"`
	Recommendations []Suggestion `json:"recommendations"`
}

// ExtractJobKeywords filters the job description against the fixed
// extraction vocabulary. Results come back in vocabulary order, not job
// description order, with no duplicates.
func ExtractJobKeywords(jobDescription string) []string {
	return lexicon.FilterPresent(lexicon.JobVocabulary, jobDescription)
}

// ComputeMatch splits jobKeywords into skills present in the résumé text
// and skills missing from it, derives a match percentage, and builds up to
// five generic suggestions for the first missing skills. Matched and
// missing lists are truncated to ten entries each for display.
func ComputeMatch(resumeText string, jobKeywords []string) Result {
	lower := strings.ToLower(resumeText)

	matched := make([]string, 0, len(jobKeywords))
	missing := make([]string, 0, len(jobKeywords))
	for _, keyword := range jobKeywords {
		if strings.Contains(lower, keyword) {
			matched = append(matched, keyword)
		} else {
			missing = append(missing, keyword)
		}
	}

	score := 0
	if len(jobKeywords) > 0 {
		score = int(math.Round(float64(len(matched)) / float64(len(jobKeywords)) * 100))
	}

	suggestions := make([]Suggestion, 0, maxFallbackSuggestions)
	for _, skill := range truncated(missing, maxFallbackSuggestions) {
		suggestions = append(suggestions, Suggestion{
			Skill:      skill,
			Suggestion: "Add experience or mention of " + skill + " to better match this job requirement",
		})
	}

	return Result{
		MatchScore:      score,
		MatchedSkills:   truncated(matched, maxDisplayedSkills),
		MissingSkills:   truncated(missing, maxDisplayedSkills),
		Recommendations: suggestions,
	}
}

func truncated(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
