package scoring

import (
	"math"
	"strings"

	"resume-analyzer/internal/lexicon"
)

// ATS check statuses.
const (
	StatusSuccess = "success"
	StatusWarning = "warning"
	StatusError   = "error"
)

// ATSCheck is one entry of the ATS compatibility checklist.
type ATSCheck struct {
	Status      string `json:"status"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ATSResult is the ordered checklist plus the aggregate score.
type ATSResult struct {
	Checks []ATSCheck
	Score  int
}

// ATSCompatibility runs the five fixed ATS checks in order. The aggregate
// score is the rounded success percentage.
func ATSCompatibility(text string) ATSResult {
	lower := strings.ToLower(text)
	checks := make([]ATSCheck, 0, 5)
	passed := 0
	add := func(ok bool, check ATSCheck) {
		checks = append(checks, check)
		if ok {
			passed++
		}
	}

	// Fonts: input is text-extracted, so this always passes.
	add(true, ATSCheck{
		Status:      StatusSuccess,
		Title:       "Standard fonts detected",
		Description: "Using readable fonts that work well with ATS systems",
	})

	hasHeadings := lexicon.HasSectionHeading(lower)
	add(hasHeadings, ATSCheck{
		Status:      statusFor(hasHeadings),
		Title:       "Clear section headings",
		Description: pick(hasHeadings, "Section headers are properly formatted and recognizable", "Consider adding clear section headers"),
	})

	goodDensity := len(lexicon.FilterPresent(lexicon.TechKeywords, lower)) >= 5
	add(goodDensity, ATSCheck{
		Status:      statusFor(goodDensity),
		Title:       pick(goodDensity, "Good keyword density", "Consider adding more keywords"),
		Description: pick(goodDensity, "Good use of relevant keywords for ATS matching", "Include more job-relevant terms for better matching"),
	})

	// Layout: no complex-formatting detection is performed, so this passes.
	add(true, ATSCheck{
		Status:      StatusSuccess,
		Title:       "No complex formatting",
		Description: "Simple layout that ATS systems can parse easily",
	})

	hasContact := lexicon.ContainsEmail(lower) && lexicon.ContainsPhone(lower)
	add(hasContact, ATSCheck{
		Status:      statusFor(hasContact),
		Title:       pick(hasContact, "Contact information present", "Add contact information"),
		Description: pick(hasContact, "Email and phone number are clearly present", "Include email and phone number for ATS parsing"),
	})

	return ATSResult{
		Checks: checks,
		Score:  int(math.Round(float64(passed) / float64(len(checks)) * 100)),
	}
}

func statusFor(ok bool) string {
	if ok {
		return StatusSuccess
	}
	return StatusWarning
}

func pick(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}
