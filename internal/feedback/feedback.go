// Package feedback derives strengths and improvement recommendations from
// computed scores and detected text features. All rules are fixed and run
// in a fixed order, so output is deterministic for a given input.
package feedback

import (
	"fmt"
	"strings"

	"resume-analyzer/internal/lexicon"
	"resume-analyzer/internal/scoring"
)

// Strength highlights something the résumé already does well.
type Strength struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Recommendation suggests a concrete improvement with an example.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

// Strengths returns the triggered strengths in detection order. The result
// may be empty; callers decide how to present that.
func Strengths(scores scoring.Scores, lower string) []Strength {
	out := []Strength{}

	if scores.Formatting >= 80 {
		out = append(out, Strength{
			Title:       "Professional Formatting",
			Description: "Your resume has consistent formatting, proper spacing, and clear section headers that make it easy to scan.",
		})
	}
	if scores.Experience >= 75 {
		out = append(out, Strength{
			Title:       "Strong Experience Section",
			Description: "You've included relevant work experience with clear job titles and company names.",
		})
	}
	if lexicon.ContainsEmail(lower) && lexicon.ContainsPhone(lower) {
		out = append(out, Strength{
			Title:       "Complete Contact Information",
			Description: "All essential contact details are present and professionally formatted.",
		})
	}
	if scores.Keywords >= 70 {
		out = append(out, Strength{
			Title:       "Relevant Keywords",
			Description: "Good use of industry-relevant terms and technical skills.",
		})
	}

	return out
}

// Recommendations returns the triggered recommendations in detection order.
func Recommendations(scores scoring.Scores, lower string) []Recommendation {
	out := []Recommendation{}

	if scores.Content < 80 {
		out = append(out, Recommendation{
			Title:       "Add Quantified Achievements",
			Description: "Include specific numbers and metrics in your experience descriptions to demonstrate impact.",
			Example:     `"Increased sales by 25%" instead of "Responsible for sales"`,
		})
	}
	if scores.Keywords < 75 {
		missing := lexicon.FilterMissing(lexicon.TechKeywords, lower)
		if len(missing) > 4 {
			missing = missing[:4]
		}
		out = append(out, Recommendation{
			Title:       "Include More Relevant Keywords",
			Description: "Add industry-specific terms and skills that match the job descriptions you're targeting.",
			Example:     fmt.Sprintf("Missing keywords: %s", strings.Join(missing, ", ")),
		})
	}
	if !strings.Contains(lower, "skills") || scores.Keywords < 70 {
		out = append(out, Recommendation{
			Title:       "Expand Skills Section",
			Description: "Add more technical and soft skills relevant to your target roles.",
			Example:     "Organize skills by category (Technical, Languages, Tools)",
		})
	}
	if scores.Experience < 75 {
		out = append(out, Recommendation{
			Title:       "Strengthen Experience Descriptions",
			Description: "Use more action verbs and specific accomplishments in your work experience.",
			Example:     "Start bullet points with strong action verbs like 'Led', 'Developed', 'Managed'",
		})
	}

	return out
}
