package analyses

import (
	"time"

	"resume-analyzer/internal/feedback"
	"resume-analyzer/internal/scoring"
)

// Analysis is one stored résumé analysis. It is immutable after creation.
//
// The job-match fields are only populated when the request carried a job
// description. JobMatchRecommendations holds either AI advisor entries or
// rule-based fallback suggestions, so it stays schemaless.
type Analysis struct {
	ID                      int                       `json:"id"`
	FileName                string                    `json:"fileName"`
	FileSize                int                       `json:"fileSize"`
	ExtractedText           string                    `json:"extractedText"`
	JobDescription          string                    `json:"jobDescription,omitempty"`
	OverallScore            int                       `json:"overallScore"`
	Scores                  scoring.Scores            `json:"scores"`
	Strengths               []feedback.Strength       `json:"strengths"`
	Recommendations         []feedback.Recommendation `json:"recommendations"`
	SectionAnalysis         scoring.SectionScores     `json:"sectionAnalysis"`
	ATSCompatibility        []scoring.ATSCheck        `json:"atsCompatibility"`
	ATSScore                int                       `json:"atsScore"`
	JobMatchScore           *int                      `json:"jobMatchScore,omitempty"`
	MatchedSkills           []string                  `json:"matchedSkills,omitempty"`
	MissingSkills           []string                  `json:"missingSkills,omitempty"`
	JobMatchRecommendations []any                     `json:"jobMatchRecommendations,omitempty"`
	CreatedAt               time.Time                 `json:"createdAt"`
}
