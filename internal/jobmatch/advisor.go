package jobmatch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"resume-analyzer/internal/llm"
	"resume-analyzer/internal/shared/telemetry"
)

const defaultAdvisorTimeout = 60 * time.Second

// AIRecommendation is one prioritized recommendation from the advisor.
type AIRecommendation struct {
	Priority       string `json:"priority"`
	Skill          string `json:"skill"`
	CurrentStatus  string `json:"current_status"`
	WhyNeeded      string `json:"why_needed"`
	Action         string `json:"action"`
	ResumePosition string `json:"resume_position"`
	Impact         string `json:"impact"`
}

// AIResult is the advisor's structured reply.
type AIResult struct {
	MatchedSkills   []string           `json:"matched_skills"`
	MissingSkills   []string           `json:"missing_skills"`
	Recommendations []AIRecommendation `json:"recommendations"`
}

// Advisor asks an external completion service for prioritized job-fit
// recommendations. The client is injected at construction; a nil client
// means the advisor is unconfigured and always reports no result.
type Advisor struct {
	Client  llm.Client
	Timeout time.Duration
}

// Generate returns the advisor's analysis, or nil when no result is
// available: unconfigured client, empty job description, transport
// failure, timeout, or an unparseable reply. It never returns an error;
// failures are logged and degrade to nil so callers fall back to the
// deterministic match.
func (a *Advisor) Generate(ctx context.Context, resumeText, jobDescription string) *AIResult {
	if a == nil || a.Client == nil || strings.TrimSpace(jobDescription) == "" {
		return nil
	}

	timeout := a.Timeout
	if timeout <= 0 {
		timeout = defaultAdvisorTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	reply, err := a.Client.Complete(ctx, buildAdvisorPrompt(resumeText, jobDescription))
	if err != nil {
		telemetry.Warn("jobmatch.advisor", map[string]any{
			"error":  err.Error(),
			"reason": "completion failed",
		})
		return nil
	}

	result, err := parseAdvisorReply(reply)
	if err != nil {
		telemetry.Warn("jobmatch.advisor", map[string]any{
			"error":  err.Error(),
			"reason": "reply parse failed",
		})
		return nil
	}
	return result
}

// parseAdvisorReply locates the first {...} span in the raw reply and
// decodes it. Models wrap JSON in prose often enough that decoding the
// whole reply directly is not an option.
func parseAdvisorReply(reply string) (*AIResult, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in advisor reply")
	}

	var result AIResult
	if err := json.Unmarshal([]byte(reply[start:end+1]), &result); err != nil {
		return nil, fmt.Errorf("advisor reply decode: %w", err)
	}
	if result.MatchedSkills == nil {
		result.MatchedSkills = []string{}
	}
	if result.MissingSkills == nil {
		result.MissingSkills = []string{}
	}
	if result.Recommendations == nil {
		result.Recommendations = []AIRecommendation{}
	}
	return &result, nil
}
