package analyses

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resume-analyzer/internal/feedback"
	"resume-analyzer/internal/jobmatch"
	"resume-analyzer/internal/rewrite"
	"resume-analyzer/internal/samples"
	"resume-analyzer/internal/scoring"
	"resume-analyzer/internal/shared/telemetry"
)

// Service contains business logic for analyses.
type Service struct {
	Repo    Repo
	Advisor *jobmatch.Advisor
}

// Analyze scores the extracted résumé text, builds feedback and the
// optional job match, and persists the result.
func (s *Service) Analyze(ctx context.Context, fileName string, fileSize int, extractedText, jobDescription string) (Analysis, error) {
	if strings.TrimSpace(extractedText) == "" {
		return Analysis{}, ErrNoReadableText
	}

	lower := strings.ToLower(extractedText)
	scores := scoring.Score(extractedText)
	ats := scoring.ATSCompatibility(lower)

	analysis := Analysis{
		FileName:         fileName,
		FileSize:         fileSize,
		ExtractedText:    extractedText,
		OverallScore:     scoring.Overall(scores),
		Scores:           scores,
		Strengths:        feedback.Strengths(scores, lower),
		Recommendations:  feedback.Recommendations(scores, lower),
		SectionAnalysis:  scoring.Sections(lower),
		ATSCompatibility: ats.Checks,
		ATSScore:         ats.Score,
		CreatedAt:        time.Now().UTC(),
	}

	if strings.TrimSpace(jobDescription) != "" {
		s.applyJobMatch(ctx, &analysis, extractedText, jobDescription)
	}

	stored, err := s.Repo.Create(ctx, analysis)
	if err != nil {
		return Analysis{}, fmt.Errorf("store analysis: %w", err)
	}
	return stored, nil
}

// applyJobMatch fills the job-match fields. The AI advisor result wins when
// available; otherwise the rule-based match populates the same fields. The
// match score is always the deterministic one.
func (s *Service) applyJobMatch(ctx context.Context, analysis *Analysis, extractedText, jobDescription string) {
	analysis.JobDescription = jobDescription

	keywords := jobmatch.ExtractJobKeywords(jobDescription)
	match := jobmatch.ComputeMatch(extractedText, keywords)
	score := match.MatchScore
	analysis.JobMatchScore = &score

	if ai := s.Advisor.Generate(ctx, extractedText, jobDescription); ai != nil {
		analysis.MatchedSkills = ai.MatchedSkills
		analysis.MissingSkills = ai.MissingSkills
		analysis.JobMatchRecommendations = make([]any, 0, len(ai.Recommendations))
		for _, rec := range ai.Recommendations {
			analysis.JobMatchRecommendations = append(analysis.JobMatchRecommendations, rec)
		}
		return
	}

	telemetry.Info("analyses.jobmatch_fallback", map[string]any{
		"keywords": len(keywords),
		"score":    score,
	})
	analysis.MatchedSkills = match.MatchedSkills
	analysis.MissingSkills = match.MissingSkills
	analysis.JobMatchRecommendations = make([]any, 0, len(match.Recommendations))
	for _, rec := range match.Recommendations {
		analysis.JobMatchRecommendations = append(analysis.JobMatchRecommendations, rec)
	}
}

// AnalyzeSample runs a full analysis over one of the built-in sample
// résumés.
func (s *Service) AnalyzeSample(ctx context.Context, sampleID int) (Analysis, error) {
	sample, ok := samples.Get(sampleID)
	if !ok {
		return Analysis{}, fmt.Errorf("sample %d: %w", sampleID, ErrNotFound)
	}
	return s.Analyze(ctx, sample.FileName, sample.Size, sample.Text, "")
}

// Get returns a stored analysis by ID.
func (s *Service) Get(ctx context.Context, id int) (Analysis, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns every stored analysis, newest first.
func (s *Service) List(ctx context.Context) ([]Analysis, error) {
	return s.Repo.ListAll(ctx)
}

// OptimizedResume regenerates an improved résumé document from a stored
// analysis.
func (s *Service) OptimizedResume(ctx context.Context, id int) (string, error) {
	analysis, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return rewrite.GenerateOptimizedResume(analysis.ExtractedText), nil
}
