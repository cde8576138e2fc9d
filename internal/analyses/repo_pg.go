package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const analysisColumns = `id, file_name, file_size, extracted_text, job_description, overall_score,
       scores, strengths, recommendations, section_analysis, ats_compatibility, ats_score,
       job_match_score, matched_skills, missing_skills, job_match_recommendations, created_at`

// Create inserts a new analysis and returns it with the generated ID.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) (Analysis, error) {
	const query = `
INSERT INTO resume_analyses (
	file_name, file_size, extracted_text, job_description, overall_score,
	scores, strengths, recommendations, section_analysis, ats_compatibility, ats_score,
	job_match_score, matched_skills, missing_skills, job_match_recommendations, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
RETURNING id`

	scores, err := json.Marshal(analysis.Scores)
	if err != nil {
		return Analysis{}, err
	}
	strengths, err := json.Marshal(analysis.Strengths)
	if err != nil {
		return Analysis{}, err
	}
	recommendations, err := json.Marshal(analysis.Recommendations)
	if err != nil {
		return Analysis{}, err
	}
	sectionAnalysis, err := json.Marshal(analysis.SectionAnalysis)
	if err != nil {
		return Analysis{}, err
	}
	atsCompatibility, err := json.Marshal(analysis.ATSCompatibility)
	if err != nil {
		return Analysis{}, err
	}
	matchedSkills, err := marshalNullable(analysis.MatchedSkills != nil, analysis.MatchedSkills)
	if err != nil {
		return Analysis{}, err
	}
	missingSkills, err := marshalNullable(analysis.MissingSkills != nil, analysis.MissingSkills)
	if err != nil {
		return Analysis{}, err
	}
	jobMatchRecommendations, err := marshalNullable(analysis.JobMatchRecommendations != nil, analysis.JobMatchRecommendations)
	if err != nil {
		return Analysis{}, err
	}

	if analysis.CreatedAt.IsZero() {
		analysis.CreatedAt = time.Now().UTC()
	}

	err = r.DB.QueryRowContext(ctx, query,
		analysis.FileName,
		analysis.FileSize,
		analysis.ExtractedText,
		nullString(analysis.JobDescription),
		analysis.OverallScore,
		scores,
		strengths,
		recommendations,
		sectionAnalysis,
		atsCompatibility,
		analysis.ATSScore,
		nullInt(analysis.JobMatchScore),
		matchedSkills,
		missingSkills,
		jobMatchRecommendations,
		analysis.CreatedAt,
	).Scan(&analysis.ID)
	if err != nil {
		return Analysis{}, err
	}
	return analysis, nil
}

// GetByID returns an analysis by ID.
func (r *PGRepo) GetByID(ctx context.Context, id int) (Analysis, error) {
	query := `SELECT ` + analysisColumns + `
FROM resume_analyses
WHERE id = $1
LIMIT 1`

	analysis, err := scanAnalysis(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	return analysis, nil
}

// ListAll returns every stored analysis, newest first.
func (r *PGRepo) ListAll(ctx context.Context) ([]Analysis, error) {
	query := `SELECT ` + analysisColumns + `
FROM resume_analyses
ORDER BY created_at DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Analysis{}
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, analysis)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var a Analysis
	var jobDescription sql.NullString
	var jobMatchScore sql.NullInt64
	var scores, strengths, recommendations, sectionAnalysis, atsCompatibility []byte
	var matchedSkills, missingSkills, jobMatchRecommendations []byte

	err := row.Scan(
		&a.ID,
		&a.FileName,
		&a.FileSize,
		&a.ExtractedText,
		&jobDescription,
		&a.OverallScore,
		&scores,
		&strengths,
		&recommendations,
		&sectionAnalysis,
		&atsCompatibility,
		&a.ATSScore,
		&jobMatchScore,
		&matchedSkills,
		&missingSkills,
		&jobMatchRecommendations,
		&a.CreatedAt,
	)
	if err != nil {
		return Analysis{}, err
	}

	if jobDescription.Valid {
		a.JobDescription = jobDescription.String
	}
	if jobMatchScore.Valid {
		score := int(jobMatchScore.Int64)
		a.JobMatchScore = &score
	}
	if err := json.Unmarshal(scores, &a.Scores); err != nil {
		return Analysis{}, err
	}
	if err := json.Unmarshal(strengths, &a.Strengths); err != nil {
		return Analysis{}, err
	}
	if err := json.Unmarshal(recommendations, &a.Recommendations); err != nil {
		return Analysis{}, err
	}
	if err := json.Unmarshal(sectionAnalysis, &a.SectionAnalysis); err != nil {
		return Analysis{}, err
	}
	if err := json.Unmarshal(atsCompatibility, &a.ATSCompatibility); err != nil {
		return Analysis{}, err
	}
	if matchedSkills != nil {
		if err := json.Unmarshal(matchedSkills, &a.MatchedSkills); err != nil {
			return Analysis{}, err
		}
	}
	if missingSkills != nil {
		if err := json.Unmarshal(missingSkills, &a.MissingSkills); err != nil {
			return Analysis{}, err
		}
	}
	if jobMatchRecommendations != nil {
		if err := json.Unmarshal(jobMatchRecommendations, &a.JobMatchRecommendations); err != nil {
			return Analysis{}, err
		}
	}
	return a, nil
}

func marshalNullable(present bool, value any) (any, error) {
	if !present {
		return nil, nil
	}
	return json.Marshal(value)
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullInt(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}
