package analyses

import "context"

// Repo defines persistence operations for analyses.
type Repo interface {
	// Create stores the analysis and returns it with ID and CreatedAt set.
	Create(ctx context.Context, analysis Analysis) (Analysis, error)
	GetByID(ctx context.Context, id int) (Analysis, error)
	// ListAll returns every stored analysis, newest first.
	ListAll(ctx context.Context) ([]Analysis, error)
}
