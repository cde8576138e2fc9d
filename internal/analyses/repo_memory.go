package analyses

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo stores analyses in memory and is safe for concurrent use.
// IDs are assigned from a monotonic counter starting at 1.
type MemoryRepo struct {
	mu     sync.RWMutex
	byID   map[int]Analysis
	nextID int
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:   make(map[int]Analysis),
		nextID: 1,
	}
}

// Create stores the analysis, assigning its ID and CreatedAt.
func (r *MemoryRepo) Create(ctx context.Context, analysis Analysis) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	analysis.ID = r.nextID
	r.nextID++
	if analysis.CreatedAt.IsZero() {
		analysis.CreatedAt = time.Now().UTC()
	}
	r.byID[analysis.ID] = analysis
	return analysis, nil
}

// GetByID returns an analysis by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id int) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	analysis, ok := r.byID[id]
	if !ok {
		return Analysis{}, ErrNotFound
	}
	return analysis, nil
}

// ListAll returns every stored analysis, newest first.
func (r *MemoryRepo) ListAll(ctx context.Context) ([]Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Analysis, 0, len(r.byID))
	for _, analysis := range r.byID {
		out = append(out, analysis)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
