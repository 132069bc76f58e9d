package plans

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo stores plans in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	byID   map[string]Plan
	byUser map[string][]string
	now    func() time.Time
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:   make(map[string]Plan),
		byUser: make(map[string][]string),
		now:    time.Now,
	}
}

// Create stores the plan.
func (r *MemoryRepo) Create(ctx context.Context, plan Plan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[plan.ID] = plan.clone()
	r.byUser[plan.UserID] = append(r.byUser[plan.UserID], plan.ID)
	return nil
}

// GetByID returns a plan owned by userID.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, planID string) (Plan, error) {
	if err := ctx.Err(); err != nil {
		return Plan{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	plan, ok := r.byID[planID]
	if !ok || plan.UserID != userID {
		return Plan{}, ErrNotFound
	}
	return plan.clone(), nil
}

// ListByUser returns plans for a user, newest first, with limit/offset.
// A zero limit returns every plan after offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	ids := r.byUser[userID]
	plans := make([]Plan, 0, len(ids))
	for _, id := range ids {
		plans = append(plans, r.byID[id].clone())
	}
	r.mu.RUnlock()

	if offset >= len(plans) {
		return []Plan{}, nil
	}
	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].CreatedAt.After(plans[j].CreatedAt)
	})

	end := len(plans)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return plans[offset:end], nil
}

// UpdateReport applies mutate to the stored report under the repo lock.
func (r *MemoryRepo) UpdateReport(ctx context.Context, userID, planID string, mutate ReportMutation) (Plan, error) {
	if err := ctx.Err(); err != nil {
		return Plan{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[planID]
	if !ok || stored.UserID != userID {
		return Plan{}, ErrNotFound
	}
	updated := stored.clone()
	if err := mutate(&updated.Report); err != nil {
		return Plan{}, err
	}
	updated.UpdatedAt = r.now().UTC()
	r.byID[planID] = updated
	return updated.clone(), nil
}

var _ Repo = (*MemoryRepo)(nil)
