package plans

import (
	"context"

	"planner-backend/internal/planning"
)

// ReportMutation edits a stored report in place. Returning an error discards the edit.
type ReportMutation func(report *planning.PlanningReport) error

// Repo defines persistence operations for plans. Every lookup is scoped to the owning user.
type Repo interface {
	Create(ctx context.Context, plan Plan) error
	GetByID(ctx context.Context, userID, planID string) (Plan, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Plan, error)
	UpdateReport(ctx context.Context, userID, planID string, mutate ReportMutation) (Plan, error)
}
