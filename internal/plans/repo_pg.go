package plans

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"planner-backend/internal/planning"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const planColumns = `id, user_id, project_name, focus, severity_policy, report, assessment_key, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// Create inserts a new plan.
func (r *PGRepo) Create(ctx context.Context, plan Plan) error {
	const query = `
INSERT INTO plans (` + planColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	report, err := json.Marshal(plan.Report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query,
		plan.ID,
		plan.UserID,
		plan.ProjectName,
		string(plan.Focus),
		string(plan.SeverityPolicy),
		report,
		nullString(plan.AssessmentKey),
		plan.CreatedAt,
		plan.UpdatedAt,
	)
	return err
}

// GetByID returns a plan owned by userID.
func (r *PGRepo) GetByID(ctx context.Context, userID, planID string) (Plan, error) {
	const query = `
SELECT ` + planColumns + `
FROM plans
WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
LIMIT 1`
	plan, err := scanPlan(r.DB.QueryRowContext(ctx, query, planID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Plan{}, ErrNotFound
		}
		return Plan{}, err
	}
	return plan, nil
}

// ListByUser returns plans for a user, newest first. A zero limit means no limit.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Plan, error) {
	const query = `
SELECT ` + planColumns + `
FROM plans
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	if offset < 0 {
		offset = 0
	}
	var limitArg any
	if limit > 0 {
		limitArg = limit
	}

	rows, err := r.DB.QueryContext(ctx, query, userID, limitArg, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := []Plan{}
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return plans, nil
}

// UpdateReport locks the plan row, applies mutate and writes the report back.
func (r *PGRepo) UpdateReport(ctx context.Context, userID, planID string, mutate ReportMutation) (Plan, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return Plan{}, err
	}
	defer tx.Rollback()

	const selectQuery = `
SELECT ` + planColumns + `
FROM plans
WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
FOR UPDATE`
	plan, err := scanPlan(tx.QueryRowContext(ctx, selectQuery, planID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Plan{}, ErrNotFound
		}
		return Plan{}, err
	}

	if err := mutate(&plan.Report); err != nil {
		return Plan{}, err
	}
	report, err := json.Marshal(plan.Report)
	if err != nil {
		return Plan{}, fmt.Errorf("marshal report: %w", err)
	}
	plan.UpdatedAt = time.Now().UTC()

	const updateQuery = `UPDATE plans SET report = $1, updated_at = $2 WHERE id = $3`
	if _, err := tx.ExecContext(ctx, updateQuery, report, plan.UpdatedAt, plan.ID); err != nil {
		return Plan{}, err
	}
	if err := tx.Commit(); err != nil {
		return Plan{}, err
	}
	return plan, nil
}

func scanPlan(row rowScanner) (Plan, error) {
	var (
		plan          Plan
		focus         string
		policy        string
		report        []byte
		assessmentKey sql.NullString
	)
	if err := row.Scan(
		&plan.ID,
		&plan.UserID,
		&plan.ProjectName,
		&focus,
		&policy,
		&report,
		&assessmentKey,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	); err != nil {
		return Plan{}, err
	}
	plan.Focus = planning.Focus(focus)
	plan.SeverityPolicy = planning.SeverityPolicy(policy)
	if assessmentKey.Valid {
		plan.AssessmentKey = assessmentKey.String
	}
	if err := json.Unmarshal(report, &plan.Report); err != nil {
		return Plan{}, fmt.Errorf("decode report for plan %s: %w", plan.ID, err)
	}
	return plan, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

var _ Repo = (*PGRepo)(nil)
