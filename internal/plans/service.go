package plans

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"planner-backend/internal/assessment"
	"planner-backend/internal/planning"
	"planner-backend/internal/shared/metrics"
	"planner-backend/internal/shared/storage/object"
	"planner-backend/internal/shared/telemetry"
)

const defaultListLimit = 20

// Service contains business logic for plans.
type Service struct {
	Repo               Repo
	Store              object.ObjectStore
	SeverityPolicy     planning.SeverityPolicy
	ArchiveAssessments bool
	Now                func() time.Time
}

// CreateInput is one assessment submission.
type CreateInput struct {
	UserID string
	Focus  planning.Focus
	Format assessment.Format
	Body   []byte
}

// Create decodes the assessment, plans it and stores the result.
func (s *Service) Create(ctx context.Context, in CreateInput) (Plan, error) {
	if strings.TrimSpace(in.UserID) == "" {
		return Plan{}, ErrMissingIDs
	}
	startedAt := s.now()

	plan, err := s.create(ctx, in, startedAt)
	if err != nil {
		metrics.IncPlanFailed()
		telemetry.Error("plan.failed", map[string]any{
			"request_id": requestIDFromContext(ctx),
			"user_id":    in.UserID,
			"focus":      string(in.Focus),
			"error":      err.Error(),
		})
		return Plan{}, err
	}

	durationMs := float64(s.now().Sub(startedAt).Microseconds()) / 1000.0
	metrics.IncPlanCreated(plan.Report.TotalItems)
	metrics.ObservePlanDurationMs(durationMs)
	telemetry.Info("plan.created", map[string]any{
		"request_id":     requestIDFromContext(ctx),
		"user_id":        plan.UserID,
		"plan_id":        plan.ID,
		"project":        plan.ProjectName,
		"focus":          string(plan.Focus),
		"items":          plan.Report.TotalItems,
		"critical":       plan.Report.CriticalCount,
		"milestones":     len(plan.Report.Milestones),
		"archived":       plan.AssessmentKey != "",
		"duration_ms":    durationMs,
		"total_effort":   plan.Report.TotalEffort,
		"severity_policy": string(plan.SeverityPolicy),
	})
	return plan, nil
}

func (s *Service) create(ctx context.Context, in CreateInput, startedAt time.Time) (Plan, error) {
	a, err := assessment.DecodeBytes(in.Body, in.Format)
	if err != nil {
		return Plan{}, err
	}
	focus := in.Focus
	if focus == "" {
		focus = planning.FocusAll
	}
	a.Findings = planning.FilterFindings(a.Findings, focus)

	policy := s.SeverityPolicy
	if policy == "" {
		policy = planning.SeverityReject
	}
	planner := &planning.Planner{
		SeverityPolicy: policy,
		Now:            s.now,
		OnSeverityFallback: func(f planning.Finding) {
			telemetry.Warn("plan.severity_fallback", map[string]any{
				"request_id": requestIDFromContext(ctx),
				"user_id":    in.UserID,
				"finding_id": f.ID,
				"severity":   string(f.Severity),
			})
		},
	}
	report, err := planner.CreatePlan(a)
	if err != nil {
		return Plan{}, err
	}

	plan := Plan{
		ID:             uuid.NewString(),
		UserID:         in.UserID,
		ProjectName:    a.ProjectName,
		Focus:          focus,
		SeverityPolicy: policy,
		Report:         report,
		CreatedAt:      startedAt.UTC(),
		UpdatedAt:      startedAt.UTC(),
	}
	if s.ArchiveAssessments && s.Store != nil {
		plan.AssessmentKey = s.archive(ctx, plan, in)
	}

	if err := s.Repo.Create(ctx, plan); err != nil {
		return Plan{}, fmt.Errorf("store plan: %w", err)
	}
	return plan, nil
}

// archive is best-effort: a failed upload is logged and the plan is kept without a key.
func (s *Service) archive(ctx context.Context, plan Plan, in CreateInput) string {
	format := in.Format
	if format == "" {
		format = assessment.FormatJSON
	}
	key, err := object.AssessmentKey(plan.UserID, plan.ID, string(format))
	if err == nil {
		_, err = s.Store.Put(ctx, key, contentTypeFor(format), bytes.NewReader(in.Body))
	}
	if err != nil {
		telemetry.Error("plan.archive_failed", map[string]any{
			"request_id": requestIDFromContext(ctx),
			"user_id":    plan.UserID,
			"plan_id":    plan.ID,
			"error":      err.Error(),
		})
		return ""
	}
	return key
}

// Get returns a plan by ID.
func (s *Service) Get(ctx context.Context, userID, planID string) (Plan, error) {
	if err := checkIDs(userID, planID); err != nil {
		return Plan{}, err
	}
	return s.Repo.GetByID(ctx, userID, planID)
}

// List returns a user's plans ordered newest-first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Plan, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingIDs
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// UpdateItemStatus changes the status of one roadmap item and returns the updated item.
func (s *Service) UpdateItemStatus(ctx context.Context, userID, planID, itemID string, status planning.ItemStatus) (planning.RoadmapItem, string, error) {
	if err := checkIDs(userID, planID); err != nil {
		return planning.RoadmapItem{}, "", err
	}
	if err := status.Validate(); err != nil {
		return planning.RoadmapItem{}, "", err
	}

	var previous planning.ItemStatus
	plan, err := s.Repo.UpdateReport(ctx, userID, planID, func(report *planning.PlanningReport) error {
		for _, item := range report.Roadmap {
			if item.ID == itemID {
				previous = item.Status
				break
			}
		}
		return planning.SetItemStatus(report, itemID, status)
	})
	if err != nil {
		return planning.RoadmapItem{}, "", err
	}

	var updated planning.RoadmapItem
	for _, item := range plan.Report.Roadmap {
		if item.ID == itemID {
			updated = item
			break
		}
	}
	transition := string(previous) + "->" + string(status)
	metrics.IncItemStatusUpdated()
	telemetry.Info("plan.item_status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"user_id":           userID,
		"plan_id":           planID,
		"item_id":           itemID,
		"status_transition": transition,
	})
	return updated, transition, nil
}

// Next returns the next pending roadmap item, if any.
func (s *Service) Next(ctx context.Context, userID, planID string) (planning.RoadmapItem, bool, error) {
	plan, err := s.Get(ctx, userID, planID)
	if err != nil {
		return planning.RoadmapItem{}, false, err
	}
	item, ok := planning.NextItem(plan.Report)
	return item, ok, nil
}

// Progress summarises roadmap item statuses for a plan.
func (s *Service) Progress(ctx context.Context, userID, planID string) (planning.ProgressSummary, error) {
	plan, err := s.Get(ctx, userID, planID)
	if err != nil {
		return planning.ProgressSummary{}, err
	}
	return planning.Progress(plan.Report), nil
}

// Assessment opens the archived assessment a plan was built from.
func (s *Service) Assessment(ctx context.Context, userID, planID string) (io.ReadCloser, string, error) {
	plan, err := s.Get(ctx, userID, planID)
	if err != nil {
		return nil, "", err
	}
	if plan.AssessmentKey == "" || s.Store == nil {
		return nil, "", ErrNoArchive
	}
	body, err := s.Store.Open(ctx, plan.AssessmentKey)
	if err != nil {
		return nil, "", fmt.Errorf("open archived assessment: %w", err)
	}
	return body, contentTypeFor(assessment.FormatFromPath(plan.AssessmentKey)), nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// checkIDs rejects blank IDs and plan IDs that are not UUIDs, which could never match a row.
func checkIDs(userID, planID string) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(planID) == "" {
		return ErrMissingIDs
	}
	if _, err := uuid.Parse(planID); err != nil {
		return ErrNotFound
	}
	return nil
}

func contentTypeFor(format assessment.Format) string {
	if format == assessment.FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}
