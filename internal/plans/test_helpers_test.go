package plans

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"planner-backend/internal/planning"
	"planner-backend/internal/shared/storage/object"
)

const sampleAssessment = `{
  "project_name": "storefront",
  "overall_score": 58,
  "critical_count": 1,
  "testing": {"score": 35},
  "documentation": {"score": 70},
  "all_findings": [
    {"id": "SEC-001", "category": "security", "severity": "critical", "title": "Hardcoded API key", "effort_hours": 1, "ai_can_fix": true},
    {"id": "TST-001", "category": "testing", "severity": "medium", "title": "No integration tests", "effort_hours": 6}
  ]
}`

const sampleAssessmentYAML = `
project_name: storefront
overall_score: 58
testing:
  score: 35
documentation:
  score: 70
all_findings:
  - id: SEC-001
    category: security
    severity: critical
    title: Hardcoded API key
    effort_hours: 1
`

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T, store object.ObjectStore) (*Service, *MemoryRepo) {
	t.Helper()
	repo := NewMemoryRepo()
	return &Service{
		Repo:               repo,
		Store:              store,
		SeverityPolicy:     planning.SeverityReject,
		ArchiveAssessments: store != nil,
		Now:                fixedNow,
	}, repo
}

type failingStore struct{}

func (failingStore) Put(context.Context, string, string, io.Reader) (int64, error) {
	return 0, errors.New("bucket unavailable")
}

func (failingStore) Open(context.Context, string) (io.ReadCloser, error) {
	return nil, errors.New("bucket unavailable")
}
