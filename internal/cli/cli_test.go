package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"planner-backend/internal/planning"
	"planner-backend/internal/shared/telemetry"
)

const assessmentJSON = `{
  "project_name": "storefront",
  "overall_score": 40,
  "critical_count": 1,
  "testing": {"score": 30},
  "documentation": {"score": 80},
  "all_findings": [
    {"id": "SEC-001", "category": "security", "severity": "critical", "title": "Hardcoded key", "effort_hours": 1, "ai_can_fix": true},
    {"id": "DOC-001", "category": "documentation", "severity": "low", "title": "No README", "effort_hours": 3}
  ]
}`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var logs bytes.Buffer
	prev := telemetry.SetOutput(&logs)
	t.Cleanup(func() { telemetry.SetOutput(prev) })

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestPlanFromFile(t *testing.T) {
	path := writeFile(t, "assessment.json", assessmentJSON)

	out, err := run(t, "", "plan", "--in", path)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	var report planning.PlanningReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.ProjectName != "storefront" || report.TotalItems != 2 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if !strings.HasPrefix(report.RecommendedApproach, "URGENT") {
		t.Fatalf("unexpected recommendation %q", report.RecommendedApproach)
	}
}

func TestPlanFromStdinWithFocus(t *testing.T) {
	out, err := run(t, assessmentJSON, "plan", "--in", "-", "--focus", "documentation")
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	var report planning.PlanningReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.TotalItems != 1 || report.Roadmap[0].FindingID != "DOC-001" {
		t.Fatalf("expected only DOC-001, got %+v", report.Roadmap)
	}
}

func TestPlanYAMLOutputToFile(t *testing.T) {
	in := writeFile(t, "assessment.json", assessmentJSON)
	outPath := filepath.Join(t.TempDir(), "plan.yaml")

	stdout, err := run(t, "", "plan", "--in", in, "--format", "yaml", "--out", outPath)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if stdout != "" {
		t.Fatalf("expected empty stdout when --out is set, got %q", stdout)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if doc["projectName"] != "storefront" || doc["totalItems"] != 2 {
		t.Fatalf("unexpected yaml document: %v", doc)
	}
}

func TestPlanSeverityPolicy(t *testing.T) {
	bad := strings.Replace(assessmentJSON, `"severity": "low"`, `"severity": "minor"`, 1)
	path := writeFile(t, "assessment.json", bad)

	if _, err := run(t, "", "plan", "--in", path); !errors.Is(err, planning.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	out, err := run(t, "", "plan", "--in", path, "--lenient-severity")
	if err != nil {
		t.Fatalf("plan --lenient-severity: %v", err)
	}
	var report planning.PlanningReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Roadmap[1].Priority != planning.PriorityMedium {
		t.Fatalf("expected medium fallback, got %q", report.Roadmap[1].Priority)
	}
}

func TestPlanRejectsBadFlags(t *testing.T) {
	path := writeFile(t, "assessment.json", assessmentJSON)
	cases := [][]string{
		{"plan"},
		{"plan", "--in", path, "--format", "xml"},
		{"plan", "--in", path, "--focus", "marketing"},
		{"plan", "--in", filepath.Join(t.TempDir(), "missing.json")},
	}
	for _, args := range cases {
		if _, err := run(t, "", args...); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestCatalogCommand(t *testing.T) {
	out, err := run(t, "", "catalog")
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	var catalog []planning.AIOpportunity
	if err := json.Unmarshal([]byte(out), &catalog); err != nil {
		t.Fatalf("decode catalog: %v", err)
	}
	if len(catalog) != 8 {
		t.Fatalf("expected 8 entries, got %d", len(catalog))
	}
}
