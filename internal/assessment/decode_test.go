package assessment

import (
	"errors"
	"strings"
	"testing"

	"planner-backend/internal/planning"
)

const sampleJSON = `{
  "project_name": "storefront",
  "assessed_at": "2026-02-10T09:00:00",
  "overall_score": 62,
  "overall_status": "warning",
  "critical_count": 1,
  "high_count": 0,
  "files_analyzed": 120,
  "security": {"score": 40, "status": "critical", "summary": "Secrets in repo"},
  "testing": {"score": 35, "status": "critical", "summary": "Few tests"},
  "documentation": {"score": 70, "status": "good", "summary": "README present"},
  "all_findings": [
    {
      "id": "SEC-001",
      "category": "security",
      "severity": "critical",
      "title": "Hardcoded API key",
      "description": "Key committed in config",
      "location": "config/settings.py",
      "evidence": "API_KEY = ...",
      "impact": "Credential leak",
      "recommendation": "Move to environment",
      "effort_hours": 1.5,
      "ai_can_fix": true,
      "ai_approach": "Replace literal with env lookup"
    }
  ]
}`

const sampleYAML = `
project_name: storefront
overall_score: 62
overall_status: warning
critical_count: 1
testing:
  score: 35
documentation:
  score: 70
all_findings:
  - id: SEC-001
    category: security
    severity: critical
    title: Hardcoded API key
    location: config/settings.py
    effort_hours: 1.5
    ai_can_fix: true
`

func TestDecodeJSON(t *testing.T) {
	a, err := Decode(strings.NewReader(sampleJSON), FormatJSON)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if a.ProjectName != "storefront" || a.OverallScore != 62 || a.CriticalCount != 1 {
		t.Fatalf("unexpected header fields: %+v", a)
	}
	if len(a.Findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(a.Findings))
	}
	f := a.Findings[0]
	if f.ID != "SEC-001" || f.Category != planning.CategorySecurity || f.Severity != planning.SeverityCritical {
		t.Fatalf("unexpected finding: %+v", f)
	}
	if f.EffortHours != 1.5 || !f.AICanFix || f.Location != "config/settings.py" {
		t.Fatalf("unexpected finding details: %+v", f)
	}
	if a.Score(planning.CategoryTesting) != 35 || a.Score(planning.CategoryDocumentation) != 70 {
		t.Fatalf("unexpected scores: %+v", a.Scores)
	}
	if got := a.Scores[planning.CategorySecurity].Summary; got != "Secrets in repo" {
		t.Fatalf("unexpected security summary %q", got)
	}
	if _, ok := a.Scores[planning.CategoryArchitecture]; ok {
		t.Fatalf("expected absent categories to be omitted")
	}
}

func TestDecodeYAMLMatchesJSON(t *testing.T) {
	fromYAML, err := DecodeBytes([]byte(sampleYAML), FormatYAML)
	if err != nil {
		t.Fatalf("DecodeBytes yaml: %v", err)
	}
	if fromYAML.ProjectName != "storefront" || len(fromYAML.Findings) != 1 {
		t.Fatalf("unexpected yaml decode: %+v", fromYAML)
	}
	if fromYAML.Findings[0].EffortHours != 1.5 || !fromYAML.Findings[0].AICanFix {
		t.Fatalf("unexpected yaml finding: %+v", fromYAML.Findings[0])
	}
	if fromYAML.Score(planning.CategoryTesting) != 35 {
		t.Fatalf("unexpected testing score %d", fromYAML.Score(planning.CategoryTesting))
	}
}

func TestDecodeRequiresRiskCategories(t *testing.T) {
	_, err := DecodeBytes([]byte(`{"project_name":"x","testing":{"score":10}}`), FormatJSON)
	if !errors.Is(err, planning.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	var inputErr *planning.InvalidInputError
	if !errors.As(err, &inputErr) || inputErr.Field != "documentation.score" {
		t.Fatalf("expected documentation.score error, got %v", err)
	}

	_, err = DecodeBytes([]byte(`{"testing":{"status":"good"},"documentation":{"score":10}}`), FormatJSON)
	if !errors.Is(err, planning.ErrInvalidInput) {
		t.Fatalf("expected missing testing score to fail, got %v", err)
	}
}

func TestDecodeZeroScoreIsPresent(t *testing.T) {
	a, err := DecodeBytes([]byte(`{"testing":{"score":0},"documentation":{"score":0}}`), FormatJSON)
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if len(a.Findings) != 0 || a.Findings == nil {
		t.Fatalf("expected empty non-nil findings, got %v", a.Findings)
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := []struct {
		name   string
		data   string
		format Format
	}{
		{name: "empty", data: "  ", format: FormatJSON},
		{name: "bad_json", data: "{", format: FormatJSON},
		{name: "bad_yaml", data: "testing: [", format: FormatYAML},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeBytes([]byte(tc.data), tc.format); !errors.Is(err, planning.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
	if _, err := DecodeBytes([]byte("{}"), Format("toml")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestDecodeTooLarge(t *testing.T) {
	big := strings.NewReader(strings.Repeat(" ", MaxBytes+1))
	if _, err := Decode(big, FormatJSON); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestFormatDetection(t *testing.T) {
	contentTypes := map[string]Format{
		"":                                FormatJSON,
		"application/json":                FormatJSON,
		"application/json; charset=utf-8": FormatJSON,
		"application/yaml":                FormatYAML,
		"text/x-yaml":                     FormatYAML,
	}
	for ct, want := range contentTypes {
		got, err := FormatFromContentType(ct)
		if err != nil || got != want {
			t.Fatalf("FormatFromContentType(%q) = %q, %v; want %q", ct, got, err, want)
		}
	}
	if _, err := FormatFromContentType("text/plain"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if FormatFromPath("report.YML") != FormatYAML || FormatFromPath("report.json") != FormatJSON {
		t.Fatalf("unexpected path detection")
	}
	if f, err := ParseFormat("yml"); err != nil || f != FormatYAML {
		t.Fatalf("ParseFormat(yml) = %q, %v", f, err)
	}
}
