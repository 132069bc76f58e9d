package planning

import "strings"

// Focus narrows planning to one improvement area.
type Focus string

const (
	FocusAll           Focus = "all"
	FocusCritical      Focus = "critical"
	FocusSecurity      Focus = "security"
	FocusTests         Focus = "tests"
	FocusDependencies  Focus = "dependencies"
	FocusCodeQuality   Focus = "code_quality"
	FocusDocumentation Focus = "documentation"
	FocusArchitecture  Focus = "architecture"
)

// ParseFocus parses a focus name, treating empty as FocusAll.
func ParseFocus(raw string) (Focus, error) {
	f := Focus(strings.ToLower(strings.TrimSpace(raw)))
	switch f {
	case "":
		return FocusAll, nil
	case FocusAll, FocusCritical, FocusSecurity, FocusTests, FocusDependencies,
		FocusCodeQuality, FocusDocumentation, FocusArchitecture:
		return f, nil
	default:
		return "", &InvalidInputError{Field: "focus", Value: raw, Reason: "unknown focus area"}
	}
}

// FilterFindings keeps the findings relevant to a focus area, in input order.
func FilterFindings(findings []Finding, focus Focus) []Finding {
	if focus == FocusAll || focus == "" {
		return findings
	}
	out := make([]Finding, 0, len(findings))
	for _, f := range findings {
		if focus.includes(f) {
			out = append(out, f)
		}
	}
	return out
}

func (focus Focus) includes(f Finding) bool {
	c := strings.ToLower(string(f.Category))
	switch focus {
	case FocusCritical:
		return f.Severity == SeverityCritical
	case FocusSecurity:
		return c == "security"
	case FocusTests:
		return c == "testing" || c == "tests" || c == "test_coverage"
	case FocusDependencies:
		return c == "dependencies"
	case FocusCodeQuality:
		return c == "code_quality" || c == "code"
	case FocusDocumentation:
		return c == "documentation" || c == "docs"
	case FocusArchitecture:
		return c == "architecture"
	default:
		return true
	}
}
