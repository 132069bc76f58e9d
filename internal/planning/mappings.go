package planning

import "fmt"

const maxTasksPerItem = 5

// priorityForSeverity maps a validated severity onto a roadmap priority.
func priorityForSeverity(s Severity) Priority {
	switch s {
	case SeverityCritical:
		return PriorityCritical
	case SeverityHigh:
		return PriorityHigh
	case SeverityMedium:
		return PriorityMedium
	case SeverityLow, SeverityInfo:
		return PriorityLow
	default:
		panic(fmt.Sprintf("planning: unvalidated severity %q", string(s)))
	}
}

// impactForSeverity is derived from severity directly, not from priority.
func impactForSeverity(s Severity) Impact {
	switch s {
	case SeverityCritical, SeverityHigh:
		return ImpactHigh
	case SeverityMedium:
		return ImpactMedium
	default:
		return ImpactLow
	}
}

// categoryTasks returns the boilerplate tasks appended after a finding's own
// recommendation. Categories without boilerplate return nil.
func categoryTasks(c Category) []string {
	switch c {
	case CategorySecurity:
		return []string{"Review security implications", "Test for vulnerabilities"}
	case CategoryTesting:
		return []string{"Identify test scenarios", "Write test cases", "Verify coverage"}
	case CategoryUXNavigation, CategoryUXStyling, CategoryUXAccessibility:
		return []string{"Review UX impact", "Test across devices"}
	case CategoryDocumentation:
		return []string{"Draft content", "Review accuracy"}
	case CategoryArchitecture:
		return []string{"Plan changes", "Update architecture docs"}
	case CategoryCodeQuality, CategoryTechDebt, CategoryPerformance:
		return nil
	default:
		return nil
	}
}

func isCodeQualityCategory(c Category) bool {
	switch c {
	case CategoryCodeQuality, CategoryArchitecture, CategoryTechDebt:
		return true
	default:
		return false
	}
}

func isTestingOrDocsCategory(c Category) bool {
	switch c {
	case CategoryTesting, CategoryDocumentation:
		return true
	default:
		return false
	}
}
