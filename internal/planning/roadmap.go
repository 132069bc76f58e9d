package planning

import (
	"fmt"
	"strings"
)

// SeverityPolicy decides what happens to a finding whose severity is not recognised.
type SeverityPolicy string

const (
	// SeverityReject fails the run with an InvalidInputError.
	SeverityReject SeverityPolicy = "reject"
	// SeverityFallbackMedium plans the finding as medium priority and reports it through the planner's warn hook.
	SeverityFallbackMedium SeverityPolicy = "medium"
)

// ParseSeverityPolicy parses a policy name, treating empty as SeverityReject.
func ParseSeverityPolicy(raw string) (SeverityPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "reject", "strict":
		return SeverityReject, nil
	case "medium", "fallback":
		return SeverityFallbackMedium, nil
	default:
		return "", &InvalidInputError{Field: "severityPolicy", Value: raw, Reason: "must be reject or medium"}
	}
}

// BuildRoadmap converts findings into roadmap items one-to-one, preserving order.
// Unrecognised severities are rejected.
func BuildRoadmap(findings []Finding) ([]RoadmapItem, error) {
	return buildRoadmap(findings, SeverityReject, nil)
}

func buildRoadmap(findings []Finding, policy SeverityPolicy, warn func(Finding)) ([]RoadmapItem, error) {
	items := make([]RoadmapItem, 0, len(findings))
	for i, f := range findings {
		priority, impact, err := classify(f, policy, warn)
		if err != nil {
			return nil, err
		}
		items = append(items, newRoadmapItem(i+1, f, priority, impact))
	}
	return items, nil
}

func classify(f Finding, policy SeverityPolicy, warn func(Finding)) (Priority, Impact, error) {
	if err := f.Severity.Validate(); err != nil {
		if policy != SeverityFallbackMedium {
			return "", "", &InvalidInputError{
				FindingID: f.ID,
				Field:     "severity",
				Value:     string(f.Severity),
				Reason:    "must be critical, high, medium, low or info",
			}
		}
		if warn != nil {
			warn(f)
		}
		return PriorityMedium, impactForSeverity(f.Severity), nil
	}
	return priorityForSeverity(f.Severity), impactForSeverity(f.Severity), nil
}

func newRoadmapItem(seq int, f Finding, priority Priority, impact Impact) RoadmapItem {
	item := RoadmapItem{
		ID:             RoadmapItemID(seq),
		Title:          f.Title,
		Description:    f.Description,
		Category:       f.Category,
		Priority:       priority,
		EffortHours:    f.EffortHours,
		Impact:         impact,
		Tasks:          buildTasks(f),
		Dependencies:   []string{},
		AffectedFiles:  []string{},
		AICanImplement: f.AICanFix,
		AIApproach:     f.AIApproach,
		Status:         StatusPending,
		FindingID:      f.ID,
	}
	if f.Location != "" {
		item.AffectedFiles = []string{f.Location}
	}
	if f.AICanFix {
		item.AIConfidence = "high"
	}
	return item
}

// RoadmapItemID formats the 1-based sequence number of a roadmap item.
func RoadmapItemID(seq int) string {
	return fmt.Sprintf("R%03d", seq)
}

func buildTasks(f Finding) []string {
	tasks := make([]string, 0, maxTasksPerItem)
	if f.Recommendation != "" {
		tasks = append(tasks, f.Recommendation)
	}
	tasks = append(tasks, categoryTasks(f.Category)...)
	if len(tasks) > maxTasksPerItem {
		tasks = tasks[:maxTasksPerItem]
	}
	return tasks
}
