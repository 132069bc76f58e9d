package planning

const unlimited = 0

type bucket struct {
	id              string
	name            string
	description     string
	target          string
	deliverables    []string
	successCriteria []string
	capacity        int
	match           func(RoadmapItem) bool
	// fullRoadmap buckets see every item, including ones already placed.
	fullRoadmap bool
	// fixedDeps overrides the nearest-preceding dependency rule.
	fixedDeps []string
}

var buckets = []bucket{
	{
		id:              "M1",
		name:            "Critical Fixes",
		description:     "Address all critical issues immediately",
		target:          "Immediate",
		deliverables:    []string{"All critical issues resolved", "Security vulnerabilities patched"},
		successCriteria: []string{"No critical findings", "All tests passing"},
		capacity:        unlimited,
		match: func(i RoadmapItem) bool {
			return i.Priority == PriorityCritical
		},
	},
	{
		id:              "M2",
		name:            "Quick Wins",
		description:     "Low-effort improvements for fast progress",
		target:          "Week 1",
		deliverables:    []string{"Visible improvements", "Team momentum"},
		successCriteria: []string{"All quick wins completed"},
		capacity:        10,
		match: func(i RoadmapItem) bool {
			return i.EffortHours <= 2 && i.Priority != PriorityCritical
		},
	},
	{
		id:              "M3",
		name:            "UX Improvements",
		description:     "Enhance navigation, styling, and accessibility",
		target:          "Week 2-3",
		deliverables:    []string{"Improved accessibility score", "Consistent styling", "Better navigation"},
		successCriteria: []string{"Accessibility audit passing", "Style guide implemented"},
		capacity:        8,
		match: func(i RoadmapItem) bool {
			return i.Category.IsUX()
		},
	},
	{
		id:              "M4",
		name:            "Code Quality",
		description:     "Improve code organization and maintainability",
		target:          "Week 3-4",
		deliverables:    []string{"Linting configured", "Code reorganized", "Tech debt reduced"},
		successCriteria: []string{"Linting passing", "Architecture documented"},
		capacity:        8,
		match: func(i RoadmapItem) bool {
			return isCodeQualityCategory(i.Category)
		},
	},
	{
		id:              "M5",
		name:            "Testing & Docs",
		description:     "Establish test coverage and documentation",
		target:          "Week 4-5",
		deliverables:    []string{"Test suite", "Updated documentation"},
		successCriteria: []string{"Test coverage > 60%", "README complete"},
		capacity:        8,
		match: func(i RoadmapItem) bool {
			return isTestingOrDocsCategory(i.Category)
		},
	},
	{
		id:              "M6",
		name:            "AI Enhancements",
		description:     "Implement AI-powered improvements",
		target:          "Week 5+",
		deliverables:    []string{"AI features implemented"},
		successCriteria: []string{"Features functional", "User feedback positive"},
		capacity:        5,
		match: func(i RoadmapItem) bool {
			return i.AICanImplement
		},
		fullRoadmap: true,
		fixedDeps:   []string{"M4"},
	},
}

// GroupMilestones partitions the roadmap into at most six milestones.
//
// Buckets are evaluated in order and an item placed in one of M1..M5 is not
// offered to later buckets. M6 draws from the whole roadmap, so an AI-capable
// item can appear both in M6 and in an earlier milestone.
func GroupMilestones(roadmap []RoadmapItem) []Milestone {
	placed := make(map[string]bool, len(roadmap))
	milestones := make([]Milestone, 0, len(buckets))
	previous := ""

	for _, b := range buckets {
		var selected []RoadmapItem
		for _, item := range roadmap {
			if b.capacity != unlimited && len(selected) == b.capacity {
				break
			}
			if !b.fullRoadmap && placed[item.ID] {
				continue
			}
			if b.match(item) {
				selected = append(selected, item)
			}
		}
		if len(selected) == 0 {
			continue
		}

		m := Milestone{
			ID:              b.id,
			Name:            b.name,
			Description:     b.description,
			Target:          b.target,
			Items:           make([]string, 0, len(selected)),
			Deliverables:    append([]string(nil), b.deliverables...),
			SuccessCriteria: append([]string(nil), b.successCriteria...),
			Dependencies:    []string{},
		}
		for _, item := range selected {
			m.Items = append(m.Items, item.ID)
			m.EstimatedHours += item.EffortHours
			if !b.fullRoadmap {
				placed[item.ID] = true
			}
		}
		switch {
		case b.fixedDeps != nil:
			m.Dependencies = append(m.Dependencies, b.fixedDeps...)
		case previous != "":
			m.Dependencies = append(m.Dependencies, previous)
		}

		milestones = append(milestones, m)
		previous = m.ID
	}
	return milestones
}

// MilestoneFor returns the first milestone containing the item, if any.
func MilestoneFor(milestones []Milestone, itemID string) (Milestone, bool) {
	for _, m := range milestones {
		for _, id := range m.Items {
			if id == itemID {
				return m, true
			}
		}
	}
	return Milestone{}, false
}
