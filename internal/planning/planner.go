package planning

import (
	"sort"
	"time"
)

// Planner turns an assessment into a PlanningReport. It holds configuration
// only, so one Planner can serve any number of runs, concurrently.
type Planner struct {
	// SeverityPolicy defaults to SeverityReject.
	SeverityPolicy SeverityPolicy
	// Now defaults to time.Now.
	Now func() time.Time
	// OnSeverityFallback is called for each finding planned under SeverityFallbackMedium.
	OnSeverityFallback func(Finding)
}

// CreatePlan runs the planner with default settings.
func CreatePlan(a Assessment) (PlanningReport, error) {
	return (&Planner{}).CreatePlan(a)
}

// CreatePlan builds the roadmap, opportunities, milestones and guidance for one assessment.
func (p *Planner) CreatePlan(a Assessment) (PlanningReport, error) {
	policy := p.SeverityPolicy
	if policy == "" {
		policy = SeverityReject
	}
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	roadmap, err := buildRoadmap(a.Findings, policy, p.OnSeverityFallback)
	if err != nil {
		return PlanningReport{}, err
	}
	opportunities := BuildOpportunities(a.Findings)
	milestones := GroupMilestones(roadmap)

	var totalHours float64
	critical, quickWins := 0, 0
	for _, item := range roadmap {
		totalHours += item.EffortHours
		if item.Priority == PriorityCritical {
			critical++
		}
		if isSummaryQuickWin(item) {
			quickWins++
		}
	}

	return PlanningReport{
		ProjectName:          a.ProjectName,
		PlannedAt:            now().UTC().Format(time.RFC3339),
		TotalItems:           len(roadmap),
		CriticalCount:        critical,
		QuickWinsCount:       quickWins,
		AIOpportunitiesCount: len(opportunities),
		TotalHours:           totalHours,
		TotalEffort:          EffortLabel(totalHours),
		Roadmap:              roadmap,
		AIOpportunities:      opportunities,
		Milestones:           milestones,
		RecommendedApproach:  Recommendation(a.OverallScore, a.CriticalCount),
		RiskFactors:          RiskFactors(a, len(roadmap)),
		Dependencies:         integrations(opportunities),
	}, nil
}

// isSummaryQuickWin counts toward the report's quick-win total. It differs from
// the M2 bucket rule, which ignores impact and excludes critical items.
func isSummaryQuickWin(item RoadmapItem) bool {
	return item.EffortHours <= 2 && item.Impact == ImpactHigh
}

func integrations(opps []AIOpportunity) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, opp := range opps {
		for _, name := range opp.IntegrationsNeeded {
			if seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
