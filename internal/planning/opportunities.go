package planning

import "fmt"

const generatedOpportunityBase = 100

// BuildOpportunities returns the catalog followed by one generated
// opportunity per AI-fixable finding, in finding order.
func BuildOpportunities(findings []Finding) []AIOpportunity {
	out := Catalog()
	n := 0
	for _, f := range findings {
		if !f.AICanFix {
			continue
		}
		n++
		out = append(out, opportunityForFinding(n, f))
	}
	return out
}

func opportunityForFinding(n int, f Finding) AIOpportunity {
	complexity := ComplexityMedium
	if f.EffortHours < 4 {
		complexity = ComplexityLow
	}
	priority := PriorityMedium
	if f.Severity == SeverityCritical || f.Severity == SeverityHigh {
		priority = PriorityHigh
	}
	return AIOpportunity{
		ID:                 fmt.Sprintf("AI%03d", generatedOpportunityBase+n),
		Title:              "AI Fix: " + f.Title,
		Description:        f.AIApproach,
		Category:           OpportunityAutomation,
		UserBenefit:        "Automated improvement",
		BusinessValue:      "Reduced manual effort",
		TechnicalBenefit:   f.Recommendation,
		Approach:           f.AIApproach,
		IntegrationsNeeded: []string{"AI Coding Assistant"},
		EstimatedHours:     f.EffortHours * 0.5,
		Complexity:         complexity,
		Priority:           priority,
		QuickWin:           f.EffortHours <= 2,
	}
}
