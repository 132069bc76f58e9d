package planning

import (
	"reflect"
	"testing"
)

func TestCatalogIsStable(t *testing.T) {
	first := Catalog()
	if len(first) != 8 {
		t.Fatalf("expected 8 catalog entries, got %d", len(first))
	}
	first[0].Title = "mutated"
	first[0].IntegrationsNeeded[0] = "mutated"

	second := Catalog()
	if second[0].Title == "mutated" || second[0].IntegrationsNeeded[0] == "mutated" {
		t.Fatalf("expected catalog copies to be independent")
	}
	for i, opp := range second {
		if want := "AI00" + string(rune('1'+i)); opp.ID != want {
			t.Fatalf("entry %d: expected id %s, got %s", i, want, opp.ID)
		}
		if opp.UserBenefit == "" || opp.BusinessValue == "" || opp.TechnicalBenefit == "" {
			t.Fatalf("entry %s: missing value proposition", opp.ID)
		}
		if len(opp.IntegrationsNeeded) == 0 {
			t.Fatalf("entry %s: missing integrations", opp.ID)
		}
	}
}

func TestBuildOpportunitiesGenerated(t *testing.T) {
	findings := []Finding{
		{ID: "F001", Title: "Hardcoded secret", Severity: SeverityCritical, EffortHours: 2, AICanFix: true, AIApproach: "Move to env", Recommendation: "Use a vault"},
		{ID: "F002", Title: "No linter", Severity: SeverityMedium, EffortHours: 1, AICanFix: false},
		{ID: "F003", Title: "Missing tests", Severity: SeverityMedium, EffortHours: 8, AICanFix: true, AIApproach: "Generate tests"},
	}

	opps := BuildOpportunities(findings)

	if len(opps) != 10 {
		t.Fatalf("expected 10 opportunities, got %d", len(opps))
	}
	if !reflect.DeepEqual(opps[:8], Catalog()) {
		t.Fatalf("expected catalog entries first")
	}

	first := opps[8]
	want := AIOpportunity{
		ID:                 "AI101",
		Title:              "AI Fix: Hardcoded secret",
		Description:        "Move to env",
		Category:           OpportunityAutomation,
		UserBenefit:        "Automated improvement",
		BusinessValue:      "Reduced manual effort",
		TechnicalBenefit:   "Use a vault",
		Approach:           "Move to env",
		IntegrationsNeeded: []string{"AI Coding Assistant"},
		EstimatedHours:     1,
		Complexity:         ComplexityLow,
		Priority:           PriorityHigh,
		QuickWin:           true,
	}
	if !reflect.DeepEqual(first, want) {
		t.Fatalf("unexpected generated opportunity:\n got %+v\nwant %+v", first, want)
	}

	second := opps[9]
	if second.ID != "AI102" {
		t.Fatalf("expected AI102, got %s", second.ID)
	}
	if second.EstimatedHours != 4 || second.Complexity != ComplexityMedium {
		t.Fatalf("unexpected hours/complexity: %v %s", second.EstimatedHours, second.Complexity)
	}
	if second.Priority != PriorityMedium || second.QuickWin {
		t.Fatalf("unexpected priority/quick win: %s %v", second.Priority, second.QuickWin)
	}
}

func TestBuildOpportunitiesComplexityBoundary(t *testing.T) {
	opps := BuildOpportunities([]Finding{
		{Severity: SeverityLow, EffortHours: 3.5, AICanFix: true},
		{Severity: SeverityLow, EffortHours: 4, AICanFix: true},
	})
	if opps[8].Complexity != ComplexityLow {
		t.Fatalf("expected low complexity under 4 hours, got %s", opps[8].Complexity)
	}
	if opps[9].Complexity != ComplexityMedium {
		t.Fatalf("expected medium complexity at 4 hours, got %s", opps[9].Complexity)
	}
}
