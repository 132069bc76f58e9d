package planning

import "fmt"

const (
	riskCriticalThreshold = 3
	riskScoreThreshold    = 40
	riskBacklogThreshold  = 30
)

// Recommendation returns the overall guidance for a plan. The first matching rule wins.
func Recommendation(overallScore, criticalCount int) string {
	switch {
	case criticalCount > 0:
		return fmt.Sprintf("URGENT: Address %d critical issues before other work. Focus on security and stability.", criticalCount)
	case overallScore < 50:
		return "Significant improvement needed. Start with quick wins for momentum, then systematically address each area."
	case overallScore < 70:
		return "Codebase is acceptable. Prioritize high-impact items and establish better practices incrementally."
	default:
		return "Codebase is in good shape. Focus on refinements and consider AI enhancements for added value."
	}
}

// RiskFactors lists the implementation risks triggered by the assessment and
// the size of its roadmap. Each check is independent.
func RiskFactors(a Assessment, roadmapSize int) []string {
	risks := []string{}
	if a.CriticalCount > riskCriticalThreshold {
		risks = append(risks, "Multiple critical issues may indicate deeper problems")
	}
	if a.Score(CategoryTesting) < riskScoreThreshold {
		risks = append(risks, "Low test coverage makes refactoring risky")
	}
	if a.Score(CategoryDocumentation) < riskScoreThreshold {
		risks = append(risks, "Poor documentation may cause knowledge gaps")
	}
	if roadmapSize > riskBacklogThreshold {
		risks = append(risks, "Large backlog may overwhelm team")
	}
	return risks
}
