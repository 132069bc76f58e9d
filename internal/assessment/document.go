package assessment

import (
	"planner-backend/internal/planning"
)

// document mirrors the report written by the assessor.
type document struct {
	ProjectName   string `json:"project_name" yaml:"project_name"`
	AssessedAt    string `json:"assessed_at" yaml:"assessed_at"`
	OverallScore  int    `json:"overall_score" yaml:"overall_score"`
	OverallStatus string `json:"overall_status" yaml:"overall_status"`

	Architecture    *categoryDoc `json:"architecture" yaml:"architecture"`
	CodeQuality     *categoryDoc `json:"code_quality" yaml:"code_quality"`
	TechDebt        *categoryDoc `json:"tech_debt" yaml:"tech_debt"`
	Security        *categoryDoc `json:"security" yaml:"security"`
	UXNavigation    *categoryDoc `json:"ux_navigation" yaml:"ux_navigation"`
	UXStyling       *categoryDoc `json:"ux_styling" yaml:"ux_styling"`
	UXAccessibility *categoryDoc `json:"ux_accessibility" yaml:"ux_accessibility"`
	Performance     *categoryDoc `json:"performance" yaml:"performance"`
	Testing         *categoryDoc `json:"testing" yaml:"testing"`
	Documentation   *categoryDoc `json:"documentation" yaml:"documentation"`

	AllFindings   []findingDoc `json:"all_findings" yaml:"all_findings"`
	CriticalCount int          `json:"critical_count" yaml:"critical_count"`
	HighCount     int          `json:"high_count" yaml:"high_count"`
}

type categoryDoc struct {
	Score   *int   `json:"score" yaml:"score"`
	Status  string `json:"status" yaml:"status"`
	Summary string `json:"summary" yaml:"summary"`
}

type findingDoc struct {
	ID             string  `json:"id" yaml:"id"`
	Category       string  `json:"category" yaml:"category"`
	Severity       string  `json:"severity" yaml:"severity"`
	Title          string  `json:"title" yaml:"title"`
	Description    string  `json:"description" yaml:"description"`
	Location       string  `json:"location" yaml:"location"`
	Evidence       string  `json:"evidence" yaml:"evidence"`
	Impact         string  `json:"impact" yaml:"impact"`
	Recommendation string  `json:"recommendation" yaml:"recommendation"`
	EffortHours    float64 `json:"effort_hours" yaml:"effort_hours"`
	AICanFix       bool    `json:"ai_can_fix" yaml:"ai_can_fix"`
	AIApproach     string  `json:"ai_approach" yaml:"ai_approach"`
}

// requiredCategories feed the risk heuristics and must carry a score.
var requiredCategories = []planning.Category{
	planning.CategoryTesting,
	planning.CategoryDocumentation,
}

func (d document) categories() map[planning.Category]*categoryDoc {
	return map[planning.Category]*categoryDoc{
		planning.CategoryArchitecture:    d.Architecture,
		planning.CategoryCodeQuality:     d.CodeQuality,
		planning.CategoryTechDebt:        d.TechDebt,
		planning.CategorySecurity:        d.Security,
		planning.CategoryUXNavigation:    d.UXNavigation,
		planning.CategoryUXStyling:       d.UXStyling,
		planning.CategoryUXAccessibility: d.UXAccessibility,
		planning.CategoryPerformance:     d.Performance,
		planning.CategoryTesting:         d.Testing,
		planning.CategoryDocumentation:   d.Documentation,
	}
}

func (d document) toAssessment() (planning.Assessment, error) {
	byCategory := d.categories()
	for _, c := range requiredCategories {
		if cat := byCategory[c]; cat == nil || cat.Score == nil {
			return planning.Assessment{}, &planning.InvalidInputError{Field: string(c) + ".score", Reason: "category score is required"}
		}
	}

	scores := make(map[planning.Category]planning.CategoryScore, len(byCategory))
	for c, cat := range byCategory {
		if cat == nil || cat.Score == nil {
			continue
		}
		scores[c] = planning.CategoryScore{
			Category: c,
			Score:    *cat.Score,
			Status:   cat.Status,
			Summary:  cat.Summary,
		}
	}

	findings := make([]planning.Finding, 0, len(d.AllFindings))
	for _, f := range d.AllFindings {
		findings = append(findings, planning.Finding{
			ID:             f.ID,
			Title:          f.Title,
			Description:    f.Description,
			Category:       planning.Category(f.Category),
			Severity:       planning.Severity(f.Severity),
			EffortHours:    f.EffortHours,
			Location:       f.Location,
			Evidence:       f.Evidence,
			Impact:         f.Impact,
			Recommendation: f.Recommendation,
			AICanFix:       f.AICanFix,
			AIApproach:     f.AIApproach,
		})
	}

	return planning.Assessment{
		ProjectName:   d.ProjectName,
		AssessedAt:    d.AssessedAt,
		OverallScore:  d.OverallScore,
		OverallStatus: d.OverallStatus,
		CriticalCount: d.CriticalCount,
		HighCount:     d.HighCount,
		Findings:      findings,
		Scores:        scores,
	}, nil
}
