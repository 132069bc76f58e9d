package planning

import (
	"fmt"
	"strings"
)

// Severity is the assessed severity of a finding.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
)

// Validate reports whether s is one of the five recognised severities.
func (s Severity) Validate() error {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow, SeverityInfo:
		return nil
	default:
		return fmt.Errorf("invalid severity %q: must be critical, high, medium, low or info", string(s))
	}
}

// Category is the assessment area a finding belongs to.
type Category string

const (
	CategoryArchitecture    Category = "architecture"
	CategoryCodeQuality     Category = "code_quality"
	CategoryTechDebt        Category = "tech_debt"
	CategorySecurity        Category = "security"
	CategoryUXNavigation    Category = "ux_navigation"
	CategoryUXStyling       Category = "ux_styling"
	CategoryUXAccessibility Category = "ux_accessibility"
	CategoryPerformance     Category = "performance"
	CategoryTesting         Category = "testing"
	CategoryDocumentation   Category = "documentation"
)

// Categories lists the known assessment categories in assessment order.
var Categories = []Category{
	CategoryArchitecture,
	CategoryCodeQuality,
	CategoryTechDebt,
	CategorySecurity,
	CategoryUXNavigation,
	CategoryUXStyling,
	CategoryUXAccessibility,
	CategoryPerformance,
	CategoryTesting,
	CategoryDocumentation,
}

// IsUX reports whether the category is one of the ux_ sub-categories.
func (c Category) IsUX() bool {
	return strings.HasPrefix(string(c), "ux_")
}

// Priority is the derived urgency of a roadmap item.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Impact is the derived value of completing a roadmap item.
type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

// Complexity buckets the implementation cost of an AI opportunity.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// OpportunityCategory tags the kind of value an AI opportunity delivers.
type OpportunityCategory string

const (
	OpportunityUserValue     OpportunityCategory = "user_value"
	OpportunityEfficiency    OpportunityCategory = "efficiency"
	OpportunityFunctionality OpportunityCategory = "functionality"
	OpportunityAutomation    OpportunityCategory = "automation"
)

// ItemStatus tracks work on a roadmap item after the plan is produced.
type ItemStatus string

const (
	StatusPending    ItemStatus = "pending"
	StatusInProgress ItemStatus = "in_progress"
	StatusCompleted  ItemStatus = "completed"
	StatusSkipped    ItemStatus = "skipped"
)

// Validate reports whether s is a known item status.
func (s ItemStatus) Validate() error {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, string(s))
	}
}

// Finding is one issue reported by the assessment.
type Finding struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Category       Category `json:"category"`
	Severity       Severity `json:"severity"`
	EffortHours    float64  `json:"effortHours"`
	Location       string   `json:"location,omitempty"`
	Evidence       string   `json:"evidence,omitempty"`
	Impact         string   `json:"impact,omitempty"`
	Recommendation string   `json:"recommendation,omitempty"`
	AICanFix       bool     `json:"aiCanFix"`
	AIApproach     string   `json:"aiApproach,omitempty"`
}

// CategoryScore is the assessment score for a single category.
type CategoryScore struct {
	Category Category `json:"category"`
	Score    int      `json:"score"`
	Status   string   `json:"status,omitempty"`
	Summary  string   `json:"summary,omitempty"`
}

// Assessment is the input contract consumed by the planner.
type Assessment struct {
	ProjectName   string                     `json:"projectName"`
	AssessedAt    string                     `json:"assessedAt,omitempty"`
	OverallScore  int                        `json:"overallScore"`
	OverallStatus string                     `json:"overallStatus"`
	CriticalCount int                        `json:"criticalCount"`
	HighCount     int                        `json:"highCount"`
	Findings      []Finding                  `json:"findings"`
	Scores        map[Category]CategoryScore `json:"scores"`
}

// Score returns the score recorded for a category, or zero when absent.
func (a Assessment) Score(c Category) int {
	return a.Scores[c].Score
}

// RoadmapItem is an actionable unit derived from exactly one finding.
type RoadmapItem struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Category       Category   `json:"category"`
	Priority       Priority   `json:"priority"`
	EffortHours    float64    `json:"effortHours"`
	Impact         Impact     `json:"impact"`
	Tasks          []string   `json:"tasks"`
	Dependencies   []string   `json:"dependencies"`
	AffectedFiles  []string   `json:"affectedFiles"`
	AICanImplement bool       `json:"aiCanImplement"`
	AIApproach     string     `json:"aiApproach,omitempty"`
	AIConfidence   string     `json:"aiConfidence,omitempty"`
	Status         ItemStatus `json:"status"`
	FindingID      string     `json:"findingId"`
}

// AIOpportunity is a proposed AI-enabled feature or fix.
type AIOpportunity struct {
	ID                 string              `json:"id"`
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	Category           OpportunityCategory `json:"category"`
	UserBenefit        string              `json:"userBenefit"`
	BusinessValue      string              `json:"businessValue"`
	TechnicalBenefit   string              `json:"technicalBenefit"`
	Approach           string              `json:"approach"`
	IntegrationsNeeded []string            `json:"integrationsNeeded"`
	EstimatedHours     float64             `json:"estimatedHours"`
	Complexity         Complexity          `json:"complexity"`
	Priority           Priority            `json:"priority"`
	QuickWin           bool                `json:"quickWin"`
}

// Milestone groups roadmap items into an ordered delivery step.
type Milestone struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Target          string   `json:"target"`
	Items           []string `json:"items"`
	EstimatedHours  float64  `json:"estimatedHours"`
	Deliverables    []string `json:"deliverables"`
	SuccessCriteria []string `json:"successCriteria"`
	Dependencies    []string `json:"dependencies"`
}

// PlanningReport is the complete output of one planning run.
type PlanningReport struct {
	ProjectName          string          `json:"projectName"`
	PlannedAt            string          `json:"plannedAt"`
	TotalItems           int             `json:"totalItems"`
	CriticalCount        int             `json:"criticalCount"`
	QuickWinsCount       int             `json:"quickWinsCount"`
	AIOpportunitiesCount int             `json:"aiOpportunitiesCount"`
	TotalHours           float64         `json:"totalHours"`
	TotalEffort          string          `json:"totalEffort"`
	Roadmap              []RoadmapItem   `json:"roadmap"`
	AIOpportunities      []AIOpportunity `json:"aiOpportunities"`
	Milestones           []Milestone     `json:"milestones"`
	RecommendedApproach  string          `json:"recommendedApproach"`
	RiskFactors          []string        `json:"riskFactors"`
	Dependencies         []string        `json:"dependencies"`
}
