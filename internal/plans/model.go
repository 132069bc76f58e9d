package plans

import (
	"time"

	"planner-backend/internal/planning"
)

// Plan is a stored planning run owned by one user.
type Plan struct {
	ID             string                  `json:"id"`
	UserID         string                  `json:"userId"`
	ProjectName    string                  `json:"projectName"`
	Focus          planning.Focus          `json:"focus"`
	SeverityPolicy planning.SeverityPolicy `json:"severityPolicy"`
	Report         planning.PlanningReport `json:"report"`
	AssessmentKey  string                  `json:"assessmentKey,omitempty"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

// clone copies the roadmap so status updates on the copy never reach the original.
func (p Plan) clone() Plan {
	out := p
	out.Report.Roadmap = append([]planning.RoadmapItem(nil), p.Report.Roadmap...)
	return out
}
