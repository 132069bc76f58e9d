package planning

// ProgressSummary counts roadmap items by status.
type ProgressSummary struct {
	Total           int     `json:"total"`
	Completed       int     `json:"completed"`
	InProgress      int     `json:"inProgress"`
	Skipped         int     `json:"skipped"`
	Pending         int     `json:"pending"`
	PercentComplete float64 `json:"percentComplete"`
}

// SetItemStatus updates the status of one roadmap item. Status is the only
// field of a report that changes after planning.
func SetItemStatus(report *PlanningReport, itemID string, status ItemStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	for i := range report.Roadmap {
		if report.Roadmap[i].ID == itemID {
			report.Roadmap[i].Status = status
			return nil
		}
	}
	return ErrItemNotFound
}

// NextItem returns the next pending item, walking milestones in order and
// then any roadmap items that no milestone holds.
func NextItem(report PlanningReport) (RoadmapItem, bool) {
	byID := make(map[string]RoadmapItem, len(report.Roadmap))
	for _, item := range report.Roadmap {
		byID[item.ID] = item
	}
	for _, m := range report.Milestones {
		for _, id := range m.Items {
			if item, ok := byID[id]; ok && item.Status == StatusPending {
				return item, true
			}
		}
	}
	for _, item := range report.Roadmap {
		if item.Status == StatusPending {
			return item, true
		}
	}
	return RoadmapItem{}, false
}

// Progress summarises item statuses across the roadmap.
func Progress(report PlanningReport) ProgressSummary {
	var p ProgressSummary
	for _, item := range report.Roadmap {
		p.Total++
		switch item.Status {
		case StatusCompleted:
			p.Completed++
		case StatusInProgress:
			p.InProgress++
		case StatusSkipped:
			p.Skipped++
		default:
			p.Pending++
		}
	}
	if p.Total > 0 {
		p.PercentComplete = float64(p.Completed) / float64(p.Total) * 100
	}
	return p
}
