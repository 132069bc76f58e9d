package planning

import "fmt"

const hoursPerWeek = 40

// EffortLabel renders a total hour estimate the way plan summaries present it:
// small totals in hours, medium totals as an hour range, large totals in weeks.
func EffortLabel(hours float64) string {
	switch {
	case hours <= 8:
		return fmt.Sprintf("%d hours", int(hours))
	case hours <= hoursPerWeek:
		return fmt.Sprintf("%d-%d hours", int(hours), int(hours*1.2))
	default:
		return fmt.Sprintf("%.1f weeks", hours/hoursPerWeek)
	}
}
