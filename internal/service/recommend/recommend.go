package recommend

import "github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"

const (
	ImmediateCrowdControl = "Immediate crowd control required"
	MonitorAndManageEntry = "Monitor closely and manage entry"
	PrepareForCongestion  = "Prepare for congestion"
	MonitorTrafficFlow    = "Monitor traffic flow"
	NormalOperations      = "Normal operations"
)

// Advise returns the operator action for a level and trend. The first
// matching rule wins and every combination has an answer.
func Advise(level domain.Level, trend domain.Trend) string {
	switch {
	case level == domain.LevelHigh && trend.IsIncreasing():
		return ImmediateCrowdControl
	case level == domain.LevelHigh:
		return MonitorAndManageEntry
	case level == domain.LevelMedium && trend.IsIncreasing():
		return PrepareForCongestion
	case level == domain.LevelMedium:
		return MonitorTrafficFlow
	default:
		return NormalOperations
	}
}
