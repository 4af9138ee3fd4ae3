package domain

// Level represents the traffic classification of a zone reading.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

func (l Level) String() string {
	return string(l)
}

// Display returns the label shown in the dashboard table and notification feed.
func (l Level) Display() string {
	switch l {
	case LevelHigh:
		return "High Traffic"
	case LevelMedium:
		return "Medium Traffic"
	default:
		return "Low Traffic"
	}
}

// Color returns the marker color used by map renderers.
func (l Level) Color() string {
	switch l {
	case LevelHigh:
		return "red"
	case LevelMedium:
		return "orange"
	default:
		return "green"
	}
}

// IsAlert reports whether a reading at this level raises a notification.
func (l Level) IsAlert() bool {
	return l == LevelMedium || l == LevelHigh
}

func (l Level) IsHigh() bool {
	return l == LevelHigh
}
