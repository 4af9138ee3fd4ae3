package domain

// Trend is the direction of a zone's count relative to its previous cycle.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

func (t Trend) String() string {
	return string(t)
}

func (t Trend) Display() string {
	switch t {
	case TrendIncreasing:
		return "Increasing"
	case TrendDecreasing:
		return "Decreasing"
	default:
		return "Stable"
	}
}

func (t Trend) IsIncreasing() bool {
	return t == TrendIncreasing
}
