package domain

// Position is a normalized map coordinate in [0,1]x[0,1].
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// CenterPosition is used for zones that have no registered coordinate.
var CenterPosition = Position{X: 0.5, Y: 0.5}

func (p Position) InBounds() bool {
	return p.X >= 0 && p.X <= 1 && p.Y >= 0 && p.Y <= 1
}

// Zone is a named area of the monitored site. Position is nil for unmapped zones.
type Zone struct {
	Name     string
	Position *Position
}

func NewZone(name string, x, y float64) Zone {
	return Zone{Name: name, Position: &Position{X: x, Y: y}}
}

func (z Zone) IsMapped() bool {
	return z.Position != nil
}
