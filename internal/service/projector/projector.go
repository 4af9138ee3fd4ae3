package projector

import (
	"fmt"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
)

// Point is a location in image pixel space.
type Point struct {
	X float64
	Y float64
}

// Project scales a normalized position to an image of the given size.
func Project(pos domain.Position, width, height int) Point {
	return Point{
		X: pos.X * float64(width),
		Y: pos.Y * float64(height),
	}
}

// ProjectZone projects a zone, placing unmapped zones at the image center.
// fallback reports whether the center was used.
func ProjectZone(zone domain.Zone, width, height int) (point Point, fallback bool) {
	if !zone.IsMapped() {
		return Project(domain.CenterPosition, width, height), true
	}
	return Project(*zone.Position, width, height), false
}

// Marker builds the map overlay for a classified zone reading.
func Marker(zone domain.Zone, count int, level domain.Level, width, height int) domain.Marker {
	point, fallback := ProjectZone(zone, width, height)

	return domain.Marker{
		Zone:     zone.Name,
		PixelX:   point.X,
		PixelY:   point.Y,
		Color:    level.Color(),
		Label:    fmt.Sprintf("%s\n%d ppl", zone.Name, count),
		Fallback: fallback,
	}
}
