package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
)

type zoneFile struct {
	Zones []zoneEntry `yaml:"zones"`
}

type zoneEntry struct {
	Name string   `yaml:"name"`
	X    *float64 `yaml:"x"`
	Y    *float64 `yaml:"y"`
}

// DefaultZones returns the built-in campus registry in display order.
func DefaultZones() []domain.Zone {
	return []domain.Zone{
		domain.NewZone("Main Gate", 0.18, 0.88),
		domain.NewZone("Secondary Gate", 0.82, 0.88),
		domain.NewZone("Hostel Block A", 0.25, 0.55),
		domain.NewZone("Hostel Block B", 0.50, 0.58),
		domain.NewZone("Academic Block 1", 0.56, 0.76),
		domain.NewZone("Academic Block 2", 0.44, 0.74),
		domain.NewZone("Library", 0.34, 0.28),
		domain.NewZone("Cafeteria", 0.36, 0.62),
		domain.NewZone("Auditorium", 0.73, 0.46),
		domain.NewZone("Sports Complex", 0.78, 0.33),
	}
}

func LoadZonesFile(path string) ([]domain.Zone, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read zones file %s: %w", path, err)
	}
	return ParseZones(data)
}

// ParseZones decodes a registry document. Entries without coordinates are kept
// as unmapped zones.
func ParseZones(data []byte) ([]domain.Zone, error) {
	var doc zoneFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse zones file: %w", err)
	}

	zones := make([]domain.Zone, 0, len(doc.Zones))
	for _, entry := range doc.Zones {
		switch {
		case entry.X == nil && entry.Y == nil:
			zones = append(zones, domain.Zone{Name: entry.Name})
		case entry.X == nil || entry.Y == nil:
			return nil, fmt.Errorf("%w: %q", ErrPartialCoordinate, entry.Name)
		default:
			zones = append(zones, domain.NewZone(entry.Name, *entry.X, *entry.Y))
		}
	}

	return zones, nil
}

func ValidateZones(zones []domain.Zone) error {
	if len(zones) == 0 {
		return ErrNoZones
	}

	seen := make(map[string]struct{}, len(zones))
	for _, zone := range zones {
		if zone.Name == "" {
			return ErrEmptyZoneName
		}
		if _, ok := seen[zone.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateZone, zone.Name)
		}
		seen[zone.Name] = struct{}{}

		if zone.IsMapped() && !zone.Position.InBounds() {
			return fmt.Errorf("%w: %q", ErrZoneOutOfBounds, zone.Name)
		}
	}

	return nil
}
