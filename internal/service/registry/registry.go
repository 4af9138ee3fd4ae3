package registry

import (
	"fmt"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
)

// Registry is the fixed set of monitored zones in display order.
type Registry struct {
	zones []domain.Zone
	index map[string]int
}

func New(zones []domain.Zone) *Registry {
	copied := make([]domain.Zone, len(zones))
	index := make(map[string]int, len(zones))

	for i, zone := range zones {
		if zone.Position != nil {
			pos := *zone.Position
			zone.Position = &pos
		}
		copied[i] = zone
		index[zone.Name] = i
	}

	return &Registry{
		zones: copied,
		index: index,
	}
}

// Zones returns the zones in registry order. The slice is owned by the caller.
func (r *Registry) Zones() []domain.Zone {
	out := make([]domain.Zone, len(r.zones))
	copy(out, r.zones)
	return out
}

func (r *Registry) Len() int {
	return len(r.zones)
}

func (r *Registry) Zone(name string) (domain.Zone, error) {
	i, ok := r.index[name]
	if !ok {
		return domain.Zone{}, fmt.Errorf("%w: %q", domain.ErrUnknownZone, name)
	}
	return r.zones[i], nil
}

// Position returns the registered coordinate for name. ok is false for unknown
// or unmapped zones.
func (r *Registry) Position(name string) (domain.Position, bool) {
	i, ok := r.index[name]
	if !ok || r.zones[i].Position == nil {
		return domain.Position{}, false
	}
	return *r.zones[i].Position, true
}
