package domain

import "time"

const (
	StatusLive   = "LIVE"
	StatusFrozen = "FROZEN"
)

// ZoneRow is one line of the dashboard table.
type ZoneRow struct {
	Zone             string `json:"zone"`
	Count            int    `json:"count"`
	Level            Level  `json:"level"`
	LevelDisplay     string `json:"level_display"`
	Trend            Trend  `json:"trend"`
	Recommendation   string `json:"recommendation"`
	FirstObservation bool   `json:"first_observation"`
}

// Marker is an overlay point for the map renderer, in image pixel space.
type Marker struct {
	Zone     string  `json:"zone"`
	PixelX   float64 `json:"pixel_x"`
	PixelY   float64 `json:"pixel_y"`
	Color    string  `json:"color"`
	Label    string  `json:"label"`
	Fallback bool    `json:"fallback"`
}

// Warning describes a recoverable problem surfaced alongside a cycle's output.
// Zone is empty for cycle-level warnings.
type Warning struct {
	Zone    string `json:"zone,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	WarningReadingFailed     = "reading_failed"
	WarningMissingCoordinate = "missing_coordinate"
	WarningHistoryFailed     = "history_failed"
)

// Snapshot is the full output of one dashboard cycle.
type Snapshot struct {
	CycleID       string    `json:"cycle_id"`
	GeneratedAt   time.Time `json:"generated_at"`
	Status        string    `json:"status"`
	Rows          []ZoneRow `json:"rows"`
	Markers       []Marker  `json:"markers"`
	Notifications []string  `json:"notifications"`
	TotalPeople   int       `json:"total_people"`
	ZonesInAlert  int       `json:"zones_in_alert"`
	Action        string    `json:"action"`
	MapWidth      int       `json:"map_width"`
	MapHeight     int       `json:"map_height"`
	Warnings      []Warning `json:"warnings"`
}
