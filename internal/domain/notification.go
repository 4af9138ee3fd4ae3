package domain

import (
	"fmt"
	"time"
)

// NotificationTimeLayout is the clock format embedded in notification messages.
const NotificationTimeLayout = "15:04:05"

// NotificationEntry is one line of the alert feed.
type NotificationEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Zone      string    `json:"zone"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
}

func NewNotificationEntry(zone string, level Level, ts time.Time) NotificationEntry {
	return NotificationEntry{
		Timestamp: ts,
		Zone:      zone,
		Level:     level,
		Message:   FormatNotification(zone, level, ts),
	}
}

// FormatNotification renders the message used for display and dedup.
func FormatNotification(zone string, level Level, ts time.Time) string {
	return fmt.Sprintf("[%s] %s — %s", ts.Format(NotificationTimeLayout), zone, level.Display())
}
