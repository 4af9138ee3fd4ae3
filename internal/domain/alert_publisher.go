package domain

import "context"

//go:generate mockgen -source=alert_publisher.go -destination=alert_publisher_mock.go -package=domain

// AlertPublisher forwards newly recorded notifications to downstream consumers.
type AlertPublisher interface {
	Publish(ctx context.Context, entries []NotificationEntry) error
	Close() error
}
