package alertpublisher

import (
	"context"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
)

type noopPublisher struct{}

func NewNoopPublisher() domain.AlertPublisher {
	return &noopPublisher{}
}

func (n *noopPublisher) Publish(_ context.Context, _ []domain.NotificationEntry) error {
	return nil
}

func (n *noopPublisher) Close() error {
	return nil
}
