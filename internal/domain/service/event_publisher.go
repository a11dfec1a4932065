package service

import (
	"context"

	"style/internal/domain/entity"
)

// OrphanedImageEvent announces a stored object that no row should reference anymore.
type OrphanedImageEvent struct {
	RequestID string        `json:"request_id,omitempty"` // For distributed tracing
	Bucket    entity.Bucket `json:"bucket"`
	URL       string        `json:"url"`
	Reason    string        `json:"reason"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	PublishOrphanedImage(ctx context.Context, event *OrphanedImageEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
