package service

import (
	"context"
)

// NotificationEvent is published after a notification has been persisted so
// the push worker can fan it out to the user's registered installations.
type NotificationEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	UserID         string `json:"user_id"`
	NotificationID string `json:"notification_id"`
	Kind           string `json:"kind"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	DeviceID       string `json:"device_id,omitempty"`
	TimestampMs    int64  `json:"timestamp_ms"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async processing
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
