package usecase

import (
	"context"

	"tracenfind/internal/domain/alert"
	"tracenfind/internal/domain/entity"
)

// PublishOutcome reports what Publish did with a logical event.
type PublishOutcome string

const (
	// OutcomePersisted means a new notification was written.
	OutcomePersisted PublishOutcome = "persisted"
	// OutcomeSkipped means the event duplicated a recent notification.
	OutcomeSkipped PublishOutcome = "skipped"
)

// PublishResult is the result of NotificationUsecase.Publish.
type PublishResult struct {
	Outcome      PublishOutcome       `json:"outcome"`
	Notification *entity.Notification `json:"notification,omitempty"` // Set when persisted
	DuplicateOf  string               `json:"duplicate_of,omitempty"` // ID of the matching notification when skipped, if known
}

// UnreadSummary is the deduplicated unread state of a user.
type UnreadSummary struct {
	Count int         `json:"count"`
	Badge alert.Badge `json:"badge"`
}

// NotificationUsecase is the notification sink and inbox of a user.
type NotificationUsecase interface {
	// Publish persists event unless a notification with the same signature
	// was created within the dedup window. The activity entry and the event
	// bus message that follow a write are best-effort.
	Publish(ctx context.Context, userID string, event entity.LogicalEvent) (*PublishResult, error)

	// ListRecent returns up to limit recent notifications with duplicates collapsed, newest first.
	ListRecent(ctx context.Context, userID string, limit int) ([]*entity.Notification, error)

	// UnreadCount returns the deduplicated unread count.
	UnreadCount(ctx context.Context, userID string) (*UnreadSummary, error)

	// MarkRead marks one notification read.
	MarkRead(ctx context.Context, userID, notificationID string) error

	// MarkAllRead marks every notification read and returns how many changed.
	MarkAllRead(ctx context.Context, userID string) (int, error)

	// ClearAll deletes every notification and returns how many were removed.
	ClearAll(ctx context.Context, userID string) (int, error)

	// ListActivity returns a device's timeline, newest first.
	ListActivity(ctx context.Context, userID, deviceID string, limit int) ([]*entity.ActivityEntry, error)

	// RecordSecurityAction publishes the event for a remote command on a device.
	RecordSecurityAction(ctx context.Context, userID, deviceID string, action entity.SecurityAction) (*PublishResult, error)
}
