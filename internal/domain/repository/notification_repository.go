// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"tracenfind/internal/domain/entity"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository is the per-user notification collection.
type NotificationRepository interface {
	// Create persists a new notification. The store assigns ID and Timestamp
	// and writes them back into n.
	Create(ctx context.Context, userID string, n *entity.Notification) error

	// FindRecent returns at most limit notifications, newest first.
	FindRecent(ctx context.Context, userID string, limit int) ([]*entity.Notification, error)

	// FindUnread returns every unread notification, newest first.
	FindUnread(ctx context.Context, userID string) ([]*entity.Notification, error)

	// MarkRead sets read=true on one notification.
	MarkRead(ctx context.Context, userID, id string) error

	// MarkAllRead sets read=true on every unread notification and returns how many changed.
	MarkAllRead(ctx context.Context, userID string) (int, error)

	// DeleteAll removes every notification of the user and returns how many were removed.
	DeleteAll(ctx context.Context, userID string) (int, error)

	// WatchUnread blocks, invoking onSnapshot with the full unread set (newest
	// first) on subscription and after every change, until ctx is done or the
	// watch fails.
	WatchUnread(ctx context.Context, userID string, onSnapshot func([]*entity.Notification)) error
}
