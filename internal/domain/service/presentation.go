package service

import (
	"context"

	"tracenfind/internal/domain/alert"
	"tracenfind/internal/domain/entity"
)

// BadgeSink receives the deduplicated unread badge of a user.
type BadgeSink interface {
	SetBadge(ctx context.Context, userID string, badge alert.Badge)
}

// SoundPlayer plays the alert sound on the user's surfaces.
type SoundPlayer interface {
	PlayAlertSound(ctx context.Context, userID string)
}

// Notifier shows a toast to the user.
type Notifier interface {
	Notify(ctx context.Context, userID, title, message string, severity entity.Severity)
}
