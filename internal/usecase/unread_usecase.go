package usecase

import (
	"context"

	"tracenfind/internal/domain/entity"
)

// UnreadSession processes successive unread snapshots of one subscription.
type UnreadSession interface {
	// Apply recomputes the badge from a raw unread set and plays a sound for
	// each newly observed raw item. It returns the deduplicated count.
	Apply(ctx context.Context, unread []*entity.Notification) int
}

// UnreadUsecase opens unread sessions.
type UnreadUsecase interface {
	// NewSession starts a session whose first Apply is silent.
	NewSession(userID string) UnreadSession
}
