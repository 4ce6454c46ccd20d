package repository

import (
	"context"

	"tracenfind/internal/domain/entity"
)

// ActivityRepository is the per-device timeline.
type ActivityRepository interface {
	// Append adds an entry to a device's timeline.
	Append(ctx context.Context, userID string, entry *entity.ActivityEntry) error

	// FindByDevice returns at most limit entries for a device, newest first.
	FindByDevice(ctx context.Context, userID, deviceID string, limit int) ([]*entity.ActivityEntry, error)
}
