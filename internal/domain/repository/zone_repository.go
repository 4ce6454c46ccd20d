package repository

import (
	"context"
	"errors"

	"tracenfind/internal/domain/entity"
)

// Domain-specific errors for geofence persistence.
var (
	// ErrZoneNotFound is returned when a geofence is not found.
	ErrZoneNotFound = errors.New("zone not found")
)

// ZoneRepository holds the user's geofences.
type ZoneRepository interface {
	// SaveZone creates or replaces a geofence.
	SaveZone(ctx context.Context, userID string, zone *entity.Zone) error

	// DeleteZone removes a geofence.
	DeleteZone(ctx context.Context, userID, zoneID string) error

	// FindZones returns every geofence of the user.
	FindZones(ctx context.Context, userID string) ([]*entity.Zone, error)

	// WatchZones blocks, invoking onSnapshot with every geofence of the user
	// on subscription and after every change, until ctx is done or the watch fails.
	WatchZones(ctx context.Context, userID string, onSnapshot func([]*entity.Zone)) error
}
