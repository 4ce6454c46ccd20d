package usecase

import (
	"context"

	"tracenfind/internal/domain/entity"
)

// TrackingUsecase turns device and geofence snapshots into notifications.
// Calls for the same user are serialised.
type TrackingUsecase interface {
	// SyncZones replaces the geofences evaluated for a user.
	SyncZones(ctx context.Context, userID string, zones []*entity.Zone)

	// HandleDevices processes one full devices snapshot of a user.
	HandleDevices(ctx context.Context, userID string, devices []*entity.DeviceSnapshot) []*PublishResult

	// IngestSnapshot validates and stores a device snapshot reported over the API.
	IngestSnapshot(ctx context.Context, userID string, snapshot *entity.DeviceSnapshot) error

	// ListZones returns the stored geofences of a user.
	ListZones(ctx context.Context, userID string) ([]*entity.Zone, error)

	// SaveZone validates and stores a geofence.
	SaveZone(ctx context.Context, userID string, zone *entity.Zone) error

	// DeleteZone removes a geofence.
	DeleteZone(ctx context.Context, userID, zoneID string) error

	// Forget drops all in-memory state held for a user.
	Forget(userID string)
}
