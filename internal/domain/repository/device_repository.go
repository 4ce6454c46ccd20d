package repository

import (
	"context"
	"errors"

	"tracenfind/internal/domain/entity"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
)

// DeviceRepository holds the latest snapshot of every tracked device.
type DeviceRepository interface {
	// SaveSnapshot replaces the stored snapshot of a device.
	SaveSnapshot(ctx context.Context, userID string, snapshot *entity.DeviceSnapshot) error

	// FindDevice returns one device snapshot.
	FindDevice(ctx context.Context, userID, deviceID string) (*entity.DeviceSnapshot, error)

	// FindDevices returns every device snapshot of the user.
	FindDevices(ctx context.Context, userID string) ([]*entity.DeviceSnapshot, error)

	// WatchDevices blocks, invoking onSnapshot with every device of the user
	// on subscription and after every change, until ctx is done or the watch fails.
	WatchDevices(ctx context.Context, userID string, onSnapshot func([]*entity.DeviceSnapshot)) error
}
