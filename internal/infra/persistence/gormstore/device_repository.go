package gormstore

import (
	"context"
	"strconv"
	"time"

	"tracenfind/internal/domain/entity"
	domainerrors "tracenfind/internal/domain/errors"
	"tracenfind/internal/domain/repository"
	"tracenfind/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db           *gorm.DB
	pollInterval time.Duration
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB, pollInterval time.Duration) repository.DeviceRepository {
	return &deviceRepository{
		db:           db,
		pollInterval: pollInterval,
	}
}

// SaveSnapshot replaces the stored snapshot of a device.
func (repo *deviceRepository) SaveSnapshot(ctx context.Context, userID string, snapshot *entity.DeviceSnapshot) error {
	deviceM := fromDeviceDomain(userID, snapshot)
	deviceM.RevisionNs = time.Now().UnixNano()

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "id"}},
			UpdateAll: true,
		}).
		Create(deviceM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save device snapshot")
	}

	return nil
}

// FindDevice returns one device snapshot.
func (repo *deviceRepository) FindDevice(ctx context.Context, userID, deviceID string) (*entity.DeviceSnapshot, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, deviceID).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevices returns every device snapshot of the user.
func (repo *deviceRepository) FindDevices(ctx context.Context, userID string) ([]*entity.DeviceSnapshot, error) {
	models, err := repo.findModels(ctx, userID)
	if err != nil {
		return nil, err
	}

	devices := make([]*entity.DeviceSnapshot, 0, len(models))
	for _, deviceM := range models {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// WatchDevices polls the user's devices and reports them whenever one changes.
func (repo *deviceRepository) WatchDevices(ctx context.Context, userID string, onSnapshot func([]*entity.DeviceSnapshot)) error {
	return pollSnapshots(ctx, repo.pollInterval,
		func(ctx context.Context) ([]*model.DeviceModel, error) {
			return repo.findModels(ctx, userID)
		},
		func(m *model.DeviceModel) string { return m.ID + "@" + strconv.FormatInt(m.RevisionNs, 10) },
		func(models []*model.DeviceModel) {
			devices := make([]*entity.DeviceSnapshot, 0, len(models))
			for _, deviceM := range models {
				devices = append(devices, toDeviceDomain(deviceM))
			}
			onSnapshot(devices)
		},
	)
}

func (repo *deviceRepository) findModels(ctx context.Context, userID string) ([]*model.DeviceModel, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices")
	}

	return deviceModels, nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain DeviceSnapshot.
func toDeviceDomain(data *model.DeviceModel) *entity.DeviceSnapshot {
	if data == nil {
		return nil
	}

	snapshot := &entity.DeviceSnapshot{
		ID:             data.ID,
		Name:           data.Name,
		Status:         entity.DeviceStatus(data.Status),
		Battery:        data.Battery,
		Security:       entity.SecurityFields{SimStatus: data.SimStatus},
		FinderMessage:  data.FinderMessage,
		FinderPhotoURL: data.FinderPhotoURL,
	}
	if data.LastUpdatedMs > 0 {
		snapshot.LastUpdated = time.UnixMilli(data.LastUpdatedMs).UTC()
	}
	if data.Latitude != nil && data.Longitude != nil {
		snapshot.Location = &entity.Coordinate{Lat: *data.Latitude, Lng: *data.Longitude}
	}

	return snapshot
}

// fromDeviceDomain converts a domain DeviceSnapshot to a GORM DeviceModel.
func fromDeviceDomain(userID string, data *entity.DeviceSnapshot) *model.DeviceModel {
	deviceM := &model.DeviceModel{
		UserID:         userID,
		ID:             data.ID,
		Name:           data.Name,
		Status:         string(data.Status),
		Battery:        data.Battery,
		SimStatus:      data.Security.SimStatus,
		FinderMessage:  data.FinderMessage,
		FinderPhotoURL: data.FinderPhotoURL,
	}
	if !data.LastUpdated.IsZero() {
		deviceM.LastUpdatedMs = data.LastUpdated.UnixMilli()
	}
	if data.Location != nil {
		lat, lng := data.Location.Lat, data.Location.Lng
		deviceM.Latitude = &lat
		deviceM.Longitude = &lng
	}

	return deviceM
}
