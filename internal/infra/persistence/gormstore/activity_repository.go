package gormstore

import (
	"context"
	"time"

	"tracenfind/internal/domain/entity"
	domainerrors "tracenfind/internal/domain/errors"
	"tracenfind/internal/domain/repository"
	"tracenfind/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (repo *activityRepository) Append(ctx context.Context, userID string, entry *entity.ActivityEntry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	activityM := &model.ActivityModel{
		ID:             uuid.Must(uuid.NewV7()).String(),
		UserID:         userID,
		DeviceID:       entry.DeviceID,
		NotificationID: entry.NotificationID,
		Kind:           string(entry.Kind),
		Title:          entry.Title,
		Message:        entry.Message,
		TimestampMs:    entry.Timestamp.UnixMilli(),
	}

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append activity")
	}

	entry.ID = activityM.ID

	return nil
}

func (repo *activityRepository) FindByDevice(ctx context.Context, userID, deviceID string, limit int) ([]*entity.ActivityEntry, error) {
	var activityModels []*model.ActivityModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND device_id = ?", userID, deviceID).
		Order("timestamp_ms DESC").
		Order("id DESC").
		Limit(limit).
		Find(&activityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find device activity")
	}

	entries := make([]*entity.ActivityEntry, 0, len(activityModels))
	for _, activityM := range activityModels {
		entries = append(entries, &entity.ActivityEntry{
			ID:             activityM.ID,
			DeviceID:       activityM.DeviceID,
			NotificationID: activityM.NotificationID,
			Kind:           entity.EventKind(activityM.Kind),
			Title:          activityM.Title,
			Message:        activityM.Message,
			Timestamp:      time.UnixMilli(activityM.TimestampMs).UTC(),
		})
	}

	return entries, nil
}
