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

type zoneRepository struct {
	db           *gorm.DB
	pollInterval time.Duration
}

// NewZoneRepository is the constructor for zoneRepository.
func NewZoneRepository(db *gorm.DB, pollInterval time.Duration) repository.ZoneRepository {
	return &zoneRepository{
		db:           db,
		pollInterval: pollInterval,
	}
}

func (repo *zoneRepository) SaveZone(ctx context.Context, userID string, zone *entity.Zone) error {
	now := time.Now().UTC()
	zoneM := &model.ZoneModel{
		UserID:       userID,
		ID:           zone.ID,
		Name:         zone.Name,
		CenterLat:    zone.Center.Lat,
		CenterLng:    zone.Center.Lng,
		RadiusMeters: zone.RadiusMeters,
		AlertOnEntry: zone.AlertOnEntry,
		AlertOnExit:  zone.AlertOnExit,
		UpdatedAtMs:  now.UnixMilli(),
		RevisionNs:   now.UnixNano(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "id"}},
			UpdateAll: true,
		}).
		Create(zoneM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save geofence")
	}

	zone.UpdatedAt = time.UnixMilli(zoneM.UpdatedAtMs).UTC()

	return nil
}

func (repo *zoneRepository) DeleteZone(ctx context.Context, userID, zoneID string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, zoneID).
		Delete(&model.ZoneModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete geofence")
	}

	if result.RowsAffected == 0 {
		return repository.ErrZoneNotFound
	}

	return nil
}

func (repo *zoneRepository) FindZones(ctx context.Context, userID string) ([]*entity.Zone, error) {
	models, err := repo.findModels(ctx, userID)
	if err != nil {
		return nil, err
	}

	return toZoneDomains(models), nil
}

func (repo *zoneRepository) WatchZones(ctx context.Context, userID string, onSnapshot func([]*entity.Zone)) error {
	return pollSnapshots(ctx, repo.pollInterval,
		func(ctx context.Context) ([]*model.ZoneModel, error) {
			return repo.findModels(ctx, userID)
		},
		func(m *model.ZoneModel) string { return m.ID + "@" + strconv.FormatInt(m.RevisionNs, 10) },
		func(models []*model.ZoneModel) {
			onSnapshot(toZoneDomains(models))
		},
	)
}

func (repo *zoneRepository) findModels(ctx context.Context, userID string) ([]*model.ZoneModel, error) {
	var zoneModels []*model.ZoneModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&zoneModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find geofences")
	}

	return zoneModels, nil
}

func toZoneDomains(models []*model.ZoneModel) []*entity.Zone {
	zones := make([]*entity.Zone, 0, len(models))
	for _, zoneM := range models {
		zones = append(zones, &entity.Zone{
			ID:           zoneM.ID,
			Name:         zoneM.Name,
			Center:       entity.Coordinate{Lat: zoneM.CenterLat, Lng: zoneM.CenterLng},
			RadiusMeters: zoneM.RadiusMeters,
			AlertOnEntry: zoneM.AlertOnEntry,
			AlertOnExit:  zoneM.AlertOnExit,
			UpdatedAt:    time.UnixMilli(zoneM.UpdatedAtMs).UTC(),
		})
	}

	return zones
}
