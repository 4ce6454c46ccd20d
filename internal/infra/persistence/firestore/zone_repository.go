package firestore

import (
	"context"
	"time"

	"tracenfind/internal/domain/entity"
	domainerrors "tracenfind/internal/domain/errors"
	"tracenfind/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type zoneRepository struct {
	client *firestore.Client
}

// NewZoneRepository returns the users/{uid}/geofences collection.
func NewZoneRepository(client *firestore.Client) repository.ZoneRepository {
	return &zoneRepository{client: client}
}

func (repo *zoneRepository) collection(userID string) *firestore.CollectionRef {
	return userCollection(repo.client, userID, collectionGeofences)
}

func (repo *zoneRepository) SaveZone(ctx context.Context, userID string, zone *entity.Zone) error {
	wr, err := repo.collection(userID).Doc(zone.ID).Set(ctx, encodeZone(zone))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save geofence")
	}
	zone.UpdatedAt = wr.UpdateTime.UTC().Truncate(time.Millisecond)

	return nil
}

func (repo *zoneRepository) DeleteZone(ctx context.Context, userID, zoneID string) error {
	if _, err := repo.collection(userID).Doc(zoneID).Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return repository.ErrZoneNotFound
		}

		return errors.Wrap(err, "failed to delete geofence")
	}

	return nil
}

func (repo *zoneRepository) FindZones(ctx context.Context, userID string) ([]*entity.Zone, error) {
	docs, err := repo.collection(userID).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to query geofences")
	}

	return decodeZones(docs), nil
}

func (repo *zoneRepository) WatchZones(ctx context.Context, userID string, onSnapshot func([]*entity.Zone)) error {
	return watchQuery(ctx, repo.collection(userID).Query, func(docs []*firestore.DocumentSnapshot) {
		onSnapshot(decodeZones(docs))
	})
}

func decodeZones(docs []*firestore.DocumentSnapshot) []*entity.Zone {
	zones := make([]*entity.Zone, 0, len(docs))
	for _, doc := range docs {
		zones = append(zones, decodeZone(doc.Ref.ID, doc.Data()))
	}

	return zones
}
