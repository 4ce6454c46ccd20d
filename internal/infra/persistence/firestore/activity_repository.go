package firestore

import (
	"context"

	"tracenfind/internal/domain/entity"
	domainerrors "tracenfind/internal/domain/errors"
	"tracenfind/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type activityRepository struct {
	client *firestore.Client
}

// NewActivityRepository returns the users/{uid}/devices/{id}/activity timelines.
func NewActivityRepository(client *firestore.Client) repository.ActivityRepository {
	return &activityRepository{client: client}
}

func (repo *activityRepository) collection(userID, deviceID string) *firestore.CollectionRef {
	return userCollection(repo.client, userID, collectionDevices).Doc(deviceID).Collection(collectionActivity)
}

func (repo *activityRepository) Append(ctx context.Context, userID string, entry *entity.ActivityEntry) error {
	fields := map[string]any{
		fieldKind:     string(entry.Kind),
		fieldTitle:    entry.Title,
		fieldMessage:  entry.Message,
		fieldDeviceID: entry.DeviceID,
	}
	if entry.NotificationID != "" {
		fields[fieldNotificationID] = entry.NotificationID
	}
	if entry.Timestamp.IsZero() {
		fields[fieldTimestamp] = firestore.ServerTimestamp
	} else {
		fields[fieldTimestamp] = entry.Timestamp
	}

	ref, _, err := repo.collection(userID, entry.DeviceID).Add(ctx, fields)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append activity")
	}
	entry.ID = ref.ID

	return nil
}

func (repo *activityRepository) FindByDevice(ctx context.Context, userID, deviceID string, limit int) ([]*entity.ActivityEntry, error) {
	docs, err := repo.collection(userID, deviceID).
		OrderBy(fieldTimestamp, firestore.Desc).
		Limit(limit).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to query device activity")
	}

	entries := make([]*entity.ActivityEntry, 0, len(docs))
	for _, doc := range docs {
		entry := decodeActivity(doc.Ref.ID, doc.Data())
		if entry.DeviceID == "" {
			entry.DeviceID = deviceID
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
