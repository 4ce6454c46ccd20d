package firestore

import (
	"context"

	"tracenfind/internal/domain/entity"
	domainerrors "tracenfind/internal/domain/errors"
	"tracenfind/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type deviceRepository struct {
	client *firestore.Client
}

// NewDeviceRepository returns the users/{uid}/devices collection.
func NewDeviceRepository(client *firestore.Client) repository.DeviceRepository {
	return &deviceRepository{client: client}
}

func (repo *deviceRepository) collection(userID string) *firestore.CollectionRef {
	return userCollection(repo.client, userID, collectionDevices)
}

// SaveSnapshot overwrites the whole document; snapshots are never patched.
func (repo *deviceRepository) SaveSnapshot(ctx context.Context, userID string, snapshot *entity.DeviceSnapshot) error {
	if _, err := repo.collection(userID).Doc(snapshot.ID).Set(ctx, encodeDevice(snapshot)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save device snapshot")
	}

	return nil
}

func (repo *deviceRepository) FindDevice(ctx context.Context, userID, deviceID string) (*entity.DeviceSnapshot, error) {
	doc, err := repo.collection(userID).Doc(deviceID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to get device")
	}

	return decodeDevice(doc.Ref.ID, doc.Data()), nil
}

func (repo *deviceRepository) FindDevices(ctx context.Context, userID string) ([]*entity.DeviceSnapshot, error) {
	docs, err := repo.collection(userID).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to query devices")
	}

	return decodeDevices(docs), nil
}

func (repo *deviceRepository) WatchDevices(ctx context.Context, userID string, onSnapshot func([]*entity.DeviceSnapshot)) error {
	return watchQuery(ctx, repo.collection(userID).Query, func(docs []*firestore.DocumentSnapshot) {
		onSnapshot(decodeDevices(docs))
	})
}

func decodeDevices(docs []*firestore.DocumentSnapshot) []*entity.DeviceSnapshot {
	devices := make([]*entity.DeviceSnapshot, 0, len(docs))
	for _, doc := range docs {
		devices = append(devices, decodeDevice(doc.Ref.ID, doc.Data()))
	}

	return devices
}
