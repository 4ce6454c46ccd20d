package firestore

import (
	"context"
	"slices"
	"time"

	"tracenfind/internal/domain/entity"
	domainerrors "tracenfind/internal/domain/errors"
	"tracenfind/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type notificationRepository struct {
	client *firestore.Client
}

// NewNotificationRepository returns the users/{uid}/notifications collection.
func NewNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &notificationRepository{client: client}
}

func (repo *notificationRepository) collection(userID string) *firestore.CollectionRef {
	return userCollection(repo.client, userID, collectionNotifications)
}

// Create adds the document with a server timestamp. The commit time of the
// write is the value the server assigned.
func (repo *notificationRepository) Create(ctx context.Context, userID string, n *entity.Notification) error {
	ref, wr, err := repo.collection(userID).Add(ctx, encodeNotification(n))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	n.ID = ref.ID
	n.Read = false
	n.Timestamp = wr.UpdateTime.UTC().Truncate(time.Millisecond)

	return nil
}

func (repo *notificationRepository) FindRecent(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	docs, err := repo.collection(userID).
		OrderBy(fieldTimestamp, firestore.Desc).
		Limit(limit).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to query recent notifications")
	}

	return decodeNotifications(docs), nil
}

// FindUnread filters on read only, so no composite index is needed; ordering
// happens client side.
func (repo *notificationRepository) FindUnread(ctx context.Context, userID string) ([]*entity.Notification, error) {
	docs, err := repo.unreadQuery(userID).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to query unread notifications")
	}

	return decodeNotifications(docs), nil
}

func (repo *notificationRepository) unreadQuery(userID string) firestore.Query {
	return repo.collection(userID).Where(fieldRead, "==", false)
}

func (repo *notificationRepository) MarkRead(ctx context.Context, userID, id string) error {
	_, err := repo.collection(userID).Doc(id).Update(ctx, []firestore.Update{{Path: fieldRead, Value: true}})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

func (repo *notificationRepository) MarkAllRead(ctx context.Context, userID string) (int, error) {
	writes := newBulkWrites(ctx, repo.client)

	err := drain(ctx, repo.unreadQuery(userID), func(doc *firestore.DocumentSnapshot) error {
		return writes.update(doc.Ref, []firestore.Update{{Path: fieldRead, Value: true}})
	})
	count, writeErr := writes.finish()
	if err != nil {
		return count, errors.Wrap(err, "failed to mark notifications read")
	}
	if writeErr != nil {
		return count, errors.Wrap(writeErr, "failed to mark notifications read")
	}

	return count, nil
}

func (repo *notificationRepository) DeleteAll(ctx context.Context, userID string) (int, error) {
	writes := newBulkWrites(ctx, repo.client)

	err := drain(ctx, repo.collection(userID).Query, func(doc *firestore.DocumentSnapshot) error {
		return writes.delete(doc.Ref)
	})
	count, writeErr := writes.finish()
	if err != nil {
		return count, errors.Wrap(err, "failed to delete notifications")
	}
	if writeErr != nil {
		return count, errors.Wrap(writeErr, "failed to delete notifications")
	}

	return count, nil
}

func (repo *notificationRepository) WatchUnread(ctx context.Context, userID string, onSnapshot func([]*entity.Notification)) error {
	return watchQuery(ctx, repo.unreadQuery(userID), func(docs []*firestore.DocumentSnapshot) {
		onSnapshot(decodeNotifications(docs))
	})
}

// decodeNotifications returns the documents newest first.
func decodeNotifications(docs []*firestore.DocumentSnapshot) []*entity.Notification {
	notifications := make([]*entity.Notification, 0, len(docs))
	for _, doc := range docs {
		notifications = append(notifications, decodeNotification(doc.Ref.ID, doc.Data()))
	}

	slices.SortStableFunc(notifications, func(a, b *entity.Notification) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	return notifications
}
