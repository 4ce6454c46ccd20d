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

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db           *gorm.DB
	pollInterval time.Duration
	now          func() time.Time
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB, pollInterval time.Duration) repository.NotificationRepository {
	return &notificationRepository{
		db:           db,
		pollInterval: pollInterval,
		now:          time.Now,
	}
}

// Create persists a new notification with a store-assigned ID and timestamp.
func (repo *notificationRepository) Create(ctx context.Context, userID string, n *entity.Notification) error {
	notificationM := fromNotificationDomain(userID, n)
	notificationM.ID = uuid.Must(uuid.NewV7()).String()
	notificationM.TimestampMs = repo.now().UTC().UnixMilli()

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrNotificationWriteFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	n.ID = notificationM.ID
	n.Timestamp = time.UnixMilli(notificationM.TimestampMs).UTC()

	return nil
}

// FindRecent returns at most limit notifications, newest first.
func (repo *notificationRepository) FindRecent(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp_ms DESC").
		Order("id DESC").
		Limit(limit).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent notifications")
	}

	return toNotificationDomains(notificationModels), nil
}

// FindUnread returns every unread notification, newest first.
func (repo *notificationRepository) FindUnread(ctx context.Context, userID string) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND read = ?", userID, false).
		Order("timestamp_ms DESC").
		Order("id DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find unread notifications")
	}

	return toNotificationDomains(notificationModels), nil
}

// MarkRead sets read=true on one notification.
func (repo *notificationRepository) MarkRead(ctx context.Context, userID, id string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND id = ?", userID, id).
		Update("read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead sets read=true on every unread notification of the user.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, userID string) (int, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark notifications read")
	}

	return int(result.RowsAffected), nil
}

// DeleteAll removes every notification of the user.
func (repo *notificationRepository) DeleteAll(ctx context.Context, userID string) (int, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.NotificationModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete notifications")
	}

	return int(result.RowsAffected), nil
}

// WatchUnread polls the unread set and reports it whenever it changes.
func (repo *notificationRepository) WatchUnread(ctx context.Context, userID string, onSnapshot func([]*entity.Notification)) error {
	return pollSnapshots(ctx, repo.pollInterval,
		func(ctx context.Context) ([]*entity.Notification, error) {
			return repo.FindUnread(ctx, userID)
		},
		func(n *entity.Notification) string { return n.ID },
		onSnapshot,
	)
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:        data.ID,
		Kind:      entity.EventKind(data.Kind),
		Title:     data.Title,
		Message:   data.Message,
		Read:      data.Read,
		DeviceID:  data.DeviceID,
		Timestamp: time.UnixMilli(data.TimestampMs).UTC(),
	}
}

func toNotificationDomains(models []*model.NotificationModel) []*entity.Notification {
	notifications := make([]*entity.Notification, 0, len(models))
	for _, notificationM := range models {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(userID string, data *entity.Notification) *model.NotificationModel {
	return &model.NotificationModel{
		ID:          data.ID,
		UserID:      userID,
		Kind:        string(data.Kind),
		Title:       data.Title,
		Message:     data.Message,
		Read:        data.Read,
		DeviceID:    data.DeviceID,
		TimestampMs: data.Timestamp.UnixMilli(),
	}
}
