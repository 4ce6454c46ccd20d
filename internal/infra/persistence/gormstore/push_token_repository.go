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

// pushTokenRepository implements the repository.PushTokenRepository interface.
type pushTokenRepository struct {
	db *gorm.DB
}

// NewPushTokenRepository is the constructor for pushTokenRepository.
func NewPushTokenRepository(db *gorm.DB) repository.PushTokenRepository {
	return &pushTokenRepository{db: db}
}

// UpsertToken registers a token. An existing registration of the same
// installation is refreshed in place and keeps its ID.
func (repo *pushTokenRepository) UpsertToken(ctx context.Context, token *entity.PushToken) error {
	err := repo.refresh(ctx, token)
	if err == nil || !errors.Is(err, repository.ErrPushTokenNotFound) {
		return err
	}

	tokenM := fromPushTokenDomain(token)
	tokenM.ID = uuid.Must(uuid.NewV7()).String()
	tokenM.IsActive = true

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		// A concurrent registration of the same installation won the insert.
		if isUniqueConstraintViolation(err) {
			return repo.refresh(ctx, token)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create push token")
	}

	token.ID = tokenM.ID
	token.IsActive = true
	token.CreatedAt = tokenM.CreatedAt
	token.UpdatedAt = tokenM.UpdatedAt

	return nil
}

func (repo *pushTokenRepository) refresh(ctx context.Context, token *entity.PushToken) error {
	var existing model.PushTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND installation_id = ?", token.UserID, token.InstallationID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrPushTokenNotFound
		}

		return errors.Wrap(err, "failed to find push token")
	}

	now := time.Now().UTC()
	if err := repo.db.WithContext(ctx).
		Model(&existing).
		Updates(map[string]any{
			"fcm_token":  token.FCMToken,
			"platform":   token.Platform,
			"is_active":  true,
			"updated_at": now,
		}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to refresh push token")
	}

	token.ID = existing.ID
	token.IsActive = true
	token.CreatedAt = existing.CreatedAt
	token.UpdatedAt = now

	return nil
}

// FindActiveTokensByUser retrieves all active tokens for a user.
func (repo *pushTokenRepository) FindActiveTokensByUser(ctx context.Context, userID string) ([]*entity.PushToken, error) {
	var tokenModels []*model.PushTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active push tokens")
	}

	tokens := make([]*entity.PushToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toPushTokenDomain(tokenM))
	}

	return tokens, nil
}

// DeactivateTokens marks the given FCM tokens inactive.
func (repo *pushTokenRepository) DeactivateTokens(ctx context.Context, userID string, fcmTokens []string) error {
	if len(fcmTokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.PushTokenModel{}).
		Where("user_id = ? AND fcm_token IN ?", userID, fcmTokens).
		Update("is_active", false).Error; err != nil {
		return errors.Wrap(err, "failed to deactivate push tokens")
	}

	return nil
}

// DeleteToken removes a registration.
func (repo *pushTokenRepository) DeleteToken(ctx context.Context, userID, id string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.PushTokenModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete push token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPushTokenNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPushTokenDomain(data *model.PushTokenModel) *entity.PushToken {
	if data == nil {
		return nil
	}

	return &entity.PushToken{
		ID:             data.ID,
		UserID:         data.UserID,
		FCMToken:       data.FCMToken,
		InstallationID: data.InstallationID,
		Platform:       data.Platform,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromPushTokenDomain(data *entity.PushToken) *model.PushTokenModel {
	return &model.PushTokenModel{
		ID:             data.ID,
		UserID:         data.UserID,
		FCMToken:       data.FCMToken,
		InstallationID: data.InstallationID,
		Platform:       data.Platform,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
