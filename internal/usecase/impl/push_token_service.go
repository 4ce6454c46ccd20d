package impl

import (
	"context"
	"time"

	"tracenfind/internal/domain/entity"
	domainerrors "tracenfind/internal/domain/errors"
	"tracenfind/internal/domain/repository"
	"tracenfind/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type pushTokenService struct {
	tokenRepo repository.PushTokenRepository
}

// NewPushTokenService creates a new push token service instance
func NewPushTokenService(tokenRepo repository.PushTokenRepository) usecase.PushTokenUsecase {
	return &pushTokenService{
		tokenRepo: tokenRepo,
	}
}

// RegisterToken registers a new installation or refreshes an existing one
func (s *pushTokenService) RegisterToken(ctx context.Context, userID string, info *usecase.PushTokenInfo) (*entity.PushToken, error) {
	if info == nil || info.FCMToken == "" || info.InstallationID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcm_token and installation_id are required")
	}

	now := time.Now().UTC()
	token := &entity.PushToken{
		ID:             uuid.NewString(),
		UserID:         userID,
		FCMToken:       info.FCMToken,
		InstallationID: info.InstallationID,
		Platform:       info.Platform,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.tokenRepo.UpsertToken(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to upsert push token")
	}

	return token, nil
}

// GetActiveTokens retrieves all active tokens for a user
func (s *pushTokenService) GetActiveTokens(ctx context.Context, userID string) ([]*entity.PushToken, error) {
	tokens, err := s.tokenRepo.FindActiveTokensByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active push tokens")
	}

	return tokens, nil
}

// DeactivateInvalidTokens marks tokens rejected by FCM inactive
func (s *pushTokenService) DeactivateInvalidTokens(ctx context.Context, userID string, fcmTokens []string) error {
	if len(fcmTokens) == 0 {
		return nil
	}

	if err := s.tokenRepo.DeactivateTokens(ctx, userID, fcmTokens); err != nil {
		return errors.Wrap(err, "failed to deactivate push tokens")
	}

	return nil
}

// RemoveToken deletes a registration
func (s *pushTokenService) RemoveToken(ctx context.Context, userID, tokenID string) error {
	if err := s.tokenRepo.DeleteToken(ctx, userID, tokenID); err != nil {
		if errors.Is(err, repository.ErrPushTokenNotFound) {
			return domainerrors.ErrPushTokenNotFound
		}

		return errors.Wrap(err, "failed to delete push token")
	}

	return nil
}
