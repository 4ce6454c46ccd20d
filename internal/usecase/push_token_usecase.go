package usecase

import (
	"context"

	"tracenfind/internal/domain/entity"
)

// PushTokenInfo represents installation information for registration
type PushTokenInfo struct {
	FCMToken       string `json:"fcm_token"`
	InstallationID string `json:"installation_id"`
	Platform       string `json:"platform"`
}

// PushTokenUsecase defines the interface for push token management use cases
type PushTokenUsecase interface {
	// RegisterToken registers a new installation or refreshes an existing one
	RegisterToken(ctx context.Context, userID string, info *PushTokenInfo) (*entity.PushToken, error)

	// GetActiveTokens retrieves all active tokens for a user
	GetActiveTokens(ctx context.Context, userID string) ([]*entity.PushToken, error)

	// DeactivateInvalidTokens marks tokens rejected by FCM inactive
	DeactivateInvalidTokens(ctx context.Context, userID string, fcmTokens []string) error

	// RemoveToken deletes a registration
	RemoveToken(ctx context.Context, userID, tokenID string) error
}
