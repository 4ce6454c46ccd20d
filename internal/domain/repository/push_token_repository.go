package repository

import (
	"context"
	"errors"

	"tracenfind/internal/domain/entity"
)

// Domain-specific errors for push token persistence.
var (
	// ErrPushTokenNotFound is returned when a push token is not found.
	ErrPushTokenNotFound = errors.New("push token not found")
)

// PushTokenRepository defines the interface for push token persistence.
type PushTokenRepository interface {
	// UpsertToken registers a token, replacing any previous token of the same installation.
	UpsertToken(ctx context.Context, token *entity.PushToken) error

	// FindActiveTokensByUser retrieves all active tokens for a user.
	FindActiveTokensByUser(ctx context.Context, userID string) ([]*entity.PushToken, error)

	// DeactivateTokens marks the given FCM tokens inactive.
	DeactivateTokens(ctx context.Context, userID string, fcmTokens []string) error

	// DeleteToken removes a registration.
	DeleteToken(ctx context.Context, userID, id string) error
}
