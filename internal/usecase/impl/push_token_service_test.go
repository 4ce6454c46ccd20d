package impl

import (
	"context"
	"testing"

	"tracenfind/internal/domain/entity"
	domainerrors "tracenfind/internal/domain/errors"
	"tracenfind/internal/domain/repository"
	mockRepo "tracenfind/internal/mocks/repository"
	"tracenfind/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pushTokenServiceFixtures holds all test dependencies for push token service tests.
type pushTokenServiceFixtures struct {
	service   usecase.PushTokenUsecase
	tokenRepo *mockRepo.MockPushTokenRepository
}

func createTestPushTokenService(t *testing.T) pushTokenServiceFixtures {
	tokenRepo := mockRepo.NewMockPushTokenRepository(t)

	return pushTokenServiceFixtures{
		service:   NewPushTokenService(tokenRepo),
		tokenRepo: tokenRepo,
	}
}

func TestPushTokenService_RegisterToken(t *testing.T) {
	fx := createTestPushTokenService(t)
	ctx := context.Background()
	info := &usecase.PushTokenInfo{
		FCMToken:       "test-fcm-token",
		InstallationID: "browser-123",
		Platform:       "web",
	}

	fx.tokenRepo.EXPECT().
		UpsertToken(ctx, mock.AnythingOfType("*entity.PushToken")).
		Return(nil)

	token, err := fx.service.RegisterToken(ctx, "user-1", info)
	require.NoError(t, err)
	assert.NotEmpty(t, token.ID)
	assert.Equal(t, "user-1", token.UserID)
	assert.Equal(t, info.FCMToken, token.FCMToken)
	assert.Equal(t, info.InstallationID, token.InstallationID)
	assert.True(t, token.IsActive)
}

func TestPushTokenService_RegisterToken_Validation(t *testing.T) {
	fx := createTestPushTokenService(t)

	_, err := fx.service.RegisterToken(context.Background(), "user-1", &usecase.PushTokenInfo{FCMToken: "x"})
	assert.Error(t, err)
}

func TestPushTokenService_RegisterToken_RepoError(t *testing.T) {
	fx := createTestPushTokenService(t)
	ctx := context.Background()

	fx.tokenRepo.EXPECT().UpsertToken(ctx, mock.Anything).Return(errors.New("database error"))

	token, err := fx.service.RegisterToken(ctx, "user-1", &usecase.PushTokenInfo{FCMToken: "x", InstallationID: "y"})
	assert.Error(t, err)
	assert.Nil(t, token)
}

func TestPushTokenService_GetActiveTokens(t *testing.T) {
	fx := createTestPushTokenService(t)
	ctx := context.Background()

	fx.tokenRepo.EXPECT().FindActiveTokensByUser(ctx, "user-1").Return([]*entity.PushToken{{ID: "t1"}}, nil)

	tokens, err := fx.service.GetActiveTokens(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, tokens, 1)
}

func TestPushTokenService_DeactivateInvalidTokens(t *testing.T) {
	fx := createTestPushTokenService(t)
	ctx := context.Background()

	require.NoError(t, fx.service.DeactivateInvalidTokens(ctx, "user-1", nil))

	fx.tokenRepo.EXPECT().DeactivateTokens(ctx, "user-1", []string{"bad"}).Return(nil)
	require.NoError(t, fx.service.DeactivateInvalidTokens(ctx, "user-1", []string{"bad"}))
}

func TestPushTokenService_RemoveToken_NotFound(t *testing.T) {
	fx := createTestPushTokenService(t)
	ctx := context.Background()

	fx.tokenRepo.EXPECT().DeleteToken(ctx, "user-1", "t1").Return(repository.ErrPushTokenNotFound)

	assert.ErrorIs(t, fx.service.RemoveToken(ctx, "user-1", "t1"), domainerrors.ErrPushTokenNotFound)
}
