package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"tracenfind/config"
	"tracenfind/internal/domain/entity"
	"tracenfind/internal/domain/service"
	"tracenfind/internal/infra/pubsub"
	repomocks "tracenfind/internal/mocks/repository"
	servicemocks "tracenfind/internal/mocks/service"
	"tracenfind/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUser = "user-1"

func newTestHandler(t *testing.T) (*PushHandler, *repomocks.MockPushTokenRepository, *servicemocks.MockPushService) {
	t.Helper()

	tokenRepo := repomocks.NewMockPushTokenRepository(t)
	pushSvc := servicemocks.NewMockPushService(t)

	h := NewPushHandler(PushHandlerParams{
		Config:      &config.Config{},
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		PushTokenUC: impl.NewPushTokenService(tokenRepo),
		PushSvc:     pushSvc,
	})

	return h, tokenRepo, pushSvc
}

func testEvent() *service.NotificationEvent {
	return &service.NotificationEvent{
		RequestID:      "req-1",
		UserID:         testUser,
		NotificationID: "n-1",
		Kind:           string(entity.EventKindSimAlert),
		Title:          "SIM alert",
		Message:        "SIM removed from Pixel",
		DeviceID:       "phone",
		TimestampMs:    1772366400000,
	}
}

func pushRequest(t *testing.T, h *PushHandler, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))

	return rec
}

func envelopeBody(t *testing.T, event *service.NotificationEvent) []byte {
	t.Helper()

	envelope, err := pubsub.NewPushEnvelope(event, "projects/local/subscriptions/notification-push", time.Now())
	require.NoError(t, err)
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	return body
}

func activeTokens(n int) []*entity.PushToken {
	tokens := make([]*entity.PushToken, n)
	for i := range tokens {
		tokens[i] = &entity.PushToken{ID: "t" + strconv.Itoa(i), UserID: testUser, FCMToken: "fcm-" + strconv.Itoa(i), IsActive: true}
	}

	return tokens
}

func TestHandlePush_SendsAndDeactivatesInvalidTokens(t *testing.T) {
	h, tokenRepo, pushSvc := newTestHandler(t)

	tokenRepo.EXPECT().FindActiveTokensByUser(mock.Anything, testUser).Return(activeTokens(2), nil)
	pushSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"fcm-0", "fcm-1"}, "SIM alert", "SIM removed from Pixel", mock.MatchedBy(func(data map[string]string) bool {
			return data["notification_id"] == "n-1" && data["device_id"] == "phone" && data["kind"] == "sim-alert"
		})).
		Return(1, 1, []string{"fcm-1"}, nil)
	tokenRepo.EXPECT().DeactivateTokens(mock.Anything, testUser, []string{"fcm-1"}).Return(nil)

	rec := pushRequest(t, h, envelopeBody(t, testEvent()))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_BatchesOfFiveHundred(t *testing.T) {
	h, tokenRepo, pushSvc := newTestHandler(t)

	tokenRepo.EXPECT().FindActiveTokensByUser(mock.Anything, testUser).Return(activeTokens(501), nil)
	pushSvc.EXPECT().
		SendBatchNotification(mock.Anything, mock.MatchedBy(func(batch []string) bool { return len(batch) == 500 }), mock.Anything, mock.Anything, mock.Anything).
		Return(500, 0, nil, nil).Once()
	pushSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"fcm-500"}, mock.Anything, mock.Anything, mock.Anything).
		Return(1, 0, nil, nil).Once()

	rec := pushRequest(t, h, envelopeBody(t, testEvent()))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_NoInstallations(t *testing.T) {
	h, tokenRepo, _ := newTestHandler(t)

	tokenRepo.EXPECT().FindActiveTokensByUser(mock.Anything, testUser).Return(nil, nil)

	rec := pushRequest(t, h, envelopeBody(t, testEvent()))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_RetryableFailures(t *testing.T) {
	t.Run("token lookup fails", func(t *testing.T) {
		h, tokenRepo, _ := newTestHandler(t)
		tokenRepo.EXPECT().FindActiveTokensByUser(mock.Anything, testUser).Return(nil, errors.New("store down"))

		rec := pushRequest(t, h, envelopeBody(t, testEvent()))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("every batch fails", func(t *testing.T) {
		h, tokenRepo, pushSvc := newTestHandler(t)
		tokenRepo.EXPECT().FindActiveTokensByUser(mock.Anything, testUser).Return(activeTokens(1), nil)
		pushSvc.EXPECT().
			SendBatchNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(0, 0, nil, errors.New("fcm unavailable"))

		rec := pushRequest(t, h, envelopeBody(t, testEvent()))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestHandlePush_PartialBatchFailureIsAcknowledged(t *testing.T) {
	h, tokenRepo, pushSvc := newTestHandler(t)
	h.batchSize = 1

	tokenRepo.EXPECT().FindActiveTokensByUser(mock.Anything, testUser).Return(activeTokens(2), nil)
	pushSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"fcm-0"}, mock.Anything, mock.Anything, mock.Anything).
		Return(1, 0, nil, nil)
	pushSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"fcm-1"}, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("timeout"))

	rec := pushRequest(t, h, envelopeBody(t, testEvent()))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_RejectsMalformedMessages(t *testing.T) {
	h, _, _ := newTestHandler(t)

	cases := map[string]string{
		"not json":       `{`,
		"no data":        `{"message":{"messageId":"1"}}`,
		"not base64":     `{"message":{"data":"%%%"}}`,
		"missing userId": `{"message":{"data":"` + "eyJraW5kIjoic2ltLWFsZXJ0In0=" + `"}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := pushRequest(t, h, []byte(body))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandlePush_RequiresTokenWhenVerifying(t *testing.T) {
	h, _, _ := newTestHandler(t)
	h.verifyPushAuth = true

	rec := pushRequest(t, h, envelopeBody(t, testEvent()))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyPubSubToken_HeaderShape(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(""))
	require.ErrorContains(t, verifyPubSubToken(req), "missing authorization header")

	req.Header.Set("Authorization", "Basic abc")
	require.ErrorContains(t, verifyPubSubToken(req), "invalid authorization header format")
}
