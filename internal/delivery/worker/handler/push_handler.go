// Package handler contains the Pub/Sub push handlers of the worker delivery.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"tracenfind/config"
	deliverycontext "tracenfind/internal/delivery/context"
	"tracenfind/internal/domain/constants"
	"tracenfind/internal/domain/service"
	"tracenfind/internal/infra/notification"
	"tracenfind/internal/infra/pubsub"
	"tracenfind/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// deliveryReport summarises one fan-out.
type deliveryReport struct {
	tokens  int
	sent    int
	failed  int
	invalid []string
}

// PushHandler fans persisted notifications out to the owner's installations.
type PushHandler struct {
	verifyPushAuth bool
	batchSize      int
	logger         *slog.Logger
	pushTokenUC    usecase.PushTokenUsecase
	pushSvc        service.PushService
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	PushTokenUC usecase.PushTokenUsecase
	PushSvc     service.PushService
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only real Google push subscriptions carry an OIDC token
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		batchSize:      notification.MaxMulticastTokens,
		logger:         params.Logger,
		pushTokenUC:    params.PushTokenUC,
		pushSvc:        params.PushSvc,
	}
}

// HandlePush handles incoming Pub/Sub push messages. Retryable failures
// answer 503 so Pub/Sub redelivers; everything else is acknowledged.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := envelope.DecodeEvent()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode notification event",
			slog.String("message_id", envelope.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("user_id", event.UserID),
		slog.String("notification_id", event.NotificationID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing notification event", slog.String("kind", event.Kind))

	report, err := h.processNotification(ctx, event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to process notification",
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Notification sending completed",
		slog.Int("tokens", report.tokens),
		slog.Int("total_sent", report.sent),
		slog.Int("total_failed", report.failed),
		slog.Int("invalid_tokens", len(report.invalid)),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the event's ID, then the HTTP request's, then a fresh one
func (h *PushHandler) extractRequestID(ctx context.Context, event *service.NotificationEvent) string {
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return deliverycontext.NewRequestID()
}

// processNotification sends the event to every active installation of its owner
func (h *PushHandler) processNotification(ctx context.Context, event *service.NotificationEvent) (*deliveryReport, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	tokens, err := h.pushTokenUC.GetActiveTokens(ctx, event.UserID)
	if err != nil {
		return nil, newRetryableError(errors.WithStack(err))
	}

	fcmTokens := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token.FCMToken != "" {
			fcmTokens = append(fcmTokens, token.FCMToken)
		}
	}

	report := &deliveryReport{tokens: len(fcmTokens)}
	if report.tokens == 0 {
		logger.Info("[Worker] No active installations to notify")

		return report, nil
	}

	var lastErr error
	for idx := 0; idx < len(fcmTokens); idx += h.batchSize {
		batch := fcmTokens[idx:min(idx+h.batchSize, len(fcmTokens))]

		sent, failed, invalid, sendErr := h.pushSvc.SendBatchNotification(ctx, batch, event.Title, event.Message, pushData(event))
		if sendErr != nil {
			logger.Error("[Worker] Failed to send batch",
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", sendErr),
			)
			report.failed += len(batch)
			lastErr = sendErr

			continue
		}

		report.sent += sent
		report.failed += failed
		report.invalid = append(report.invalid, invalid...)
	}

	if len(report.invalid) > 0 {
		if err := h.pushTokenUC.DeactivateInvalidTokens(ctx, event.UserID, report.invalid); err != nil {
			logger.Warn("[Worker] Failed to deactivate invalid tokens", slog.Any("error", err))
		}
	}

	// Redeliver only when nothing reached any installation.
	if lastErr != nil && report.sent == 0 {
		return report, newRetryableError(errors.Wrap(lastErr, "every batch failed"))
	}

	return report, nil
}

// pushData is the data payload attached to every push.
func pushData(event *service.NotificationEvent) map[string]string {
	data := map[string]string{
		"notification_id": event.NotificationID,
		"kind":            event.Kind,
		"timestamp_ms":    strconv.FormatInt(event.TimestampMs, 10),
	}
	if event.DeviceID != "" {
		data["device_id"] = event.DeviceID
	}

	return data
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
