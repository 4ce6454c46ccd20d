package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tracenfind/config"
	"tracenfind/internal/domain/constants"
	"tracenfind/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.NotificationEvent {
	return &service.NotificationEvent{
		RequestID:      "req-1",
		UserID:         "u1",
		NotificationID: "n1",
		Kind:           "sim-alert",
		Title:          "SIM Alert",
		Message:        "⚠️ SIM removed",
		DeviceID:       "d1",
		TimestampMs:    1772366400000,
	}
}

func TestPushEnvelope_RoundTrip(t *testing.T) {
	envelope, err := NewPushEnvelope(sampleEvent(), "sub", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "u1", envelope.Message.Attributes[AttrUserID])
	assert.Equal(t, "2026-03-01T12:00:00Z", envelope.Message.PublishTime)

	got, err := envelope.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, sampleEvent(), got)
}

func TestPushEnvelope_DecodeRejectsGarbage(t *testing.T) {
	var empty PushEnvelope
	_, err := empty.DecodeEvent()
	assert.Error(t, err)

	var notBase64 PushEnvelope
	notBase64.Message.Data = "%%%"
	_, err = notBase64.DecodeEvent()
	assert.Error(t, err)

	noUser, err := NewPushEnvelope(&service.NotificationEvent{NotificationID: "n1"}, "sub", time.Now())
	require.NoError(t, err)
	_, err = noUser.DecodeEvent()
	assert.Error(t, err)
}

func TestLocalHTTPPublisher_PostsEnvelope(t *testing.T) {
	var received PushEnvelope
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishNotificationEvent(context.Background(), sampleEvent()))

	assert.Equal(t, "req-1", requestID)
	got, err := received.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, "n1", got.NotificationID)
}

func TestLocalHTTPPublisher_ReportsWorkerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	assert.Error(t, publisher.PublishNotificationEvent(context.Background(), sampleEvent()))
}

func TestNewEventPublisher_Providers(t *testing.T) {
	newParams := func(cfg *config.PubSubConfig) PublisherParams {
		return PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: cfg},
			Logger: discardLogger(),
		}
	}

	publisher, err := NewEventPublisher(newParams(nil))
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)

	publisher, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: constants.PubSubProviderNoop}))
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)

	publisher, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}))
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: constants.PubSubProviderLocal}))
	assert.Error(t, err)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: constants.PubSubProviderGoogle}))
	assert.Error(t, err)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: "kafka"}))
	assert.Error(t, err)
}
