package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"tracenfind/internal/domain/service"

	"github.com/pkg/errors"
)

// Attribute keys set on every published message.
const (
	AttrNotificationID = "notification_id"
	AttrUserID         = "user_id"
	AttrKind           = "kind"
	AttrRequestID      = "request_id"
)

// PushEnvelope is the body Pub/Sub posts to push subscriptions.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

func eventAttributes(event *service.NotificationEvent) map[string]string {
	attributes := map[string]string{
		AttrNotificationID: event.NotificationID,
		AttrUserID:         event.UserID,
		AttrKind:           event.Kind,
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}

// NewPushEnvelope wraps an event the way a push subscription delivers it.
func NewPushEnvelope(event *service.NotificationEvent, subscription string, publishedAt time.Time) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	envelope := &PushEnvelope{Subscription: subscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.Attributes = eventAttributes(event)
	envelope.Message.MessageID = event.NotificationID
	envelope.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return envelope, nil
}

// DecodeEvent extracts the notification event carried by the envelope.
func (e *PushEnvelope) DecodeEvent() (*service.NotificationEvent, error) {
	if e.Message.Data == "" {
		return nil, errors.New("push envelope carries no data")
	}

	raw, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "push envelope data is not base64")
	}

	var event service.NotificationEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, errors.Wrap(err, "push envelope data is not a notification event")
	}
	if event.UserID == "" {
		return nil, errors.New("notification event has no user")
	}
	if event.RequestID == "" {
		event.RequestID = e.Message.Attributes[AttrRequestID]
	}

	return &event, nil
}
