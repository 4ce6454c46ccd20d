// Package notification delivers push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"

	"tracenfind/internal/domain/service"
	firebaseinfra "tracenfind/internal/infra/firebase"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MaxMulticastTokens is the FCM limit of tokens per multicast request.
const MaxMulticastTokens = 500

// multicastSender is the slice of *messaging.Client used here.
type multicastSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
}

// Params defines the required parameters
type Params struct {
	fx.In

	Ctx context.Context
	App *firebaseinfra.App
}

// NewFirebaseService creates a new Firebase push service instance
func NewFirebaseService(params Params) (service.PushService, error) {
	client, err := params.App.Messaging(params.Ctx)
	if err != nil {
		return nil, err
	}

	return &firebaseService{client: client}, nil
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// SendBatchNotification sends push notifications to at most MaxMulticastTokens tokens.
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}

	if len(tokens) > MaxMulticastTokens {
		return 0, 0, nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), MaxMulticastTokens)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return 0, 0, nil, errors.Wrap(err, "failed to send multicast notification")
	}

	invalidTokens = make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			invalidTokens = append(invalidTokens, tokens[idx])
		}
	}

	return response.SuccessCount, response.FailureCount, invalidTokens, nil
}
