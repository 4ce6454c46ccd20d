package impl

import (
	"context"
	"log/slog"
	"time"

	"tracenfind/config"
	"tracenfind/internal/domain/alert"
	"tracenfind/internal/domain/dedup"
	"tracenfind/internal/domain/entity"
	domainerrors "tracenfind/internal/domain/errors"
	"tracenfind/internal/domain/repository"
	"tracenfind/internal/domain/service"
	"tracenfind/internal/domain/tracking"
	"tracenfind/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultListLimit     = 50
	maxListLimit         = 200
	defaultActivityLimit = 100
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	activityRepo     repository.ActivityRepository
	deviceRepo       repository.DeviceRepository
	publisher        service.EventPublisher
	claimer          service.SignatureClaimer
	notifier         service.Notifier
	policy           dedup.Policy
	lookBack         int
	logger           *slog.Logger
	now              func() time.Time
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	ActivityRepo     repository.ActivityRepository
	DeviceRepo       repository.DeviceRepository
	Publisher        service.EventPublisher
	Claimer          service.SignatureClaimer `optional:"true"`
	Notifier         service.Notifier         `optional:"true"`
	Config           *config.Config
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		activityRepo:     params.ActivityRepo,
		deviceRepo:       params.DeviceRepo,
		publisher:        params.Publisher,
		claimer:          params.Claimer,
		notifier:         params.Notifier,
		policy:           dedupPolicy(params.Config),
		lookBack:         lookBackLimit(params.Config),
		logger:           params.Logger,
		now:              time.Now,
	}
}

// dedupPolicy builds the shared dedup policy from config.
func dedupPolicy(cfg *config.Config) dedup.Policy {
	policy := dedup.DefaultPolicy()
	if cfg == nil || cfg.Pipeline == nil {
		return policy
	}
	if cfg.Pipeline.DedupWindow > 0 {
		policy.Window = cfg.Pipeline.DedupWindow
	}
	policy.SignatureIncludesEntity = cfg.Pipeline.SignatureIncludesEntity

	return policy
}

func lookBackLimit(cfg *config.Config) int {
	if cfg == nil || cfg.Pipeline == nil || cfg.Pipeline.LookBackLimit <= 0 {
		return 10
	}

	return cfg.Pipeline.LookBackLimit
}

// Publish persists event unless it duplicates a recent notification
func (s *notificationService) Publish(ctx context.Context, userID string, event entity.LogicalEvent) (*usecase.PublishResult, error) {
	recent, err := s.notificationRepo.FindRecent(ctx, userID, s.lookBack)
	if err != nil {
		return nil, domainerrors.NewStoreUnavailableError(err, "failed to query recent notifications")
	}

	now := s.now()
	sig := s.policy.OfEvent(event)
	if dup, found := dedup.FindRecentDuplicate(sig, now.UnixMilli(), recent, s.policy); found {
		s.logger.Debug("[Sink] Skipping duplicate event",
			slog.String("user_id", userID),
			slog.String("kind", string(event.Kind)),
			slog.String("duplicate_of", dup.ID),
		)

		return &usecase.PublishResult{Outcome: usecase.OutcomeSkipped, DuplicateOf: dup.ID}, nil
	}

	if !s.claim(ctx, userID, sig) {
		s.logger.Debug("[Sink] Signature already claimed by another writer",
			slog.String("user_id", userID),
			slog.String("kind", string(event.Kind)),
		)

		return &usecase.PublishResult{Outcome: usecase.OutcomeSkipped}, nil
	}

	notification := &entity.Notification{
		Kind:     event.Kind,
		Title:    event.Title,
		Message:  event.Message,
		Read:     false,
		DeviceID: event.DeviceID,
	}
	if err := s.notificationRepo.Create(ctx, userID, notification); err != nil {
		return nil, domainerrors.NewStoreUnavailableError(err, "failed to create notification")
	}

	s.appendActivity(ctx, userID, notification)
	s.publishEvent(ctx, userID, notification)

	if s.notifier != nil {
		s.notifier.Notify(ctx, userID, notification.Title, notification.Message, notification.Kind.Severity())
	}

	s.logger.Info("[Sink] Notification persisted",
		slog.String("user_id", userID),
		slog.String("notification_id", notification.ID),
		slog.String("kind", string(notification.Kind)),
	)

	return &usecase.PublishResult{Outcome: usecase.OutcomePersisted, Notification: notification}, nil
}

// claim consults the optional claimer. A claimer failure lets the write through.
func (s *notificationService) claim(ctx context.Context, userID string, sig dedup.Signature) bool {
	if s.claimer == nil {
		return true
	}

	ok, err := s.claimer.Claim(ctx, userID+":"+sig.Key(), s.policy.Window)
	if err != nil {
		s.logger.Warn("[Sink] Signature claim failed, writing anyway",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)

		return true
	}

	return ok
}

func (s *notificationService) appendActivity(ctx context.Context, userID string, n *entity.Notification) {
	if n.DeviceID == "" {
		return
	}

	entry := &entity.ActivityEntry{
		DeviceID:       n.DeviceID,
		NotificationID: n.ID,
		Kind:           n.Kind,
		Title:          n.Title,
		Message:        n.Message,
		Timestamp:      n.Timestamp,
	}
	if err := s.activityRepo.Append(ctx, userID, entry); err != nil {
		s.logger.Warn("[Sink] Failed to append activity entry",
			slog.String("user_id", userID),
			slog.String("device_id", n.DeviceID),
			slog.Any("error", err),
		)
	}
}

func (s *notificationService) publishEvent(ctx context.Context, userID string, n *entity.Notification) {
	if s.publisher == nil {
		return
	}

	event := &service.NotificationEvent{
		UserID:         userID,
		NotificationID: n.ID,
		Kind:           string(n.Kind),
		Title:          n.Title,
		Message:        n.Message,
		DeviceID:       n.DeviceID,
		TimestampMs:    n.TimestampMs(),
	}
	if err := s.publisher.PublishNotificationEvent(ctx, event); err != nil {
		s.logger.Warn("[Sink] Failed to publish notification event",
			slog.String("user_id", userID),
			slog.String("notification_id", n.ID),
			slog.Any("error", err),
		)
	}
}

// ListRecent returns recent notifications with duplicates collapsed
func (s *notificationService) ListRecent(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	limit = clampLimit(limit, defaultListLimit, maxListLimit)

	items, err := s.notificationRepo.FindRecent(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recent notifications")
	}

	return dedup.Notifications(items, s.policy), nil
}

// UnreadCount returns the deduplicated unread count
func (s *notificationService) UnreadCount(ctx context.Context, userID string) (*usecase.UnreadSummary, error) {
	unread, err := s.notificationRepo.FindUnread(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find unread notifications")
	}

	count := dedup.Count(unread, s.policy)

	return &usecase.UnreadSummary{Count: count, Badge: alert.NewBadge(count)}, nil
}

// MarkRead marks one notification read
func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	if err := s.notificationRepo.MarkRead(ctx, userID, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// MarkAllRead marks every notification read
func (s *notificationService) MarkAllRead(ctx context.Context, userID string) (int, error) {
	changed, err := s.notificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark all notifications read")
	}

	return changed, nil
}

// ClearAll deletes every notification
func (s *notificationService) ClearAll(ctx context.Context, userID string) (int, error) {
	removed, err := s.notificationRepo.DeleteAll(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to clear notifications")
	}

	s.logger.Info("[Sink] Notifications cleared",
		slog.String("user_id", userID),
		slog.Int("removed", removed),
	)

	return removed, nil
}

// ListActivity returns a device's timeline
func (s *notificationService) ListActivity(ctx context.Context, userID, deviceID string, limit int) ([]*entity.ActivityEntry, error) {
	limit = clampLimit(limit, defaultActivityLimit, maxListLimit)

	entries, err := s.activityRepo.FindByDevice(ctx, userID, deviceID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find activity entries")
	}

	return entries, nil
}

// RecordSecurityAction publishes the event for a remote command
func (s *notificationService) RecordSecurityAction(ctx context.Context, userID, deviceID string, action entity.SecurityAction) (*usecase.PublishResult, error) {
	if !action.IsValid() {
		return nil, domainerrors.ErrInvalidSecurityAction
	}

	device, err := s.deviceRepo.FindDevice(ctx, userID, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	event := tracking.SecurityActionEvent(device.ID, device.Name, action, s.now().UnixMilli())
	result, err := s.Publish(ctx, userID, event)
	if err != nil {
		if s.notifier != nil {
			s.notifier.Notify(ctx, userID, "Action failed", "The command could not be recorded. Please try again.", entity.SeverityDanger)
		}

		return nil, err
	}

	return result, nil
}

func clampLimit(limit, def, maximum int) int {
	if limit <= 0 {
		return def
	}
	if limit > maximum {
		return maximum
	}

	return limit
}
