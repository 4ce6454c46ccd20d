package impl

import (
	"context"
	"log/slog"
	"sync"

	"tracenfind/config"
	"tracenfind/internal/domain/alert"
	"tracenfind/internal/domain/dedup"
	"tracenfind/internal/domain/entity"
	"tracenfind/internal/domain/service"
	"tracenfind/internal/usecase"

	"go.uber.org/fx"
)

type unreadService struct {
	badges service.BadgeSink
	sounds service.SoundPlayer
	policy dedup.Policy
	logger *slog.Logger
}

// UnreadServiceParams holds dependencies for UnreadService, injected by Fx.
type UnreadServiceParams struct {
	fx.In

	Badges service.BadgeSink
	Sounds service.SoundPlayer
	Config *config.Config
	Logger *slog.Logger
}

// NewUnreadService creates a new unread aggregator
func NewUnreadService(params UnreadServiceParams) usecase.UnreadUsecase {
	return &unreadService{
		badges: params.Badges,
		sounds: params.Sounds,
		policy: dedupPolicy(params.Config),
		logger: params.Logger,
	}
}

// NewSession starts a session whose first Apply is silent
func (s *unreadService) NewSession(userID string) usecase.UnreadSession {
	return &unreadSession{
		userID:  userID,
		service: s,
		gate:    alert.NewSoundGate(),
	}
}

type unreadSession struct {
	mu      sync.Mutex
	userID  string
	service *unreadService
	gate    *alert.SoundGate
}

// Apply recomputes the badge and gates sounds for one raw unread snapshot
func (u *unreadSession) Apply(ctx context.Context, unread []*entity.Notification) int {
	u.mu.Lock()
	defer u.mu.Unlock()

	present := make([]*entity.Notification, 0, len(unread))
	ids := make([]string, 0, len(unread))
	for _, n := range unread {
		if n == nil {
			continue
		}
		present = append(present, n)
		if n.ID != "" {
			ids = append(ids, n.ID)
		}
	}

	count := dedup.Count(present, u.service.policy)
	u.service.badges.SetBadge(ctx, u.userID, alert.NewBadge(count))

	sounds := u.gate.Observe(ids)
	for range sounds {
		u.service.sounds.PlayAlertSound(ctx, u.userID)
	}

	u.service.logger.Debug("[Unread] Badge updated",
		slog.String("user_id", u.userID),
		slog.Int("raw", len(unread)),
		slog.Int("count", count),
		slog.Int("sounds", sounds),
	)

	return count
}
