// Package watcher follows the live device, geofence and unread streams of the
// configured users and feeds them through the pipeline.
package watcher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tracenfind/config"
	"tracenfind/internal/delivery"
	"tracenfind/internal/domain/entity"
	"tracenfind/internal/domain/lifecycle"
	"tracenfind/internal/domain/repository"
	"tracenfind/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	defaultBackoff    = 5 * time.Second
	defaultMaxBackoff = 30 * time.Second
)

type watcherServer struct {
	userIDs    []string
	backoff    time.Duration
	maxBackoff time.Duration

	deviceRepo       repository.DeviceRepository
	zoneRepo         repository.ZoneRepository
	notificationRepo repository.NotificationRepository
	trackingUC       usecase.TrackingUsecase
	unreadUC         usecase.UnreadUsecase
	logger           *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// ServerParams holds dependencies for the watcher, injected by Fx.
type ServerParams struct {
	fx.In

	Lc               fx.Lifecycle
	Cfg              *config.Config
	Logger           *slog.Logger
	DeviceRepo       repository.DeviceRepository
	ZoneRepo         repository.ZoneRepository
	NotificationRepo repository.NotificationRepository
	TrackingUC       usecase.TrackingUsecase
	UnreadUC         usecase.UnreadUsecase
}

// NewServer creates the watcher delivery.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := newWatcher(params)

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newWatcher(params ServerParams) *watcherServer {
	srv := &watcherServer{
		backoff:          defaultBackoff,
		maxBackoff:       defaultMaxBackoff,
		deviceRepo:       params.DeviceRepo,
		zoneRepo:         params.ZoneRepo,
		notificationRepo: params.NotificationRepo,
		trackingUC:       params.TrackingUC,
		unreadUC:         params.UnreadUC,
		logger:           params.Logger,
		done:             make(chan struct{}),
	}

	if watch := params.Cfg.Watch; watch != nil {
		if watch.Enabled {
			srv.userIDs = uniqueUsers(watch.UserIDs)
		}
		if watch.ReconnectBackoff > 0 {
			srv.backoff = watch.ReconnectBackoff
		}
		if watch.MaxReconnectBackoff >= srv.backoff {
			srv.maxBackoff = watch.MaxReconnectBackoff
		} else {
			srv.maxBackoff = max(srv.backoff, defaultMaxBackoff)
		}
	}

	return srv
}

// Serve runs the watch loops of every user until the watcher is stopped.
func (s *watcherServer) Serve(ctx context.Context) error {
	defer close(s.done)

	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	if len(s.userIDs) == 0 {
		s.logger.Info("[Watcher] No users to watch")
		<-ctx.Done()

		return nil
	}

	s.logger.Info("[Watcher] Starting", slog.Int("users", len(s.userIDs)))

	group, groupCtx := errgroup.WithContext(ctx)
	for _, userID := range s.userIDs {
		group.Go(func() error { return s.watchUser(groupCtx, userID) })
	}

	return errors.WithStack(group.Wait())
}

func (s *watcherServer) stop(ctx context.Context) error {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel == nil {
		return nil
	}

	s.logger.Info("[Watcher] Shutting down")
	cancel()

	stopCtx, stopCancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer stopCancel()

	select {
	case <-s.done:
		return nil
	case <-stopCtx.Done():
		return errors.Wrap(stopCtx.Err(), "watcher did not stop in time")
	}
}

// watchUser runs the three streams of one user.
func (s *watcherServer) watchUser(ctx context.Context, userID string) error {
	defer s.trackingUC.Forget(userID)

	logger := s.logger.With(slog.String("user_id", userID))
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		s.follow(ctx, logger.With(slog.String("stream", "devices")), func(ctx context.Context, delivered func()) error {
			return s.deviceRepo.WatchDevices(ctx, userID, func(devices []*entity.DeviceSnapshot) {
				delivered()
				s.trackingUC.HandleDevices(ctx, userID, devices)
			})
		})

		return nil
	})

	group.Go(func() error {
		s.follow(ctx, logger.With(slog.String("stream", "geofences")), func(ctx context.Context, delivered func()) error {
			return s.zoneRepo.WatchZones(ctx, userID, func(zones []*entity.Zone) {
				delivered()
				s.trackingUC.SyncZones(ctx, userID, zones)
			})
		})

		return nil
	})

	group.Go(func() error {
		s.follow(ctx, logger.With(slog.String("stream", "unread")), func(ctx context.Context, delivered func()) error {
			// Every subscription starts silent.
			session := s.unreadUC.NewSession(userID)

			return s.notificationRepo.WatchUnread(ctx, userID, func(unread []*entity.Notification) {
				delivered()
				session.Apply(ctx, unread)
			})
		})

		return nil
	})

	return group.Wait()
}

// follow keeps a watch open, reconnecting with exponential backoff. The
// backoff resets once a reconnected watch delivers a snapshot.
func (s *watcherServer) follow(ctx context.Context, logger *slog.Logger, watch func(ctx context.Context, delivered func()) error) {
	backoff := s.backoff

	for {
		var gotSnapshot bool
		err := watch(ctx, func() { gotSnapshot = true })
		if ctx.Err() != nil {
			return
		}
		if gotSnapshot {
			backoff = s.backoff
		}

		if err != nil {
			logger.Warn("[Watcher] Watch failed, reconnecting",
				slog.Any("error", err),
				slog.Duration("backoff", backoff),
			)
		} else {
			logger.Info("[Watcher] Watch ended, reconnecting", slog.Duration("backoff", backoff))
		}

		if !sleep(ctx, backoff) {
			return
		}
		backoff = nextBackoff(backoff, s.maxBackoff)
	}
}

func nextBackoff(current, maximum time.Duration) time.Duration {
	return min(current*2, maximum)
}

// sleep waits for d and reports false if ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func uniqueUsers(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
