package watcher

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"tracenfind/config"
	"tracenfind/internal/domain/entity"
	repomocks "tracenfind/internal/mocks/repository"
	"tracenfind/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type fakeTracking struct {
	usecase.TrackingUsecase

	mu        sync.Mutex
	batches   map[string]int
	zoneSyncs map[string]int
	forgotten []string
}

func newFakeTracking() *fakeTracking {
	return &fakeTracking{batches: map[string]int{}, zoneSyncs: map[string]int{}}
}

func (f *fakeTracking) HandleDevices(_ context.Context, userID string, _ []*entity.DeviceSnapshot) []*usecase.PublishResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches[userID]++

	return nil
}

func (f *fakeTracking) SyncZones(_ context.Context, userID string, _ []*entity.Zone) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.zoneSyncs[userID]++
}

func (f *fakeTracking) Forget(userID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forgotten = append(f.forgotten, userID)
}

func (f *fakeTracking) counts(userID string) (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.batches[userID], f.zoneSyncs[userID]
}

type fakeSession struct {
	applied *atomic.Int32
}

func (s fakeSession) Apply(_ context.Context, unread []*entity.Notification) int {
	s.applied.Add(1)

	return len(unread)
}

type fakeUnread struct {
	sessions atomic.Int32
	applied  atomic.Int32
}

func (f *fakeUnread) NewSession(string) usecase.UnreadSession {
	f.sessions.Add(1)

	return fakeSession{applied: &f.applied}
}

// blockAfter delivers once and then holds the watch open until ctx ends.
func blockAfter(ctx context.Context, deliver func()) error {
	deliver()
	<-ctx.Done()

	return nil
}

func TestWatcher_FollowsStreamsAndReconnects(t *testing.T) {
	deviceRepo := repomocks.NewMockDeviceRepository(t)
	zoneRepo := repomocks.NewMockZoneRepository(t)
	notificationRepo := repomocks.NewMockNotificationRepository(t)
	tracking := newFakeTracking()
	unread := &fakeUnread{}

	var deviceAttempts atomic.Int32
	deviceRepo.EXPECT().WatchDevices(mock.Anything, "u1", mock.Anything).RunAndReturn(
		func(ctx context.Context, _ string, onSnapshot func([]*entity.DeviceSnapshot)) error {
			if deviceAttempts.Add(1) == 1 {
				return errors.New("stream reset")
			}

			return blockAfter(ctx, func() { onSnapshot([]*entity.DeviceSnapshot{{ID: "phone"}}) })
		})
	zoneRepo.EXPECT().WatchZones(mock.Anything, "u1", mock.Anything).RunAndReturn(
		func(ctx context.Context, _ string, onSnapshot func([]*entity.Zone)) error {
			return blockAfter(ctx, func() { onSnapshot(nil) })
		})

	var unreadAttempts atomic.Int32
	notificationRepo.EXPECT().WatchUnread(mock.Anything, "u1", mock.Anything).RunAndReturn(
		func(ctx context.Context, _ string, onSnapshot func([]*entity.Notification)) error {
			if unreadAttempts.Add(1) == 1 {
				onSnapshot([]*entity.Notification{{ID: "n1"}})

				return errors.New("stream reset")
			}

			return blockAfter(ctx, func() { onSnapshot([]*entity.Notification{{ID: "n1"}}) })
		})

	cfg := &config.Config{Watch: &config.WatchConfig{
		Enabled:             true,
		UserIDs:             []string{"u1", "u1", ""},
		ReconnectBackoff:    time.Millisecond,
		MaxReconnectBackoff: 4 * time.Millisecond,
	}}

	lc := fxtest.NewLifecycle(t)
	srv, err := NewServer(ServerParams{
		Lc:               lc,
		Cfg:              cfg,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		DeviceRepo:       deviceRepo,
		ZoneRepo:         zoneRepo,
		NotificationRepo: notificationRepo,
		TrackingUC:       tracking,
		UnreadUC:         unread,
	})
	require.NoError(t, err)
	lc.RequireStart()

	served := make(chan error, 1)
	go func() { served <- srv.Serve(context.Background()) }()

	assert.Eventually(t, func() bool {
		batches, syncs := tracking.counts("u1")
		return batches == 1 && syncs == 1 && unread.sessions.Load() == 2 && unread.applied.Load() == 2
	}, 2*time.Second, 5*time.Millisecond)

	lc.RequireStop()

	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after stop")
	}
	assert.Equal(t, []string{"u1"}, tracking.forgotten)
	assert.Equal(t, int32(2), deviceAttempts.Load())
}

func TestWatcher_DisabledIdlesUntilStopped(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	srv, err := NewServer(ServerParams{
		Lc:     lc,
		Cfg:    &config.Config{Watch: &config.WatchConfig{Enabled: false, UserIDs: []string{"u1"}}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	lc.RequireStart()

	served := make(chan error, 1)
	go func() { served <- srv.Serve(context.Background()) }()

	// Give Serve time to register its cancel func.
	require.Eventually(t, func() bool {
		w := srv.(*watcherServer)
		w.mu.Lock()
		defer w.mu.Unlock()
		return w.cancel != nil
	}, time.Second, time.Millisecond)

	lc.RequireStop()
	assert.NoError(t, <-served)
}

func TestNextBackoff(t *testing.T) {
	backoff := 5 * time.Second
	var seen []time.Duration
	for range 4 {
		backoff = nextBackoff(backoff, 30*time.Second)
		seen = append(seen, backoff)
	}

	assert.Equal(t, []time.Duration{10 * time.Second, 20 * time.Second, 30 * time.Second, 30 * time.Second}, seen)
}

func TestNewWatcher_Defaults(t *testing.T) {
	w := newWatcher(ServerParams{
		Cfg:    &config.Config{Watch: &config.WatchConfig{Enabled: true, UserIDs: []string{"a", "b", "a"}}},
		Logger: slog.Default(),
	})

	assert.Equal(t, []string{"a", "b"}, w.userIDs)
	assert.Equal(t, defaultBackoff, w.backoff)
	assert.Equal(t, defaultMaxBackoff, w.maxBackoff)
}
