package impl

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"tracenfind/config"
	"tracenfind/internal/domain/constants"
	"tracenfind/internal/domain/entity"
	"tracenfind/internal/domain/repository"
	"tracenfind/internal/infra/persistence/gormstore"
	"tracenfind/internal/infra/realtime"
	"tracenfind/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioUser = "user-1"

// pipelineStack is one browser tab's view of the shared store.
type pipelineStack struct {
	tracking      usecase.TrackingUsecase
	notifications usecase.NotificationUsecase
}

type pipelineEnv struct {
	cfg           *config.Config
	hub           *realtime.Hub
	notifications repository.NotificationRepository
	activity      repository.ActivityRepository
	devices       repository.DeviceRepository
	zones         repository.ZoneRepository
}

func newPipelineEnv(t *testing.T) *pipelineEnv {
	t.Helper()

	cfg := testConfig()
	cfg.Store = &config.StoreConfig{
		Provider:   constants.StoreProviderSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "pipeline.db"),
	}
	cfg.Realtime = &config.RealtimeConfig{BufferSize: 16}

	db, err := gormstore.Open(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return &pipelineEnv{
		cfg:           cfg,
		hub:           realtime.NewHub(realtime.Params{Config: cfg, Logger: discardLogger()}),
		notifications: gormstore.NewNotificationRepository(db, 10*time.Millisecond),
		activity:      gormstore.NewActivityRepository(db),
		devices:       gormstore.NewDeviceRepository(db, 10*time.Millisecond),
		zones:         gormstore.NewZoneRepository(db, 10*time.Millisecond),
	}
}

// tab builds an independent pipeline over the shared store. offset shifts the
// tab's clock relative to wall time.
func (env *pipelineEnv) tab(offset time.Duration) pipelineStack {
	notifications := NewNotificationService(NotificationServiceParams{
		NotificationRepo: env.notifications,
		ActivityRepo:     env.activity,
		DeviceRepo:       env.devices,
		Notifier:         env.hub,
		Config:           env.cfg,
		Logger:           discardLogger(),
	})
	notifications.(*notificationService).now = func() time.Time { return time.Now().Add(offset) }

	tracking := NewTrackingService(TrackingServiceParams{
		Notifications: notifications,
		DeviceRepo:    env.devices,
		ZoneRepo:      env.zones,
		Config:        env.cfg,
		Logger:        discardLogger(),
	})

	return pipelineStack{tracking: tracking, notifications: notifications}
}

func phone(status entity.DeviceStatus, at time.Time) *entity.DeviceSnapshot {
	return &entity.DeviceSnapshot{
		ID:          "device-1",
		Name:        "Phone",
		Status:      status,
		Battery:     80,
		Location:    &entity.Coordinate{Lat: 25.0330, Lng: 121.5654},
		LastUpdated: at,
	}
}

func TestPipeline_OfflineTransitionRaisesBadge(t *testing.T) {
	ctx := context.Background()
	env := newPipelineEnv(t)
	tab := env.tab(0)

	session := NewUnreadService(UnreadServiceParams{
		Badges: env.hub,
		Sounds: env.hub,
		Config: env.cfg,
		Logger: discardLogger(),
	}).NewSession(scenarioUser)

	unread, err := env.notifications.FindUnread(ctx, scenarioUser)
	require.NoError(t, err)
	assert.Equal(t, 0, session.Apply(ctx, unread))

	base := time.Now()
	assert.Empty(t, tab.tracking.HandleDevices(ctx, scenarioUser, []*entity.DeviceSnapshot{phone(entity.DeviceStatusOnline, base)}))

	results := tab.tracking.HandleDevices(ctx, scenarioUser, []*entity.DeviceSnapshot{phone(entity.DeviceStatusOffline, base.Add(time.Second))})
	require.Len(t, results, 1)
	assert.Equal(t, usecase.OutcomePersisted, results[0].Outcome)
	assert.Equal(t, entity.EventKindTrackingStop, results[0].Notification.Kind)

	unread, err = env.notifications.FindUnread(ctx, scenarioUser)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, entity.EventKindTrackingStop, unread[0].Kind)

	assert.Equal(t, 1, session.Apply(ctx, unread))
	badge, ok := env.hub.Badge(scenarioUser)
	require.True(t, ok)
	assert.Equal(t, 1, badge.Count)
	assert.True(t, badge.Visible)

	// The same status again is not a transition.
	assert.Empty(t, tab.tracking.HandleDevices(ctx, scenarioUser, []*entity.DeviceSnapshot{phone(entity.DeviceStatusOffline, base.Add(2*time.Second))}))
}

func TestPipeline_TwoTabsPersistOneGeofenceExit(t *testing.T) {
	ctx := context.Background()
	env := newPipelineEnv(t)
	first := env.tab(0)
	second := env.tab(3 * time.Second)

	zone := &entity.Zone{
		ID:           "zone-home",
		Name:         "Home",
		Center:       entity.Coordinate{Lat: 25.0330, Lng: 121.5654},
		RadiusMeters: 200,
		AlertOnExit:  true,
	}

	base := time.Now()
	inside := phone(entity.DeviceStatusOnline, base)
	outside := phone(entity.DeviceStatusOnline, base.Add(time.Second))
	outside.Location = &entity.Coordinate{Lat: 25.0500, Lng: 121.5654}

	for _, tab := range []pipelineStack{first, second} {
		tab.tracking.SyncZones(ctx, scenarioUser, []*entity.Zone{zone})
		assert.Empty(t, tab.tracking.HandleDevices(ctx, scenarioUser, []*entity.DeviceSnapshot{inside}))
	}

	results := first.tracking.HandleDevices(ctx, scenarioUser, []*entity.DeviceSnapshot{outside})
	require.Len(t, results, 1)
	assert.Equal(t, usecase.OutcomePersisted, results[0].Outcome)
	assert.Equal(t, entity.EventKindGeofenceExit, results[0].Notification.Kind)

	results = second.tracking.HandleDevices(ctx, scenarioUser, []*entity.DeviceSnapshot{outside})
	require.Len(t, results, 1)
	assert.Equal(t, usecase.OutcomeSkipped, results[0].Outcome)
	assert.Nil(t, results[0].Notification)

	recent, err := env.notifications.FindRecent(ctx, scenarioUser, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, entity.EventKindGeofenceExit, recent[0].Kind)
}

func TestPipeline_UnchangedSimStatusIsQuiet(t *testing.T) {
	ctx := context.Background()
	env := newPipelineEnv(t)
	tab := env.tab(0)

	base := time.Now()
	before := phone(entity.DeviceStatusOnline, base)
	before.Security.SimStatus = "ready"
	after := phone(entity.DeviceStatusOnline, base.Add(time.Second))
	after.Security.SimStatus = "ready"

	assert.Empty(t, tab.tracking.HandleDevices(ctx, scenarioUser, []*entity.DeviceSnapshot{before}))
	assert.Empty(t, tab.tracking.HandleDevices(ctx, scenarioUser, []*entity.DeviceSnapshot{after}))

	removed := phone(entity.DeviceStatusOnline, base.Add(2*time.Second))
	removed.Security.SimStatus = "SIM removed ⚠️"
	results := tab.tracking.HandleDevices(ctx, scenarioUser, []*entity.DeviceSnapshot{removed})
	require.Len(t, results, 1)
	assert.Equal(t, entity.EventKindSimAlert, results[0].Notification.Kind)

	recent, err := env.notifications.FindRecent(ctx, scenarioUser, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
}
