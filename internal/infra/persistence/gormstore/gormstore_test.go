package gormstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"tracenfind/config"
	"tracenfind/internal/domain/constants"
	"tracenfind/internal/domain/entity"
	"tracenfind/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testPollInterval = 10 * time.Millisecond

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		Store: &config.StoreConfig{
			Provider:   constants.StoreProviderSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "tracenfind.db"),
		},
	}

	db, err := Open(cfg, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

// steppedClock returns a clock that advances one second per call.
func steppedClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		now := current
		current = current.Add(time.Second)
		return now
	}
}

func newTestNotificationRepo(t *testing.T, db *gorm.DB) *notificationRepository {
	t.Helper()

	repo := NewNotificationRepository(db, testPollInterval).(*notificationRepository)
	repo.now = steppedClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	return repo
}

func TestOpen_RejectsNonRelationalProvider(t *testing.T) {
	cfg := &config.Config{Store: &config.StoreConfig{Provider: constants.StoreProviderFirestore}}

	_, err := Open(cfg, nil)
	assert.Error(t, err)
}

func TestOpen_PostgresRequiresSection(t *testing.T) {
	cfg := &config.Config{Store: &config.StoreConfig{Provider: constants.StoreProviderPostgres}}

	_, err := Open(cfg, nil)
	assert.Error(t, err)
}

func TestNotificationRepository_CreateAssignsIdentity(t *testing.T) {
	ctx := context.Background()
	repo := newTestNotificationRepo(t, newTestDB(t))

	n := &entity.Notification{Kind: entity.EventKindSimAlert, Title: "SIM Alert", Message: "SIM removed", DeviceID: "d1"}
	require.NoError(t, repo.Create(ctx, "u1", n))

	assert.NotEmpty(t, n.ID)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), n.Timestamp)

	recent, err := repo.FindRecent(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, n, recent[0])
}

func TestNotificationRepository_RecentIsNewestFirstAndScoped(t *testing.T) {
	ctx := context.Background()
	repo := newTestNotificationRepo(t, newTestDB(t))

	for _, title := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, "u1", &entity.Notification{Kind: entity.EventKindFinderMessage, Title: title, Message: "m"}))
	}
	require.NoError(t, repo.Create(ctx, "u2", &entity.Notification{Kind: entity.EventKindFinderMessage, Title: "other", Message: "m"}))

	recent, err := repo.FindRecent(ctx, "u1", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "third", recent[0].Title)
	assert.Equal(t, "second", recent[1].Title)
}

func TestNotificationRepository_ReadLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newTestNotificationRepo(t, newTestDB(t))

	var ids []string
	for _, title := range []string{"a", "b", "c"} {
		n := &entity.Notification{Kind: entity.EventKindGeofenceEnter, Title: title, Message: "m"}
		require.NoError(t, repo.Create(ctx, "u1", n))
		ids = append(ids, n.ID)
	}

	require.NoError(t, repo.MarkRead(ctx, "u1", ids[0]))
	assert.ErrorIs(t, repo.MarkRead(ctx, "u1", "missing"), repository.ErrNotificationNotFound)
	assert.ErrorIs(t, repo.MarkRead(ctx, "u2", ids[1]), repository.ErrNotificationNotFound)

	unread, err := repo.FindUnread(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, unread, 2)
	assert.Equal(t, ids[2], unread[0].ID)
	assert.Equal(t, ids[1], unread[1].ID)

	changed, err := repo.MarkAllRead(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, changed)

	unread, err = repo.FindUnread(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, unread)

	removed, err := repo.DeleteAll(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, removed)
}

func TestNotificationRepository_WatchUnread(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := newTestNotificationRepo(t, newTestDB(t))

	snapshots := make(chan []*entity.Notification, 8)
	done := make(chan error, 1)
	go func() {
		done <- repo.WatchUnread(ctx, "u1", func(items []*entity.Notification) {
			snapshots <- items
		})
	}()

	select {
	case first := <-snapshots:
		assert.Empty(t, first)
	case <-time.After(2 * time.Second):
		t.Fatal("no initial snapshot")
	}

	n := &entity.Notification{Kind: entity.EventKindSimAlert, Title: "SIM Alert", Message: "m"}
	require.NoError(t, repo.Create(context.Background(), "u1", n))

	select {
	case next := <-snapshots:
		require.Len(t, next, 1)
		assert.Equal(t, n.ID, next[0].ID)
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot after write")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestDeviceRepository_SaveReplacesSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := NewDeviceRepository(newTestDB(t), testPollInterval)

	reported := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	first := &entity.DeviceSnapshot{
		ID:          "d1",
		Name:        "Pixel",
		Status:      entity.DeviceStatusOnline,
		Battery:     80,
		Location:    &entity.Coordinate{Lat: 25.03, Lng: 121.56},
		LastUpdated: reported,
	}
	require.NoError(t, repo.SaveSnapshot(ctx, "u1", first))

	second := &entity.DeviceSnapshot{
		ID:          "d1",
		Name:        "Pixel",
		Status:      entity.DeviceStatusOffline,
		Battery:     12,
		Security:    entity.SecurityFields{SimStatus: "⚠️ SIM removed"},
		LastUpdated: reported.Add(time.Minute),
	}
	require.NoError(t, repo.SaveSnapshot(ctx, "u1", second))

	got, err := repo.FindDevice(ctx, "u1", "d1")
	require.NoError(t, err)
	assert.Equal(t, second, got)

	_, err = repo.FindDevice(ctx, "u2", "d1")
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)

	all, err := repo.FindDevices(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestZoneRepository_SaveAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewZoneRepository(newTestDB(t), testPollInterval)

	zone := &entity.Zone{
		ID:           "home",
		Name:         "Home",
		Center:       entity.Coordinate{Lat: 25.03, Lng: 121.56},
		RadiusMeters: 150,
		AlertOnEntry: true,
	}
	require.NoError(t, repo.SaveZone(ctx, "u1", zone))
	assert.False(t, zone.UpdatedAt.IsZero())

	zone.RadiusMeters = 300
	zone.AlertOnExit = true
	require.NoError(t, repo.SaveZone(ctx, "u1", zone))

	zones, err := repo.FindZones(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.Equal(t, 300.0, zones[0].RadiusMeters)
	assert.True(t, zones[0].AlertOnEntry)
	assert.True(t, zones[0].AlertOnExit)

	require.NoError(t, repo.DeleteZone(ctx, "u1", "home"))
	assert.ErrorIs(t, repo.DeleteZone(ctx, "u1", "home"), repository.ErrZoneNotFound)
}

func TestZoneRepository_WatchReportsChanges(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := NewZoneRepository(newTestDB(t), testPollInterval)

	snapshots := make(chan []*entity.Zone, 8)
	go func() {
		_ = repo.WatchZones(ctx, "u1", func(zones []*entity.Zone) { snapshots <- zones })
	}()

	require.Empty(t, <-snapshots)

	require.NoError(t, repo.SaveZone(context.Background(), "u1", &entity.Zone{
		ID: "office", Center: entity.Coordinate{Lat: 1, Lng: 1}, RadiusMeters: 50,
	}))

	select {
	case zones := <-snapshots:
		require.Len(t, zones, 1)
		assert.Equal(t, "office", zones[0].ID)
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot after save")
	}
}

func TestActivityRepository_FindByDevice(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository(newTestDB(t))

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"old", "new"} {
		require.NoError(t, repo.Append(ctx, "u1", &entity.ActivityEntry{
			DeviceID:  "d1",
			Kind:      entity.EventKindTrackingStart,
			Title:     title,
			Message:   "m",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.Append(ctx, "u1", &entity.ActivityEntry{DeviceID: "d2", Kind: entity.EventKindTrackingStop, Title: "x", Message: "m"}))

	entries, err := repo.FindByDevice(ctx, "u1", "d1", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "new", entries[0].Title)
	assert.Equal(t, "old", entries[1].Title)
}

func TestPushTokenRepository_UpsertKeepsRegistration(t *testing.T) {
	ctx := context.Background()
	repo := NewPushTokenRepository(newTestDB(t))

	first := &entity.PushToken{UserID: "u1", FCMToken: "tok-1", InstallationID: "inst-1", Platform: "web"}
	require.NoError(t, repo.UpsertToken(ctx, first))
	require.NotEmpty(t, first.ID)

	second := &entity.PushToken{UserID: "u1", FCMToken: "tok-2", InstallationID: "inst-1", Platform: "web"}
	require.NoError(t, repo.UpsertToken(ctx, second))
	assert.Equal(t, first.ID, second.ID)

	tokens, err := repo.FindActiveTokensByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "tok-2", tokens[0].FCMToken)

	require.NoError(t, repo.DeactivateTokens(ctx, "u1", []string{"tok-2"}))
	tokens, err = repo.FindActiveTokensByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, tokens)

	// Registering again reactivates the installation.
	require.NoError(t, repo.UpsertToken(ctx, &entity.PushToken{UserID: "u1", FCMToken: "tok-3", InstallationID: "inst-1", Platform: "web"}))
	tokens, err = repo.FindActiveTokensByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, tokens, 1)

	require.NoError(t, repo.DeleteToken(ctx, "u1", first.ID))
	assert.ErrorIs(t, repo.DeleteToken(ctx, "u1", first.ID), repository.ErrPushTokenNotFound)
}
