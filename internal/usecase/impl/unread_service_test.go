package impl

import (
	"context"
	"testing"
	"time"

	"tracenfind/internal/domain/alert"
	"tracenfind/internal/domain/entity"
	mockSvc "tracenfind/internal/mocks/service"
	"tracenfind/internal/usecase"

	"github.com/stretchr/testify/assert"
)

type unreadServiceFixtures struct {
	service usecase.UnreadUsecase
	badges  *mockSvc.MockBadgeSink
	sounds  *mockSvc.MockSoundPlayer
}

func createTestUnreadService(t *testing.T) unreadServiceFixtures {
	badges := mockSvc.NewMockBadgeSink(t)
	sounds := mockSvc.NewMockSoundPlayer(t)

	return unreadServiceFixtures{
		service: NewUnreadService(UnreadServiceParams{
			Badges: badges,
			Sounds: sounds,
			Config: testConfig(),
			Logger: discardLogger(),
		}),
		badges: badges,
		sounds: sounds,
	}
}

func unreadCopy(id, title string, offset time.Duration) *entity.Notification {
	return &entity.Notification{
		ID:        id,
		Kind:      entity.EventKindGeofenceExit,
		Title:     title,
		Message:   title + " message",
		Timestamp: fixedNow.Add(offset),
	}
}

func TestUnreadSession_FirstCallbackIsSilent(t *testing.T) {
	fx := createTestUnreadService(t)
	ctx := context.Background()
	session := fx.service.NewSession("user-1")

	fx.badges.EXPECT().SetBadge(ctx, "user-1", alert.NewBadge(1)).Return().Once()

	count := session.Apply(ctx, []*entity.Notification{
		unreadCopy("a", "Geofence Exited", 0),
		unreadCopy("b", "Geofence Exited", -2*time.Second),
	})
	assert.Equal(t, 1, count)
	fx.sounds.AssertNotCalled(t, "PlayAlertSound", ctx, "user-1")
}

func TestUnreadSession_SoundPerNewRawItem(t *testing.T) {
	fx := createTestUnreadService(t)
	ctx := context.Background()
	session := fx.service.NewSession("user-1")

	fx.badges.EXPECT().SetBadge(ctx, "user-1", alert.NewBadge(1)).Return().Twice()
	fx.badges.EXPECT().SetBadge(ctx, "user-1", alert.NewBadge(0)).Return().Once()
	fx.sounds.EXPECT().PlayAlertSound(ctx, "user-1").Return().Times(2)

	session.Apply(ctx, []*entity.Notification{unreadCopy("a", "Geofence Exited", 0)})

	// two racing tabs wrote the same event: one badge, two sounds
	count := session.Apply(ctx, []*entity.Notification{
		unreadCopy("a", "Geofence Exited", 0),
		unreadCopy("b", "Geofence Exited", time.Second),
		unreadCopy("c", "Geofence Exited", 2*time.Second),
	})
	assert.Equal(t, 1, count)

	// everything marked read elsewhere
	assert.Equal(t, 0, session.Apply(ctx, nil))
}

func TestUnreadSession_ReconnectStartsSilent(t *testing.T) {
	fx := createTestUnreadService(t)
	ctx := context.Background()
	unread := []*entity.Notification{unreadCopy("a", "Geofence Exited", 0)}

	fx.badges.EXPECT().SetBadge(ctx, "user-1", alert.NewBadge(1)).Return().Once()
	fx.badges.EXPECT().SetBadge(ctx, "user-1", alert.NewBadge(2)).Return().Once()

	fx.service.NewSession("user-1").Apply(ctx, unread)
	fx.service.NewSession("user-1").Apply(ctx, append(unread, unreadCopy("z", "Device Offline", 0)))
}

func TestUnreadSession_CountEqualsDistinctSignatures(t *testing.T) {
	fx := createTestUnreadService(t)
	ctx := context.Background()
	session := fx.service.NewSession("user-1")

	var unread []*entity.Notification
	titles := []string{"Geofence Exited", "Device Offline", "SIM Card Alert"}
	for i, title := range titles {
		for c := 0; c <= i+1; c++ {
			unread = append(unread, unreadCopy(title+string(rune('a'+c)), title, time.Duration(c)*time.Second))
		}
	}

	fx.badges.EXPECT().SetBadge(ctx, "user-1", alert.NewBadge(3)).Return()

	assert.Equal(t, 3, session.Apply(ctx, unread))
}

func TestUnreadSession_IgnoresNilEntries(t *testing.T) {
	fx := createTestUnreadService(t)
	ctx := context.Background()
	session := fx.service.NewSession("user-1")

	fx.badges.EXPECT().SetBadge(ctx, "user-1", alert.NewBadge(0)).Return().Once()
	assert.Equal(t, 0, session.Apply(ctx, []*entity.Notification{nil}))

	fx.badges.EXPECT().SetBadge(ctx, "user-1", alert.NewBadge(1)).Return().Once()
	fx.sounds.EXPECT().PlayAlertSound(ctx, "user-1").Return().Once()
	assert.Equal(t, 1, session.Apply(ctx, []*entity.Notification{nil, unreadCopy("a", "Geofence Exited", 0)}))
}
