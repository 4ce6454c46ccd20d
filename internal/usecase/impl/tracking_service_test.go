package impl

import (
	"context"
	"math"
	"testing"
	"time"

	"tracenfind/internal/domain/entity"
	domainerrors "tracenfind/internal/domain/errors"
	"tracenfind/internal/domain/repository"
	mockRepo "tracenfind/internal/mocks/repository"
	"tracenfind/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingSink captures published events instead of persisting them.
type recordingSink struct {
	usecase.NotificationUsecase

	events []entity.LogicalEvent
	fail   map[entity.EventKind]bool
}

func (r *recordingSink) Publish(_ context.Context, _ string, event entity.LogicalEvent) (*usecase.PublishResult, error) {
	if r.fail[event.Kind] {
		return nil, errors.New("write rejected")
	}
	r.events = append(r.events, event)

	return &usecase.PublishResult{Outcome: usecase.OutcomePersisted}, nil
}

func (r *recordingSink) kinds() []entity.EventKind {
	out := make([]entity.EventKind, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Kind)
	}

	return out
}

type trackingServiceFixtures struct {
	service    usecase.TrackingUsecase
	sink       *recordingSink
	deviceRepo *mockRepo.MockDeviceRepository
	zoneRepo   *mockRepo.MockZoneRepository
}

func createTestTrackingService(t *testing.T) trackingServiceFixtures {
	sink := &recordingSink{fail: map[entity.EventKind]bool{}}
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	zoneRepo := mockRepo.NewMockZoneRepository(t)

	svc := NewTrackingService(TrackingServiceParams{
		Notifications: sink,
		DeviceRepo:    deviceRepo,
		ZoneRepo:      zoneRepo,
		Config:        testConfig(),
		Logger:        discardLogger(),
	})
	svc.(*trackingService).now = func() time.Time { return fixedNow }

	return trackingServiceFixtures{
		service:    svc,
		sink:       sink,
		deviceRepo: deviceRepo,
		zoneRepo:   zoneRepo,
	}
}

var (
	homeZone = &entity.Zone{
		ID:           "zone-home",
		Name:         "Home",
		Center:       entity.Coordinate{Lat: 25.0330, Lng: 121.5654},
		RadiusMeters: 200,
		AlertOnEntry: true,
		AlertOnExit:  true,
	}
	insideHome  = entity.Coordinate{Lat: 25.0331, Lng: 121.5655}
	outsideHome = entity.Coordinate{Lat: 25.0478, Lng: 121.5170}
)

func device(id string, status entity.DeviceStatus, loc entity.Coordinate, at time.Time) *entity.DeviceSnapshot {
	return &entity.DeviceSnapshot{
		ID:          id,
		Name:        "Pixel " + id,
		Status:      status,
		Battery:     70,
		Location:    &loc,
		Security:    entity.SecurityFields{SimStatus: "ready"},
		LastUpdated: at,
	}
}

func TestTrackingService_FirstSnapshotIsSilent(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	fx.service.SyncZones(ctx, "user-1", []*entity.Zone{homeZone})

	results := fx.service.HandleDevices(ctx, "user-1", []*entity.DeviceSnapshot{
		device("a", entity.DeviceStatusOnline, insideHome, fixedNow),
		device("b", entity.DeviceStatusOffline, outsideHome, fixedNow),
	})

	assert.Empty(t, results)
	assert.Empty(t, fx.sink.events)
}

func TestTrackingService_StatusAndGeofenceEvents(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	fx.service.SyncZones(ctx, "user-1", []*entity.Zone{homeZone})

	fx.service.HandleDevices(ctx, "user-1", []*entity.DeviceSnapshot{device("a", entity.DeviceStatusOnline, insideHome, fixedNow)})
	results := fx.service.HandleDevices(ctx, "user-1", []*entity.DeviceSnapshot{
		device("a", entity.DeviceStatusOffline, outsideHome, fixedNow.Add(time.Minute)),
	})

	require.Len(t, results, 2)
	assert.ElementsMatch(t, []entity.EventKind{entity.EventKindTrackingStop, entity.EventKindGeofenceExit}, fx.sink.kinds())
	for _, ev := range fx.sink.events {
		assert.Equal(t, fixedNow.Add(time.Minute).UnixMilli(), ev.OccurredAtMs, "stamped with the snapshot time")
	}
}

func TestTrackingService_ZoneAlertFlags(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	exitOnly := *homeZone
	exitOnly.AlertOnEntry = false
	fx.service.SyncZones(ctx, "user-1", []*entity.Zone{&exitOnly})

	fx.service.HandleDevices(ctx, "user-1", []*entity.DeviceSnapshot{device("a", entity.DeviceStatusOnline, outsideHome, fixedNow)})
	fx.service.HandleDevices(ctx, "user-1", []*entity.DeviceSnapshot{device("a", entity.DeviceStatusOnline, insideHome, fixedNow)})
	assert.Empty(t, fx.sink.events, "entry alerts disabled")

	fx.service.HandleDevices(ctx, "user-1", []*entity.DeviceSnapshot{device("a", entity.DeviceStatusOnline, outsideHome, fixedNow)})
	assert.Equal(t, []entity.EventKind{entity.EventKindGeofenceExit}, fx.sink.kinds())
}

func TestTrackingService_MissingLocationKeepsContainment(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	fx.service.SyncZones(ctx, "user-1", []*entity.Zone{homeZone})

	fx.service.HandleDevices(ctx, "user-1", []*entity.DeviceSnapshot{device("a", entity.DeviceStatusOnline, insideHome, fixedNow)})

	noFix := device("a", entity.DeviceStatusOnline, insideHome, fixedNow)
	noFix.Location = nil
	fx.service.HandleDevices(ctx, "user-1", []*entity.DeviceSnapshot{noFix})

	bad := device("a", entity.DeviceStatusOnline, entity.Coordinate{Lat: math.NaN()}, fixedNow)
	fx.service.HandleDevices(ctx, "user-1", []*entity.DeviceSnapshot{bad})
	assert.Empty(t, fx.sink.events)

	fx.service.HandleDevices(ctx, "user-1", []*entity.DeviceSnapshot{device("a", entity.DeviceStatusOnline, outsideHome, fixedNow)})
	assert.Equal(t, []entity.EventKind{entity.EventKindGeofenceExit}, fx.sink.kinds())
}

func TestTrackingService_WritePathDedupe(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	// two devices named alike produce identical text within the window
	a := device("a", entity.DeviceStatusOnline, insideHome, fixedNow)
	b := device("b", entity.DeviceStatusOnline, insideHome, fixedNow)
	a.Name, b.Name = "Phone", "Phone"
	fx.service.HandleDevices(ctx, "user-1", []*entity.DeviceSnapshot{a, b})

	a2, b2 := a.Clone(), b.Clone()
	a2.Status, b2.Status = entity.DeviceStatusOffline, entity.DeviceStatusOffline
	b2.LastUpdated = fixedNow.Add(2 * time.Second)
	fx.service.HandleDevices(ctx, "user-1", []*entity.DeviceSnapshot{a2, b2})

	require.Len(t, fx.sink.events, 1)
	assert.Equal(t, "b", fx.sink.events[0].DeviceID, "newest kept")
}

func TestTrackingService_PublishFailureDoesNotStopBatch(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	fx.sink.fail[entity.EventKindTrackingStop] = true
	fx.service.SyncZones(ctx, "user-1", []*entity.Zone{homeZone})

	fx.service.HandleDevices(ctx, "user-1", []*entity.DeviceSnapshot{device("a", entity.DeviceStatusOnline, insideHome, fixedNow)})
	results := fx.service.HandleDevices(ctx, "user-1", []*entity.DeviceSnapshot{device("a", entity.DeviceStatusOffline, outsideHome, fixedNow)})

	require.Len(t, results, 1)
	assert.Equal(t, []entity.EventKind{entity.EventKindGeofenceExit}, fx.sink.kinds())
}

func TestTrackingService_DepartedDevicesStartCold(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	fx.service.HandleDevices(ctx, "user-1", []*entity.DeviceSnapshot{device("a", entity.DeviceStatusOnline, insideHome, fixedNow)})
	fx.service.HandleDevices(ctx, "user-1", []*entity.DeviceSnapshot{})
	fx.service.HandleDevices(ctx, "user-1", []*entity.DeviceSnapshot{device("a", entity.DeviceStatusOffline, insideHome, fixedNow)})

	assert.Empty(t, fx.sink.events)
}

func TestTrackingService_UsersAreIsolated(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	fx.service.HandleDevices(ctx, "user-1", []*entity.DeviceSnapshot{device("a", entity.DeviceStatusOnline, insideHome, fixedNow)})
	fx.service.HandleDevices(ctx, "user-2", []*entity.DeviceSnapshot{device("a", entity.DeviceStatusOffline, insideHome, fixedNow)})
	assert.Empty(t, fx.sink.events)

	fx.service.Forget("user-1")
	fx.service.HandleDevices(ctx, "user-1", []*entity.DeviceSnapshot{device("a", entity.DeviceStatusOffline, insideHome, fixedNow)})
	assert.Empty(t, fx.sink.events)
}

func TestTrackingService_SyncZonesDropsRemovedZones(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	fx.service.SyncZones(ctx, "user-1", []*entity.Zone{homeZone})
	fx.service.HandleDevices(ctx, "user-1", []*entity.DeviceSnapshot{device("a", entity.DeviceStatusOnline, insideHome, fixedNow)})

	fx.service.SyncZones(ctx, "user-1", nil)
	fx.service.SyncZones(ctx, "user-1", []*entity.Zone{homeZone, {ID: "broken"}})
	fx.service.HandleDevices(ctx, "user-1", []*entity.DeviceSnapshot{device("a", entity.DeviceStatusOnline, outsideHome, fixedNow)})

	assert.Empty(t, fx.sink.events, "re-added zone starts cold")
}

func TestTrackingService_IngestSnapshot(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	err := fx.service.IngestSnapshot(ctx, "user-1", &entity.DeviceSnapshot{ID: "a", Status: "sleeping"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSnapshot)

	err = fx.service.IngestSnapshot(ctx, "user-1", &entity.DeviceSnapshot{ID: "a", Status: entity.DeviceStatusOnline, Location: &entity.Coordinate{Lat: 200}})
	assert.Error(t, err)

	snap := &entity.DeviceSnapshot{ID: "a", Status: entity.DeviceStatusOnline}
	fx.deviceRepo.EXPECT().SaveSnapshot(ctx, "user-1", snap).Return(nil)
	require.NoError(t, fx.service.IngestSnapshot(ctx, "user-1", snap))
	assert.Equal(t, fixedNow, snap.LastUpdated)
}

func TestTrackingService_Zones(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	assert.ErrorIs(t, fx.service.SaveZone(ctx, "user-1", &entity.Zone{ID: "z"}), domainerrors.ErrInvalidZone)

	zone := *homeZone
	fx.zoneRepo.EXPECT().SaveZone(ctx, "user-1", mock.AnythingOfType("*entity.Zone")).Return(nil)
	require.NoError(t, fx.service.SaveZone(ctx, "user-1", &zone))

	fx.zoneRepo.EXPECT().DeleteZone(ctx, "user-1", "nope").Return(repository.ErrZoneNotFound)
	assert.ErrorIs(t, fx.service.DeleteZone(ctx, "user-1", "nope"), domainerrors.ErrZoneNotFound)

	fx.zoneRepo.EXPECT().FindZones(ctx, "user-1").Return([]*entity.Zone{&zone}, nil)
	zones, err := fx.service.ListZones(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, zones, 1)
}
