package firestore

import (
	"testing"
	"time"

	"tracenfind/internal/domain/entity"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDevice(t *testing.T) {
	updated := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	got := decodeDevice("d1", map[string]any{
		fieldName:           "Pixel",
		fieldStatus:         "lost",
		fieldBattery:        int64(42),
		fieldLocation:       map[string]any{fieldLat: 25.03, fieldLng: int64(121)},
		fieldSecurityFields: map[string]any{fieldSimStatus: "⚠️ SIM removed"},
		fieldFinderMessage:  "found it at the cafe",
		fieldLastUpdated:    updated,
	})

	assert.Equal(t, &entity.DeviceSnapshot{
		ID:            "d1",
		Name:          "Pixel",
		Status:        entity.DeviceStatusLost,
		Battery:       42,
		Location:      &entity.Coordinate{Lat: 25.03, Lng: 121},
		Security:      entity.SecurityFields{SimStatus: "⚠️ SIM removed"},
		FinderMessage: "found it at the cafe",
		LastUpdated:   updated,
	}, got)
}

func TestDecodeDevice_Malformed(t *testing.T) {
	got := decodeDevice("d1", map[string]any{
		fieldBattery:     "full",
		fieldLocation:    map[string]any{fieldLat: 25.03},
		fieldLastUpdated: "2026-03-01T12:00:00Z",
	})

	assert.Nil(t, got.Location)
	assert.Zero(t, got.Battery)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), got.LastUpdated)
}

func TestDecodeZone(t *testing.T) {
	good := decodeZone("home", map[string]any{
		fieldName:         "Home",
		fieldCenter:       map[string]any{fieldLat: 25.03, fieldLng: 121.56},
		fieldRadius:       150.0,
		fieldAlertOnEntry: true,
	})
	assert.True(t, good.IsWellFormed())
	assert.True(t, good.AlertOnEntry)
	assert.False(t, good.AlertOnExit)

	noCenter := decodeZone("broken", map[string]any{fieldRadius: 150.0})
	assert.False(t, noCenter.IsWellFormed())

	noRadius := decodeZone("flat", map[string]any{fieldCenter: map[string]any{fieldLat: 1.0, fieldLng: 1.0}})
	assert.False(t, noRadius.IsWellFormed())
}

func TestNotificationRoundTrip(t *testing.T) {
	n := &entity.Notification{
		Kind:     entity.EventKindGeofenceExit,
		Title:    "Geofence Alert",
		Message:  "Pixel left Home.",
		DeviceID: "d1",
	}

	fields := encodeNotification(n)
	assert.Equal(t, firestore.ServerTimestamp, fields[fieldTimestamp])
	assert.Equal(t, false, fields[fieldRead])

	stamped := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fields[fieldTimestamp] = map[string]any{"seconds": stamped.Unix(), "nanoseconds": int64(0)}

	got := decodeNotification("n1", fields)
	require.NotNil(t, got)
	assert.Equal(t, "n1", got.ID)
	assert.Equal(t, n.Kind, got.Kind)
	assert.Equal(t, n.DeviceID, got.DeviceID)
	assert.Equal(t, stamped, got.Timestamp)
}

func TestEncodeNotification_OmitsEmptyDevice(t *testing.T) {
	fields := encodeNotification(&entity.Notification{Kind: entity.EventKindSecurityAction, Title: "t", Message: "m"})

	_, ok := fields[fieldDeviceID]
	assert.False(t, ok)
}

func TestEncodeDevice_ServerStampsMissingTime(t *testing.T) {
	fields := encodeDevice(&entity.DeviceSnapshot{ID: "d1", Status: entity.DeviceStatusOnline})

	assert.Equal(t, firestore.ServerTimestamp, fields[fieldLastUpdated])
	_, hasLocation := fields[fieldLocation]
	assert.False(t, hasLocation)
}

func TestTokenDocID_StablePerInstallation(t *testing.T) {
	assert.Equal(t, tokenDocID("u1", "inst"), tokenDocID("u1", "inst"))
	assert.NotEqual(t, tokenDocID("u1", "inst"), tokenDocID("u2", "inst"))
	assert.NotEqual(t, tokenDocID("u1", "inst"), tokenDocID("u1", "other"))
}
