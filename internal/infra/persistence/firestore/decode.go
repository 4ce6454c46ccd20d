// Package firestore implements the repositories on Cloud Firestore. Every
// collection lives under users/{uid}, and watches map onto query snapshot
// listeners.
package firestore

import (
	"math"

	"tracenfind/internal/domain/entity"

	"cloud.google.com/go/firestore"
)

// Document field names shared with the mobile and web clients.
const (
	fieldName           = "name"
	fieldStatus         = "status"
	fieldBattery        = "battery"
	fieldLocation       = "location"
	fieldLat            = "lat"
	fieldLng            = "lng"
	fieldSecurityFields = "securityFields"
	fieldSimStatus      = "simStatus"
	fieldFinderMessage  = "finderMessage"
	fieldFinderPhotoURL = "finderPhotoUrl"
	fieldLastUpdated    = "lastUpdated"

	fieldCenter       = "center"
	fieldRadius       = "radius"
	fieldAlertOnEntry = "alertOnEntry"
	fieldAlertOnExit  = "alertOnExit"
	fieldUpdatedAt    = "updatedAt"

	fieldKind      = "type"
	fieldTitle     = "title"
	fieldMessage   = "message"
	fieldRead      = "read"
	fieldDeviceID  = "deviceId"
	fieldTimestamp = "timestamp"

	fieldNotificationID = "notificationId"

	fieldFCMToken       = "fcmToken"
	fieldInstallationID = "installationId"
	fieldPlatform       = "platform"
	fieldIsActive       = "isActive"
	fieldCreatedAt      = "createdAt"
)

func stringField(data map[string]any, key string) string {
	s, _ := data[key].(string)
	return s
}

func boolField(data map[string]any, key string) bool {
	b, _ := data[key].(bool)
	return b
}

// numberField accepts every numeric shape the Firestore client decodes into.
func numberField(data map[string]any, key string) (float64, bool) {
	var f float64
	switch n := data[key].(type) {
	case float64:
		f = n
	case int64:
		f = float64(n)
	case int:
		f = float64(n)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

func mapField(data map[string]any, key string) map[string]any {
	m, _ := data[key].(map[string]any)
	return m
}

// coordinateField reads a {lat, lng} map. Anything else means no coordinate.
func coordinateField(data map[string]any, key string) *entity.Coordinate {
	m := mapField(data, key)
	if m == nil {
		return nil
	}

	lat, okLat := numberField(m, fieldLat)
	lng, okLng := numberField(m, fieldLng)
	if !okLat || !okLng {
		return nil
	}

	c := &entity.Coordinate{Lat: lat, Lng: lng}
	if !c.IsValid() {
		return nil
	}

	return c
}

func decodeDevice(id string, data map[string]any) *entity.DeviceSnapshot {
	snapshot := &entity.DeviceSnapshot{
		ID:             id,
		Name:           stringField(data, fieldName),
		Status:         entity.DeviceStatus(stringField(data, fieldStatus)),
		Location:       coordinateField(data, fieldLocation),
		FinderMessage:  stringField(data, fieldFinderMessage),
		FinderPhotoURL: stringField(data, fieldFinderPhotoURL),
		LastUpdated:    entity.TimeFromAny(data[fieldLastUpdated]),
	}
	if battery, ok := numberField(data, fieldBattery); ok {
		snapshot.Battery = battery
	}
	if security := mapField(data, fieldSecurityFields); security != nil {
		snapshot.Security.SimStatus = stringField(security, fieldSimStatus)
	}

	return snapshot
}

func encodeDevice(snapshot *entity.DeviceSnapshot) map[string]any {
	fields := map[string]any{
		fieldName:           snapshot.Name,
		fieldStatus:         string(snapshot.Status),
		fieldBattery:        snapshot.Battery,
		fieldSecurityFields: map[string]any{fieldSimStatus: snapshot.Security.SimStatus},
		fieldFinderMessage:  snapshot.FinderMessage,
		fieldFinderPhotoURL: snapshot.FinderPhotoURL,
	}
	if snapshot.Location != nil {
		fields[fieldLocation] = map[string]any{fieldLat: snapshot.Location.Lat, fieldLng: snapshot.Location.Lng}
	}
	if snapshot.LastUpdated.IsZero() {
		fields[fieldLastUpdated] = firestore.ServerTimestamp
	} else {
		fields[fieldLastUpdated] = snapshot.LastUpdated
	}

	return fields
}

// decodeZone never fails. A zone missing its center or radius decodes as a
// zone that is not well-formed and is skipped by containment evaluation.
func decodeZone(id string, data map[string]any) *entity.Zone {
	zone := &entity.Zone{
		ID:           id,
		Name:         stringField(data, fieldName),
		AlertOnEntry: boolField(data, fieldAlertOnEntry),
		AlertOnExit:  boolField(data, fieldAlertOnExit),
		UpdatedAt:    entity.TimeFromAny(data[fieldUpdatedAt]),
	}
	if center := coordinateField(data, fieldCenter); center != nil {
		zone.Center = *center
	} else {
		zone.Center = entity.Coordinate{Lat: math.NaN(), Lng: math.NaN()}
	}
	if radius, ok := numberField(data, fieldRadius); ok {
		zone.RadiusMeters = radius
	}

	return zone
}

func encodeZone(zone *entity.Zone) map[string]any {
	return map[string]any{
		fieldName:         zone.Name,
		fieldCenter:       map[string]any{fieldLat: zone.Center.Lat, fieldLng: zone.Center.Lng},
		fieldRadius:       zone.RadiusMeters,
		fieldAlertOnEntry: zone.AlertOnEntry,
		fieldAlertOnExit:  zone.AlertOnExit,
		fieldUpdatedAt:    firestore.ServerTimestamp,
	}
}

func decodeNotification(id string, data map[string]any) *entity.Notification {
	return &entity.Notification{
		ID:        id,
		Kind:      entity.EventKind(stringField(data, fieldKind)),
		Title:     stringField(data, fieldTitle),
		Message:   stringField(data, fieldMessage),
		Read:      boolField(data, fieldRead),
		DeviceID:  stringField(data, fieldDeviceID),
		Timestamp: entity.TimeFromAny(data[fieldTimestamp]),
	}
}

func encodeNotification(n *entity.Notification) map[string]any {
	fields := map[string]any{
		fieldKind:      string(n.Kind),
		fieldTitle:     n.Title,
		fieldMessage:   n.Message,
		fieldRead:      false,
		fieldTimestamp: firestore.ServerTimestamp,
	}
	if n.DeviceID != "" {
		fields[fieldDeviceID] = n.DeviceID
	}

	return fields
}

func decodeActivity(id string, data map[string]any) *entity.ActivityEntry {
	return &entity.ActivityEntry{
		ID:             id,
		DeviceID:       stringField(data, fieldDeviceID),
		NotificationID: stringField(data, fieldNotificationID),
		Kind:           entity.EventKind(stringField(data, fieldKind)),
		Title:          stringField(data, fieldTitle),
		Message:        stringField(data, fieldMessage),
		Timestamp:      entity.TimeFromAny(data[fieldTimestamp]),
	}
}

func decodePushToken(id, userID string, data map[string]any) *entity.PushToken {
	return &entity.PushToken{
		ID:             id,
		UserID:         userID,
		FCMToken:       stringField(data, fieldFCMToken),
		InstallationID: stringField(data, fieldInstallationID),
		Platform:       stringField(data, fieldPlatform),
		IsActive:       boolField(data, fieldIsActive),
		CreatedAt:      entity.TimeFromAny(data[fieldCreatedAt]),
		UpdatedAt:      entity.TimeFromAny(data[fieldUpdatedAt]),
	}
}
