package tracking

import (
	"fmt"

	"tracenfind/internal/domain/entity"
)

// Titles are part of the dedup signature, so they must stay byte-stable
// across processes and releases.
const (
	titleTrackingStart  = "Tracking Started"
	titleTrackingStop   = "Device Offline"
	titleSimAlert       = "SIM Card Alert"
	titleFinderMessage  = "New Finder Message"
	titleFinderPhoto    = "Finder Photo Captured"
	titleGeofenceEnter  = "Geofence Entered"
	titleGeofenceExit   = "Geofence Exited"
	titleSecurityAction = "Security Action"
)

func trackingStartEvent(d *entity.DeviceSnapshot, at int64) entity.LogicalEvent {
	return entity.LogicalEvent{
		Kind:         entity.EventKindTrackingStart,
		Title:        titleTrackingStart,
		Message:      fmt.Sprintf("%s is now online and being tracked.", d.DisplayName()),
		DeviceID:     d.ID,
		OccurredAtMs: at,
	}
}

func trackingStopEvent(d *entity.DeviceSnapshot, at int64) entity.LogicalEvent {
	return entity.LogicalEvent{
		Kind:         entity.EventKindTrackingStop,
		Title:        titleTrackingStop,
		Message:      fmt.Sprintf("%s went offline.", d.DisplayName()),
		DeviceID:     d.ID,
		OccurredAtMs: at,
	}
}

func simAlertEvent(d *entity.DeviceSnapshot, at int64) entity.LogicalEvent {
	return entity.LogicalEvent{
		Kind:         entity.EventKindSimAlert,
		Title:        titleSimAlert,
		Message:      fmt.Sprintf("%s: %s", d.DisplayName(), d.Security.SimStatus),
		DeviceID:     d.ID,
		OccurredAtMs: at,
	}
}

func finderMessageEvent(d *entity.DeviceSnapshot, at int64) entity.LogicalEvent {
	return entity.LogicalEvent{
		Kind:         entity.EventKindFinderMessage,
		Title:        titleFinderMessage,
		Message:      fmt.Sprintf("Someone who found %s wrote: %q", d.DisplayName(), d.FinderMessage),
		DeviceID:     d.ID,
		OccurredAtMs: at,
	}
}

func finderPhotoEvent(d *entity.DeviceSnapshot, at int64) entity.LogicalEvent {
	return entity.LogicalEvent{
		Kind:         entity.EventKindFinderPhoto,
		Title:        titleFinderPhoto,
		Message:      fmt.Sprintf("A photo was captured on %s.", d.DisplayName()),
		DeviceID:     d.ID,
		OccurredAtMs: at,
	}
}

// GeofenceEvent builds the event for a containment transition.
func GeofenceEvent(d *entity.DeviceSnapshot, zone *entity.Zone, tr Transition, at int64) entity.LogicalEvent {
	ev := entity.LogicalEvent{
		DeviceID:     d.ID,
		ZoneID:       zone.ID,
		OccurredAtMs: at,
	}
	if tr.Entered {
		ev.Kind = entity.EventKindGeofenceEnter
		ev.Title = titleGeofenceEnter
		ev.Message = fmt.Sprintf("%s entered %s.", d.DisplayName(), zone.DisplayName())
	} else {
		ev.Kind = entity.EventKindGeofenceExit
		ev.Title = titleGeofenceExit
		ev.Message = fmt.Sprintf("%s left %s.", d.DisplayName(), zone.DisplayName())
	}

	return ev
}

// SecurityActionEvent builds the event recorded when a remote command is
// issued against a device.
func SecurityActionEvent(deviceID, deviceName string, action entity.SecurityAction, at int64) entity.LogicalEvent {
	name := deviceName
	if name == "" {
		name = deviceID
	}

	var msg string
	switch action {
	case entity.SecurityActionLock:
		msg = fmt.Sprintf("Lock command sent to %s.", name)
	case entity.SecurityActionRing:
		msg = fmt.Sprintf("Ring command sent to %s.", name)
	case entity.SecurityActionLostMode:
		msg = fmt.Sprintf("%s was put in lost mode.", name)
	case entity.SecurityActionWipe:
		msg = fmt.Sprintf("Remote wipe requested for %s.", name)
	default:
		msg = fmt.Sprintf("%s command sent to %s.", action, name)
	}

	return entity.LogicalEvent{
		Kind:         entity.EventKindSecurityAction,
		Title:        titleSecurityAction,
		Message:      msg,
		DeviceID:     deviceID,
		OccurredAtMs: at,
	}
}
