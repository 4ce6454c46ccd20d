package entity

// EventKind classifies a logical event.
type EventKind string

const (
	EventKindTrackingStart  EventKind = "tracking-start"
	EventKindTrackingStop   EventKind = "tracking-stop"
	EventKindSimAlert       EventKind = "sim-alert"
	EventKindFinderMessage  EventKind = "finder-message"
	EventKindFinderPhoto    EventKind = "finder-photo"
	EventKindGeofenceEnter  EventKind = "geofence-enter"
	EventKindGeofenceExit   EventKind = "geofence-exit"
	EventKindSecurityAction EventKind = "security-action"
)

// Severity is the toast level used when an event is surfaced to the user.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Severity returns the toast level for a kind.
func (k EventKind) Severity() Severity {
	switch k {
	case EventKindTrackingStart:
		return SeveritySuccess
	case EventKindTrackingStop, EventKindGeofenceExit:
		return SeverityWarning
	case EventKindSimAlert:
		return SeverityDanger
	default:
		return SeverityInfo
	}
}

// LogicalEvent is a candidate notification before deduplication. It is never
// stored directly.
type LogicalEvent struct {
	Kind         EventKind `json:"kind"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	DeviceID     string    `json:"device_id,omitempty"`
	ZoneID       string    `json:"zone_id,omitempty"`
	OccurredAtMs int64     `json:"occurred_at_ms"`
}

// SecurityAction is a remote command issued against a device.
type SecurityAction string

const (
	SecurityActionLock     SecurityAction = "lock"
	SecurityActionRing     SecurityAction = "ring"
	SecurityActionLostMode SecurityAction = "lost-mode"
	SecurityActionWipe     SecurityAction = "wipe"
)

// IsValid reports whether a is a supported action.
func (a SecurityAction) IsValid() bool {
	switch a {
	case SecurityActionLock, SecurityActionRing, SecurityActionLostMode, SecurityActionWipe:
		return true
	default:
		return false
	}
}
