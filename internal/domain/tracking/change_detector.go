package tracking

import (
	"strings"

	"tracenfind/internal/domain/entity"
)

// DefaultCriticalSimMarker is the marker upstream agents append to SIM states
// that warrant an alert, e.g. "SIM removed ⚠️".
const DefaultCriticalSimMarker = "⚠️"

// DetectorOptions tunes ChangeDetector predicates.
type DetectorOptions struct {
	CriticalSimMarker string
}

// Diff derives events from two consecutive snapshots of the same device. All
// predicates are independent and may fire together. A nil previous snapshot
// yields nothing. at stamps every produced event.
func Diff(previous, current *entity.DeviceSnapshot, opts DetectorOptions, at int64) []entity.LogicalEvent {
	if previous == nil || current == nil {
		return nil
	}

	marker := opts.CriticalSimMarker
	if marker == "" {
		marker = DefaultCriticalSimMarker
	}

	var events []entity.LogicalEvent

	if previous.Status != entity.DeviceStatusOnline && current.Status == entity.DeviceStatusOnline {
		events = append(events, trackingStartEvent(current, at))
	}
	if previous.Status != entity.DeviceStatusOffline && current.Status == entity.DeviceStatusOffline {
		events = append(events, trackingStopEvent(current, at))
	}
	if previous.Security.SimStatus != current.Security.SimStatus && strings.Contains(current.Security.SimStatus, marker) {
		events = append(events, simAlertEvent(current, at))
	}
	if current.FinderMessage != "" && current.FinderMessage != previous.FinderMessage {
		events = append(events, finderMessageEvent(current, at))
	}
	if current.FinderPhotoURL != "" && current.FinderPhotoURL != previous.FinderPhotoURL {
		events = append(events, finderPhotoEvent(current, at))
	}

	return events
}

// ChangeDetector owns the previous-snapshot cache for a set of devices. It is
// not safe for concurrent use.
type ChangeDetector struct {
	opts     DetectorOptions
	previous map[string]*entity.DeviceSnapshot
}

// NewChangeDetector returns a detector with an empty cache.
func NewChangeDetector(opts DetectorOptions) *ChangeDetector {
	return &ChangeDetector{
		opts:     opts,
		previous: make(map[string]*entity.DeviceSnapshot),
	}
}

// Observe diffs current against the cached snapshot for the same device and
// then caches current, whether or not anything fired. The first snapshot for
// a device only seeds the cache.
func (d *ChangeDetector) Observe(current *entity.DeviceSnapshot, at int64) []entity.LogicalEvent {
	if current == nil || current.ID == "" {
		return nil
	}

	events := Diff(d.previous[current.ID], current, d.opts, at)
	d.previous[current.ID] = current.Clone()

	return events
}

// Previous returns the cached snapshot for a device, if any.
func (d *ChangeDetector) Previous(deviceID string) (*entity.DeviceSnapshot, bool) {
	snap, ok := d.previous[deviceID]

	return snap, ok
}

// Retain drops cached snapshots for devices not in keep.
func (d *ChangeDetector) Retain(keep map[string]struct{}) {
	for id := range d.previous {
		if _, ok := keep[id]; !ok {
			delete(d.previous, id)
		}
	}
}

// Len returns the number of cached devices.
func (d *ChangeDetector) Len() int {
	return len(d.previous)
}
