// Package tracking derives discrete events from successive device snapshots.
// All state here is process local and owned by a single pipeline instance.
package tracking

import (
	"tracenfind/internal/domain/entity"
	"tracenfind/internal/domain/geo"
)

// ContainmentState is the last known relation of a device to a zone.
type ContainmentState int

const (
	StateUnknown ContainmentState = iota
	StateInside
	StateOutside
)

func (s ContainmentState) String() string {
	switch s {
	case StateInside:
		return "inside"
	case StateOutside:
		return "outside"
	default:
		return "unknown"
	}
}

// Transition is an edge between inside and outside for one device/zone pair.
type Transition struct {
	DeviceID string
	ZoneID   string
	Entered  bool
}

// ContainmentTracker keeps inside/outside state per (device, zone) pair and
// reports only genuine flips. It is not safe for concurrent use.
type ContainmentTracker struct {
	states map[string]map[string]ContainmentState
}

// NewContainmentTracker returns an empty tracker.
func NewContainmentTracker() *ContainmentTracker {
	return &ContainmentTracker{
		states: make(map[string]map[string]ContainmentState),
	}
}

// Evaluate records the containment of position in zone for deviceID and
// returns a transition when the state flipped. The first observation of a
// pair only seeds state. Invalid input leaves existing state untouched.
func (t *ContainmentTracker) Evaluate(deviceID string, position *entity.Coordinate, zone *entity.Zone) (Transition, bool) {
	if deviceID == "" || position == nil || !position.IsValid() || !zone.IsWellFormed() {
		return Transition{}, false
	}

	inside, ok := geo.Within(*position, zone.Center, zone.RadiusMeters)
	if !ok {
		return Transition{}, false
	}

	next := StateOutside
	if inside {
		next = StateInside
	}

	zones, exists := t.states[deviceID]
	if !exists {
		zones = make(map[string]ContainmentState)
		t.states[deviceID] = zones
	}

	prev, seen := zones[zone.ID]
	zones[zone.ID] = next
	if !seen || prev == StateUnknown || prev == next {
		return Transition{}, false
	}

	return Transition{DeviceID: deviceID, ZoneID: zone.ID, Entered: inside}, true
}

// State returns the recorded state of a pair.
func (t *ContainmentTracker) State(deviceID, zoneID string) ContainmentState {
	return t.states[deviceID][zoneID]
}

// RetainDevices drops state for every device not in keep.
func (t *ContainmentTracker) RetainDevices(keep map[string]struct{}) {
	for deviceID := range t.states {
		if _, ok := keep[deviceID]; !ok {
			delete(t.states, deviceID)
		}
	}
}

// RetainZones drops state for every zone not in keep.
func (t *ContainmentTracker) RetainZones(keep map[string]struct{}) {
	for deviceID, zones := range t.states {
		for zoneID := range zones {
			if _, ok := keep[zoneID]; !ok {
				delete(zones, zoneID)
			}
		}
		if len(zones) == 0 {
			delete(t.states, deviceID)
		}
	}
}

// Len returns the number of tracked pairs.
func (t *ContainmentTracker) Len() int {
	n := 0
	for _, zones := range t.states {
		n += len(zones)
	}

	return n
}
