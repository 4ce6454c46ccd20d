// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// DeviceStatus is the connectivity state reported by a tracked device.
type DeviceStatus string

const (
	DeviceStatusOnline  DeviceStatus = "online"
	DeviceStatusOffline DeviceStatus = "offline"
	DeviceStatusLost    DeviceStatus = "lost"
	DeviceStatusWarning DeviceStatus = "warning"
)

// IsValid reports whether s is one of the known statuses.
func (s DeviceStatus) IsValid() bool {
	switch s {
	case DeviceStatusOnline, DeviceStatusOffline, DeviceStatusLost, DeviceStatusWarning:
		return true
	default:
		return false
	}
}

// SecurityFields carries security telemetry attached to a device snapshot.
type SecurityFields struct {
	SimStatus string `json:"sim_status,omitempty"` // Free-form SIM state; critical states carry a marker.
}

// DeviceSnapshot is the full state of one tracked device at one point in time.
// A snapshot is never patched; the next one for the same ID replaces it.
type DeviceSnapshot struct {
	ID             string         `json:"id"`                         // Document ID of the device.
	Name           string         `json:"name"`                       // Display name used in alert templates.
	Status         DeviceStatus   `json:"status"`                     // Connectivity state.
	Battery        float64        `json:"battery"`                    // Battery level in percent.
	Location       *Coordinate    `json:"location,omitempty"`         // Last known position, if any.
	Security       SecurityFields `json:"security_fields"`            // Security telemetry.
	FinderMessage  string         `json:"finder_message,omitempty"`   // Message left by whoever found the device.
	FinderPhotoURL string         `json:"finder_photo_url,omitempty"` // Photo captured by the lost-mode camera.
	LastUpdated    time.Time      `json:"last_updated"`               // Time the device last reported.
}

// DisplayName returns the name used in human-readable messages.
func (d *DeviceSnapshot) DisplayName() string {
	if d.Name != "" {
		return d.Name
	}

	return d.ID
}

// Clone returns a deep copy so cached snapshots cannot be mutated by callers.
func (d *DeviceSnapshot) Clone() *DeviceSnapshot {
	if d == nil {
		return nil
	}

	cloned := *d
	if d.Location != nil {
		loc := *d.Location
		cloned.Location = &loc
	}

	return &cloned
}
