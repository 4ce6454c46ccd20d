package entity

import (
	"math"
	"time"
)

// Zone is a circular geofence owned by a user.
type Zone struct {
	ID           string     `json:"id"`             // Document ID of the geofence.
	Name         string     `json:"name"`           // Display name used in alert templates.
	Center       Coordinate `json:"center"`         // Center of the circle.
	RadiusMeters float64    `json:"radius_meters"`  // Radius in meters.
	AlertOnEntry bool       `json:"alert_on_entry"` // Emit an event when a device enters.
	AlertOnExit  bool       `json:"alert_on_exit"`  // Emit an event when a device leaves.
	UpdatedAt    time.Time  `json:"updated_at"`     // Last modification time.
}

// IsWellFormed reports whether the zone can be evaluated at all.
func (z *Zone) IsWellFormed() bool {
	if z == nil || z.ID == "" {
		return false
	}
	if math.IsNaN(z.RadiusMeters) || math.IsInf(z.RadiusMeters, 0) || z.RadiusMeters <= 0 {
		return false
	}

	return z.Center.IsValid()
}

// DisplayName returns the name used in human-readable messages.
func (z *Zone) DisplayName() string {
	if z.Name != "" {
		return z.Name
	}

	return z.ID
}
