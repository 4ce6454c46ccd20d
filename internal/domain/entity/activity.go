package entity

import "time"

// ActivityEntry is one line of a device's timeline. It mirrors a notification
// and is written on a best-effort basis after it.
type ActivityEntry struct {
	ID             string    `json:"id"`
	DeviceID       string    `json:"device_id"`
	NotificationID string    `json:"notification_id,omitempty"`
	Kind           EventKind `json:"kind"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Timestamp      time.Time `json:"timestamp"`
}
