package entity

import (
	"time"
)

// Notification is a persisted user-facing notification. Only Read is ever
// mutated after creation.
type Notification struct {
	ID        string    `json:"id"`                  // Document ID assigned by the store.
	Kind      EventKind `json:"kind"`                // Kind of the originating event.
	Title     string    `json:"title"`               // Headline shown in the inbox.
	Message   string    `json:"message"`             // Body text.
	Read      bool      `json:"read"`                // Set by mark-read.
	DeviceID  string    `json:"device_id,omitempty"` // Originating device, if device scoped.
	Timestamp time.Time `json:"timestamp"`           // Server-assigned creation time.
}

// TimestampMs returns the creation time in epoch milliseconds.
func (n *Notification) TimestampMs() int64 {
	return n.Timestamp.UnixMilli()
}
