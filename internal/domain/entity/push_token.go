package entity

import (
	"time"
)

// PushToken is a browser or mobile installation registered for FCM pushes.
type PushToken struct {
	ID             string    `json:"id"`              // Identifier of the registration.
	UserID         string    `json:"user_id"`         // Owner of the registration.
	FCMToken       string    `json:"fcm_token"`       // Firebase Cloud Messaging token.
	InstallationID string    `json:"installation_id"` // Client-generated installation identifier.
	Platform       string    `json:"platform"`        // web, ios or android.
	IsActive       bool      `json:"is_active"`       // Cleared when FCM reports the token invalid.
	CreatedAt      time.Time `json:"created_at"`      // Registration time.
	UpdatedAt      time.Time `json:"updated_at"`      // Last modification.
}
