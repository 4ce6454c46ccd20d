package model

import (
	"time"
)

// PushTokenModel is the GORM-specific struct for the 'push_tokens' table.
// It represents an installation registered for push notifications.
type PushTokenModel struct {
	ID             string `gorm:"type:varchar(36);primaryKey"`
	UserID         string `gorm:"type:varchar(128);not null;uniqueIndex:idx_push_tokens_installation,priority:1"`
	FCMToken       string `gorm:"type:varchar(255);not null"`
	InstallationID string `gorm:"type:varchar(255);not null;uniqueIndex:idx_push_tokens_installation,priority:2"`
	Platform       string `gorm:"type:varchar(50);not null"`
	IsActive       bool   `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushTokenModel) TableName() string {
	return "push_tokens"
}

// All lists every model for schema migration.
func All() []any {
	return []any{
		&NotificationModel{},
		&ActivityModel{},
		&DeviceModel{},
		&ZoneModel{},
		&PushTokenModel{},
	}
}
