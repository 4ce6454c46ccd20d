package model

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// Timestamps are stored as epoch milliseconds so ordering is identical on
// every supported dialect.
type NotificationModel struct {
	ID          string `gorm:"type:varchar(36);primaryKey"`
	UserID      string `gorm:"type:varchar(128);not null;index:idx_notifications_user_ts,priority:1"`
	Kind        string `gorm:"type:varchar(64);not null"`
	Title       string `gorm:"type:text;not null"`
	Message     string `gorm:"type:text;not null"`
	Read        bool   `gorm:"not null;default:false;index"`
	DeviceID    string `gorm:"type:varchar(128)"`
	TimestampMs int64  `gorm:"not null;index:idx_notifications_user_ts,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// ActivityModel is the GORM-specific struct for the 'device_activity' table.
type ActivityModel struct {
	ID             string `gorm:"type:varchar(36);primaryKey"`
	UserID         string `gorm:"type:varchar(128);not null;index:idx_activity_device_ts,priority:1"`
	DeviceID       string `gorm:"type:varchar(128);not null;index:idx_activity_device_ts,priority:2"`
	NotificationID string `gorm:"type:varchar(36)"`
	Kind           string `gorm:"type:varchar(64);not null"`
	Title          string `gorm:"type:text;not null"`
	Message        string `gorm:"type:text;not null"`
	TimestampMs    int64  `gorm:"not null;index:idx_activity_device_ts,priority:3"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "device_activity"
}
