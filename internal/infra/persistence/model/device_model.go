package model

// DeviceModel is the GORM-specific struct for the 'devices' table.
// It holds the latest snapshot of each tracked device, keyed by owner and device.
type DeviceModel struct {
	UserID         string   `gorm:"type:varchar(128);primaryKey"`
	ID             string   `gorm:"type:varchar(128);primaryKey"`
	Name           string   `gorm:"type:text"`
	Status         string   `gorm:"type:varchar(32)"`
	Battery        float64  `gorm:"not null;default:0"`
	Latitude       *float64 `gorm:"type:double precision"`
	Longitude      *float64 `gorm:"type:double precision"`
	SimStatus      string   `gorm:"type:text"`
	FinderMessage  string   `gorm:"type:text"`
	FinderPhotoURL string   `gorm:"type:text"`
	LastUpdatedMs  int64    `gorm:"not null;default:0"`
	RevisionNs     int64    `gorm:"not null;default:0"` // Bumped on every write; drives polling watches.
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}

// ZoneModel is the GORM-specific struct for the 'geofences' table.
type ZoneModel struct {
	UserID       string  `gorm:"type:varchar(128);primaryKey"`
	ID           string  `gorm:"type:varchar(128);primaryKey"`
	Name         string  `gorm:"type:text"`
	CenterLat    float64 `gorm:"type:double precision;not null"`
	CenterLng    float64 `gorm:"type:double precision;not null"`
	RadiusMeters float64 `gorm:"type:double precision;not null"`
	AlertOnEntry bool    `gorm:"not null;default:false"`
	AlertOnExit  bool    `gorm:"not null;default:false"`
	UpdatedAtMs  int64   `gorm:"not null;default:0"`
	RevisionNs   int64   `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (ZoneModel) TableName() string {
	return "geofences"
}
