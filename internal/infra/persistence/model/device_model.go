package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel mirrors the 'devices' table.
type DeviceModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index:idx_devices_user_created,priority:1"`
	Name               string    `gorm:"type:varchar(100);not null"`
	Type               string    `gorm:"type:varchar(20);not null"`
	Brand              string    `gorm:"type:varchar(100)"`
	Model              string    `gorm:"type:varchar(100)"`
	PowerRating        float64   `gorm:"type:numeric(10,2);not null;default:0;check:chk_devices_power_rating,power_rating >= 0"`
	Status             string    `gorm:"type:varchar(10);not null;default:'active'"`
	Location           string    `gorm:"type:varchar(100)"`
	EfficiencyScore    int       `gorm:"not null;default:75;check:chk_devices_efficiency,efficiency_score BETWEEN 0 AND 100"`
	CurrentConsumption float64   `gorm:"type:numeric(10,3);not null;default:0"`
	CreatedAt          time.Time `gorm:"index:idx_devices_user_created,priority:2,sort:desc"`
	UpdatedAt          time.Time

	Control *DeviceControlModel `gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}

// DeviceControlModel mirrors the 'device_controls' table, one row per device.
type DeviceControlModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DeviceID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	UserID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	CanTurnOnOff      bool       `gorm:"not null;default:true"`
	CanSetPowerLevel  bool       `gorm:"not null;default:false"`
	CanSchedule       bool       `gorm:"not null;default:true"`
	CurrentState      string     `gorm:"type:varchar(5);not null;default:'off'"`
	CurrentPowerLevel int        `gorm:"not null;default:100;check:chk_device_controls_power_level,current_power_level BETWEEN 0 AND 100"`
	LastCommandAt     *time.Time `gorm:"type:timestamptz"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceControlModel) TableName() string {
	return "device_controls"
}
