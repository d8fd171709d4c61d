package model

import (
	"time"

	"github.com/google/uuid"
)

// ConsumptionRecordModel mirrors the append-only 'consumption_records' table.
type ConsumptionRecordModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index:idx_consumption_user_recorded,priority:1"`
	DeviceID       *uuid.UUID `gorm:"type:uuid;index"`
	RecordedAt     time.Time  `gorm:"not null;index:idx_consumption_user_recorded,priority:2"`
	ConsumptionKWh float64    `gorm:"column:consumption_kwh;type:numeric(12,3);not null;check:chk_consumption_non_negative,consumption_kwh >= 0"`
	Cost           float64    `gorm:"type:numeric(12,2);not null;default:0"`
	PeakDemandKW   float64    `gorm:"column:peak_demand_kw;type:numeric(10,3);not null;default:0"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConsumptionRecordModel) TableName() string {
	return "consumption_records"
}
