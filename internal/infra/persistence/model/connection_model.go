package model

import (
	"time"

	"github.com/google/uuid"
)

// ConsumerConnectionModel mirrors the 'consumer_connections' table.
// The partial unique index keeps at most one primary row per user.
type ConsumerConnectionModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_connections_user_consumer,priority:1;uniqueIndex:idx_connections_one_primary,priority:1,where:is_primary"`
	ConsumerNumber   string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_connections_user_consumer,priority:2"`
	MeterNumber      string    `gorm:"type:varchar(50)"`
	ElectricityBoard string    `gorm:"type:varchar(100);not null"`
	ConnectionType   string    `gorm:"type:varchar(20);not null;default:'domestic'"`
	PhaseType        string    `gorm:"type:varchar(10);not null;default:'single'"`
	SanctionedLoadKW float64   `gorm:"column:sanctioned_load_kw;type:numeric(10,2)"`
	Address          string    `gorm:"type:text"`
	IsPrimary        bool      `gorm:"not null;default:false;uniqueIndex:idx_connections_one_primary,priority:2"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConsumerConnectionModel) TableName() string {
	return "consumer_connections"
}
