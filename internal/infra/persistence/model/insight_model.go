package model

import (
	"time"

	"github.com/google/uuid"
)

// EnergyGoalModel mirrors the 'energy_goals' table.
type EnergyGoalModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"type:varchar(150);not null"`
	GoalType     string    `gorm:"type:varchar(20);not null"`
	TargetValue  float64   `gorm:"type:numeric(12,2);not null"`
	CurrentValue float64   `gorm:"type:numeric(12,2);not null;default:0"`
	Unit         string    `gorm:"type:varchar(20)"`
	Period       string    `gorm:"type:varchar(10);not null"`
	StartDate    time.Time `gorm:"not null"`
	EndDate      *time.Time
	Status       string `gorm:"type:varchar(10);not null;default:'active'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (EnergyGoalModel) TableName() string {
	return "energy_goals"
}

// EnergyAlertModel mirrors the 'energy_alerts' table.
type EnergyAlertModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	AlertType  string     `gorm:"type:varchar(50);not null"`
	Severity   string     `gorm:"type:varchar(10);not null"`
	Title      string     `gorm:"type:varchar(200);not null"`
	Message    string     `gorm:"type:text"`
	DeviceID   *uuid.UUID `gorm:"type:uuid"`
	IsRead     bool       `gorm:"not null;default:false"`
	IsResolved bool       `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (EnergyAlertModel) TableName() string {
	return "energy_alerts"
}

// RecommendationModel mirrors the 'recommendations' table.
type RecommendationModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Title            string    `gorm:"type:varchar(200);not null"`
	Description      string    `gorm:"type:text"`
	Category         string    `gorm:"type:varchar(50)"`
	Priority         string    `gorm:"type:varchar(10);not null;default:'medium'"`
	PotentialSavings float64   `gorm:"type:numeric(12,2);not null;default:0"`
	Status           string    `gorm:"type:varchar(10);not null;default:'pending'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecommendationModel) TableName() string {
	return "recommendations"
}

// BillingDataModel mirrors the 'billing_data' table.
type BillingDataModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	ConnectionID  *uuid.UUID `gorm:"type:uuid"`
	PeriodStart   time.Time  `gorm:"not null"`
	PeriodEnd     time.Time  `gorm:"not null"`
	UnitsConsumed float64    `gorm:"type:numeric(12,2);not null;default:0"`
	Amount        float64    `gorm:"type:numeric(12,2);not null;default:0"`
	DueDate       *time.Time
	Status        string `gorm:"type:varchar(10);not null;default:'pending'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Connection *ConsumerConnectionModel `gorm:"foreignKey:ConnectionID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (BillingDataModel) TableName() string {
	return "billing_data"
}
