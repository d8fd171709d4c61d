package model

import (
	"time"

	"urjabandhu/internal/domain/entity"

	"github.com/google/uuid"
)

// AutomationRuleModel mirrors the 'automation_rules' table. Conditions and actions are JSONB.
type AutomationRuleModel struct {
	ID             uuid.UUID              `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         uuid.UUID              `gorm:"type:uuid;not null;index"`
	Name           string                 `gorm:"type:varchar(100);not null"`
	Description    string                 `gorm:"type:text"`
	Conditions     []entity.RuleCondition `gorm:"type:jsonb;serializer:json"`
	Actions        []entity.RuleAction    `gorm:"type:jsonb;serializer:json"`
	IsEnabled      bool                   `gorm:"not null;default:true"`
	Priority       int                    `gorm:"not null;default:0"`
	TimeStart      string                 `gorm:"type:varchar(5)"`
	TimeEnd        string                 `gorm:"type:varchar(5)"`
	DaysOfWeek     []int                  `gorm:"type:jsonb;serializer:json"`
	ExecutionCount int                    `gorm:"not null;default:0"`
	LastExecutedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AutomationRuleModel) TableName() string {
	return "automation_rules"
}

// DeviceScheduleModel mirrors the 'device_schedules' table.
type DeviceScheduleModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:varchar(100);not null"`
	Action          string    `gorm:"type:varchar(20);not null"`
	PowerLevel      *int
	ScheduleType    string `gorm:"type:varchar(10);not null"`
	ScheduledTime   string `gorm:"type:varchar(5)"`
	DaysOfWeek      []int  `gorm:"type:jsonb;serializer:json"`
	RunAt           *time.Time
	IsEnabled       bool `gorm:"not null;default:true"`
	NextExecutionAt *time.Time `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Device *DeviceModel `gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceScheduleModel) TableName() string {
	return "device_schedules"
}

// AutomationLogModel mirrors the append-only 'automation_logs' table.
type AutomationLogModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index:idx_automation_logs_user_executed,priority:1"`
	RuleID          *uuid.UUID     `gorm:"type:uuid"`
	DeviceID        *uuid.UUID     `gorm:"type:uuid"`
	ActionType      string         `gorm:"type:varchar(20);not null"`
	Status          string         `gorm:"type:varchar(10);not null"`
	Message         string         `gorm:"type:text"`
	ExecutionTimeMs int64          `gorm:"not null;default:0"`
	Details         map[string]any `gorm:"type:jsonb;serializer:json"`
	ExecutedAt      time.Time      `gorm:"not null;index:idx_automation_logs_user_executed,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (AutomationLogModel) TableName() string {
	return "automation_logs"
}
