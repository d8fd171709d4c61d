package repository

import (
	"context"
	"errors"
	"time"

	"urjabandhu/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for automation persistence.
var (
	// ErrRuleNotFound is returned when an automation rule is not found.
	ErrRuleNotFound = errors.New("automation rule not found")
	// ErrScheduleNotFound is returned when a device schedule is not found.
	ErrScheduleNotFound = errors.New("device schedule not found")
)

// AutomationRuleRepository persists automation rules.
type AutomationRuleRepository interface {
	// ListRules returns the user's rules ordered by priority DESC, then created_at DESC.
	ListRules(ctx context.Context, userID uuid.UUID) ([]*entity.AutomationRule, error)
	FindRuleByID(ctx context.Context, id uuid.UUID) (*entity.AutomationRule, error)
	CreateRule(ctx context.Context, rule *entity.AutomationRule) error
	UpdateRule(ctx context.Context, rule *entity.AutomationRule) error
	DeleteRule(ctx context.Context, id uuid.UUID) error

	// RecordExecution increments execution_count and sets last_executed_at.
	RecordExecution(ctx context.Context, id uuid.UUID, executedAt time.Time) error
}

// DeviceScheduleRepository persists device schedules.
type DeviceScheduleRepository interface {
	// ListSchedules returns the user's schedules ordered by created_at DESC.
	ListSchedules(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceSchedule, error)
	FindScheduleByID(ctx context.Context, id uuid.UUID) (*entity.DeviceSchedule, error)
	CreateSchedule(ctx context.Context, schedule *entity.DeviceSchedule) error
	UpdateSchedule(ctx context.Context, schedule *entity.DeviceSchedule) error
	DeleteSchedule(ctx context.Context, id uuid.UUID) error
}

// AutomationLogRepository is the append-only execution log.
type AutomationLogRepository interface {
	CreateLog(ctx context.Context, log *entity.AutomationLog) error

	// ListLogs returns the newest logs first, at most limit rows.
	ListLogs(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.AutomationLog, error)
}
