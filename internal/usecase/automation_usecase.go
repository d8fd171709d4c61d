package usecase

import (
	"context"
	"time"

	"urjabandhu/internal/domain/entity"

	"github.com/google/uuid"
)

// RuleInput is the full configuration of an automation rule.
type RuleInput struct {
	Name        string
	Description string
	Conditions  []entity.RuleCondition
	Actions     []entity.RuleAction
	IsEnabled   bool
	Priority    int
	TimeStart   string
	TimeEnd     string
	DaysOfWeek  []int
}

// ScheduleInput is the full configuration of a device schedule.
type ScheduleInput struct {
	DeviceID      uuid.UUID
	Name          string
	Action        entity.ScheduleAction
	PowerLevel    *int
	ScheduleType  entity.ScheduleType
	ScheduledTime string
	DaysOfWeek    []int
	RunAt         *time.Time
	IsEnabled     bool
}

// ExecuteActionInput identifies one action run. RuleID is set when the action
// comes from a rule.
type ExecuteActionInput struct {
	DeviceID uuid.UUID
	RuleID   *uuid.UUID
	Action   entity.RuleAction
}

// TriggerRuleOutput reports the events published for a manual rule run.
type TriggerRuleOutput struct {
	Rule     *entity.AutomationRule
	EventIDs []string
}

// AutomationUsecase stores rules and schedules and executes device actions.
// Nothing here evaluates rule conditions or fires schedules on time.
type AutomationUsecase interface {
	ListRules(ctx context.Context, userID uuid.UUID) ([]*entity.AutomationRule, error)
	CreateRule(ctx context.Context, userID uuid.UUID, input *RuleInput) (*entity.AutomationRule, error)
	UpdateRule(ctx context.Context, userID, ruleID uuid.UUID, input *RuleInput) (*entity.AutomationRule, error)
	DeleteRule(ctx context.Context, userID, ruleID uuid.UUID) error
	ToggleRule(ctx context.Context, userID, ruleID uuid.UUID) (*entity.AutomationRule, error)
	TriggerRule(ctx context.Context, userID, ruleID uuid.UUID) (*TriggerRuleOutput, error)

	ListSchedules(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceSchedule, error)
	CreateSchedule(ctx context.Context, userID uuid.UUID, input *ScheduleInput) (*entity.DeviceSchedule, error)
	UpdateSchedule(ctx context.Context, userID, scheduleID uuid.UUID, input *ScheduleInput) (*entity.DeviceSchedule, error)
	DeleteSchedule(ctx context.Context, userID, scheduleID uuid.UUID) error

	ListLogs(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.AutomationLog, error)

	// ExecuteDeviceAction runs one action and always records an AutomationLog.
	ExecuteDeviceAction(ctx context.Context, userID uuid.UUID, input *ExecuteActionInput) (*entity.AutomationLog, error)
}
