package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActionType selects the branch taken when an automation action executes.
type ActionType string

const (
	ActionTypeDeviceControl ActionType = "device_control"
	ActionTypeNotification  ActionType = "notification"
	ActionTypeOptimize      ActionType = "optimize"
)

// IsValid checks if the ActionType is a valid value.
func (t ActionType) IsValid() bool {
	switch t {
	case ActionTypeDeviceControl, ActionTypeNotification, ActionTypeOptimize:
		return true
	default:
		return false
	}
}

// RuleCondition is one stored predicate of a rule, e.g. {"time", "after", "22:00"}.
type RuleCondition struct {
	Type     string `json:"type"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// RuleAction describes what to do when a rule fires.
type RuleAction struct {
	Type       ActionType     `json:"type"`
	DeviceID   *uuid.UUID     `json:"device_id,omitempty"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// AutomationRule is a persisted condition/action configuration.
// Nothing in this service evaluates Conditions; they are kept as the input
// contract for a rule engine. Actions can be run manually via TriggerRule.
type AutomationRule struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Description    string
	Conditions     []RuleCondition
	Actions        []RuleAction
	IsEnabled      bool
	Priority       int
	TimeStart      string // HH:MM, empty for no lower bound.
	TimeEnd        string // HH:MM, empty for no upper bound.
	DaysOfWeek     []int  // 0=Sunday ... 6=Saturday.
	ExecutionCount int
	LastExecutedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LogStatus is the outcome of one executed action.
type LogStatus string

const (
	LogStatusSuccess LogStatus = "success"
	LogStatusFailed  LogStatus = "failed"
)

// AutomationLog is an append-only record of one executed action.
type AutomationLog struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	RuleID          *uuid.UUID
	DeviceID        *uuid.UUID
	ActionType      ActionType
	Status          LogStatus
	Message         string
	ExecutionTimeMs int64
	Details         map[string]any
	ExecutedAt      time.Time
}
