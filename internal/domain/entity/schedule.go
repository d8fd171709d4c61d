package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleAction is what a schedule does to its device.
type ScheduleAction string

const (
	ScheduleActionTurnOn   ScheduleAction = "turn_on"
	ScheduleActionTurnOff  ScheduleAction = "turn_off"
	ScheduleActionSetPower ScheduleAction = "set_power"
)

// IsValid checks if the ScheduleAction is a valid value.
func (a ScheduleAction) IsValid() bool {
	switch a {
	case ScheduleActionTurnOn, ScheduleActionTurnOff, ScheduleActionSetPower:
		return true
	default:
		return false
	}
}

// ScheduleType is the recurrence of a schedule.
type ScheduleType string

const (
	ScheduleTypeOnce   ScheduleType = "once"
	ScheduleTypeDaily  ScheduleType = "daily"
	ScheduleTypeWeekly ScheduleType = "weekly"
)

// IsValid checks if the ScheduleType is a valid value.
func (t ScheduleType) IsValid() bool {
	switch t {
	case ScheduleTypeOnce, ScheduleTypeDaily, ScheduleTypeWeekly:
		return true
	default:
		return false
	}
}

// DeviceSchedule is a persisted time-based device action.
// NextExecutionAt is computed on every write; no scheduler consumes it yet.
type DeviceSchedule struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	DeviceID        uuid.UUID
	Name            string
	Action          ScheduleAction
	PowerLevel      *int
	ScheduleType    ScheduleType
	ScheduledTime   string     // HH:MM in the service time zone.
	DaysOfWeek      []int      // Used by weekly schedules.
	RunAt           *time.Time // Used by once schedules.
	IsEnabled       bool
	NextExecutionAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
