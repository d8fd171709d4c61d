// Package schedule computes when a stored device schedule is next due.
// Nothing in the service fires schedules; the computed time is persisted for display
// and for whatever engine consumes the schedule table.
package schedule

import (
	"time"

	"urjabandhu/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrInvalidSchedule wraps every validation failure of this package.
var ErrInvalidSchedule = errors.New("invalid schedule")

// ParseClock parses an "HH:MM" wall-clock time.
func ParseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, errors.Wrapf(ErrInvalidSchedule, "time %q must be HH:MM", s)
	}

	return t.Hour(), t.Minute(), nil
}

// ValidateDays checks that every entry is a weekday number 0 (Sunday) to 6.
func ValidateDays(days []int) error {
	for _, d := range days {
		if d < 0 || d > 6 {
			return errors.Wrapf(ErrInvalidSchedule, "day of week %d out of range", d)
		}
	}

	return nil
}

// Validate checks the fields required by the schedule's type.
func Validate(s *entity.DeviceSchedule) error {
	if !s.Action.IsValid() {
		return errors.Wrapf(ErrInvalidSchedule, "unknown action %q", s.Action)
	}
	if s.Action == entity.ScheduleActionSetPower {
		if s.PowerLevel == nil || *s.PowerLevel < 0 || *s.PowerLevel > 100 {
			return errors.Wrap(ErrInvalidSchedule, "set_power requires a power level between 0 and 100")
		}
	}

	switch s.ScheduleType {
	case entity.ScheduleTypeOnce:
		if s.RunAt == nil {
			return errors.Wrap(ErrInvalidSchedule, "once schedules require run_at")
		}

		return nil
	case entity.ScheduleTypeDaily:
		_, _, err := ParseClock(s.ScheduledTime)

		return err
	case entity.ScheduleTypeWeekly:
		if _, _, err := ParseClock(s.ScheduledTime); err != nil {
			return err
		}
		if len(s.DaysOfWeek) == 0 {
			return errors.Wrap(ErrInvalidSchedule, "weekly schedules require days_of_week")
		}

		return ValidateDays(s.DaysOfWeek)
	default:
		return errors.Wrapf(ErrInvalidSchedule, "unknown schedule type %q", s.ScheduleType)
	}
}

// ComputeNextExecution returns the first time strictly after now at which s is due,
// or nil when the schedule is disabled or a once schedule is already in the past.
func ComputeNextExecution(s *entity.DeviceSchedule, now time.Time) (*time.Time, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	if !s.IsEnabled {
		return nil, nil
	}

	if s.ScheduleType == entity.ScheduleTypeOnce {
		if !s.RunAt.After(now) {
			return nil, nil
		}
		next := *s.RunAt

		return &next, nil
	}

	hour, minute, _ := ParseClock(s.ScheduledTime)
	y, m, d := now.Date()
	today := time.Date(y, m, d, hour, minute, 0, 0, now.Location())

	allowed := map[time.Weekday]bool{}
	for _, day := range s.DaysOfWeek {
		allowed[time.Weekday(day)] = true
	}

	for offset := 0; offset <= 7; offset++ {
		candidate := today.AddDate(0, 0, offset)
		if !candidate.After(now) {
			continue
		}
		if s.ScheduleType == entity.ScheduleTypeWeekly && !allowed[candidate.Weekday()] {
			continue
		}

		return &candidate, nil
	}

	return nil, nil
}
