package schedule

import (
	"testing"
	"time"

	"urjabandhu/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

// 2026-06-17 is a Wednesday.
var wednesdayNoon = time.Date(2026, 6, 17, 12, 0, 0, 0, time.UTC)

func TestComputeNextExecution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		schedule entity.DeviceSchedule
		want     *time.Time
	}{
		{
			name: "daily later today",
			schedule: entity.DeviceSchedule{
				Action: entity.ScheduleActionTurnOn, ScheduleType: entity.ScheduleTypeDaily,
				ScheduledTime: "18:30", IsEnabled: true,
			},
			want: timePtr(time.Date(2026, 6, 17, 18, 30, 0, 0, time.UTC)),
		},
		{
			name: "daily already passed rolls to tomorrow",
			schedule: entity.DeviceSchedule{
				Action: entity.ScheduleActionTurnOff, ScheduleType: entity.ScheduleTypeDaily,
				ScheduledTime: "06:00", IsEnabled: true,
			},
			want: timePtr(time.Date(2026, 6, 18, 6, 0, 0, 0, time.UTC)),
		},
		{
			name: "daily at exactly now rolls to tomorrow",
			schedule: entity.DeviceSchedule{
				Action: entity.ScheduleActionTurnOff, ScheduleType: entity.ScheduleTypeDaily,
				ScheduledTime: "12:00", IsEnabled: true,
			},
			want: timePtr(time.Date(2026, 6, 18, 12, 0, 0, 0, time.UTC)),
		},
		{
			name: "weekly picks next listed weekday",
			schedule: entity.DeviceSchedule{
				Action: entity.ScheduleActionTurnOn, ScheduleType: entity.ScheduleTypeWeekly,
				ScheduledTime: "08:00", DaysOfWeek: []int{1, 5}, IsEnabled: true,
			},
			want: timePtr(time.Date(2026, 6, 19, 8, 0, 0, 0, time.UTC)),
		},
		{
			name: "weekly same weekday already passed wraps a week",
			schedule: entity.DeviceSchedule{
				Action: entity.ScheduleActionTurnOn, ScheduleType: entity.ScheduleTypeWeekly,
				ScheduledTime: "08:00", DaysOfWeek: []int{3}, IsEnabled: true,
			},
			want: timePtr(time.Date(2026, 6, 24, 8, 0, 0, 0, time.UTC)),
		},
		{
			name: "once in the future",
			schedule: entity.DeviceSchedule{
				Action: entity.ScheduleActionSetPower, PowerLevel: intPtr(50), ScheduleType: entity.ScheduleTypeOnce,
				RunAt: timePtr(wednesdayNoon.Add(time.Hour)), IsEnabled: true,
			},
			want: timePtr(wednesdayNoon.Add(time.Hour)),
		},
		{
			name: "once in the past",
			schedule: entity.DeviceSchedule{
				Action: entity.ScheduleActionTurnOn, ScheduleType: entity.ScheduleTypeOnce,
				RunAt: timePtr(wednesdayNoon.Add(-time.Hour)), IsEnabled: true,
			},
			want: nil,
		},
		{
			name: "disabled",
			schedule: entity.DeviceSchedule{
				Action: entity.ScheduleActionTurnOn, ScheduleType: entity.ScheduleTypeDaily,
				ScheduledTime: "18:30", IsEnabled: false,
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ComputeNextExecution(&tt.schedule, wednesdayNoon)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)

				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		schedule entity.DeviceSchedule
	}{
		{name: "bad clock", schedule: entity.DeviceSchedule{Action: entity.ScheduleActionTurnOn, ScheduleType: entity.ScheduleTypeDaily, ScheduledTime: "25:00"}},
		{name: "weekly without days", schedule: entity.DeviceSchedule{Action: entity.ScheduleActionTurnOn, ScheduleType: entity.ScheduleTypeWeekly, ScheduledTime: "08:00"}},
		{name: "weekday out of range", schedule: entity.DeviceSchedule{Action: entity.ScheduleActionTurnOn, ScheduleType: entity.ScheduleTypeWeekly, ScheduledTime: "08:00", DaysOfWeek: []int{7}}},
		{name: "once without run_at", schedule: entity.DeviceSchedule{Action: entity.ScheduleActionTurnOn, ScheduleType: entity.ScheduleTypeOnce}},
		{name: "set_power without level", schedule: entity.DeviceSchedule{Action: entity.ScheduleActionSetPower, ScheduleType: entity.ScheduleTypeDaily, ScheduledTime: "08:00"}},
		{name: "unknown action", schedule: entity.DeviceSchedule{Action: "explode", ScheduleType: entity.ScheduleTypeDaily, ScheduledTime: "08:00"}},
		{name: "unknown type", schedule: entity.DeviceSchedule{Action: entity.ScheduleActionTurnOn, ScheduleType: "hourly"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.ErrorIs(t, Validate(&tt.schedule), ErrInvalidSchedule)
		})
	}
}
