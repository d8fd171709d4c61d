package validator

import (
	"testing"

	domainerrors "urjabandhu/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scheduleRequest struct {
	Name      string `json:"name" validate:"required"`
	StartTime string `json:"start_time" validate:"required,clock"`
	EndTime   string `json:"end_time" validate:"clock"`
	Level     int    `json:"level" validate:"gte=0,lte=100"`
	Kind      string `json:"kind" validate:"omitempty,oneof=daily weekly"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name        string
		req         scheduleRequest
		wantDetails string
	}{
		{
			name: "valid",
			req:  scheduleRequest{Name: "Night", StartTime: "22:30", Level: 50, Kind: "daily"},
		},
		{
			name:        "missing name",
			req:         scheduleRequest{StartTime: "06:00"},
			wantDetails: "name is required",
		},
		{
			name:        "bad clock",
			req:         scheduleRequest{Name: "Night", StartTime: "25:00"},
			wantDetails: "start_time must be HH:MM",
		},
		{
			name:        "level too high",
			req:         scheduleRequest{Name: "Night", StartTime: "06:00", Level: 150},
			wantDetails: "level must be at most 100",
		},
		{
			name:        "unknown kind",
			req:         scheduleRequest{Name: "Night", StartTime: "06:00", Kind: "hourly"},
			wantDetails: "kind must be one of [daily weekly]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)

			if tt.wantDetails == "" {
				assert.NoError(t, err)

				return
			}

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
			assert.Contains(t, appErr.Details(), tt.wantDetails)
		})
	}
}

func TestValidator_JoinsAllFieldErrors(t *testing.T) {
	err := New().Validate(&scheduleRequest{Level: -1})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "name is required")
	assert.Contains(t, appErr.Details(), "start_time is required")
	assert.Contains(t, appErr.Details(), "level must be at least 0")
}
