package impl

import (
	"context"
	"testing"
	"time"

	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/repository"
	mockRepo "urjabandhu/internal/mocks/repository"
	"urjabandhu/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var goalTestNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func createTestGoalService(t *testing.T) (usecase.GoalUsecase, *mockRepo.MockGoalRepository) {
	repo := mockRepo.NewMockGoalRepository(t)

	service := NewGoalService(GoalServiceParams{GoalRepo: repo, Logger: newDiscardLogger()})
	service.(*goalService).now = fixedClock(goalTestNow)

	return service, repo
}

func TestGoalService_CreateGoal_Defaults(t *testing.T) {
	service, repo := createTestGoalService(t)

	ctx := context.Background()
	userID := uuid.New()
	repo.EXPECT().CreateGoal(ctx, mock.AnythingOfType("*entity.EnergyGoal")).Return(nil)

	goal, err := service.CreateGoal(ctx, userID, &usecase.CreateGoalInput{
		Title:       "  Stay under 250 kWh  ",
		GoalType:    entity.GoalTypeConsumption,
		TargetValue: 250,
		Unit:        "kWh",
	})

	require.NoError(t, err)
	assert.Equal(t, "Stay under 250 kWh", goal.Title)
	assert.Equal(t, entity.GoalPeriodMonthly, goal.Period)
	assert.Equal(t, entity.GoalStatusActive, goal.Status)
	assert.Equal(t, goalTestNow, goal.StartDate)
}

func TestGoalService_CreateGoal_Validation(t *testing.T) {
	before := goalTestNow.AddDate(0, 0, -1)

	tests := []struct {
		name  string
		input *usecase.CreateGoalInput
	}{
		{
			name:  "blank title",
			input: &usecase.CreateGoalInput{Title: "   ", GoalType: entity.GoalTypeCost, TargetValue: 1},
		},
		{
			name:  "unknown type",
			input: &usecase.CreateGoalInput{Title: "x", GoalType: "carbon", TargetValue: 1},
		},
		{
			name:  "zero target",
			input: &usecase.CreateGoalInput{Title: "x", GoalType: entity.GoalTypeCost},
		},
		{
			name:  "end before start",
			input: &usecase.CreateGoalInput{Title: "x", GoalType: entity.GoalTypeCost, TargetValue: 1, EndDate: &before},
		},
		{
			name:  "unknown period",
			input: &usecase.CreateGoalInput{Title: "x", GoalType: entity.GoalTypeCost, TargetValue: 1, Period: "yearly"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := createTestGoalService(t)

			_, err := service.CreateGoal(context.Background(), uuid.New(), tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestGoalService_UpdateGoal_Progress(t *testing.T) {
	service, repo := createTestGoalService(t)

	ctx := context.Background()
	userID := uuid.New()
	goal := &entity.EnergyGoal{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       "Cut bill",
		GoalType:    entity.GoalTypeCost,
		TargetValue: 1500,
		Period:      entity.GoalPeriodMonthly,
		Status:      entity.GoalStatusActive,
		StartDate:   goalTestNow,
	}
	current := 1500.0
	status := entity.GoalStatusCompleted

	repo.EXPECT().FindGoalByID(ctx, goal.ID).Return(goal, nil)
	repo.EXPECT().UpdateGoal(ctx, goal).Return(nil)

	updated, err := service.UpdateGoal(ctx, userID, goal.ID, &usecase.UpdateGoalInput{CurrentValue: &current, Status: &status})

	require.NoError(t, err)
	assert.Equal(t, current, updated.CurrentValue)
	assert.Equal(t, entity.GoalStatusCompleted, updated.Status)
}

func TestGoalService_UpdateGoal_Foreign(t *testing.T) {
	service, repo := createTestGoalService(t)

	ctx := context.Background()
	goalID := uuid.New()
	repo.EXPECT().FindGoalByID(ctx, goalID).Return(&entity.EnergyGoal{ID: goalID, UserID: uuid.New()}, nil)

	_, err := service.UpdateGoal(ctx, uuid.New(), goalID, &usecase.UpdateGoalInput{})

	assert.ErrorIs(t, err, domainerrors.ErrRecordOwnershipViolation)
}

func TestGoalService_DeleteGoal_VanishedBetweenReadAndDelete(t *testing.T) {
	service, repo := createTestGoalService(t)

	ctx := context.Background()
	userID := uuid.New()
	goalID := uuid.New()

	repo.EXPECT().FindGoalByID(ctx, goalID).Return(&entity.EnergyGoal{ID: goalID, UserID: userID}, nil)
	repo.EXPECT().DeleteGoal(ctx, goalID).Return(repository.ErrGoalNotFound)

	err := service.DeleteGoal(ctx, userID, goalID)

	assert.ErrorIs(t, err, domainerrors.ErrGoalNotFound)
}

func TestGoalService_ListGoals_ErrorReturnsEmptySlice(t *testing.T) {
	service, repo := createTestGoalService(t)

	ctx := context.Background()
	userID := uuid.New()
	repo.EXPECT().ListGoals(ctx, userID).Return(nil, errors.New("db error"))

	goals, err := service.ListGoals(ctx, userID)

	require.Error(t, err)
	assert.NotNil(t, goals)
	assert.Empty(t, goals)
}
