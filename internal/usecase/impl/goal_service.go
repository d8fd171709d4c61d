package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/repository"
	"urjabandhu/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type goalService struct {
	repo   repository.GoalRepository
	logger *slog.Logger
	now    func() time.Time
}

// GoalServiceParams holds dependencies for GoalService.
type GoalServiceParams struct {
	fx.In

	GoalRepo repository.GoalRepository
	Logger   *slog.Logger
}

// NewGoalService creates the energy goal service.
func NewGoalService(params GoalServiceParams) usecase.GoalUsecase {
	return &goalService{repo: params.GoalRepo, logger: params.Logger, now: time.Now}
}

func (srv *goalService) ListGoals(ctx context.Context, userID uuid.UUID) ([]*entity.EnergyGoal, error) {
	goals, err := srv.repo.ListGoals(ctx, userID)
	if err != nil {
		return []*entity.EnergyGoal{}, errors.Wrap(err, "failed to list goals")
	}

	return goals, nil
}

func (srv *goalService) CreateGoal(ctx context.Context, userID uuid.UUID, input *usecase.CreateGoalInput) (*entity.EnergyGoal, error) {
	goal := &entity.EnergyGoal{
		UserID:       userID,
		Title:        strings.TrimSpace(input.Title),
		GoalType:     input.GoalType,
		TargetValue:  input.TargetValue,
		CurrentValue: input.CurrentValue,
		Unit:         input.Unit,
		Period:       input.Period,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Status:       entity.GoalStatusActive,
	}
	if goal.Period == "" {
		goal.Period = entity.GoalPeriodMonthly
	}
	if goal.StartDate.IsZero() {
		goal.StartDate = srv.now()
	}
	if err := validateGoal(goal); err != nil {
		return nil, err
	}

	if err := srv.repo.CreateGoal(ctx, goal); err != nil {
		return nil, errors.Wrap(err, "failed to create goal")
	}

	return goal, nil
}

func (srv *goalService) UpdateGoal(ctx context.Context, userID, goalID uuid.UUID, input *usecase.UpdateGoalInput) (*entity.EnergyGoal, error) {
	goal, err := loadOwned(ctx, srv.repo.FindGoalByID, goalOwner, userID, goalID,
		repository.ErrGoalNotFound, domainerrors.ErrGoalNotFound, true)
	if err != nil {
		return nil, err
	}

	setIfPresent(&goal.Title, input.Title)
	setIfPresent(&goal.TargetValue, input.TargetValue)
	setIfPresent(&goal.CurrentValue, input.CurrentValue)
	setIfPresent(&goal.Unit, input.Unit)
	setIfPresent(&goal.Period, input.Period)
	setIfPresent(&goal.Status, input.Status)
	if input.EndDate != nil {
		goal.EndDate = input.EndDate
	}
	if err := validateGoal(goal); err != nil {
		return nil, err
	}

	if err := srv.repo.UpdateGoal(ctx, goal); err != nil {
		return nil, mapNotFound(err, repository.ErrGoalNotFound, domainerrors.ErrGoalNotFound, "failed to update goal")
	}

	return goal, nil
}

func (srv *goalService) DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) error {
	if _, err := loadOwned(ctx, srv.repo.FindGoalByID, goalOwner, userID, goalID,
		repository.ErrGoalNotFound, domainerrors.ErrGoalNotFound, true); err != nil {
		return err
	}

	if err := srv.repo.DeleteGoal(ctx, goalID); err != nil {
		return mapNotFound(err, repository.ErrGoalNotFound, domainerrors.ErrGoalNotFound, "failed to delete goal")
	}

	return nil
}

func goalOwner(g *entity.EnergyGoal) uuid.UUID { return g.UserID }

func validateGoal(g *entity.EnergyGoal) error {
	switch {
	case g.Title == "":
		return errors.Wrap(domainerrors.ErrValidationFailed, "goal title is required")
	case !g.GoalType.IsValid():
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown goal type %q", g.GoalType)
	case !g.Period.IsValid():
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown goal period %q", g.Period)
	case !g.Status.IsValid():
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown goal status %q", g.Status)
	case g.TargetValue <= 0:
		return errors.Wrap(domainerrors.ErrValidationFailed, "target value must be positive")
	case g.CurrentValue < 0:
		return errors.Wrap(domainerrors.ErrValidationFailed, "current value must not be negative")
	case g.EndDate != nil && g.EndDate.Before(g.StartDate):
		return errors.Wrap(domainerrors.ErrValidationFailed, "end date must not be before start date")
	}

	return nil
}
