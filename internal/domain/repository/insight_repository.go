package repository

import (
	"context"
	"errors"

	"urjabandhu/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for goals, alerts, recommendations and bills.
var (
	ErrGoalNotFound           = errors.New("energy goal not found")
	ErrAlertNotFound          = errors.New("energy alert not found")
	ErrRecommendationNotFound = errors.New("recommendation not found")
	ErrBillNotFound           = errors.New("bill not found")
)

// GoalRepository persists energy goals, newest first.
type GoalRepository interface {
	ListGoals(ctx context.Context, userID uuid.UUID) ([]*entity.EnergyGoal, error)
	FindGoalByID(ctx context.Context, id uuid.UUID) (*entity.EnergyGoal, error)
	CreateGoal(ctx context.Context, goal *entity.EnergyGoal) error
	UpdateGoal(ctx context.Context, goal *entity.EnergyGoal) error
	DeleteGoal(ctx context.Context, id uuid.UUID) error
}

// AlertRepository persists energy alerts, newest first.
type AlertRepository interface {
	ListAlerts(ctx context.Context, userID uuid.UUID) ([]*entity.EnergyAlert, error)
	FindAlertByID(ctx context.Context, id uuid.UUID) (*entity.EnergyAlert, error)
	CreateAlert(ctx context.Context, alert *entity.EnergyAlert) error
	UpdateAlert(ctx context.Context, alert *entity.EnergyAlert) error
	DeleteAlert(ctx context.Context, id uuid.UUID) error
}

// RecommendationRepository persists recommendations, newest first.
type RecommendationRepository interface {
	ListRecommendations(ctx context.Context, userID uuid.UUID) ([]*entity.Recommendation, error)
	FindRecommendationByID(ctx context.Context, id uuid.UUID) (*entity.Recommendation, error)
	CreateRecommendation(ctx context.Context, rec *entity.Recommendation) error
	UpdateRecommendation(ctx context.Context, rec *entity.Recommendation) error
	DeleteRecommendation(ctx context.Context, id uuid.UUID) error
}

// BillingRepository persists bills ordered by billing period start DESC.
type BillingRepository interface {
	ListBills(ctx context.Context, userID uuid.UUID) ([]*entity.BillingData, error)
	FindBillByID(ctx context.Context, id uuid.UUID) (*entity.BillingData, error)
	CreateBill(ctx context.Context, bill *entity.BillingData) error
	UpdateBill(ctx context.Context, bill *entity.BillingData) error
	DeleteBill(ctx context.Context, id uuid.UUID) error
}
