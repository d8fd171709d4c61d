package usecase

import (
	"context"
	"time"

	"urjabandhu/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateGoalInput is the data needed to set an energy goal.
type CreateGoalInput struct {
	Title        string
	GoalType     entity.GoalType
	TargetValue  float64
	CurrentValue float64
	Unit         string
	Period       entity.GoalPeriod
	StartDate    time.Time
	EndDate      *time.Time
}

// UpdateGoalInput is a patch; nil fields are left unchanged.
type UpdateGoalInput struct {
	Title        *string
	TargetValue  *float64
	CurrentValue *float64
	Unit         *string
	Period       *entity.GoalPeriod
	EndDate      *time.Time
	Status       *entity.GoalStatus
}

// GoalUsecase manages energy goals.
type GoalUsecase interface {
	ListGoals(ctx context.Context, userID uuid.UUID) ([]*entity.EnergyGoal, error)
	CreateGoal(ctx context.Context, userID uuid.UUID, input *CreateGoalInput) (*entity.EnergyGoal, error)
	UpdateGoal(ctx context.Context, userID, goalID uuid.UUID, input *UpdateGoalInput) (*entity.EnergyGoal, error)
	DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) error
}

// CreateAlertInput is the data needed to raise an energy alert.
type CreateAlertInput struct {
	AlertType string
	Severity  entity.AlertSeverity
	Title     string
	Message   string
	DeviceID  *uuid.UUID
}

// AlertUsecase manages energy alerts. Urgent alerts are fanned out and
// every alert produces a user notification.
type AlertUsecase interface {
	ListAlerts(ctx context.Context, userID uuid.UUID) ([]*entity.EnergyAlert, error)
	CreateAlert(ctx context.Context, userID uuid.UUID, input *CreateAlertInput) (*entity.EnergyAlert, error)
	MarkAlertRead(ctx context.Context, userID, alertID uuid.UUID) (*entity.EnergyAlert, error)
	ResolveAlert(ctx context.Context, userID, alertID uuid.UUID) (*entity.EnergyAlert, error)
	DeleteAlert(ctx context.Context, userID, alertID uuid.UUID) error
}

// CreateRecommendationInput is the data needed to store a recommendation.
type CreateRecommendationInput struct {
	Title            string
	Description      string
	Category         string
	Priority         entity.Priority
	PotentialSavings float64
}

// UpdateRecommendationInput is a patch; nil fields are left unchanged.
type UpdateRecommendationInput struct {
	Title            *string
	Description      *string
	Category         *string
	Priority         *entity.Priority
	PotentialSavings *float64
	Status           *entity.RecommendationStatus
}

// RecommendationUsecase manages energy-saving recommendations.
type RecommendationUsecase interface {
	// ListRecommendations returns stored rows, or the fixture set tagged
	// fixture when the user has none and fallback is enabled.
	ListRecommendations(ctx context.Context, userID uuid.UUID) (*RecommendationList, error)
	CreateRecommendation(ctx context.Context, userID uuid.UUID, input *CreateRecommendationInput) (*entity.Recommendation, error)
	UpdateRecommendation(ctx context.Context, userID, recID uuid.UUID, input *UpdateRecommendationInput) (*entity.Recommendation, error)
	DeleteRecommendation(ctx context.Context, userID, recID uuid.UUID) error
}

// RecommendationList carries the origin of the listed recommendations.
type RecommendationList struct {
	Items  []*entity.Recommendation
	Source entity.DataSource
}

// CreateBillInput is the data needed to store a bill.
type CreateBillInput struct {
	ConnectionID  *uuid.UUID
	PeriodStart   time.Time
	PeriodEnd     time.Time
	UnitsConsumed float64
	Amount        float64
	DueDate       *time.Time
	Status        entity.BillStatus
}

// UpdateBillInput is a patch; nil fields are left unchanged.
type UpdateBillInput struct {
	UnitsConsumed *float64
	Amount        *float64
	DueDate       *time.Time
	Status        *entity.BillStatus
}

// BillingUsecase manages billing records.
type BillingUsecase interface {
	ListBills(ctx context.Context, userID uuid.UUID) ([]*entity.BillingData, error)
	CreateBill(ctx context.Context, userID uuid.UUID, input *CreateBillInput) (*entity.BillingData, error)
	UpdateBill(ctx context.Context, userID, billID uuid.UUID, input *UpdateBillInput) (*entity.BillingData, error)
	DeleteBill(ctx context.Context, userID, billID uuid.UUID) error
}
