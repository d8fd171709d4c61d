package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"urjabandhu/internal/delivery/api/response"
	"urjabandhu/internal/domain/entity"
	"urjabandhu/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InsightHandlerParams holds dependencies for InsightHandler, injected by Fx.
type InsightHandlerParams struct {
	fx.In

	GoalUC           usecase.GoalUsecase
	AlertUC          usecase.AlertUsecase
	RecommendationUC usecase.RecommendationUsecase
	BillingUC        usecase.BillingUsecase
	Logger           *slog.Logger
}

// InsightHandler serves goals, alerts, recommendations and bills.
type InsightHandler struct {
	goalUC           usecase.GoalUsecase
	alertUC          usecase.AlertUsecase
	recommendationUC usecase.RecommendationUsecase
	billingUC        usecase.BillingUsecase
	logger           *slog.Logger
}

// NewInsightHandler is the constructor for InsightHandler.
func NewInsightHandler(params InsightHandlerParams) *InsightHandler {
	return &InsightHandler{
		goalUC:           params.GoalUC,
		alertUC:          params.AlertUC,
		recommendationUC: params.RecommendationUC,
		billingUC:        params.BillingUC,
		logger:           params.Logger,
	}
}

type CreateGoalRequest struct {
	Title        string            `json:"title" validate:"required,max=200"`
	GoalType     entity.GoalType   `json:"goal_type" validate:"required,oneof=consumption cost efficiency"`
	TargetValue  float64           `json:"target_value" validate:"gt=0"`
	CurrentValue float64           `json:"current_value" validate:"gte=0"`
	Unit         string            `json:"unit" validate:"max=20"`
	Period       entity.GoalPeriod `json:"period" validate:"omitempty,oneof=daily weekly monthly"`
	StartDate    time.Time         `json:"start_date"`
	EndDate      *time.Time        `json:"end_date"`
}

type UpdateGoalRequest struct {
	Title        *string            `json:"title" validate:"omitempty,max=200"`
	TargetValue  *float64           `json:"target_value" validate:"omitempty,gt=0"`
	CurrentValue *float64           `json:"current_value" validate:"omitempty,gte=0"`
	Unit         *string            `json:"unit" validate:"omitempty,max=20"`
	Period       *entity.GoalPeriod `json:"period" validate:"omitempty,oneof=daily weekly monthly"`
	EndDate      *time.Time         `json:"end_date"`
	Status       *entity.GoalStatus `json:"status" validate:"omitempty,oneof=active completed failed"`
}

type CreateAlertRequest struct {
	AlertType string               `json:"alert_type" validate:"required,max=50"`
	Severity  entity.AlertSeverity `json:"severity" validate:"omitempty,oneof=low medium high critical"`
	Title     string               `json:"title" validate:"required,max=200"`
	Message   string               `json:"message"`
	DeviceID  *uuid.UUID           `json:"device_id"`
}

type CreateRecommendationRequest struct {
	Title            string          `json:"title" validate:"required,max=200"`
	Description      string          `json:"description"`
	Category         string          `json:"category" validate:"max=50"`
	Priority         entity.Priority `json:"priority" validate:"omitempty,oneof=low medium high"`
	PotentialSavings float64         `json:"potential_savings" validate:"gte=0"`
}

type UpdateRecommendationRequest struct {
	Title            *string                      `json:"title" validate:"omitempty,max=200"`
	Description      *string                      `json:"description"`
	Category         *string                      `json:"category" validate:"omitempty,max=50"`
	Priority         *entity.Priority             `json:"priority" validate:"omitempty,oneof=low medium high"`
	PotentialSavings *float64                     `json:"potential_savings" validate:"omitempty,gte=0"`
	Status           *entity.RecommendationStatus `json:"status" validate:"omitempty,oneof=pending applied dismissed"`
}

type CreateBillRequest struct {
	ConnectionID  *uuid.UUID        `json:"connection_id"`
	PeriodStart   time.Time         `json:"period_start" validate:"required"`
	PeriodEnd     time.Time         `json:"period_end" validate:"required"`
	UnitsConsumed float64           `json:"units_consumed" validate:"gte=0"`
	Amount        float64           `json:"amount" validate:"gte=0"`
	DueDate       *time.Time        `json:"due_date"`
	Status        entity.BillStatus `json:"status" validate:"omitempty,oneof=pending paid overdue"`
}

type UpdateBillRequest struct {
	UnitsConsumed *float64           `json:"units_consumed" validate:"omitempty,gte=0"`
	Amount        *float64           `json:"amount" validate:"omitempty,gte=0"`
	DueDate       *time.Time         `json:"due_date"`
	Status        *entity.BillStatus `json:"status" validate:"omitempty,oneof=pending paid overdue"`
}

// --- Goals ---

func (h *InsightHandler) ListGoals(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	goals, err := h.goalUC.ListGoals(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapViews(goals, toGoalView))
}

func (h *InsightHandler) CreateGoal(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateGoalRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	goal, err := h.goalUC.CreateGoal(c.Request().Context(), userID, &usecase.CreateGoalInput{
		Title:        req.Title,
		GoalType:     req.GoalType,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Unit:         req.Unit,
		Period:       req.Period,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toGoalView(goal))
}

func (h *InsightHandler) UpdateGoal(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	goalID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateGoalRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	goal, err := h.goalUC.UpdateGoal(c.Request().Context(), userID, goalID, &usecase.UpdateGoalInput{
		Title:        req.Title,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Unit:         req.Unit,
		Period:       req.Period,
		EndDate:      req.EndDate,
		Status:       req.Status,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toGoalView(goal))
}

func (h *InsightHandler) DeleteGoal(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	goalID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.goalUC.DeleteGoal(c.Request().Context(), userID, goalID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Goal deleted")
}

// --- Alerts ---

func (h *InsightHandler) ListAlerts(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	alerts, err := h.alertUC.ListAlerts(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapViews(alerts, toAlertView))
}

func (h *InsightHandler) CreateAlert(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateAlertRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	alert, err := h.alertUC.CreateAlert(c.Request().Context(), userID, &usecase.CreateAlertInput{
		AlertType: req.AlertType,
		Severity:  req.Severity,
		Title:     req.Title,
		Message:   req.Message,
		DeviceID:  req.DeviceID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAlertView(alert))
}

func (h *InsightHandler) MarkAlertRead(c echo.Context) error {
	return h.alertTransition(c, h.alertUC.MarkAlertRead)
}

func (h *InsightHandler) ResolveAlert(c echo.Context) error {
	return h.alertTransition(c, h.alertUC.ResolveAlert)
}

func (h *InsightHandler) alertTransition(c echo.Context, apply func(ctx context.Context, userID, alertID uuid.UUID) (*entity.EnergyAlert, error)) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	alertID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	alert, err := apply(c.Request().Context(), userID, alertID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAlertView(alert))
}

func (h *InsightHandler) DeleteAlert(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	alertID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.alertUC.DeleteAlert(c.Request().Context(), userID, alertID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Alert deleted")
}

// --- Recommendations ---

// ListRecommendations returns the user's rows, or demo rows tagged
// source=fixture when there are none.
func (h *InsightHandler) ListRecommendations(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	list, err := h.recommendationUC.ListRecommendations(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &RecommendationListView{
		Items:  mapViews(list.Items, toRecommendationView),
		Source: list.Source,
	})
}

func (h *InsightHandler) CreateRecommendation(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateRecommendationRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	rec, err := h.recommendationUC.CreateRecommendation(c.Request().Context(), userID, &usecase.CreateRecommendationInput{
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		Priority:         req.Priority,
		PotentialSavings: req.PotentialSavings,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toRecommendationView(rec))
}

func (h *InsightHandler) UpdateRecommendation(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	recID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateRecommendationRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	rec, err := h.recommendationUC.UpdateRecommendation(c.Request().Context(), userID, recID, &usecase.UpdateRecommendationInput{
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		Priority:         req.Priority,
		PotentialSavings: req.PotentialSavings,
		Status:           req.Status,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRecommendationView(rec))
}

func (h *InsightHandler) DeleteRecommendation(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	recID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.recommendationUC.DeleteRecommendation(c.Request().Context(), userID, recID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Recommendation deleted")
}

// --- Billing ---

func (h *InsightHandler) ListBills(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	bills, err := h.billingUC.ListBills(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapViews(bills, toBillView))
}

func (h *InsightHandler) CreateBill(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateBillRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	bill, err := h.billingUC.CreateBill(c.Request().Context(), userID, &usecase.CreateBillInput{
		ConnectionID:  req.ConnectionID,
		PeriodStart:   req.PeriodStart,
		PeriodEnd:     req.PeriodEnd,
		UnitsConsumed: req.UnitsConsumed,
		Amount:        req.Amount,
		DueDate:       req.DueDate,
		Status:        req.Status,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toBillView(bill))
}

func (h *InsightHandler) UpdateBill(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	billID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateBillRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	bill, err := h.billingUC.UpdateBill(c.Request().Context(), userID, billID, &usecase.UpdateBillInput{
		UnitsConsumed: req.UnitsConsumed,
		Amount:        req.Amount,
		DueDate:       req.DueDate,
		Status:        req.Status,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBillView(bill))
}

func (h *InsightHandler) DeleteBill(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	billID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.billingUC.DeleteBill(c.Request().Context(), userID, billID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Bill deleted")
}
