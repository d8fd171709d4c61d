package handler

import (
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

const (
	defaultLogLimit = 50
	maxLogLimit     = 200
)

// AutomationHandlerParams holds dependencies for AutomationHandler, injected by Fx.
type AutomationHandlerParams struct {
	fx.In

	AutomationUC usecase.AutomationUsecase
	Logger       *slog.Logger
}

// AutomationHandler serves rules, schedules and the automation log.
type AutomationHandler struct {
	automationUC usecase.AutomationUsecase
	logger       *slog.Logger
}

// NewAutomationHandler is the constructor for AutomationHandler.
func NewAutomationHandler(params AutomationHandlerParams) *AutomationHandler {
	return &AutomationHandler{
		automationUC: params.AutomationUC,
		logger:       params.Logger,
	}
}

type RuleRequest struct {
	Name        string                 `json:"name" validate:"required,max=100"`
	Description string                 `json:"description"`
	Conditions  []entity.RuleCondition `json:"conditions"`
	Actions     []entity.RuleAction    `json:"actions" validate:"required,min=1,dive"`
	IsEnabled   *bool                  `json:"is_enabled"`
	Priority    int                    `json:"priority" validate:"gte=0"`
	TimeStart   string                 `json:"time_start" validate:"clock"`
	TimeEnd     string                 `json:"time_end" validate:"clock"`
	DaysOfWeek  []int                  `json:"days_of_week" validate:"dive,gte=0,lte=6"`
}

func (r *RuleRequest) input() *usecase.RuleInput {
	enabled := true
	if r.IsEnabled != nil {
		enabled = *r.IsEnabled
	}

	return &usecase.RuleInput{
		Name:        r.Name,
		Description: r.Description,
		Conditions:  r.Conditions,
		Actions:     r.Actions,
		IsEnabled:   enabled,
		Priority:    r.Priority,
		TimeStart:   r.TimeStart,
		TimeEnd:     r.TimeEnd,
		DaysOfWeek:  r.DaysOfWeek,
	}
}

type ScheduleRequest struct {
	DeviceID      uuid.UUID             `json:"device_id" validate:"required"`
	Name          string                `json:"name" validate:"required,max=100"`
	Action        entity.ScheduleAction `json:"action" validate:"required,oneof=turn_on turn_off set_power"`
	PowerLevel    *int                  `json:"power_level" validate:"omitempty,gte=0,lte=100"`
	ScheduleType  entity.ScheduleType   `json:"schedule_type" validate:"required,oneof=once daily weekly"`
	ScheduledTime string                `json:"scheduled_time" validate:"required,clock"`
	DaysOfWeek    []int                 `json:"days_of_week" validate:"dive,gte=0,lte=6"`
	RunAt         *time.Time            `json:"run_at"`
	IsEnabled     *bool                 `json:"is_enabled"`
}

func (r *ScheduleRequest) input() *usecase.ScheduleInput {
	enabled := true
	if r.IsEnabled != nil {
		enabled = *r.IsEnabled
	}

	return &usecase.ScheduleInput{
		DeviceID:      r.DeviceID,
		Name:          r.Name,
		Action:        r.Action,
		PowerLevel:    r.PowerLevel,
		ScheduleType:  r.ScheduleType,
		ScheduledTime: r.ScheduledTime,
		DaysOfWeek:    r.DaysOfWeek,
		RunAt:         r.RunAt,
		IsEnabled:     enabled,
	}
}

// TriggerRuleResponse lists the events queued for a manual rule run.
type TriggerRuleResponse struct {
	Rule     *RuleView `json:"rule"`
	EventIDs []string  `json:"event_ids"`
}

// --- Rules ---

func (h *AutomationHandler) ListRules(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	rules, err := h.automationUC.ListRules(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapViews(rules, toRuleView))
}

func (h *AutomationHandler) CreateRule(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RuleRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	rule, err := h.automationUC.CreateRule(c.Request().Context(), userID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toRuleView(rule))
}

func (h *AutomationHandler) UpdateRule(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	ruleID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RuleRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	rule, err := h.automationUC.UpdateRule(c.Request().Context(), userID, ruleID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRuleView(rule))
}

func (h *AutomationHandler) DeleteRule(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	ruleID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.automationUC.DeleteRule(c.Request().Context(), userID, ruleID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Rule deleted")
}

func (h *AutomationHandler) ToggleRule(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	ruleID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	rule, err := h.automationUC.ToggleRule(c.Request().Context(), userID, ruleID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRuleView(rule))
}

// TriggerRule queues the rule's actions for the worker and answers 202.
func (h *AutomationHandler) TriggerRule(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	ruleID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.automationUC.TriggerRule(c.Request().Context(), userID, ruleID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, &TriggerRuleResponse{
		Rule:     toRuleView(out.Rule),
		EventIDs: nonNil(out.EventIDs),
	})
}

// --- Schedules ---

func (h *AutomationHandler) ListSchedules(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	schedules, err := h.automationUC.ListSchedules(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapViews(schedules, toScheduleView))
}

func (h *AutomationHandler) CreateSchedule(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ScheduleRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	schedule, err := h.automationUC.CreateSchedule(c.Request().Context(), userID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toScheduleView(schedule))
}

func (h *AutomationHandler) UpdateSchedule(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	scheduleID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ScheduleRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	schedule, err := h.automationUC.UpdateSchedule(c.Request().Context(), userID, scheduleID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toScheduleView(schedule))
}

func (h *AutomationHandler) DeleteSchedule(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	scheduleID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.automationUC.DeleteSchedule(c.Request().Context(), userID, scheduleID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Schedule deleted")
}

// ListLogs handles GET /api/v1/automation/logs?limit=, newest first.
func (h *AutomationHandler) ListLogs(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	limit, err := queryInt(c, "limit", defaultLogLimit)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	limit = max(1, min(limit, maxLogLimit))

	logs, err := h.automationUC.ListLogs(c.Request().Context(), userID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapViews(logs, toAutomationLogView))
}
