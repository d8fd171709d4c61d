package handler

import (
	"log/slog"
	"net/http"

	"urjabandhu/internal/delivery/api/response"
	"urjabandhu/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
	Logger      *slog.Logger
}

// AnalyticsHandler serves the dashboard charts. Every payload carries its
// source so clients can badge demo data.
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
	logger      *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler.
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC: params.AnalyticsUC,
		logger:      params.Logger,
	}
}

// TimeSeries handles GET /api/v1/analytics/timeseries?range=7d.
func (h *AnalyticsHandler) TimeSeries(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	r, err := queryRange(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	series, err := h.analyticsUC.TimeSeries(c.Request().Context(), userID, r)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, series)
}

func (h *AnalyticsHandler) HourlyPattern(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	pattern, err := h.analyticsUC.HourlyPattern(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pattern)
}

// Predictions handles GET /api/v1/analytics/predictions?days=7.
func (h *AnalyticsHandler) Predictions(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	days, err := queryInt(c, "days", 0)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	set, err := h.analyticsUC.Predictions(c.Request().Context(), userID, days)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, set)
}

// Summary handles GET /api/v1/analytics/summary?range=30d.
func (h *AnalyticsHandler) Summary(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	r, err := queryRange(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.analyticsUC.Summary(c.Request().Context(), userID, r)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}
