package handler

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"urjabandhu/internal/delivery/api/response"
	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ConsumptionHandlerParams holds dependencies for ConsumptionHandler, injected by Fx.
type ConsumptionHandlerParams struct {
	fx.In

	ConsumptionUC usecase.ConsumptionUsecase
	Logger        *slog.Logger
}

// ConsumptionHandler serves raw consumption records and the CSV export.
type ConsumptionHandler struct {
	consumptionUC usecase.ConsumptionUsecase
	logger        *slog.Logger
	now           func() time.Time
}

// NewConsumptionHandler is the constructor for ConsumptionHandler.
func NewConsumptionHandler(params ConsumptionHandlerParams) *ConsumptionHandler {
	return &ConsumptionHandler{
		consumptionUC: params.ConsumptionUC,
		logger:        params.Logger,
		now:           time.Now,
	}
}

type RecordConsumptionRequest struct {
	DeviceID       *uuid.UUID `json:"device_id"`
	RecordedAt     time.Time  `json:"recorded_at"`
	ConsumptionKWh float64    `json:"consumption_kwh" validate:"gte=0"`
	Cost           *float64   `json:"cost" validate:"omitempty,gte=0"`
	PeakDemandKW   float64    `json:"peak_demand_kw" validate:"gte=0"`
}

// ListConsumption handles GET /api/v1/consumption?from=&to=&device_id=&limit=.
func (h *ConsumptionHandler) ListConsumption(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var filter entity.ConsumptionFilter
	if filter.From, err = queryTime(c, "from"); err != nil {
		return response.HandleAppError(c, err)
	}
	if filter.To, err = queryTime(c, "to"); err != nil {
		return response.HandleAppError(c, err)
	}
	if filter.Limit, err = queryInt(c, "limit", 0); err != nil {
		return response.HandleAppError(c, err)
	}
	if raw := c.QueryParam("device_id"); raw != "" {
		deviceID, err := uuid.Parse(raw)
		if err != nil {
			return response.HandleAppError(c, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("invalid device_id"), raw))
		}
		filter.DeviceID = &deviceID
	}

	records, err := h.consumptionUC.ListConsumption(c.Request().Context(), userID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapViews(records, toConsumptionView))
}

func (h *ConsumptionHandler) RecordConsumption(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RecordConsumptionRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	record, err := h.consumptionUC.RecordConsumption(c.Request().Context(), userID, &usecase.RecordConsumptionInput{
		DeviceID:       req.DeviceID,
		RecordedAt:     req.RecordedAt,
		ConsumptionKWh: req.ConsumptionKWh,
		Cost:           req.Cost,
		PeakDemandKW:   req.PeakDemandKW,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toConsumptionView(record))
}

// ExportCSV handles GET /api/v1/consumption/export?range=7d as a download.
func (h *ConsumptionHandler) ExportCSV(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	r, err := queryRange(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	filename := fmt.Sprintf("energy-consumption-%s-%s.csv", r, h.now().Format(time.DateOnly))

	// Buffered so a failure still gets a JSON error response.
	var buf bytes.Buffer
	if err := h.consumptionUC.ExportConsumptionCSV(c.Request().Context(), userID, r, &buf); err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
