package handler

import (
	"log/slog"
	"net/http"

	"urjabandhu/internal/delivery/api/response"
	"urjabandhu/internal/domain/entity"
	"urjabandhu/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ConnectionHandlerParams holds dependencies for ConnectionHandler, injected by Fx.
type ConnectionHandlerParams struct {
	fx.In

	ConnectionUC usecase.ConnectionUsecase
	Logger       *slog.Logger
}

// ConnectionHandler serves consumer connection endpoints.
type ConnectionHandler struct {
	connectionUC usecase.ConnectionUsecase
	logger       *slog.Logger
}

// NewConnectionHandler is the constructor for ConnectionHandler.
func NewConnectionHandler(params ConnectionHandlerParams) *ConnectionHandler {
	return &ConnectionHandler{
		connectionUC: params.ConnectionUC,
		logger:       params.Logger,
	}
}

type CreateConnectionRequest struct {
	ConsumerNumber   string                `json:"consumer_number" validate:"required,max=50"`
	MeterNumber      string                `json:"meter_number" validate:"max=50"`
	ElectricityBoard string                `json:"electricity_board" validate:"required,max=100"`
	ConnectionType   entity.ConnectionType `json:"connection_type" validate:"omitempty,oneof=domestic commercial industrial"`
	PhaseType        entity.PhaseType      `json:"phase_type" validate:"omitempty,oneof=single three"`
	SanctionedLoadKW float64               `json:"sanctioned_load_kw" validate:"gte=0"`
	Address          string                `json:"address"`
	IsPrimary        bool                  `json:"is_primary"`
}

type UpdateConnectionRequest struct {
	ConsumerNumber   *string                `json:"consumer_number" validate:"omitempty,max=50"`
	MeterNumber      *string                `json:"meter_number" validate:"omitempty,max=50"`
	ElectricityBoard *string                `json:"electricity_board" validate:"omitempty,max=100"`
	ConnectionType   *entity.ConnectionType `json:"connection_type" validate:"omitempty,oneof=domestic commercial industrial"`
	PhaseType        *entity.PhaseType      `json:"phase_type" validate:"omitempty,oneof=single three"`
	SanctionedLoadKW *float64               `json:"sanctioned_load_kw" validate:"omitempty,gte=0"`
	Address          *string                `json:"address"`
}

func (h *ConnectionHandler) ListConnections(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	connections, err := h.connectionUC.ListConnections(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapViews(connections, toConnectionView))
}

// CreateConnection handles POST /api/v1/connections. The first connection
// becomes primary regardless of is_primary.
func (h *ConnectionHandler) CreateConnection(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateConnectionRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	conn, err := h.connectionUC.CreateConnection(c.Request().Context(), userID, &usecase.CreateConnectionInput{
		ConsumerNumber:   req.ConsumerNumber,
		MeterNumber:      req.MeterNumber,
		ElectricityBoard: req.ElectricityBoard,
		ConnectionType:   req.ConnectionType,
		PhaseType:        req.PhaseType,
		SanctionedLoadKW: req.SanctionedLoadKW,
		Address:          req.Address,
		IsPrimary:        req.IsPrimary,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toConnectionView(conn))
}

func (h *ConnectionHandler) UpdateConnection(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	connectionID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateConnectionRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	conn, err := h.connectionUC.UpdateConnection(c.Request().Context(), userID, connectionID, &usecase.UpdateConnectionInput{
		ConsumerNumber:   req.ConsumerNumber,
		MeterNumber:      req.MeterNumber,
		ElectricityBoard: req.ElectricityBoard,
		ConnectionType:   req.ConnectionType,
		PhaseType:        req.PhaseType,
		SanctionedLoadKW: req.SanctionedLoadKW,
		Address:          req.Address,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toConnectionView(conn))
}

func (h *ConnectionHandler) DeleteConnection(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	connectionID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.connectionUC.DeleteConnection(c.Request().Context(), userID, connectionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Connection deleted")
}

func (h *ConnectionHandler) SetPrimaryConnection(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	connectionID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.connectionUC.SetPrimaryConnection(c.Request().Context(), userID, connectionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Primary connection updated")
}

// ConnectionQRCode handles GET /api/v1/connections/:id/qrcode and returns a PNG.
func (h *ConnectionHandler) ConnectionQRCode(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	connectionID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.connectionUC.ConnectionQRCode(c.Request().Context(), userID, connectionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "private, max-age=300")

	return c.Blob(http.StatusOK, "image/png", png)
}
