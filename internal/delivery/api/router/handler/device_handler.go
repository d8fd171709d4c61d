package handler

import (
	"io"
	"log/slog"
	"net/http"

	"urjabandhu/internal/delivery/api/response"
	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxPhotoBytes = 5 << 20

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC     usecase.DeviceUsecase
	AutomationUC usecase.AutomationUsecase
	DetectionUC  usecase.DetectionUsecase
	Logger       *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC     usecase.DeviceUsecase
	automationUC usecase.AutomationUsecase
	detectionUC  usecase.DetectionUsecase
	logger       *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC:     params.DeviceUC,
		automationUC: params.AutomationUC,
		detectionUC:  params.DetectionUC,
		logger:       params.Logger,
	}
}

// CreateDeviceRequest mirrors the add-device form. power_rating may be text or a number.
type CreateDeviceRequest struct {
	Name            string              `json:"name" validate:"required,max=100"`
	Type            entity.DeviceType   `json:"type" validate:"omitempty,oneof=appliance lighting hvac entertainment kitchen other"`
	Brand           string              `json:"brand" validate:"max=100"`
	Model           string              `json:"model" validate:"max=100"`
	PowerRating     PowerRating         `json:"power_rating"`
	Status          entity.DeviceStatus `json:"status" validate:"omitempty,oneof=active inactive"`
	Location        string              `json:"location" validate:"max=100"`
	EfficiencyScore *int                `json:"efficiency_score" validate:"omitempty,gte=0,lte=100"`
}

type UpdateDeviceRequest struct {
	Name               *string              `json:"name" validate:"omitempty,max=100"`
	Type               *entity.DeviceType   `json:"type" validate:"omitempty,oneof=appliance lighting hvac entertainment kitchen other"`
	Brand              *string              `json:"brand"`
	Model              *string              `json:"model"`
	PowerRating        *PowerRating         `json:"power_rating"`
	Status             *entity.DeviceStatus `json:"status" validate:"omitempty,oneof=active inactive"`
	Location           *string              `json:"location"`
	EfficiencyScore    *int                 `json:"efficiency_score" validate:"omitempty,gte=0,lte=100"`
	CurrentConsumption *float64             `json:"current_consumption" validate:"omitempty,gte=0"`
}

type UpdateDeviceControlRequest struct {
	State      *entity.ControlState `json:"state" validate:"omitempty,oneof=on off"`
	PowerLevel *int                 `json:"power_level" validate:"omitempty,gte=0,lte=100"`
}

type DeviceActionRequest struct {
	Type       entity.ActionType `json:"type" validate:"required"`
	Parameters map[string]any    `json:"parameters"`
}

// ListDevices handles GET /api/v1/devices?status=&type=.
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	filter := entity.DeviceFilter{
		Status: entity.DeviceStatus(c.QueryParam("status")),
		Type:   entity.DeviceType(c.QueryParam("type")),
	}

	devices, err := h.deviceUC.ListDevices(c.Request().Context(), userID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapViews(devices, toDeviceView))
}

func (h *DeviceHandler) GetDevice(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	deviceID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	device, err := h.deviceUC.GetDevice(c.Request().Context(), userID, deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDeviceView(device))
}

func (h *DeviceHandler) CreateDevice(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateDeviceRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	device, err := h.deviceUC.CreateDevice(c.Request().Context(), userID, &usecase.CreateDeviceInput{
		Name:            req.Name,
		Type:            req.Type,
		Brand:           req.Brand,
		Model:           req.Model,
		PowerRating:     string(req.PowerRating),
		Status:          req.Status,
		Location:        req.Location,
		EfficiencyScore: req.EfficiencyScore,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toDeviceView(device))
}

func (h *DeviceHandler) UpdateDevice(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	deviceID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateDeviceRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	device, err := h.deviceUC.UpdateDevice(c.Request().Context(), userID, deviceID, &usecase.UpdateDeviceInput{
		Name:               req.Name,
		Type:               req.Type,
		Brand:              req.Brand,
		Model:              req.Model,
		PowerRating:        req.PowerRating.ptr(),
		Status:             req.Status,
		Location:           req.Location,
		EfficiencyScore:    req.EfficiencyScore,
		CurrentConsumption: req.CurrentConsumption,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDeviceView(device))
}

func (h *DeviceHandler) DeleteDevice(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	deviceID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deviceUC.DeleteDevice(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Device deleted")
}

func (h *DeviceHandler) GetDeviceControl(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	deviceID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	control, err := h.deviceUC.GetDeviceControl(c.Request().Context(), userID, deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDeviceControlView(control))
}

// UpdateDeviceControl handles PUT /api/v1/devices/:id/control.
func (h *DeviceHandler) UpdateDeviceControl(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	deviceID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateDeviceControlRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	control, err := h.deviceUC.UpdateDeviceControl(c.Request().Context(), userID, deviceID, &usecase.UpdateDeviceControlInput{
		State:      req.State,
		PowerLevel: req.PowerLevel,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDeviceControlView(control))
}

// ExecuteAction handles POST /api/v1/devices/:id/actions. The automation log
// is written whether or not the action succeeds.
func (h *DeviceHandler) ExecuteAction(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	deviceID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req DeviceActionRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	entry, err := h.automationUC.ExecuteDeviceAction(c.Request().Context(), userID, &usecase.ExecuteActionInput{
		DeviceID: deviceID,
		Action: entity.RuleAction{
			Type:       req.Type,
			DeviceID:   &deviceID,
			Parameters: req.Parameters,
		},
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAutomationLogView(entry))
}

// DetectDevice handles POST /api/v1/devices/detect with a multipart "photo".
func (h *DeviceHandler) DetectDevice(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return response.HandleAppError(c, errors.Wrap(domainerrors.ErrInvalidPhoto.WithDetails("photo file is required"), err.Error()))
	}
	if fileHeader.Size > maxPhotoBytes {
		return response.HandleAppError(c, errors.WithStack(domainerrors.ErrInvalidPhoto.WithDetails("photo exceeds 5MB")))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "open photo")
	}
	defer file.Close()

	photo, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes+1))
	if err != nil {
		return errors.Wrap(err, "read photo")
	}

	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if contentType == "" || contentType == echo.MIMEOctetStream {
		contentType = http.DetectContentType(photo)
	}

	result, err := h.detectionUC.DetectDevice(c.Request().Context(), userID, &usecase.DetectDeviceInput{
		Photo:       photo,
		ContentType: contentType,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
