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

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the settings screen.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest is a partial update; omitted fields are unchanged.
type UpdateProfileRequest struct {
	FullName   *string       `json:"full_name" validate:"omitempty,max=100"`
	Phone      *string       `json:"phone" validate:"omitempty,max=20"`
	Address    *string       `json:"address"`
	City       *string       `json:"city"`
	State      *string       `json:"state"`
	Pincode    *string       `json:"pincode" validate:"omitempty,max=10"`
	EnergyRate *float64      `json:"energy_rate" validate:"omitempty,gte=0"`
	Currency   *string       `json:"currency" validate:"omitempty,len=3"`
	Theme      *entity.Theme `json:"theme" validate:"omitempty,oneof=light dark system"`
	Language   *string       `json:"language" validate:"omitempty,max=10"`
	PushToken  *string       `json:"push_token"`
}

// GetProfile handles GET /api/v1/profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileView(profile))
}

// UpdateProfile handles PUT /api/v1/profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProfileRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		FullName:   req.FullName,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		Pincode:    req.Pincode,
		EnergyRate: req.EnergyRate,
		Currency:   req.Currency,
		Theme:      req.Theme,
		Language:   req.Language,
		PushToken:  req.PushToken,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileView(profile))
}

// UpdateNotificationPreferences handles PUT /api/v1/profile/notifications.
// The body replaces all switches.
func (h *ProfileHandler) UpdateNotificationPreferences(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var prefs entity.NotificationPreferences
	if err := bindRequest(c, &prefs); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.profileUC.UpdateNotificationPreferences(c.Request().Context(), userID, prefs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileView(profile))
}
