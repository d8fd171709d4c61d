package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"urjabandhu/internal/delivery/api/response"
	"urjabandhu/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the in-app notification centre.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler.
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// ListNotifications handles GET /api/v1/notifications?unread=true.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	unreadOnly, _ := strconv.ParseBool(c.QueryParam("unread"))

	notifications, err := h.notificationUC.ListNotifications(c.Request().Context(), userID, unreadOnly)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapViews(notifications, toNotificationView))
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	notificationID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), userID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Notification marked as read")
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.notificationUC.MarkAllRead(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "All notifications marked as read")
}

func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	notificationID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.notificationUC.DeleteNotification(c.Request().Context(), userID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Notification deleted")
}
