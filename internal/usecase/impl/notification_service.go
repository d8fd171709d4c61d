package impl

import (
	"context"
	"log/slog"

	deliverycontext "urjabandhu/internal/delivery/context"
	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/repository"
	"urjabandhu/internal/domain/service"
	"urjabandhu/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Notification categories with a matching preference switch.
const (
	CategoryAlert      = "alert"
	CategoryBilling    = "billing"
	CategoryAutomation = "automation"
)

type notificationService struct {
	repo        repository.NotificationRepository
	profileRepo repository.ProfileRepository
	push        service.NotificationService
	logger      *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo    repository.NotificationRepository
	ProfileRepo         repository.ProfileRepository
	NotificationService service.NotificationService
	Logger              *slog.Logger
}

// NewNotificationService creates the user notification service.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		repo:        params.NotificationRepo,
		profileRepo: params.ProfileRepo,
		push:        params.NotificationService,
		logger:      params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*entity.UserNotification, error) {
	notifications, err := srv.repo.ListNotifications(ctx, userID, unreadOnly)
	if err != nil {
		return []*entity.UserNotification{}, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

func (srv *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := srv.checkOwner(ctx, userID, notificationID); err != nil {
		return err
	}

	if err := srv.repo.MarkRead(ctx, notificationID); err != nil {
		return mapNotificationError(err, "failed to mark notification read")
	}

	return nil
}

func (srv *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := srv.repo.MarkAllRead(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to mark notifications read")
	}

	return nil
}

func (srv *notificationService) DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := srv.checkOwner(ctx, userID, notificationID); err != nil {
		return err
	}

	if err := srv.repo.DeleteNotification(ctx, notificationID); err != nil {
		return mapNotificationError(err, "failed to delete notification")
	}

	return nil
}

// Notify persists the notification, then pushes it when the profile has a
// token and the user allows push for the category.
func (srv *notificationService) Notify(ctx context.Context, userID uuid.UUID, input *usecase.NotifyInput) (*entity.UserNotification, error) {
	notification := &entity.UserNotification{
		UserID:    userID,
		Title:     input.Title,
		Message:   input.Message,
		Type:      input.Type,
		Category:  input.Category,
		ActionURL: input.ActionURL,
	}
	if notification.Type == "" {
		notification.Type = entity.NotificationTypeInfo
	}
	if !notification.Type.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown notification type %q", notification.Type)
	}
	if notification.Title == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "notification title is required")
	}

	if err := srv.repo.CreateNotification(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}

	srv.pushNotification(ctx, notification)

	return notification, nil
}

func (srv *notificationService) pushNotification(ctx context.Context, n *entity.UserNotification) {
	profile, err := srv.profileRepo.FindByUserID(ctx, n.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			srv.log(ctx).Warn("Failed to load profile for push", slog.Any("userID", n.UserID), slog.Any("error", err))
		}

		return
	}
	if !profile.WantsPush() || !allowsCategory(profile.NotificationPreferences, n.Category) {
		return
	}

	data := map[string]string{
		"notification_id": n.ID.String(),
		"type":            string(n.Type),
		"category":        n.Category,
	}
	if n.ActionURL != "" {
		data["action_url"] = n.ActionURL
	}

	err = srv.push.SendSingleNotification(ctx, profile.PushToken, n.Title, n.Message, data)
	switch {
	case err == nil:
		srv.log(ctx).Debug("Push notification sent", slog.Any("notificationID", n.ID))
	case errors.Is(err, service.ErrInvalidPushToken):
		srv.log(ctx).Info("Clearing invalid push token", slog.Any("userID", n.UserID))
		profile.PushToken = ""
		if err := srv.profileRepo.Update(ctx, profile); err != nil {
			srv.log(ctx).Warn("Failed to clear push token", slog.Any("userID", n.UserID), slog.Any("error", err))
		}
	default:
		srv.log(ctx).Warn("Push notification failed", slog.Any("notificationID", n.ID), slog.Any("error", err))
	}
}

func (srv *notificationService) checkOwner(ctx context.Context, userID, notificationID uuid.UUID) error {
	n, err := srv.repo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		return mapNotificationError(err, "failed to find notification")
	}
	if n.UserID != userID {
		return errors.Wrap(domainerrors.ErrRecordOwnershipViolation, notificationID.String())
	}

	return nil
}

// allowsCategory applies the per-topic preference switches. Categories
// without a switch are always allowed.
func allowsCategory(prefs entity.NotificationPreferences, category string) bool {
	switch category {
	case CategoryAlert:
		return prefs.EnergyAlerts
	case CategoryBilling:
		return prefs.BillReminders
	case CategoryAutomation:
		return prefs.AutomationUpdates
	default:
		return true
	}
}

func mapNotificationError(err error, msg string) error {
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return errors.Wrap(domainerrors.ErrNotificationNotFound, msg)
	}

	return errors.Wrap(err, msg)
}
