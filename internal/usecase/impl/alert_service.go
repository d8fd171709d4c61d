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

const alertsActionURL = "/alerts"

type alertService struct {
	repo          repository.AlertRepository
	notifier      service.AlertNotifier
	notifications usecase.NotificationUsecase
	logger        *slog.Logger
}

// AlertServiceParams holds dependencies for AlertService.
type AlertServiceParams struct {
	fx.In

	AlertRepo     repository.AlertRepository
	AlertNotifier service.AlertNotifier
	Notifications usecase.NotificationUsecase
	Logger        *slog.Logger
}

// NewAlertService creates the energy alert service.
func NewAlertService(params AlertServiceParams) usecase.AlertUsecase {
	return &alertService{
		repo:          params.AlertRepo,
		notifier:      params.AlertNotifier,
		notifications: params.Notifications,
		logger:        params.Logger,
	}
}

func (srv *alertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *alertService) ListAlerts(ctx context.Context, userID uuid.UUID) ([]*entity.EnergyAlert, error) {
	alerts, err := srv.repo.ListAlerts(ctx, userID)
	if err != nil {
		return []*entity.EnergyAlert{}, errors.Wrap(err, "failed to list alerts")
	}

	return alerts, nil
}

// CreateAlert stores the alert and raises a user notification for it.
// High and critical alerts are also published to the alert topic. Fan-out
// failures are logged; the stored alert is still returned.
func (srv *alertService) CreateAlert(ctx context.Context, userID uuid.UUID, input *usecase.CreateAlertInput) (*entity.EnergyAlert, error) {
	alert := &entity.EnergyAlert{
		UserID:    userID,
		AlertType: input.AlertType,
		Severity:  input.Severity,
		Title:     input.Title,
		Message:   input.Message,
		DeviceID:  input.DeviceID,
	}
	if alert.Severity == "" {
		alert.Severity = entity.AlertSeverityMedium
	}
	if !alert.Severity.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown severity %q", alert.Severity)
	}
	if alert.Title == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "alert title is required")
	}

	if err := srv.repo.CreateAlert(ctx, alert); err != nil {
		return nil, errors.Wrap(err, "failed to create alert")
	}

	if alert.Severity.IsUrgent() {
		if err := srv.notifier.PublishAlert(ctx, alert); err != nil {
			srv.log(ctx).Warn("Failed to publish urgent alert", slog.Any("alertID", alert.ID), slog.Any("error", err))
		}
	}

	notificationType := entity.NotificationTypeWarning
	if alert.Severity.IsUrgent() {
		notificationType = entity.NotificationTypeAlert
	}
	_, err := srv.notifications.Notify(ctx, userID, &usecase.NotifyInput{
		Title:     alert.Title,
		Message:   alert.Message,
		Type:      notificationType,
		Category:  CategoryAlert,
		ActionURL: alertsActionURL,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create alert notification", slog.Any("alertID", alert.ID), slog.Any("error", err))
	}

	return alert, nil
}

func (srv *alertService) MarkAlertRead(ctx context.Context, userID, alertID uuid.UUID) (*entity.EnergyAlert, error) {
	return srv.update(ctx, userID, alertID, func(a *entity.EnergyAlert) { a.IsRead = true })
}

// ResolveAlert marks the alert resolved. A resolved alert is also read.
func (srv *alertService) ResolveAlert(ctx context.Context, userID, alertID uuid.UUID) (*entity.EnergyAlert, error) {
	return srv.update(ctx, userID, alertID, func(a *entity.EnergyAlert) {
		a.IsResolved = true
		a.IsRead = true
	})
}

func (srv *alertService) DeleteAlert(ctx context.Context, userID, alertID uuid.UUID) error {
	if _, err := loadOwned(ctx, srv.repo.FindAlertByID, alertOwner, userID, alertID,
		repository.ErrAlertNotFound, domainerrors.ErrAlertNotFound, true); err != nil {
		return err
	}

	if err := srv.repo.DeleteAlert(ctx, alertID); err != nil {
		return mapNotFound(err, repository.ErrAlertNotFound, domainerrors.ErrAlertNotFound, "failed to delete alert")
	}

	return nil
}

func (srv *alertService) update(ctx context.Context, userID, alertID uuid.UUID, mutate func(*entity.EnergyAlert)) (*entity.EnergyAlert, error) {
	alert, err := loadOwned(ctx, srv.repo.FindAlertByID, alertOwner, userID, alertID,
		repository.ErrAlertNotFound, domainerrors.ErrAlertNotFound, true)
	if err != nil {
		return nil, err
	}

	mutate(alert)
	if err := srv.repo.UpdateAlert(ctx, alert); err != nil {
		return nil, mapNotFound(err, repository.ErrAlertNotFound, domainerrors.ErrAlertNotFound, "failed to update alert")
	}

	return alert, nil
}

func alertOwner(a *entity.EnergyAlert) uuid.UUID { return a.UserID }
