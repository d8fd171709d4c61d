package impl

import (
	"context"
	"testing"

	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/repository"
	mockRepo "urjabandhu/internal/mocks/repository"
	mockSvc "urjabandhu/internal/mocks/service"
	mockUsecase "urjabandhu/internal/mocks/usecase"
	"urjabandhu/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type alertServiceFixtures struct {
	service       usecase.AlertUsecase
	repo          *mockRepo.MockAlertRepository
	notifier      *mockSvc.MockAlertNotifier
	notifications *mockUsecase.MockNotificationUsecase
}

func createTestAlertService(t *testing.T) alertServiceFixtures {
	repo := mockRepo.NewMockAlertRepository(t)
	notifier := mockSvc.NewMockAlertNotifier(t)
	notifications := mockUsecase.NewMockNotificationUsecase(t)

	service := NewAlertService(AlertServiceParams{
		AlertRepo:     repo,
		AlertNotifier: notifier,
		Notifications: notifications,
		Logger:        newDiscardLogger(),
	})

	return alertServiceFixtures{
		service:       service,
		repo:          repo,
		notifier:      notifier,
		notifications: notifications,
	}
}

func TestAlertService_CreateAlert_UrgentFansOut(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.repo.EXPECT().CreateAlert(ctx, mock.AnythingOfType("*entity.EnergyAlert")).Return(nil)
	fx.notifier.EXPECT().
		PublishAlert(ctx, mock.MatchedBy(func(a *entity.EnergyAlert) bool { return a.Severity == entity.AlertSeverityCritical })).
		Return(nil)
	fx.notifications.EXPECT().
		Notify(ctx, userID, mock.MatchedBy(func(in *usecase.NotifyInput) bool {
			return in.Type == entity.NotificationTypeAlert && in.Category == CategoryAlert && in.ActionURL == "/alerts"
		})).
		Return(&entity.UserNotification{}, nil)

	alert, err := fx.service.CreateAlert(ctx, userID, &usecase.CreateAlertInput{
		AlertType: "spike",
		Severity:  entity.AlertSeverityCritical,
		Title:     "Consumption spike",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, alert.UserID)
}

func TestAlertService_CreateAlert_LowSeverityStaysLocal(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.repo.EXPECT().CreateAlert(ctx, mock.Anything).Return(nil)
	fx.notifications.EXPECT().
		Notify(ctx, userID, mock.MatchedBy(func(in *usecase.NotifyInput) bool { return in.Type == entity.NotificationTypeWarning })).
		Return(&entity.UserNotification{}, nil)

	alert, err := fx.service.CreateAlert(ctx, userID, &usecase.CreateAlertInput{Title: "Standby drain"})

	require.NoError(t, err)
	assert.Equal(t, entity.AlertSeverityMedium, alert.Severity)
}

func TestAlertService_CreateAlert_FanOutFailuresAreLogged(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.repo.EXPECT().CreateAlert(ctx, mock.Anything).Return(nil)
	fx.notifier.EXPECT().PublishAlert(ctx, mock.Anything).Return(errors.New("sns throttled"))
	fx.notifications.EXPECT().Notify(ctx, userID, mock.Anything).Return(nil, errors.New("db error"))

	alert, err := fx.service.CreateAlert(ctx, userID, &usecase.CreateAlertInput{
		Severity: entity.AlertSeverityHigh,
		Title:    "Overload",
	})

	require.NoError(t, err)
	assert.NotNil(t, alert)
}

func TestAlertService_CreateAlert_UnknownSeverity(t *testing.T) {
	fx := createTestAlertService(t)

	_, err := fx.service.CreateAlert(context.Background(), uuid.New(), &usecase.CreateAlertInput{
		Severity: "apocalyptic",
		Title:    "Overload",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAlertService_ResolveAlert_AlsoMarksRead(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	userID := uuid.New()
	alert := &entity.EnergyAlert{ID: uuid.New(), UserID: userID}

	fx.repo.EXPECT().FindAlertByID(ctx, alert.ID).Return(alert, nil)
	fx.repo.EXPECT().UpdateAlert(ctx, alert).Return(nil)

	resolved, err := fx.service.ResolveAlert(ctx, userID, alert.ID)

	require.NoError(t, err)
	assert.True(t, resolved.IsResolved)
	assert.True(t, resolved.IsRead)
}

func TestAlertService_MarkAlertRead_Missing(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	alertID := uuid.New()
	fx.repo.EXPECT().FindAlertByID(ctx, alertID).Return(nil, repository.ErrAlertNotFound)

	_, err := fx.service.MarkAlertRead(ctx, uuid.New(), alertID)

	assert.ErrorIs(t, err, domainerrors.ErrAlertNotFound)
}

func TestAlertService_DeleteAlert_ForeignIsForbidden(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	alertID := uuid.New()
	fx.repo.EXPECT().FindAlertByID(ctx, alertID).Return(&entity.EnergyAlert{ID: alertID, UserID: uuid.New()}, nil)

	err := fx.service.DeleteAlert(ctx, uuid.New(), alertID)

	assert.ErrorIs(t, err, domainerrors.ErrRecordOwnershipViolation)
}

func TestAlertService_ListAlerts_ErrorReturnsEmptySlice(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.repo.EXPECT().ListAlerts(ctx, userID).Return(nil, errors.New("db error"))

	alerts, err := fx.service.ListAlerts(ctx, userID)

	require.Error(t, err)
	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
}
