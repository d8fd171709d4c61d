package impl

import (
	"context"
	"testing"

	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/repository"
	"urjabandhu/internal/domain/service"
	mockRepo "urjabandhu/internal/mocks/repository"
	mockSvc "urjabandhu/internal/mocks/service"
	"urjabandhu/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service     usecase.NotificationUsecase
	repo        *mockRepo.MockNotificationRepository
	profileRepo *mockRepo.MockProfileRepository
	push        *mockSvc.MockNotificationService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	repo := mockRepo.NewMockNotificationRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	push := mockSvc.NewMockNotificationService(t)

	service := NewNotificationService(NotificationServiceParams{
		NotificationRepo:    repo,
		ProfileRepo:         profileRepo,
		NotificationService: push,
		Logger:              newDiscardLogger(),
	})

	return notificationServiceFixtures{
		service:     service,
		repo:        repo,
		profileRepo: profileRepo,
		push:        push,
	}
}

func pushProfile(userID uuid.UUID) *entity.Profile {
	return &entity.Profile{
		UserID:                  userID,
		PushToken:               "fcm-token",
		NotificationPreferences: entity.DefaultNotificationPreferences(),
	}
}

func TestNotificationService_Notify_PushesWhenAllowed(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	fx.repo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.UserNotification")).
		Run(func(_ context.Context, n *entity.UserNotification) { n.ID = notificationID }).
		Return(nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(pushProfile(userID), nil)
	fx.push.EXPECT().
		SendSingleNotification(ctx, "fcm-token", "Spike detected", "AC drew 3 kW", mock.MatchedBy(func(data map[string]string) bool {
			return data["notification_id"] == notificationID.String() && data["category"] == CategoryAlert
		})).
		Return(nil)

	n, err := fx.service.Notify(ctx, userID, &usecase.NotifyInput{
		Title:    "Spike detected",
		Message:  "AC drew 3 kW",
		Type:     entity.NotificationTypeAlert,
		Category: CategoryAlert,
	})

	require.NoError(t, err)
	assert.Equal(t, notificationID, n.ID)
}

func TestNotificationService_Notify_CategoryDisabled(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := pushProfile(userID)
	profile.NotificationPreferences.BillReminders = false

	fx.repo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)

	n, err := fx.service.Notify(ctx, userID, &usecase.NotifyInput{Title: "Bill due", Category: CategoryBilling})

	require.NoError(t, err)
	assert.Equal(t, entity.NotificationTypeInfo, n.Type)
}

func TestNotificationService_Notify_NoProfileSkipsPush(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.repo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.Notify(ctx, userID, &usecase.NotifyInput{Title: "Hello"})

	require.NoError(t, err)
}

func TestNotificationService_Notify_InvalidTokenIsCleared(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.repo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(pushProfile(userID), nil)
	fx.push.EXPECT().
		SendSingleNotification(ctx, "fcm-token", "Hello", "", mock.Anything).
		Return(errors.Wrap(service.ErrInvalidPushToken, "unregistered"))
	fx.profileRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(p *entity.Profile) bool { return p.PushToken == "" })).
		Return(nil)

	_, err := fx.service.Notify(ctx, userID, &usecase.NotifyInput{Title: "Hello"})

	require.NoError(t, err)
}

func TestNotificationService_Notify_PushFailureIsNotReturned(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.repo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(pushProfile(userID), nil)
	fx.push.EXPECT().SendSingleNotification(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("fcm unavailable"))

	_, err := fx.service.Notify(ctx, userID, &usecase.NotifyInput{Title: "Hello"})

	require.NoError(t, err)
}

func TestNotificationService_Notify_RejectsUnknownType(t *testing.T) {
	fx := createTestNotificationService(t)

	_, err := fx.service.Notify(context.Background(), uuid.New(), &usecase.NotifyInput{Title: "Hello", Type: "shout"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNotificationService_MarkRead_ForeignNotification(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	notificationID := uuid.New()
	fx.repo.EXPECT().FindNotificationByID(ctx, notificationID).
		Return(&entity.UserNotification{ID: notificationID, UserID: uuid.New()}, nil)

	err := fx.service.MarkRead(ctx, uuid.New(), notificationID)

	assert.ErrorIs(t, err, domainerrors.ErrRecordOwnershipViolation)
}

func TestNotificationService_DeleteNotification_NotFound(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	notificationID := uuid.New()
	fx.repo.EXPECT().FindNotificationByID(ctx, notificationID).Return(nil, repository.ErrNotificationNotFound)

	err := fx.service.DeleteNotification(ctx, uuid.New(), notificationID)

	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_ListNotifications_ErrorReturnsEmptySlice(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.repo.EXPECT().ListNotifications(ctx, userID, true).Return(nil, errors.New("db error"))

	notifications, err := fx.service.ListNotifications(ctx, userID, true)

	require.Error(t, err)
	assert.NotNil(t, notifications)
}
