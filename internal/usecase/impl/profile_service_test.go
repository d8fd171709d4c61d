package impl

import (
	"context"
	"testing"

	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/repository"
	mockRepo "urjabandhu/internal/mocks/repository"
	"urjabandhu/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	repo      *mockRepo.MockProfileRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repo := mockRepo.NewMockProfileRepository(t)

	service := NewProfileService(ProfileServiceParams{
		TxManager:   txManager,
		ProfileRepo: repo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return profileServiceFixtures{service: service, txManager: txManager, repo: repo}
}

func TestProfileService_GetProfile_Existing(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.repo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Profile{UserID: userID, City: "Pune"}, nil)

	profile, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "Pune", profile.City)
}

func TestProfileService_GetProfile_CreatesOnRead(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.repo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	expectTx(t, fx.txManager, func(f *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		txProfileRepo := mockRepo.NewMockProfileRepository(t)

		f.EXPECT().UserRepo().Return(userRepo)
		f.EXPECT().ProfileRepo().Return(txProfileRepo)
		userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Name: "Asha"}, nil)
		txProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
		txProfileRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
	})

	profile, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "Asha", profile.FullName)
	assert.Equal(t, 8.0, profile.EnergyRate)
	assert.Equal(t, "INR", profile.Currency)
	assert.Equal(t, entity.ThemeSystem, profile.Theme)
	assert.True(t, profile.NotificationPreferences.Push)
}

func TestProfileService_GetProfile_OwnerMissing(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.repo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	expectTx(t, fx.txManager, func(f *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		f.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	_, err := fx.service.GetProfile(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	rate := 7.25
	theme := entity.ThemeDark
	city := "Nagpur"

	fx.repo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Profile{UserID: userID, City: "Pune", Phone: "98"}, nil)
	fx.repo.EXPECT().
		Update(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.City == city && p.EnergyRate == rate && p.Theme == theme && p.Phone == "98"
		})).
		Return(nil)

	profile, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		City:       &city,
		EnergyRate: &rate,
		Theme:      &theme,
	})

	require.NoError(t, err)
	assert.Equal(t, city, profile.City)
}

func TestProfileService_UpdateProfile_Validation(t *testing.T) {
	badTheme := entity.Theme("neon")
	negative := -1.0

	tests := []struct {
		name  string
		input *usecase.UpdateProfileInput
	}{
		{name: "unknown theme", input: &usecase.UpdateProfileInput{Theme: &badTheme}},
		{name: "negative rate", input: &usecase.UpdateProfileInput{EnergyRate: &negative}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)

			_, err := fx.service.UpdateProfile(context.Background(), uuid.New(), tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestProfileService_UpdateNotificationPreferences_SaveFails(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.repo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Profile{UserID: userID}, nil)
	fx.repo.EXPECT().Update(ctx, mock.Anything).Return(errors.New("db error"))

	_, err := fx.service.UpdateNotificationPreferences(ctx, userID, entity.NotificationPreferences{Push: true})

	require.Error(t, err)
}
