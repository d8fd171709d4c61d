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

func createTestRecommendationService(t *testing.T, fixtureFallback bool) (usecase.RecommendationUsecase, *mockRepo.MockRecommendationRepository) {
	repo := mockRepo.NewMockRecommendationRepository(t)

	cfg := newTestConfig()
	cfg.Analytics.FixtureFallback = fixtureFallback

	return NewRecommendationService(RecommendationServiceParams{
		RecommendationRepo: repo,
		Config:             cfg,
		Logger:             newDiscardLogger(),
	}), repo
}

func TestRecommendationService_ListRecommendations_FixtureWhenEmpty(t *testing.T) {
	service, repo := createTestRecommendationService(t, true)

	ctx := context.Background()
	userID := uuid.New()
	repo.EXPECT().ListRecommendations(ctx, userID).Return([]*entity.Recommendation{}, nil)

	list, err := service.ListRecommendations(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, entity.DataSourceFixture, list.Source)
	require.Len(t, list.Items, 3)
	for _, item := range list.Items {
		assert.Equal(t, userID, item.UserID)
	}
}

func TestRecommendationService_ListRecommendations_Live(t *testing.T) {
	service, repo := createTestRecommendationService(t, true)

	ctx := context.Background()
	userID := uuid.New()
	stored := []*entity.Recommendation{{ID: uuid.New(), UserID: userID, Title: "Unplug the old fridge"}}
	repo.EXPECT().ListRecommendations(ctx, userID).Return(stored, nil)

	list, err := service.ListRecommendations(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, entity.DataSourceLive, list.Source)
	assert.Equal(t, stored, list.Items)
}

func TestRecommendationService_ListRecommendations_NoFallback(t *testing.T) {
	service, repo := createTestRecommendationService(t, false)

	ctx := context.Background()
	userID := uuid.New()
	repo.EXPECT().ListRecommendations(ctx, userID).Return([]*entity.Recommendation{}, nil)

	list, err := service.ListRecommendations(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, entity.DataSourceLive, list.Source)
	assert.Empty(t, list.Items)
}

func TestRecommendationService_ListRecommendations_ErrorReturnsEmptyList(t *testing.T) {
	service, repo := createTestRecommendationService(t, true)

	ctx := context.Background()
	userID := uuid.New()
	repo.EXPECT().ListRecommendations(ctx, userID).Return(nil, errors.New("db error"))

	list, err := service.ListRecommendations(ctx, userID)

	require.Error(t, err)
	require.NotNil(t, list)
	assert.NotNil(t, list.Items)
	assert.Empty(t, list.Items)
}

func TestRecommendationService_CreateRecommendation_Defaults(t *testing.T) {
	service, repo := createTestRecommendationService(t, true)

	ctx := context.Background()
	userID := uuid.New()
	repo.EXPECT().CreateRecommendation(ctx, mock.AnythingOfType("*entity.Recommendation")).Return(nil)

	rec, err := service.CreateRecommendation(ctx, userID, &usecase.CreateRecommendationInput{Title: "Service the geyser"})

	require.NoError(t, err)
	assert.Equal(t, entity.PriorityMedium, rec.Priority)
	assert.Equal(t, entity.RecommendationStatusPending, rec.Status)
}

func TestRecommendationService_UpdateRecommendation_InvalidStatus(t *testing.T) {
	service, repo := createTestRecommendationService(t, true)

	ctx := context.Background()
	userID := uuid.New()
	rec := &entity.Recommendation{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    "Service the geyser",
		Priority: entity.PriorityLow,
		Status:   entity.RecommendationStatusPending,
	}
	status := entity.RecommendationStatus("snoozed")

	repo.EXPECT().FindRecommendationByID(ctx, rec.ID).Return(rec, nil)

	_, err := service.UpdateRecommendation(ctx, userID, rec.ID, &usecase.UpdateRecommendationInput{Status: &status})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRecommendationService_DeleteRecommendation_NotFound(t *testing.T) {
	service, repo := createTestRecommendationService(t, true)

	ctx := context.Background()
	recID := uuid.New()
	repo.EXPECT().FindRecommendationByID(ctx, recID).Return(nil, repository.ErrRecommendationNotFound)

	err := service.DeleteRecommendation(ctx, uuid.New(), recID)

	assert.ErrorIs(t, err, domainerrors.ErrRecommendationNotFound)
}
