package impl

import (
	"context"
	"log/slog"

	"urjabandhu/config"
	"urjabandhu/internal/domain/analytics"
	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/repository"
	"urjabandhu/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type recommendationService struct {
	repo            repository.RecommendationRepository
	fixtureFallback bool
	logger          *slog.Logger
}

// RecommendationServiceParams holds dependencies for RecommendationService.
type RecommendationServiceParams struct {
	fx.In

	RecommendationRepo repository.RecommendationRepository
	Config             *config.Config
	Logger             *slog.Logger
}

// NewRecommendationService creates the recommendation service.
func NewRecommendationService(params RecommendationServiceParams) usecase.RecommendationUsecase {
	fallback := true
	if params.Config != nil && params.Config.Analytics != nil {
		fallback = params.Config.Analytics.FixtureFallback
	}

	return &recommendationService{
		repo:            params.RecommendationRepo,
		fixtureFallback: fallback,
		logger:          params.Logger,
	}
}

func (srv *recommendationService) ListRecommendations(ctx context.Context, userID uuid.UUID) (*usecase.RecommendationList, error) {
	recs, err := srv.repo.ListRecommendations(ctx, userID)
	if err != nil {
		return &usecase.RecommendationList{Items: []*entity.Recommendation{}, Source: entity.DataSourceLive},
			errors.Wrap(err, "failed to list recommendations")
	}

	if len(recs) == 0 && srv.fixtureFallback {
		fixtures := analytics.GenerateRecommendations()
		items := make([]*entity.Recommendation, len(fixtures))
		for i := range fixtures {
			fixtures[i].UserID = userID
			items[i] = &fixtures[i]
		}

		return &usecase.RecommendationList{Items: items, Source: entity.DataSourceFixture}, nil
	}

	return &usecase.RecommendationList{Items: recs, Source: entity.DataSourceLive}, nil
}

func (srv *recommendationService) CreateRecommendation(ctx context.Context, userID uuid.UUID, input *usecase.CreateRecommendationInput) (*entity.Recommendation, error) {
	rec := &entity.Recommendation{
		UserID:           userID,
		Title:            input.Title,
		Description:      input.Description,
		Category:         input.Category,
		Priority:         input.Priority,
		PotentialSavings: input.PotentialSavings,
		Status:           entity.RecommendationStatusPending,
	}
	if rec.Priority == "" {
		rec.Priority = entity.PriorityMedium
	}
	if err := validateRecommendation(rec); err != nil {
		return nil, err
	}

	if err := srv.repo.CreateRecommendation(ctx, rec); err != nil {
		return nil, errors.Wrap(err, "failed to create recommendation")
	}

	return rec, nil
}

func (srv *recommendationService) UpdateRecommendation(ctx context.Context, userID, recID uuid.UUID, input *usecase.UpdateRecommendationInput) (*entity.Recommendation, error) {
	rec, err := loadOwned(ctx, srv.repo.FindRecommendationByID, recommendationOwner, userID, recID,
		repository.ErrRecommendationNotFound, domainerrors.ErrRecommendationNotFound, true)
	if err != nil {
		return nil, err
	}

	setIfPresent(&rec.Title, input.Title)
	setIfPresent(&rec.Description, input.Description)
	setIfPresent(&rec.Category, input.Category)
	setIfPresent(&rec.Priority, input.Priority)
	setIfPresent(&rec.PotentialSavings, input.PotentialSavings)
	setIfPresent(&rec.Status, input.Status)
	if err := validateRecommendation(rec); err != nil {
		return nil, err
	}

	if err := srv.repo.UpdateRecommendation(ctx, rec); err != nil {
		return nil, mapNotFound(err, repository.ErrRecommendationNotFound, domainerrors.ErrRecommendationNotFound, "failed to update recommendation")
	}

	return rec, nil
}

func (srv *recommendationService) DeleteRecommendation(ctx context.Context, userID, recID uuid.UUID) error {
	if _, err := loadOwned(ctx, srv.repo.FindRecommendationByID, recommendationOwner, userID, recID,
		repository.ErrRecommendationNotFound, domainerrors.ErrRecommendationNotFound, true); err != nil {
		return err
	}

	if err := srv.repo.DeleteRecommendation(ctx, recID); err != nil {
		return mapNotFound(err, repository.ErrRecommendationNotFound, domainerrors.ErrRecommendationNotFound, "failed to delete recommendation")
	}

	return nil
}

func recommendationOwner(r *entity.Recommendation) uuid.UUID { return r.UserID }

func validateRecommendation(r *entity.Recommendation) error {
	switch {
	case r.Title == "":
		return errors.Wrap(domainerrors.ErrValidationFailed, "recommendation title is required")
	case !r.Priority.IsValid():
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown priority %q", r.Priority)
	case !r.Status.IsValid():
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown status %q", r.Status)
	case r.PotentialSavings < 0:
		return errors.Wrap(domainerrors.ErrValidationFailed, "potential savings must not be negative")
	}

	return nil
}
