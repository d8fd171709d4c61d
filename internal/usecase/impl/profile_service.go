package impl

import (
	"context"
	"log/slog"

	"urjabandhu/config"
	deliverycontext "urjabandhu/internal/delivery/context"
	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/repository"
	"urjabandhu/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultTheme    = entity.ThemeSystem
	defaultLanguage = "en"
)

// profileDefaults are the tariff settings applied to newly created profiles.
type profileDefaults struct {
	rate     float64
	currency string
}

func newProfileDefaults(cfg *config.Config) profileDefaults {
	d := profileDefaults{rate: 6.5, currency: "INR"}
	if cfg != nil && cfg.Energy != nil {
		if cfg.Energy.DefaultRate > 0 {
			d.rate = cfg.Energy.DefaultRate
		}
		if cfg.Energy.DefaultCurrency != "" {
			d.currency = cfg.Energy.DefaultCurrency
		}
	}

	return d
}

func (d profileDefaults) newProfile(user *entity.User) *entity.Profile {
	return &entity.Profile{
		UserID:                  user.ID,
		FullName:                user.Name,
		NotificationPreferences: entity.DefaultNotificationPreferences(),
		EnergyRate:              d.rate,
		Currency:                d.currency,
		Theme:                   defaultTheme,
		Language:                defaultLanguage,
	}
}

// ensureProfile returns the user's profile, creating it with defaults when missing.
func ensureProfile(ctx context.Context, profileRepo repository.ProfileRepository, user *entity.User, defaults profileDefaults) (*entity.Profile, error) {
	profile, err := profileRepo.FindByUserID(ctx, user.ID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	profile = defaults.newProfile(user)
	if err := profileRepo.Create(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to create default profile")
	}

	return profile, nil
}

type profileService struct {
	txManager repository.TransactionManager
	repo      repository.ProfileRepository
	defaults  profileDefaults
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		repo:      params.ProfileRepo,
		defaults:  newProfileDefaults(params.Config),
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the profile, creating it on first read. The user row is
// looked up only when the profile is missing, for the display name.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.repo.FindByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "profile owner not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		profile, err = ensureProfile(ctx, repoFactory.ProfileRepo(), user, srv.defaults)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create profile on read")
	}

	srv.log(ctx).Info("Created default profile", slog.Any("userID", userID))

	return profile, nil
}

// UpdateProfile applies a patch to the profile.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	if input.Theme != nil && !input.Theme.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown theme %q", *input.Theme)
	}
	if input.EnergyRate != nil && *input.EnergyRate < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "energy rate must not be negative")
	}

	profile, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyProfilePatch(profile, input)

	if err := srv.repo.Update(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update profile")
	}

	return profile, nil
}

// UpdateNotificationPreferences replaces the notification preferences.
func (srv *profileService) UpdateNotificationPreferences(ctx context.Context, userID uuid.UUID, prefs entity.NotificationPreferences) (*entity.Profile, error) {
	profile, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.NotificationPreferences = prefs
	if err := srv.repo.Update(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update notification preferences")
	}

	return profile, nil
}

func applyProfilePatch(p *entity.Profile, in *usecase.UpdateProfileInput) {
	setIfPresent(&p.FullName, in.FullName)
	setIfPresent(&p.Phone, in.Phone)
	setIfPresent(&p.Address, in.Address)
	setIfPresent(&p.City, in.City)
	setIfPresent(&p.State, in.State)
	setIfPresent(&p.Pincode, in.Pincode)
	setIfPresent(&p.EnergyRate, in.EnergyRate)
	setIfPresent(&p.Currency, in.Currency)
	setIfPresent(&p.Theme, in.Theme)
	setIfPresent(&p.Language, in.Language)
	setIfPresent(&p.PushToken, in.PushToken)
}

// setIfPresent copies *src into dst when src is non-nil.
func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
