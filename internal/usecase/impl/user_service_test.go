package impl

import (
	"context"
	"testing"
	"time"

	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/repository"
	"urjabandhu/internal/domain/service"
	mockRepo "urjabandhu/internal/mocks/repository"
	mockSvc "urjabandhu/internal/mocks/service"
	"urjabandhu/internal/usecase"
	"urjabandhu/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service           usecase.UserUsecase
	txManager         *mockRepo.MockTransactionManager
	authRepo          *mockRepo.MockAuthRepository
	hasher            *mockSvc.MockPasswordHasher
	tokenService      *mockSvc.MockTokenService
	googleAuthService *mockSvc.MockOAuthAuthService
	now               time.Time
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	googleAuthService := mockSvc.NewMockOAuthAuthService(t)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	svc := NewUserService(UserServiceParams{
		TxManager:         txManager,
		AuthRepo:          authRepo,
		Hasher:            hasher,
		TokenService:      tokenService,
		GoogleAuthService: googleAuthService,
		Config:            newTestConfig(),
		Logger:            newDiscardLogger(),
	})
	svc.(*userService).now = fixedClock(now)

	return userServiceFixtures{
		service:           svc,
		txManager:         txManager,
		authRepo:          authRepo,
		hasher:            hasher,
		tokenService:      tokenService,
		googleAuthService: googleAuthService,
		now:               now,
	}
}

// expectIssueTokens covers token generation and refresh token storage.
func (fx userServiceFixtures) expectIssueTokens(ctx context.Context) {
	fx.tokenService.EXPECT().
		GenerateTokens(mock.Anything, []string{"user"}).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour)
	fx.authRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(tok *entity.RefreshToken) bool {
			return tok.TokenHash == util.Checksum([]byte("refresh-token")) &&
				tok.ExpiresAt.Equal(fx.now.Add(24*time.Hour))
		})).
		Return(nil)
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: "Password123!",
	}
	userID := uuid.New()

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	txAuthRepo := mockRepo.NewMockAuthRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txProfileRepo := mockRepo.NewMockProfileRepository(t)
	expectTx(t, fx.txManager, func(f *mockRepo.MockRepositoryFactory) {
		f.EXPECT().AuthRepo().Return(txAuthRepo)
		f.EXPECT().UserRepo().Return(txUserRepo)
		f.EXPECT().ProfileRepo().Return(txProfileRepo)
	})

	txAuthRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(nil, repository.ErrAuthNotFound)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = userID
		}).
		Return(nil)
	txAuthRepo.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(a *entity.Authentication) bool {
			return a.UserID == userID && a.PasswordHash == "hashed_password" && a.ProviderUserID == input.Email
		})).
		Return(nil)
	txProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	txProfileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(nil)

	fx.expectIssueTokens(ctx)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, userID, output.User.ID)
	require.NotNil(t, output.User.Profile)
	assert.Equal(t, "Asha Rao", output.User.Profile.FullName)
	assert.Equal(t, 8.0, output.User.Profile.EnergyRate)
	assert.Equal(t, entity.ThemeSystem, output.User.Profile.Theme)
	assert.True(t, output.User.Profile.NotificationPreferences.EnergyAlerts)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "Password123!"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	txAuthRepo := mockRepo.NewMockAuthRepository(t)
	expectTx(t, fx.txManager, func(f *mockRepo.MockRepositoryFactory) {
		f.EXPECT().AuthRepo().Return(txAuthRepo)
	})
	txAuthRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(&entity.Authentication{UserID: uuid.New()}, nil)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	input := &usecase.RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "weak"}
	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(errors.New("too short"))

	output, err := fx.service.Register(context.Background(), input)

	assert.Nil(t, output)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrPasswordStrength.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, "too short", appErr.Details())
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "asha@example.com", Password: "Password123!"}
	user := &entity.User{ID: uuid.New(), Name: "Asha", Email: input.Email, Roles: entity.Roles{entity.RoleUser}}
	profile := &entity.Profile{UserID: user.ID, FullName: "Asha"}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check(input.Password, "hashed").Return(true)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txProfileRepo := mockRepo.NewMockProfileRepository(t)
	expectTx(t, fx.txManager, func(f *mockRepo.MockRepositoryFactory) {
		f.EXPECT().UserRepo().Return(txUserRepo)
		f.EXPECT().ProfileRepo().Return(txProfileRepo)
	})
	txUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	txProfileRepo.EXPECT().FindByUserID(ctx, user.ID).Return(profile, nil)

	fx.expectIssueTokens(ctx)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, user.ID, output.User.ID)
	assert.Same(t, profile, output.User.Profile)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "asha@example.com", Password: "nope"}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check(input.Password, "hashed").Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "ghost@example.com", Password: "Password123!"}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(nil, repository.ErrAuthNotFound)

	_, err := fx.service.Login(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_LoginWithGoogle_LinksExistingEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "asha@example.com", Roles: entity.Roles{entity.RoleUser}}
	oauthUser := &service.OAuthUser{ID: "google-sub", Email: existing.Email, Name: "Asha"}

	fx.googleAuthService.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txAuthRepo := mockRepo.NewMockAuthRepository(t)
	txProfileRepo := mockRepo.NewMockProfileRepository(t)
	expectTx(t, fx.txManager, func(f *mockRepo.MockRepositoryFactory) {
		f.EXPECT().UserRepo().Return(txUserRepo)
		f.EXPECT().AuthRepo().Return(txAuthRepo)
		f.EXPECT().ProfileRepo().Return(txProfileRepo)
	})
	txAuthRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeGoogle, "google-sub").
		Return(nil, repository.ErrAuthNotFound)
	txUserRepo.EXPECT().FindByEmail(ctx, existing.Email).Return(existing, nil)
	txAuthRepo.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(a *entity.Authentication) bool {
			return a.UserID == existing.ID && a.Provider == entity.ProviderTypeGoogle
		})).
		Return(nil)
	txProfileRepo.EXPECT().FindByUserID(ctx, existing.ID).Return(&entity.Profile{UserID: existing.ID}, nil)

	fx.expectIssueTokens(ctx)

	output, err := fx.service.LoginWithGoogle(ctx, &usecase.GoogleLoginInput{IDToken: "id-token"})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, output.User.ID)
}

func TestUserService_LoginWithGoogle_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.googleAuthService.EXPECT().VerifyIDToken(ctx, "bad").Return(nil, errors.New("signature mismatch"))

	_, err := fx.service.LoginWithGoogle(ctx, &usecase.GoogleLoginInput{IDToken: "bad"})

	assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: userID, Roles: []string{"merchant"}}, nil)
	fx.authRepo.EXPECT().FindRefreshTokenByHash(ctx, util.Checksum([]byte("refresh-token"))).
		Return(&entity.RefreshToken{UserID: userID, ExpiresAt: fx.now.Add(time.Hour)}, nil)
	fx.tokenService.EXPECT().GenerateTokens(userID, []string{"user"}).
		Return("new-access", "unused", nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
}

func TestUserService_RefreshToken_Expired(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: userID}, nil)
	fx.authRepo.EXPECT().FindRefreshTokenByHash(ctx, util.Checksum([]byte("refresh-token"))).
		Return(&entity.RefreshToken{UserID: userID, ExpiresAt: fx.now}, nil)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Logout_UnknownTokenIsIdempotent(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.authRepo.EXPECT().DeleteRefreshTokenByHash(ctx, util.Checksum([]byte("gone"))).
		Return(repository.ErrRefreshTokenNotFound)

	assert.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "gone"}))
}

func TestUserService_Logout_DatabaseError(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.authRepo.EXPECT().DeleteRefreshTokenByHash(ctx, mock.Anything).Return(errors.New("db error"))

	assert.Error(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "token"}))
}
