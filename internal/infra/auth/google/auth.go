// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"urjabandhu/config"
	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

var validIssuers = map[string]bool{
	"https://accounts.google.com": true,
	"accounts.google.com":         true,
}

// ErrNotConfigured is returned when no client ID is configured.
var ErrNotConfigured = domainerrors.ErrOAuthNotConfigured

type tokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthServiceImpl implements service.OAuthAuthService for Google ID tokens.
type AuthServiceImpl struct {
	clientID string
	validate tokenValidator
	logger   *slog.Logger
}

// NewAuthService creates the Google ID token verifier.
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &AuthServiceImpl{
		clientID: clientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// VerifyIDToken checks the token signature, audience, issuer and email verification.
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, ErrNotConfigured
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, err.Error())
	}

	if !validIssuers[payload.Issuer] {
		return nil, errors.Wrapf(domainerrors.ErrOAuthTokenInvalid, "invalid issuer %s", payload.Issuer)
	}

	email := claimString(payload.Claims, "email")
	verified, _ := payload.Claims["email_verified"].(bool)
	if !verified {
		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, "email not verified")
	}

	s.logger.Debug("Google ID token verified", slog.String("sub", payload.Subject))

	return &service.OAuthUser{
		ID:            payload.Subject,
		Email:         email,
		Name:          claimString(payload.Claims, "name"),
		Provider:      entity.ProviderTypeGoogle,
		AvatarURL:     claimString(payload.Claims, "picture"),
		EmailVerified: verified,
	}, nil
}

// GetProvider returns the OAuth provider type
func (s *AuthServiceImpl) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

func claimString(claims map[string]any, key string) string {
	v, _ := claims[key].(string)

	return v
}
