// Package service declares the domain's ports to stateless helpers and
// external systems. Implementations live under internal/infra.
package service

import (
	"context"
	"time"

	"urjabandhu/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// PasswordHasher hashes and checks email sign-in passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
	// ValidatePasswordStrength runs before Hash on sign-up.
	ValidatePasswordStrength(password string) error
}

// Values of the "type" claim. An access token is never accepted as a refresh
// token and vice versa.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims is the JWT payload. UserID travels in the subject claim.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Roles  []string  `json:"roles,omitempty"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the access/refresh pair.
type TokenService interface {
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	ValidateRefreshToken(tokenString string) (*Claims, error)
	// GetRefreshTokenDuration is the lifetime stored with each refresh token hash.
	GetRefreshTokenDuration() time.Duration
}

// OAuthUser is the identity asserted by a provider's ID token.
type OAuthUser struct {
	ID            string // provider subject
	Email         string
	Name          string
	Provider      entity.ProviderType
	AvatarURL     string
	EmailVerified bool
}

// OAuthAuthService verifies ID tokens obtained by the client from a provider.
type OAuthAuthService interface {
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
	GetProvider() entity.ProviderType
}
