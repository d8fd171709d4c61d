package google

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"urjabandhu/config"
	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestAuthService(validate tokenValidator) *AuthServiceImpl {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "test_client_id"}}
	svc := NewAuthService(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*AuthServiceImpl)
	svc.validate = validate

	return svc
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	svc := newTestAuthService(func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "id-token", token)
		assert.Equal(t, "test_client_id", audience)

		return &idtoken.Payload{
			Issuer:   "https://accounts.google.com",
			Audience: audience,
			Subject:  "google-sub-123",
			Claims: map[string]any{
				"email":          "asha@example.com",
				"email_verified": true,
				"name":           "Asha Rao",
				"picture":        "https://example.com/a.png",
			},
		}, nil
	})

	user, err := svc.VerifyIDToken(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "google-sub-123", user.ID)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, "Asha Rao", user.Name)
	assert.Equal(t, entity.ProviderTypeGoogle, user.Provider)
	assert.True(t, user.EmailVerified)
}

func TestAuthService_VerifyIDToken_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		payload *idtoken.Payload
		err     error
		want    string
	}{
		{name: "validator error", err: errors.New("bad signature"), want: "bad signature"},
		{
			name:    "wrong issuer",
			payload: &idtoken.Payload{Issuer: "https://evil.example.com", Claims: map[string]any{"email_verified": true}},
			want:    "invalid issuer",
		},
		{
			name:    "unverified email",
			payload: &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}},
			want:    "email not verified",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuthService(func(context.Context, string, string) (*idtoken.Payload, error) {
				return tt.payload, tt.err
			})

			user, err := svc.VerifyIDToken(context.Background(), "id-token")
			require.Error(t, err)
			assert.Nil(t, user)
			assert.Contains(t, err.Error(), tt.want)
			assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
		})
	}
}

func TestAuthService_NotConfigured(t *testing.T) {
	svc := NewAuthService(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := svc.VerifyIDToken(context.Background(), "id-token")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Equal(t, entity.ProviderTypeGoogle, svc.GetProvider())
}
