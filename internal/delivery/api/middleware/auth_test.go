package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "urjabandhu/internal/delivery/context"
	"urjabandhu/internal/domain/service"
	mockSvc "urjabandhu/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockSvc.MockTokenService) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	return NewAuthMiddleware(tokenSvc, slog.New(slog.NewTextHandler(io.Discard, nil))), tokenSvc
}

func runMiddleware(mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, echo.Context, bool) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	_ = mw(func(c echo.Context) error {
		called = true

		return c.NoContent(http.StatusNoContent)
	})(c)

	return rec, c, called
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	m, tokenSvc := newTestAuthMiddleware(t)

	userID := uuid.New()
	tokenSvc.EXPECT().ValidateAccessToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"user"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")

	rec, c, called := runMiddleware(m.Authenticate, req)

	require.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	got, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, userID, got)
}

func TestAuthMiddleware_Authenticate_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		setup    func(tokenSvc *mockSvc.MockTokenService)
		wantCode string
	}{
		{name: "missing header", wantCode: "MISSING_TOKEN"},
		{name: "wrong scheme", header: "Basic abc", wantCode: "MISSING_TOKEN"},
		{name: "empty bearer", header: "Bearer ", wantCode: "MISSING_TOKEN"},
		{
			name:   "invalid token",
			header: "Bearer expired",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantCode: "INVALID_TOKEN",
		},
		{
			name:   "token without user",
			header: "Bearer anonymous",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("anonymous").Return(&service.Claims{}, nil)
			},
			wantCode: "INVALID_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, tokenSvc := newTestAuthMiddleware(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/devices", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}

			rec, _, called := runMiddleware(m.Authenticate, req)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
		})
	}
}

func TestAuthMiddleware_AuthenticateWebSocket_QueryToken(t *testing.T) {
	m, tokenSvc := newTestAuthMiddleware(t)

	tokenSvc.EXPECT().ValidateAccessToken("ws-token").Return(&service.Claims{UserID: uuid.New()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/realtime?token=ws-token", nil)
	_, _, called := runMiddleware(m.AuthenticateWebSocket, req)

	assert.True(t, called)
}

func TestAuthMiddleware_Authenticate_IgnoresQueryToken(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices?token=ws-token", nil)
	rec, _, called := runMiddleware(m.Authenticate, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_PropagatesUserToRequestContext(t *testing.T) {
	m, tokenSvc := newTestAuthMiddleware(t)

	userID := uuid.New()
	tokenSvc.EXPECT().ValidateAccessToken("good").Return(&service.Claims{UserID: userID}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")

	_, c, called := runMiddleware(m.Authenticate, req)
	require.True(t, called)

	got, ok := deliverycontext.UserIDFromContext(c.Request().Context())
	assert.True(t, ok)
	assert.Equal(t, userID, got)
}
