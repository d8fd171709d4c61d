package middleware

import (
	"log/slog"
	"strings"

	"urjabandhu/internal/delivery/api/response"
	deliverycontext "urjabandhu/internal/delivery/context"
	"urjabandhu/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for bearer-token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer access token and stores the caller's
// identity on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return m.authenticate(next, false)
}

// AuthenticateWebSocket also accepts the token as ?token=, since browsers
// cannot set headers on a websocket handshake.
func (m *AuthMiddleware) AuthenticateWebSocket(next echo.HandlerFunc) echo.HandlerFunc {
	return m.authenticate(next, true)
}

func (m *AuthMiddleware) authenticate(next echo.HandlerFunc, allowQuery bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c, allowQuery)
		if !ok {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing or malformed")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}
		if claims.UserID == uuid.Nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "User ID missing from token")
		}

		c.Set(deliverycontext.KeyUserID, claims.UserID)

		ctx := c.Request().Context()
		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", claims.UserID.String()))
		ctx = deliverycontext.WithUserID(deliverycontext.WithLogger(ctx, reqLogger), claims.UserID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func bearerToken(c echo.Context, allowQuery bool) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader != "" {
		token, found := strings.CutPrefix(authHeader, bearerPrefix)

		return token, found && token != ""
	}
	if allowQuery {
		if token := c.QueryParam("token"); token != "" {
			return token, true
		}
	}

	return "", false
}

// GetUserID returns the authenticated user's ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	if id, ok := c.Get(deliverycontext.KeyUserID).(uuid.UUID); ok && id != uuid.Nil {
		return id, true
	}

	return deliverycontext.UserIDFromContext(c.Request().Context())
}
