package handler

import (
	"strconv"
	"time"

	"urjabandhu/internal/delivery/api/middleware"
	"urjabandhu/internal/domain/analytics"
	domainerrors "urjabandhu/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// currentUser returns the authenticated user's ID.
func currentUser(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return userID, nil
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("invalid id"), c.Param("id"))
	}

	return id, nil
}

// bindRequest binds the body into req and runs tag validation.
func bindRequest(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("malformed request body"), err.Error())
	}

	return errors.WithStack(c.Validate(req))
}

// queryInt reads an optional integer query parameter.
func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(name+" must be an integer"), raw)
	}

	return v, nil
}

// queryRange parses ?range=, defaulting to 7d.
func queryRange(c echo.Context) (analytics.TimeRange, error) {
	r, err := analytics.ParseTimeRange(c.QueryParam("range"))
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrInvalidTimeRange.WithDetails("range must be one of 24h, 7d, 30d, 90d"), err.Error())
	}

	return r, nil
}

// queryTime reads an optional RFC 3339 timestamp or YYYY-MM-DD date.
func queryTime(c echo.Context, name string) (time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(name+" must be RFC 3339 or YYYY-MM-DD"), raw)
}
