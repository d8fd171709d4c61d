package middleware

import (
	"log/slog"
	"net/http"

	"urjabandhu/internal/delivery/api/response"
	deliverycontext "urjabandhu/internal/delivery/context"
	domainerrors "urjabandhu/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const internalErrorMessage = "Internal server error, please try again later"

// ErrorMiddleware is echo's HTTPErrorHandler. It renders domain errors with
// their own status and code, echo errors as HTTP_ERROR, and anything else as
// an opaque 500.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

type renderedError struct {
	status  int
	code    string
	message string
	details any
}

func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	out := classifyError(err)
	if out.status >= http.StatusInternalServerError {
		req := c.Request()
		deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error("Request failed",
			slog.String("code", out.code),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Any("error", err),
		)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(out.status)

		return
	}
	_ = response.Error(c, out.status, out.code, out.message, out.details)
}

func classifyError(err error) renderedError {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return renderedError{
			status:  appErr.HTTPCode(),
			code:    appErr.ErrorCode(),
			message: appErr.Message(),
			details: appErr.Details(),
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}

		return renderedError{status: httpErr.Code, code: "HTTP_ERROR", message: message}
	}

	return renderedError{status: http.StatusInternalServerError, code: "INTERNAL_ERROR", message: internalErrorMessage}
}
