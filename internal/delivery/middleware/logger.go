package middleware

import (
	"log/slog"
	"net/url"
	"time"

	"urjabandhu/config"
	deliverycontext "urjabandhu/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// probePaths are never access-logged unless they fail.
var probePaths = map[string]struct{}{
	"/health": {},
	"/ready":  {},
}

// LoggerMiddleware emits access logs. In debug mode every request is logged;
// otherwise only errors and 5xx responses are.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
	now    func() time.Time
}

func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
		now:    time.Now,
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := m.now()
		err := next(c)

		status := c.Response().Status
		failed := err != nil || status >= 500
		if failed || (m.debug && !isProbe(c.Request().URL.Path)) {
			m.logger.LogAttrs(c.Request().Context(), accessLevel(status), "HTTP request",
				m.accessAttrs(c, m.now().Sub(start), err)...)
		}

		return err
	}
}

func (m *LoggerMiddleware) accessAttrs(c echo.Context, latency time.Duration, err error) []slog.Attr {
	req := c.Request()
	attrs := make([]slog.Attr, 0, 9)
	attrs = append(attrs,
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", c.Response().Status),
		slog.Int64("bytes_out", c.Response().Size),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
	)
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", redactQuery(req.URL.Query())))
	}
	if userID, ok := c.Get(deliverycontext.KeyUserID).(uuid.UUID); ok {
		attrs = append(attrs, slog.String("user_id", userID.String()))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	return attrs
}

func accessLevel(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func isProbe(path string) bool {
	_, ok := probePaths[path]

	return ok
}

// redactQuery hides the websocket access token passed as ?token=.
func redactQuery(q url.Values) string {
	if q.Has("token") {
		q.Set("token", "REDACTED")
	}

	return q.Encode()
}
