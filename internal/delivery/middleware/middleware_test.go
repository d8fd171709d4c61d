package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"urjabandhu/config"
	deliverycontext "urjabandhu/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{name: "client id kept", header: "abc-123", keep: true},
		{name: "missing", header: ""},
		{name: "too long", header: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "control characters", header: "abc\x01def"},
		{name: "spaces", header: "abc def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := newEcho(&buf, false)

			var fromCtx string
			e.GET("/x", func(c echo.Context) error {
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return c.NoContent(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, fromCtx)
			if tt.keep {
				assert.Equal(t, tt.header, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		debug  bool
		path   string
		status int
		logged bool
		level  string
	}{
		{name: "quiet success", path: "/x", status: http.StatusOK},
		{name: "debug success", debug: true, path: "/x", status: http.StatusOK, logged: true, level: "INFO"},
		{name: "debug client error", debug: true, path: "/x", status: http.StatusNotFound, logged: true, level: "WARN"},
		{name: "server error always", path: "/x", status: http.StatusBadGateway, logged: true, level: "ERROR"},
		{name: "debug probe skipped", debug: true, path: "/health", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := newEcho(&buf, tt.debug)
			e.GET(tt.path, func(c echo.Context) error {
				return c.NoContent(tt.status)
			})

			e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			if !tt.logged {
				assert.NotContains(t, buf.String(), "HTTP request")

				return
			}
			require.Contains(t, buf.String(), "HTTP request")
			assert.Contains(t, buf.String(), `"level":"`+tt.level+`"`)
		})
	}
}

func TestLoggerMiddleware_RedactsToken(t *testing.T) {
	var buf bytes.Buffer
	e := newEcho(&buf, true)
	e.GET("/ws", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ws?token=secret&range=24h", nil))

	assert.NotContains(t, buf.String(), "secret")
	assert.Contains(t, buf.String(), "REDACTED")
}

func TestRedactQuery(t *testing.T) {
	assert.Equal(t, "a=1", redactQuery(url.Values{"a": {"1"}}))
	assert.Equal(t, "a=1&token=REDACTED", redactQuery(url.Values{"a": {"1"}, "token": {"t"}}))
}
