package httpserver

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"urjabandhu/config"
	deliverycontext "urjabandhu/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"
)

func newTestServer(t *testing.T, bodyLimit string) *Server {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.Port = 8088
	cfg.HTTP.MaxRequestBodySize = bodyLimit

	return New(fxtest.NewLifecycle(t), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), Options{Name: "test"})
}

func TestServer_Addr(t *testing.T) {
	assert.Equal(t, "0.0.0.0:8088", newTestServer(t, "").Addr())
}

func TestServer_Middleware(t *testing.T) {
	srv := newTestServer(t, "1K")
	srv.Echo().POST("/echo", func(c echo.Context) error {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return err
		}

		return c.String(http.StatusOK, string(body))
	})
	srv.Echo().GET("/panic", func(echo.Context) error {
		panic("boom")
	})

	t.Run("request id assigned", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("hi")))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("body limit", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("x", 2048))))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("panic recovered", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
