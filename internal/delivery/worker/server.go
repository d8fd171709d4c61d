package worker

import (
	"log/slog"
	"net/http"

	"urjabandhu/config"
	"urjabandhu/internal/delivery"
	"urjabandhu/internal/delivery/httpserver"
	"urjabandhu/internal/delivery/worker/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the automation worker.
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer builds the worker's listener. Pub/Sub push subscriptions and the
// local publisher both deliver automation events to POST /push.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := httpserver.New(params.Lc, params.Cfg, params.Logger, httpserver.Options{Name: "worker"})
	registerRoutes(srv.Echo(), params.PushHandler)

	return srv, nil
}

func registerRoutes(e *echo.Echo, push *handler.PushHandler) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "role": "worker"})
	})
	e.POST("/push", push.HandlePush)
}
