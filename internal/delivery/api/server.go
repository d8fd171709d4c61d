package api

import (
	"log/slog"

	"urjabandhu/config"
	"urjabandhu/internal/delivery"
	apimiddleware "urjabandhu/internal/delivery/api/middleware"
	"urjabandhu/internal/delivery/api/router"
	"urjabandhu/internal/delivery/api/validator"
	deliverycontext "urjabandhu/internal/delivery/context"
	"urjabandhu/internal/delivery/httpserver"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the public API server.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the REST and websocket API, served over h2c.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := httpserver.New(params.Lc, params.Cfg, params.Logger, httpserver.Options{Name: "api", H2C: true})

	e := srv.Echo()
	e.Use(echomiddleware.CORSWithConfig(corsConfig(params.Cfg)))
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return srv, nil
}

// corsConfig allows every origin unless http.allowOrigins is set.
func corsConfig(cfg *config.Config) echomiddleware.CORSConfig {
	origins := cfg.HTTP.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return echomiddleware.CORSConfig{
		AllowOrigins:  origins,
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, deliverycontext.HeaderXRequestID},
		ExposeHeaders: []string{deliverycontext.HeaderXRequestID, echo.HeaderContentDisposition},
	}
}
