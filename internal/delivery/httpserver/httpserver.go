// Package httpserver builds the echo instances behind both binaries and runs
// them under the fx lifecycle.
package httpserver

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"urjabandhu/config"
	"urjabandhu/internal/delivery/middleware"
	"urjabandhu/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// Options describes one listener.
type Options struct {
	// Name appears in start and stop logs.
	Name string
	// H2C serves cleartext HTTP/2 next to HTTP/1.1.
	H2C bool
}

// Server is an echo instance bound to cfg.HTTP.Port.
type Server struct {
	opts   Options
	cfg    *config.Config
	logger *slog.Logger
	echo   *echo.Echo
}

// New returns an echo instance with recover, request ID, access log and body
// limit installed, in that order, and registers its shutdown on lc.
func New(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger, opts Options) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	if cfg.HTTP.MaxRequestBodySize != "" {
		e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))
	}

	s := &Server{
		opts:   opts,
		cfg:    cfg,
		logger: logger.With(slog.String("server", opts.Name)),
		echo:   e,
	}
	lc.Append(fx.Hook{OnStop: s.stop})

	return s
}

// Echo exposes the instance for route and middleware registration.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Addr is the listen address.
func (s *Server) Addr() string {
	return net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
}

// Serve blocks until the listener closes. A graceful shutdown is not an error.
func (s *Server) Serve(_ context.Context) error {
	addr := s.Addr()
	s.logger.Info("HTTP server listening", slog.String("addr", addr), slog.Bool("h2c", s.opts.H2C))

	var err error
	if s.opts.H2C {
		err = s.echo.StartH2CServer(addr, &http2.Server{IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout})
	} else {
		err = s.echo.Start(addr)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "%s server", s.opts.Name)
	}

	return nil
}

func (s *Server) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("HTTP server draining")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
