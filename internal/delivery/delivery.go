// Package delivery defines the contract shared by every transport the binaries start.
package delivery

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// Delivery is a long-running transport (HTTP API, push worker).
type Delivery interface {
	Serve(ctx context.Context) error
}

// StartParams collects every Delivery provided into the "deliveries" group.
type StartParams struct {
	fx.In
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []Delivery `group:"deliveries"`
}

// Start serves each delivery on its own goroutine. When one fails the whole
// app shuts down so every OnStop hook still runs.
func Start(ctx context.Context, params StartParams) {
	for _, d := range params.Deliveries {
		go func() {
			err := d.Serve(ctx)
			if err == nil {
				return
			}

			params.Logger.Error("Delivery stopped unexpectedly", slog.Any("error", err))
			if err := params.Shutdown(fx.ExitCode(1)); err != nil {
				params.Logger.Error("Shutdown failed", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

// FxLogger routes fx's own lifecycle events through the app logger.
func FxLogger(logger *slog.Logger) fxevent.Logger {
	return &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
}
