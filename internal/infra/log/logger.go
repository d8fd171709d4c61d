// Package logs builds the process-wide slog logger from env.log.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"urjabandhu/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultServiceName = "urjabandhu"

type Params struct {
	fx.In

	Config *config.Config
}

func New(params Params) (*slog.Logger, error) {
	return newLogger(os.Stdout, params.Config)
}

// newLogger writes JSON, or text when env.log.pretty is set. Timestamps are
// UTC and debug builds record the call site.
func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level:       level,
		AddSource:   cfg.Env.Debug,
		ReplaceAttr: utcTime,
	}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	}

	name := cfg.Env.ServiceName
	if name == "" {
		name = defaultServiceName
	}

	return slog.New(handler).With(slog.String("service", name), slog.String("env", cfg.Env.Env)), nil
}

func utcTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		a.Value = slog.TimeValue(a.Value.Time().UTC().Truncate(time.Millisecond))
	}

	return a
}

// parseLogLevel accepts slog level names in any case plus "warning".
// Empty means info.
func parseLogLevel(s string) (slog.Level, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "":
		return slog.LevelInfo, nil
	case "warning":
		return slog.LevelWarn, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, errors.Wrapf(err, "env.log.level %q", s)
	}

	return level, nil
}
