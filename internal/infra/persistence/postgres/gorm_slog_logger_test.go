package postgres

import (
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGormSlogLogger_Classify(t *testing.T) {
	warnLogger := &gormSlogLogger{level: logger.Warn, slowThreshold: defaultGormSlowThreshold}
	infoLogger := &gormSlogLogger{level: logger.Info, slowThreshold: defaultGormSlowThreshold}

	tests := []struct {
		name      string
		l         *gormSlogLogger
		err       error
		elapsed   time.Duration
		wantLevel slog.Level
		wantLog   bool
	}{
		{name: "failure", l: warnLogger, err: errors.New("connection reset"), wantLevel: slog.LevelError, wantLog: true},
		{name: "miss hidden at warn", l: warnLogger, err: gorm.ErrRecordNotFound, wantLevel: slog.LevelDebug, wantLog: false},
		{
			name:      "duplicate consumer number at info",
			l:         infoLogger,
			err:       &pgconn.PgError{Code: sqlStateUniqueViolation},
			wantLevel: slog.LevelDebug,
			wantLog:   true,
		},
		{name: "slow", l: warnLogger, elapsed: time.Second, wantLevel: slog.LevelWarn, wantLog: true},
		{name: "fast hidden at warn", l: warnLogger, elapsed: time.Millisecond, wantLevel: slog.LevelInfo, wantLog: false},
		{name: "fast shown at info", l: infoLogger, elapsed: time.Millisecond, wantLevel: slog.LevelInfo, wantLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, _, ok := tt.l.classify(tt.err, tt.elapsed)

			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, tt.wantLog, ok)
		})
	}
}

func TestGormSlogLogger_LogModeClones(t *testing.T) {
	base := &gormSlogLogger{level: logger.Warn}

	silent := base.LogMode(logger.Silent).(*gormSlogLogger)

	assert.Equal(t, logger.Silent, silent.level)
	assert.Equal(t, logger.Warn, base.level)
}
