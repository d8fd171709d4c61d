package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolMonitor_Observe(t *testing.T) {
	m := &poolMonitor{prev: sql.DBStats{WaitCount: 10, WaitDuration: time.Second}}

	_, _, ok := m.observe(sql.DBStats{WaitCount: 10, WaitDuration: time.Second})
	assert.False(t, ok, "no new waits")

	level, attrs, ok := m.observe(sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond})
	assert.True(t, ok)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Equal(t, "waits", attrs[0].Key)
	assert.Equal(t, int64(2), attrs[0].Value.Int64())
	assert.Equal(t, 5*time.Millisecond, attrs[2].Value.Duration())

	level, _, ok = m.observe(sql.DBStats{WaitCount: 13, WaitDuration: 2 * time.Second})
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)
}
