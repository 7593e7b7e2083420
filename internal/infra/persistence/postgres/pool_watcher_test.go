package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObservePool(t *testing.T) {
	last := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	_, _, ok := observePool(last, last)
	assert.False(t, ok)

	level, attrs, ok := observePool(last, sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond, InUse: 8, MaxOpenConnections: 8})
	assert.True(t, ok)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Equal(t, slog.Int64("waits", 2), attrs[0])
	assert.Equal(t, slog.Duration("avgWait", 5*time.Millisecond), attrs[2])

	level, _, ok = observePool(last, sql.DBStats{WaitCount: 11, WaitDuration: 2 * time.Second})
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestPoolWatcher_StartWithoutPool(t *testing.T) {
	w := newPoolWatcher(nil, slog.New(slog.DiscardHandler))
	w.start()
	w.stop()
	assert.Nil(t, w.cancel)
}
