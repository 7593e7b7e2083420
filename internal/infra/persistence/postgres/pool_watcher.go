package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"
)

const (
	poolWatchInterval  = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
	poolWatcherMessage = "postgres pool saturated"
)

// poolWatcher samples connection pool stats and reports callers that had to
// wait for a connection.
type poolWatcher struct {
	db     *sql.DB
	logger *slog.Logger
	cancel context.CancelFunc
	done   chan struct{}
}

func newPoolWatcher(db *sql.DB, logger *slog.Logger) *poolWatcher {
	return &poolWatcher{db: db, logger: logger}
}

func (w *poolWatcher) start() {
	if w.logger == nil || w.db == nil || w.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})

	go w.run(ctx)
}

func (w *poolWatcher) stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
}

func (w *poolWatcher) run(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(poolWatchInterval)
	defer ticker.Stop()

	last := w.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := w.db.Stats()
			if level, attrs, ok := observePool(last, now); ok {
				w.logger.LogAttrs(ctx, level, poolWatcherMessage, attrs...)
			}
			last = now
		}
	}
}

// observePool compares two samples. It reports nothing when no caller
// waited in between, and warns once the added wait crosses poolWaitWarnAfter.
func observePool(last, now sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waits := now.WaitCount - last.WaitCount
	if waits <= 0 {
		return 0, nil, false
	}

	waited := now.WaitDuration - last.WaitDuration
	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	return level, []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("open", now.OpenConnections),
		slog.Int("inUse", now.InUse),
		slog.Int("idle", now.Idle),
		slog.Int("maxOpen", now.MaxOpenConnections),
	}, true
}
