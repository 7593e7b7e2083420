package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dropzone/config"
	"dropzone/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

const defaultSlowQuery = 200 * time.Millisecond

// queryLogger routes gorm's statement trace into slog. Missing-row lookups
// are routine for drop point and assignment reads and are never reported.
type queryLogger struct {
	logger    *slog.Logger
	level     gormlogger.LogLevel
	slowQuery time.Duration
}

func newQueryLogger(base *slog.Logger, cfg *config.Config) *queryLogger {
	ql := &queryLogger{
		logger:    slog.New(slog.DiscardHandler),
		level:     gormlogger.Warn,
		slowQuery: defaultSlowQuery,
	}
	if base != nil {
		ql.logger = base.With(slog.String("component", "postgres"))
	}
	if cfg == nil {
		return ql
	}
	if cfg.Env.Debug {
		ql.level = gormlogger.Info
	}
	if cfg.Database != nil && cfg.Database.SlowQueryThreshold > 0 {
		ql.slowQuery = cfg.Database.SlowQueryThreshold
	}

	return ql
}

func (q *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	next := *q
	next.level = level

	return &next
}

func (q *queryLogger) Info(ctx context.Context, format string, args ...any) {
	q.printf(ctx, gormlogger.Info, slog.LevelInfo, format, args)
}

func (q *queryLogger) Warn(ctx context.Context, format string, args ...any) {
	q.printf(ctx, gormlogger.Warn, slog.LevelWarn, format, args)
}

func (q *queryLogger) Error(ctx context.Context, format string, args ...any) {
	q.printf(ctx, gormlogger.Error, slog.LevelError, format, args)
}

func (q *queryLogger) printf(ctx context.Context, threshold gormlogger.LogLevel, level slog.Level, format string, args []any) {
	if q.level < threshold {
		return
	}
	q.logger.LogAttrs(ctx, level, "gorm message", slog.String("detail", fmt.Sprintf(format, args...)))
}

// Trace reports one executed statement.
func (q *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)

	level, msg, ok := q.classify(elapsed, err)
	if !ok {
		return
	}

	statement, rows := fc()
	attrs := []slog.Attr{
		slog.String("sql", statement),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
		slog.String("caller", utils.FileWithLineNum()),
	}
	switch {
	case err != nil:
		attrs = append(attrs, slog.Any("error", err))
	case level == slog.LevelWarn:
		attrs = append(attrs, slog.Duration("slowQuery", q.slowQuery))
	}

	q.logger.LogAttrs(ctx, level, msg, attrs...)
}

// classify decides whether a statement is logged and at which level.
func (q *queryLogger) classify(elapsed time.Duration, err error) (slog.Level, string, bool) {
	switch {
	case q.level == gormlogger.Silent:
		return 0, "", false
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && q.level >= gormlogger.Error:
		return slog.LevelError, "query failed", true
	case q.slowQuery > 0 && elapsed > q.slowQuery && q.level >= gormlogger.Warn:
		return slog.LevelWarn, "slow query", true
	case q.level >= gormlogger.Info:
		return slog.LevelDebug, "query", true
	}

	return 0, "", false
}
