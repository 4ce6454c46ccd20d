package gormstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tracenfind/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowStatementThreshold = 200 * time.Millisecond

// storeLogger reports GORM activity as [Store] records. Failed statements are
// always reported, slow ones from warn level, and every statement except
// watch polls in debug mode.
type storeLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
	slow   time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &storeLogger{logger: base, level: level, slow: slowStatementThreshold}
}

func (l *storeLogger) LogMode(level logger.LogLevel) logger.Interface {
	next := *l
	next.level = level

	return &next
}

func (l *storeLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *storeLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *storeLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *storeLogger) message(ctx context.Context, enabledAt logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.logger == nil || l.level < enabledAt {
		return
	}

	l.logger.LogAttrs(ctx, level, "[Store] "+fmt.Sprintf(msg, args...))
}

func (l *storeLogger) Trace(ctx context.Context, begin time.Time, statement func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	took := time.Since(begin)
	polled := isPollScope(ctx)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.logger.LogAttrs(ctx, slog.LevelError, "[Store] statement failed",
			statementAttr(statement, took, polled),
			slog.Any("error", err),
		)
	case l.slow > 0 && took > l.slow && l.level >= logger.Warn:
		l.logger.LogAttrs(ctx, slog.LevelWarn, "[Store] slow statement",
			statementAttr(statement, took, polled),
			slog.Duration("threshold", l.slow),
		)
	case l.level >= logger.Info && !polled:
		// Polls repeat the same reads every interval.
		l.logger.LogAttrs(ctx, slog.LevelInfo, "[Store] statement",
			statementAttr(statement, took, polled),
		)
	}
}

func statementAttr(statement func() (string, int64), took time.Duration, polled bool) slog.Attr {
	sql, rows := statement()

	return slog.Group("statement",
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Int64("took_ms", took.Milliseconds()),
		slog.Bool("poll", polled),
	)
}
