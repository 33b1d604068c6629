package db

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ZapGormLogger sends gorm's query traces to a zap logger.
type ZapGormLogger struct {
	logs          *zap.SugaredLogger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func NewZapGormLogger(logs *zap.SugaredLogger, slowThreshold time.Duration) *ZapGormLogger {
	return &ZapGormLogger{
		logs:          logs,
		level:         logger.Warn,
		slowThreshold: slowThreshold,
	}
}

func (l *ZapGormLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *ZapGormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		l.logs.Infof(msg, data...)
	}
}

func (l *ZapGormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		l.logs.Warnf(msg, data...)
	}
}

func (l *ZapGormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		l.logs.Errorf(msg, data...)
	}
}

func (l *ZapGormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	// not found and duplicate key are expected outcomes and are handled by callers
	case err != nil && l.level >= logger.Error &&
		!errors.Is(err, gorm.ErrRecordNotFound) &&
		!errors.Is(err, gorm.ErrDuplicatedKey):
		sql, rows := fc()
		l.logs.Errorw("query failed",
			"error", err,
			"sql", sql,
			"rows", rows,
			"elapsed", elapsed)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		sql, rows := fc()
		l.logs.Warnw("slow query",
			"sql", sql,
			"rows", rows,
			"elapsed", elapsed,
			"threshold", l.slowThreshold)
	case l.level >= logger.Info:
		sql, rows := fc()
		l.logs.Debugw("query",
			"sql", sql,
			"rows", rows,
			"elapsed", elapsed)
	}
}
