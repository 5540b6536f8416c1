package database

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

// logger writes gorm logs to zerolog.
//
// Queries are logged at debug level. Failed queries are logged as errors,
// except for gorm.ErrRecordNotFound: the stores translate it into
// models.ErrResourceNotFound and a lookup for a missing resource is a
// regular outcome, not a failure of the database.
type logger struct {
	Logger zerolog.Logger
}

// LogMode returns a logger limited to the gorm log level.
func (l *logger) LogMode(level gorm_logger.LogLevel) gorm_logger.Interface {
	limited := *l

	switch level {
	case gorm_logger.Silent:
		limited.Logger = l.Logger.Level(zerolog.Disabled)
	case gorm_logger.Error:
		limited.Logger = l.Logger.Level(zerolog.ErrorLevel)
	case gorm_logger.Warn:
		limited.Logger = l.Logger.Level(zerolog.WarnLevel)
	}

	return &limited
}

func (l *logger) Info(_ context.Context, s string, args ...any) {
	l.Logger.Info().Msgf(s, args...)
}

func (l *logger) Warn(_ context.Context, s string, args ...any) {
	l.Logger.Warn().Msgf(s, args...)
}

func (l *logger) Error(_ context.Context, s string, args ...any) {
	l.Logger.Error().Msgf(s, args...)
}

// Trace logs a single SQL statement with its duration and affected rows.
func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, rows := fc()
	event := l.Logger.Debug()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		event = l.Logger.Error().Err(err)
	}

	event.
		Str("sql", sql).
		Int64("rows", rows).
		Dur("duration", time.Since(begin)).
		Msg("Database")
}
