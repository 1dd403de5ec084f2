package log

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
)

var (
	globalLogger zerolog.Logger
	sentryDSN    string
)

func init() {
	globalLogger = zerolog.New(
		zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC822,
		}).With().Timestamp().Logger()
}

// SetupLog init logger
func SetupLog(level, dsn string) error {
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return errors.WithStack(err)
	}
	zerolog.SetGlobalLevel(l)

	if dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			return errors.WithStack(err)
		}
		sentryDSN = dsn
	}
	return nil
}

// Fatalf forwards to sentry
func Fatalf(ctx context.Context, err error, format string, args ...any) {
	fatalf(ctx, err, format, nil, args...)
}

// Warnf is Warnf
func Warnf(ctx context.Context, format string, args ...any) {
	warnf(ctx, format, nil, args...)
}

// Infof is Infof
func Infof(ctx context.Context, format string, args ...any) {
	infof(ctx, format, nil, args...)
}

// Info is Info
func Info(ctx context.Context, args ...any) {
	Infof(ctx, "%+v", args...)
}

// Debugf is Debugf
func Debugf(ctx context.Context, format string, args ...any) {
	debugf(ctx, format, nil, args...)
}

// Errorf forwards to sentry
func Errorf(ctx context.Context, err error, format string, args ...any) {
	errorf(ctx, err, format, nil, args...)
}

// Error forwards to sentry
func Error(ctx context.Context, err error, args ...any) {
	Errorf(ctx, err, "%+v", args...)
}
