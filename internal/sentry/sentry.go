package sentry

import (
	"context"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	"go.uber.org/fx"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/config"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/logger"
)

// RegisterHooks initializes Sentry on application start and flushes
// pending events on shutdown. A disabled config is a no-op.
func RegisterHooks(lc fx.Lifecycle, cfg *config.Configuration, log *logger.Logger) {
	if !cfg.Sentry.Enabled {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			err := sentrygo.Init(sentrygo.ClientOptions{
				Dsn:              cfg.Sentry.DSN,
				Environment:      cfg.Sentry.Environment,
				TracesSampleRate: cfg.Sentry.SampleRate,
				EnableTracing:    cfg.Sentry.SampleRate > 0,
			})
			if err != nil {
				// Telemetry must never keep the service from starting.
				log.Errorw("failed to initialize sentry", "error", err)
				return nil
			}
			log.Infow("sentry initialized", "environment", cfg.Sentry.Environment)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			sentrygo.Flush(2 * time.Second)
			return nil
		},
	})
}
