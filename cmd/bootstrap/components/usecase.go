package components

import (
	"context"
	"log/slog"

	"event-portal/internal/pkg/clock"
	"event-portal/internal/pkg/config"
	"event-portal/internal/usecase/session"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseSessionModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseSessionModule = fx.Module("usecase/session",
	fx.Provide(
		session.NewRegistry,
	),
	fx.Invoke(runSessionSweeper),
)

func runSessionSweeper(lc fx.Lifecycle, registry *session.Registry, cfg config.Config, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				registry.Run(ctx, cfg.Session.SweepInterval)
			}()
			logger.Info("session sweeper started", "interval", cfg.Session.SweepInterval, "ttl", cfg.Session.TTL)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
