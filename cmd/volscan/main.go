package main

import (
	"context"
	"log"

	"accum_scanner/internal/modules/bybit"
	"accum_scanner/internal/modules/candlecache"
	"accum_scanner/internal/modules/config"
	"accum_scanner/internal/modules/kvstore"
	"accum_scanner/internal/modules/postgres"
	"accum_scanner/internal/modules/sink"
	"accum_scanner/internal/modules/volatility"
	"accum_scanner/internal/modules/volatility/service"
	"accum_scanner/internal/notify"
	"accum_scanner/pkg/logger"
	"accum_scanner/pkg/tracing"

	"go.uber.org/fx"
)

func main() {
	logger.SetServiceName("volscan")
	tracing.SetServiceName("volscan")
	if err := logger.Init(); err != nil {
		log.Fatal(err)
	}

	app := fx.New(
		fx.Provide(
			func() context.Context {
				return context.Background()
			},
		),
		config.Module(),
		postgres.Module(),
		bybit.Module(),
		kvstore.Module(),
		candlecache.Module(),
		sink.Module(),
		notify.Module(),
		volatility.Module(),
		fx.Invoke(run),
	)
	app.Run()
}

// run обновляет кэш свечей и досчитывает волатильность одним вызовом.
func run(lc fx.Lifecycle, sh fx.Shutdowner, cfg *config.Config, pass *service.Pass) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			_, closeTracer, err := tracing.InitTracer(tracing.Config{
				Host: cfg.Tracing.Host,
				Port: cfg.Tracing.Port,
			})
			if err != nil {
				return err
			}
			go func() {
				defer func() {
					closeTracer()
					_ = sh.Shutdown()
				}()
				ctx := context.Background()
				if err := pass.RefreshCache(ctx); err != nil {
					logger.Error("cache refresh failed: %v", err)
					return
				}
				if err := pass.Run(ctx); err != nil {
					logger.Error("volatility pass failed: %v", err)
				}
			}()
			return nil
		},
	})
}
