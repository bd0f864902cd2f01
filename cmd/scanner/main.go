package main

import (
	"context"
	"log"

	"accum_scanner/internal/modules/bybit"
	"accum_scanner/internal/modules/cmc"
	"accum_scanner/internal/modules/config"
	"accum_scanner/internal/modules/postgres"
	"accum_scanner/internal/modules/screener"
	"accum_scanner/internal/modules/screener/service"
	"accum_scanner/internal/modules/sink"
	"accum_scanner/internal/notify"
	"accum_scanner/pkg/logger"
	"accum_scanner/pkg/tracing"

	"go.uber.org/fx"
)

func main() {
	logger.SetServiceName("scanner")
	tracing.SetServiceName("scanner")
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
		cmc.Module(),
		bybit.Module(),
		sink.Module(),
		notify.Module(),
		screener.Module(),
		fx.Invoke(run),
	)
	app.Run()
}

// run стартует один цикл сканирования и гасит приложение по завершении.
func run(lc fx.Lifecycle, sh fx.Shutdowner, cfg *config.Config, scanner *service.Scanner) {
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
				if err := scanner.Run(context.Background()); err != nil {
					logger.Error("scan failed: %v", err)
				}
			}()
			return nil
		},
	})
}
