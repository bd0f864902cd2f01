package main

import (
	"context"
	"flag"
	"log"

	"accum_scanner/internal/modules/config"
	"accum_scanner/internal/modules/kvstore"
	"accum_scanner/internal/modules/listings"
	"accum_scanner/internal/modules/listings/service"
	"accum_scanner/internal/modules/postgres"
	"accum_scanner/internal/modules/sink"
	"accum_scanner/pkg/logger"

	"go.uber.org/fx"
)

func main() {
	reset := flag.Bool("reset", false, "drop the crawl cursor and exit")
	flag.Parse()

	logger.SetServiceName("listings")
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
		kvstore.Module(),
		sink.Module(),
		listings.Module(),
		fx.Invoke(func(lc fx.Lifecycle, sh fx.Shutdowner, crawler *service.Crawler) {
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					go func() {
						defer func() { _ = sh.Shutdown() }()
						ctx := context.Background()
						if *reset {
							if err := crawler.Reset(ctx); err != nil {
								logger.Error("reset failed: %v", err)
							}
							return
						}
						// внешний шедулер перезапускает нас, пока курсор
						// не дойдёт до конца
						if err := crawler.Run(ctx); err != nil {
							logger.Error("crawl failed: %v", err)
						}
					}()
					return nil
				},
			})
		}),
	)
	app.Run()
}
