package volatility

import (
	bybit "accum_scanner/internal/modules/bybit/service"
	"accum_scanner/internal/modules/candlecache"
	"accum_scanner/internal/modules/config"
	sink "accum_scanner/internal/modules/sink/service"
	"accum_scanner/internal/modules/volatility/service"
	"accum_scanner/internal/notify"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("volatility",
		fx.Provide(
			func(cfg *config.Config, bybitCli *bybit.Client, cache *candlecache.Cache, out sink.Sink, n notify.Notifier) *service.Pass {
				score := service.ScoreConfig{
					Slope:     cfg.VolSlope,
					Intercept: cfg.VolIntercept,
					Stdev:     cfg.VolStdev,
				}
				return service.NewPass(bybitCli, cache, out, n, score, cfg.KlineDays, cfg.PacingDelay)
			},
		),
	)
}
