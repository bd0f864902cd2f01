package screener

import (
	bybit "accum_scanner/internal/modules/bybit/service"
	cmc "accum_scanner/internal/modules/cmc/service"
	"accum_scanner/internal/modules/config"
	"accum_scanner/internal/modules/screener/service"
	sink "accum_scanner/internal/modules/sink/service"
	"accum_scanner/internal/notify"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("screener",
		fx.Provide(
			func(cfg *config.Config, cmcCli *cmc.Client, bybitCli *bybit.Client, out sink.Sink, n notify.Notifier) *service.Scanner {
				return service.NewScanner(cmcCli, bybitCli, out, n, cfg.ScanPages, cfg.PacingDelay)
			},
		),
	)
}
