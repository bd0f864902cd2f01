package listings

import (
	"accum_scanner/internal/modules/config"
	"accum_scanner/internal/modules/kvstore"
	"accum_scanner/internal/modules/listings/service"
	sink "accum_scanner/internal/modules/sink/service"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("listings",
		fx.Provide(
			service.NewSource,
			func(store kvstore.Store) *service.Cursor {
				return service.NewCursor(store)
			},
			func(cfg *config.Config, src *service.Source, cursor *service.Cursor, out sink.Sink) *service.Crawler {
				return service.NewCrawler(src, cursor, out, cfg.ListingsPages, cfg.ListingsBudget, cfg.PacingDelay)
			},
		),
	)
}
