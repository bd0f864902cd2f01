package candlecache

import (
	"accum_scanner/internal/modules/config"
	"accum_scanner/internal/modules/kvstore"

	"go.uber.org/fx"
)

// базовый ключ кэша свечей в kv-сторе
const cacheBase = "candles:daily"

func Module() fx.Option {
	return fx.Module("candlecache",
		fx.Provide(
			func(cfg *config.Config, store kvstore.Store) (*Cache, error) {
				return New(store, cacheBase, cfg.CacheChunkSize)
			},
		),
	)
}
