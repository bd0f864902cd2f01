package bybit

import (
	"accum_scanner/internal/modules/bybit/service"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("bybit",
		fx.Provide(
			service.NewClient,
		),
	)
}
