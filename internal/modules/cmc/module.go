package cmc

import (
	"accum_scanner/internal/modules/cmc/service"
	"accum_scanner/internal/modules/config"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("cmc",
		fx.Provide(
			func(cfg *config.Config) (*service.Client, error) {
				return service.NewClient(cfg.CMCAPIKey)
			},
		),
	)
}
