package sink

import (
	"context"

	"accum_scanner/internal/modules/sink/service"
	"accum_scanner/pkg/db"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("sink",
		fx.Provide(
			func(ctx context.Context, tm *db.PgTxManager) (service.Sink, error) {
				return service.NewPgSink(ctx, tm)
			},
		),
	)
}
