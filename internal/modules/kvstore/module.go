package kvstore

import (
	"context"
	"fmt"

	"accum_scanner/internal/modules/config"
	"accum_scanner/pkg/db"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Module выбирает бекенд стора по конфигу.
func Module() fx.Option {
	return fx.Module("kvstore",
		fx.Provide(
			func(ctx context.Context, cfg *config.Config, tm *db.PgTxManager) (Store, error) {
				switch cfg.KVBackend {
				case "postgres":
					return NewPostgres(ctx, tm, cfg.KVMaxValueSize)
				case "redis":
					cli := redis.NewClient(&redis.Options{
						Addr: cfg.Redis.Addr,
						DB:   cfg.Redis.DB,
					})
					if err := cli.Ping(ctx).Err(); err != nil {
						return nil, fmt.Errorf("redis ping: %w", err)
					}
					return NewRedis(cli, cfg.KVMaxValueSize), nil
				default:
					return nil, fmt.Errorf("unknown kv backend %q", cfg.KVBackend)
				}
			},
		),
	)
}
