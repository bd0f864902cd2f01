package notify

import (
	"accum_scanner/internal/modules/config"

	"go.uber.org/fx"
)

// Module: телеграм при наличии токена, иначе stdout-заглушка.
func Module() fx.Option {
	return fx.Module("notify",
		fx.Provide(
			func(cfg *config.Config) (Notifier, error) {
				if cfg.Telegram.Token == "" {
					return NewStdout(), nil
				}
				return NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID)
			},
		),
	)
}
