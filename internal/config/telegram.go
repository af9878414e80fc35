package config

import (
	"context"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/fakebot/pkg/log"
)

type TelegramConfig struct {
	Token string `env:"FAKE_TELEGRAM_TOKEN,required,notEmpty"`
	// Empty means everyone may use the bot.
	AllowedIDs []int64 `env:"FAKE_TELEGRAM_ALLOWED_IDS" envSeparator:","`
}

func NewTelegramConfig(ctx context.Context) *TelegramConfig {
	c := &TelegramConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Telegram config")
	}
	return c
}

func (c TelegramConfig) IsAllowed(id int64) bool {
	return len(c.AllowedIDs) == 0 || slices.Contains(c.AllowedIDs, id)
}
