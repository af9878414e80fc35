package config

import (
	"context"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/fakebot/pkg/log"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

// NameAPIConfig describes external HTTP nickname services. Every URL is a
// template where {key} is replaced with the lookup key.
type NameAPIConfig struct {
	URLs       []string `env:"FAKE_NAME_API_URLS" envSeparator:","`
	Format     string   `env:"FAKE_NAME_API_FORMAT" envDefault:"json"`
	NamePath   string   `env:"FAKE_NAME_API_NAME_PATH" envDefault:"data.name"`
	StatusPath string   `env:"FAKE_NAME_API_STATUS_PATH" envDefault:"code"`
	StatusOK   int64    `env:"FAKE_NAME_API_STATUS_OK" envDefault:"200"`
}

func NewNameAPIConfig(ctx context.Context) *NameAPIConfig {
	c := &NameAPIConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse name API config")
	}
	return c
}

func (c NameAPIConfig) GetNamePath() []string {
	return splitPath(c.NamePath)
}

func (c NameAPIConfig) GetStatusPath() []string {
	return splitPath(c.StatusPath)
}

func splitPath(p string) []string {
	p = strings.TrimSpace(p)
	if p == "" {
		return nil
	}
	return strings.Split(p, ".")
}
