package config

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/fakebot/pkg/log"
)

const (
	SourceAliases   = "aliases"
	SourceDirectory = "directory"
	SourceTelegram  = "telegram"
	SourceHTTP      = "http"
)

type AppConfig struct {
	RuntimePath string

	// Command grammar
	Trigger   string `env:"FAKE_TRIGGER" envDefault:"/fake"`
	Delimiter string `env:"FAKE_DELIMITER" envDefault:"|"`

	// Transport Flags
	EnableTelegram bool `env:"FAKE_ENABLE_TELEGRAM" envDefault:"false"`

	// Name resolution
	NameSources   []string      `env:"FAKE_NAME_SOURCES" envDefault:"aliases,directory,telegram,http" envSeparator:","`
	LookupTimeout time.Duration `env:"FAKE_LOOKUP_TIMEOUT" envDefault:"3s"`
	ResolveBudget time.Duration `env:"FAKE_RESOLVE_BUDGET" envDefault:"5s"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c, err := ParseAppConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func ParseAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	c.RuntimePath = GetRuntimePath()
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *AppConfig) validate() error {
	if strings.TrimSpace(c.Trigger) == "" {
		return fmt.Errorf("FAKE_TRIGGER must not be blank")
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("FAKE_DELIMITER must be a single character, got %q", c.Delimiter)
	}
	for i, s := range c.NameSources {
		c.NameSources[i] = strings.ToLower(strings.TrimSpace(s))
		switch c.NameSources[i] {
		case SourceAliases, SourceDirectory, SourceTelegram, SourceHTTP:
		default:
			return fmt.Errorf("unknown name source %q", s)
		}
	}
	if c.LookupTimeout <= 0 || c.ResolveBudget <= 0 {
		return fmt.Errorf("lookup timeout and resolve budget must be positive")
	}
	return nil
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "fakebot.db")
}

func (c AppConfig) GetAliasesPath() string {
	return filepath.Join(c.RuntimePath, "aliases.yaml")
}

func (c AppConfig) GetTrigger() string {
	return c.Trigger
}

func (c AppConfig) GetDelimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

func (c AppConfig) GetLookupTimeout() time.Duration {
	return c.LookupTimeout
}

func (c AppConfig) GetResolveBudget() time.Duration {
	return c.ResolveBudget
}

func (c AppConfig) IsTelegramSelected() bool {
	return c.EnableTelegram
}

func (c AppConfig) HasSource(name string) bool {
	return slices.Contains(c.NameSources, name)
}
