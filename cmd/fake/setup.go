package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/fakebot/internal/config"
	"github.com/sandevgo/fakebot/internal/core"
	"github.com/sandevgo/fakebot/internal/providers/lookup"
	"github.com/sandevgo/fakebot/internal/service/command"
	"github.com/sandevgo/fakebot/internal/service/composer"
	"github.com/sandevgo/fakebot/internal/service/identity"
	"github.com/sandevgo/fakebot/internal/storage/sqlite"
	"github.com/sandevgo/fakebot/internal/transport/telegram"
	"github.com/sandevgo/fakebot/pkg/log"
	"github.com/sandevgo/fakebot/pkg/srv"
)

// NewServices builds everything `fake start` runs: the local name sources,
// the resolution pipeline and the Telegram bot when it is enabled.
func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)

	// 2. Storage and local name sources
	local, err := initLocalSources(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize name sources")
	}
	services := local.services

	// 3. Telegram API, shared by the bot and the telegram name source
	if !appCfg.IsTelegramSelected() {
		logger.Warn().Msg("telegram is disabled, use `fake compose` or `fake mcp` instead")
		return services
	}

	tgCfg := config.NewTelegramConfig(ctx)
	api, err := telegram.NewAPI(ctx, tgCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to telegram")
	}
	local.available[config.SourceTelegram] = []core.NameSource{lookup.NewTelegram(api)}

	// 4. Resolution pipeline
	p := newPipeline(ctx, appCfg, local.available)
	router := command.NewRouter(appCfg, p.resolver, p.cache, local.senders)

	// 5. Transports
	bot := telegram.NewBot(ctx, api, tgCfg, appCfg, p.composer, router, local.senders)
	services = append(services, bot)

	return services
}

type localSources struct {
	available lookup.Available
	aliases   *lookup.Aliases
	senders   *sqlite.SendersRepo
	services  []srv.Service
}

// initLocalSources opens the sender directory and prepares every name
// source that works without the Telegram API.
func initLocalSources(ctx context.Context, cfg *config.AppConfig) (*localSources, error) {
	db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open sender directory: %w", err)
	}
	senders := sqlite.NewSendersRepo(db)
	aliases := lookup.NewAliases(cfg.GetAliasesPath())

	local := &localSources{
		available: lookup.Available{
			config.SourceAliases:   {aliases},
			config.SourceDirectory: {lookup.NewDirectory(senders)},
			config.SourceHTTP:      lookup.NewHTTPSources(config.NewNameAPIConfig(ctx)),
		},
		aliases:  aliases,
		senders:  senders,
		services: []srv.Service{srv.NewCleanup(db.Close)},
	}

	// The alias file is only watched when it takes part in resolution
	if cfg.HasSource(config.SourceAliases) {
		local.services = append(local.services, aliases)
	}
	return local, nil
}

type pipeline struct {
	cache    *identity.Cache
	resolver *identity.Resolver
	composer *composer.Composer
}

func newPipeline(ctx context.Context, cfg *config.AppConfig, available lookup.Available) *pipeline {
	sources := lookup.Build(ctx, cfg.NameSources, available)

	cache := identity.NewCache()
	resolver := identity.NewResolver(cache, sources, cfg.GetLookupTimeout())
	orchestrator := identity.NewOrchestrator(resolver, cfg.GetResolveBudget())

	log.FromCtx(ctx).Info().Strs("sources", resolver.Sources()).Msg("name resolution ready")

	return &pipeline{
		cache:    cache,
		resolver: resolver,
		composer: composer.New(cfg, orchestrator),
	}
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}

// shutdownNow stops services in reverse order without waiting for a signal.
func shutdownNow(ctx context.Context, services []srv.Service) {
	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Shutdown(ctx); err != nil {
			log.FromCtx(ctx).Warn().Err(err).Msgf("%T failed to shutdown", services[i])
		}
	}
}
