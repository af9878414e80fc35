package lookup

import (
	"context"

	"github.com/sandevgo/fakebot/internal/config"
	"github.com/sandevgo/fakebot/internal/core"
	"github.com/sandevgo/fakebot/pkg/log"
)

// Available holds the sources that could be constructed, keyed by the
// names used in FAKE_NAME_SOURCES. The http entry may hold several sources.
type Available map[string][]core.NameSource

// Build returns the sources in configured order, skipping names that have
// nothing available.
func Build(ctx context.Context, order []string, available Available) []core.NameSource {
	logger := log.FromCtx(ctx)

	var sources []core.NameSource
	for _, name := range order {
		list, ok := available[name]
		if !ok || len(list) == 0 {
			logger.Debug().Str("source", name).Msg("name source unavailable, skipped")
			continue
		}
		sources = append(sources, list...)
	}
	return sources
}

func NewHTTPSources(cfg *config.NameAPIConfig) []core.NameSource {
	sources := make([]core.NameSource, 0, len(cfg.URLs))
	for _, u := range cfg.URLs {
		if u == "" {
			continue
		}
		sources = append(sources, NewHTTP(u, cfg))
	}
	return sources
}
