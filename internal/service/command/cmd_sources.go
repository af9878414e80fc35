package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/fakebot/internal/core"
)

type SourceLister interface {
	Sources() []string
}

// SenderCounter reports the size of the sender directory.
type SenderCounter interface {
	Count(ctx context.Context) (int, error)
}

type SourcesCommand struct {
	sources   SourceLister
	cache     core.IdentityCache
	senders   SenderCounter
	cfg       core.ResolveConfig
	formatter *ResponseFormatter
}

// NewSourcesCommand reports configured sources and cache state. senders may
// be nil when there is no sender directory.
func NewSourcesCommand(sources SourceLister, cache core.IdentityCache, senders SenderCounter, cfg core.ResolveConfig) *SourcesCommand {
	return &SourcesCommand{
		sources:   sources,
		cache:     cache,
		senders:   senders,
		cfg:       cfg,
		formatter: NewResponseFormatter(),
	}
}

func (c *SourcesCommand) Name() string {
	return "sources"
}

func (c *SourcesCommand) Description() string {
	return "Show name sources and cached names"
}

func (c *SourcesCommand) Execute(ctx context.Context, _ []string) (string, error) {
	names := c.sources.Sources()

	sections := []string{
		c.formatter.Info("Name sources"),
		c.formatter.Label("Cached names", fmt.Sprintf("%d", c.cache.Len())),
	}
	if c.senders != nil {
		n, err := c.senders.Count(ctx)
		if err != nil {
			return "", err
		}
		sections = append(sections, c.formatter.Label("Known senders", fmt.Sprintf("%d", n)))
	}
	sections = append(sections,
		c.formatter.Label("Per source timeout", c.cfg.GetLookupTimeout().String()),
		c.formatter.Label("Batch budget", c.cfg.GetResolveBudget().String()),
	)

	if len(names) == 0 {
		sections = append(sections,
			c.formatter.Tip("no name sources are configured, unnamed ids fall back to User<id>"),
		)
		return c.formatter.Combine(sections...), nil
	}

	items := make([]string, len(names))
	for i, n := range names {
		items[i] = fmt.Sprintf("%d. `%s`", i+1, strings.TrimSpace(n))
	}
	sections = append(sections,
		c.formatter.Success(fmt.Sprintf("%d name sources active", len(names))),
		c.formatter.List(items),
	)
	return c.formatter.Combine(sections...), nil
}
