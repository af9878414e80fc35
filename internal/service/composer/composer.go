// Package composer runs the turn pipeline: segmentation, parsing, name
// resolution and assembly.
package composer

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sandevgo/fakebot/internal/core"
	"github.com/sandevgo/fakebot/internal/service/segment"
	"github.com/sandevgo/fakebot/internal/service/turn"
	"github.com/sandevgo/fakebot/pkg/log"
)

type NameResolver interface {
	ResolveAll(ctx context.Context, turns []core.Turn) map[string]string
}

type Composer struct {
	cfg      core.ComposeConfig
	resolver NameResolver
}

func New(cfg core.ComposeConfig, resolver NameResolver) *Composer {
	return &Composer{
		cfg:      cfg,
		resolver: resolver,
	}
}

// ComposeCommand strips the trigger keyword from the first text component
// and composes the rest.
func (c *Composer) ComposeCommand(ctx context.Context, components []core.Component) ([]core.OutputRecord, error) {
	return c.Compose(ctx, segment.StripTrigger(components, c.cfg.GetTrigger()))
}

// ComposeText composes plain text, turning image URLs into attachments.
// The text must not contain the trigger.
func (c *Composer) ComposeText(ctx context.Context, text string) ([]core.OutputRecord, error) {
	return c.Compose(ctx, segment.FromText(text, c.cfg.GetDelimiter()))
}

// Compose turns components without a trigger into output records. It fails
// with a *NoTurnsError when nothing matched the turn grammar.
func (c *Composer) Compose(ctx context.Context, components []core.Component) ([]core.OutputRecord, error) {
	logger := log.FromCtx(ctx).With().Str("invocation", uuid.NewString()).Logger()
	ctx = logger.WithContext(ctx)

	segments := segment.Split(components, c.cfg.GetDelimiter())
	turns := turn.ParseAll(segments)

	logger.Debug().
		Int("components", len(components)).
		Int("segments", len(segments)).
		Int("turns", len(turns)).
		Msg("command parsed")

	if len(turns) == 0 {
		return nil, &NoTurnsError{Attempted: attempted(components)}
	}

	names := c.resolver.ResolveAll(ctx, turns)
	records := turn.Assemble(turns, names)
	if len(records) == 0 {
		return nil, &NoTurnsError{Attempted: attempted(components)}
	}

	logger.Info().
		Int("records", len(records)).
		Int("resolved", len(names)).
		Msg("turns composed")

	return records, nil
}

func attempted(components []core.Component) string {
	var sb strings.Builder
	for _, comp := range components {
		if t, ok := comp.(core.Text); ok {
			sb.WriteString(t.Value)
		}
	}
	return strings.TrimSpace(sb.String())
}
