package identity

import (
	"context"
	"sync"
	"time"

	"github.com/sandevgo/fakebot/internal/core"
	"github.com/sandevgo/fakebot/pkg/log"
	"golang.org/x/sync/errgroup"
)

type Orchestrator struct {
	resolver *Resolver
	budget   time.Duration
}

func NewOrchestrator(resolver *Resolver, budget time.Duration) *Orchestrator {
	return &Orchestrator{
		resolver: resolver,
		budget:   budget,
	}
}

// ResolveAll resolves the distinct keys of turns without an override
// concurrently and returns the names found within the budget. Keys that
// could not be resolved in time are absent from the result.
func (o *Orchestrator) ResolveAll(ctx context.Context, turns []core.Turn) map[string]string {
	keys := PendingKeys(turns)
	if len(keys) == 0 {
		return map[string]string{}
	}

	ctx, cancel := context.WithTimeout(ctx, o.budget)
	defer cancel()

	var (
		mu    sync.Mutex
		names = make(map[string]string, len(keys))
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, key := range keys {
		g.Go(func() error {
			name, ok := o.resolver.TryResolve(gctx, key)
			if !ok {
				return nil
			}
			mu.Lock()
			names[key] = name
			mu.Unlock()
			return nil
		})
	}

	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		log.FromCtx(ctx).Debug().
			Dur("budget", o.budget).
			Int("keys", len(keys)).
			Msg("resolution budget expired")
	}

	mu.Lock()
	defer mu.Unlock()

	out := make(map[string]string, len(names))
	for k, v := range names {
		out[k] = v
	}
	return out
}

// PendingKeys returns the distinct keys of turns without an override, in
// first-seen order.
func PendingKeys(turns []core.Turn) []string {
	seen := make(map[string]struct{}, len(turns))
	keys := make([]string, 0, len(turns))
	for _, t := range turns {
		if t.HasOverride() {
			continue
		}
		if _, ok := seen[t.Key]; ok {
			continue
		}
		seen[t.Key] = struct{}{}
		keys = append(keys, t.Key)
	}
	return keys
}
