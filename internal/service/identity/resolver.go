package identity

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/sandevgo/fakebot/internal/core"
	"github.com/sandevgo/fakebot/pkg/log"
	"golang.org/x/sync/singleflight"
)

var errBlankName = errors.New("blank name")

type Resolver struct {
	cache   core.IdentityCache
	sources []core.NameSource
	timeout time.Duration
	flight  singleflight.Group
}

// NewResolver returns a resolver that tries sources in order, giving each
// one at most timeout per lookup.
func NewResolver(cache core.IdentityCache, sources []core.NameSource, timeout time.Duration) *Resolver {
	return &Resolver{
		cache:   cache,
		sources: sources,
		timeout: timeout,
	}
}

// Resolve always returns a usable name, falling back to Synthetic(key).
func (r *Resolver) Resolve(ctx context.Context, key string) string {
	if name, ok := r.TryResolve(ctx, key); ok {
		return name
	}
	return Synthetic(key)
}

// TryResolve returns the cached name for key or the first non-blank name a
// source returns. Concurrent calls for the same key share one lookup. The
// shared lookup runs on its own deadline, so a caller whose context ends
// early does not cut it short for the others.
func (r *Resolver) TryResolve(ctx context.Context, key string) (string, bool) {
	if name, ok := r.cache.Get(key); ok {
		return name, true
	}

	ch := r.flight.DoChan(key, func() (any, error) {
		if name, ok := r.cache.Get(key); ok {
			return name, nil
		}
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.flightTimeout())
		defer cancel()
		return r.lookup(fctx, key), nil
	})

	select {
	case res := <-ch:
		name := res.Val.(string)
		return name, name != ""
	case <-ctx.Done():
		return "", false
	}
}

// flightTimeout bounds one shared lookup: every source may use its full
// per-source timeout.
func (r *Resolver) flightTimeout() time.Duration {
	return r.timeout * time.Duration(max(len(r.sources), 1))
}

func (r *Resolver) Sources() []string {
	names := make([]string, len(r.sources))
	for i, s := range r.sources {
		names[i] = s.Name()
	}
	return names
}

func (r *Resolver) lookup(ctx context.Context, key string) string {
	logger := log.FromCtx(ctx).With().Str("key", key).Logger()

	for i, src := range r.sources {
		if ctx.Err() != nil {
			logger.Debug().Err(ctx.Err()).Msg("resolution abandoned")
			return ""
		}

		name, err := r.query(ctx, src, key, i == len(r.sources)-1)
		if err != nil {
			logger.Debug().Err(err).Str("source", src.Name()).Msg("name source missed")
			continue
		}

		logger.Debug().Str("source", src.Name()).Str("name", name).Msg("name resolved")
		if cached, ok := r.cache.Get(key); ok {
			return cached
		}
		return name
	}

	return ""
}

type queryResult struct {
	name string
	err  error
}

// pendingQuery hands a lookup result from the source goroutine to query.
// Once abandoned, a late result is dropped instead of cached.
type pendingQuery struct {
	mu        sync.Mutex
	abandoned bool
	res       *queryResult
}

// query runs one source lookup under the per-source timeout. A source that
// ignores cancellation is left running. When it times out and a later
// source is still to be tried, its eventual answer is dropped so it cannot
// take the place of the later source's name. The last source, or one cut
// short by the parent context, may still fill the cache when it answers.
func (r *Resolver) query(ctx context.Context, src core.NameSource, key string, last bool) (string, error) {
	qctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	p := &pendingQuery{}
	done := make(chan struct{})
	go func() {
		name, err := src.Lookup(qctx, key)
		name = strings.TrimSpace(name)
		if err == nil && name == "" {
			err = errBlankName
		}

		p.mu.Lock()
		defer p.mu.Unlock()
		if p.abandoned {
			return
		}
		if err == nil {
			r.cache.Put(key, name)
		}
		p.res = &queryResult{name: name, err: err}
		close(done)
	}()

	select {
	case <-done:
	case <-qctx.Done():
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.res != nil {
		return p.res.name, p.res.err
	}
	if !last && ctx.Err() == nil {
		p.abandoned = true
	}
	return "", qctx.Err()
}
