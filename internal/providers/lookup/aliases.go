package lookup

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sandevgo/fakebot/pkg/log"
	"gopkg.in/yaml.v3"
)

// Aliases serves names from a YAML file of "key: name" pairs. A missing file
// is an empty alias list. Start keeps the list in sync with the file.
type Aliases struct {
	path string

	mu    sync.RWMutex
	names map[string]string

	watcher *fsnotify.Watcher
}

func NewAliases(path string) *Aliases {
	return &Aliases{
		path:  path,
		names: make(map[string]string),
	}
}

func (a *Aliases) Name() string {
	return "aliases"
}

func (a *Aliases) Lookup(_ context.Context, key string) (string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	name, ok := a.names[key]
	if !ok {
		return "", ErrNotFound
	}
	return name, nil
}

func (a *Aliases) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.names)
}

// Load replaces the alias list with the file contents. On error the
// previous list is kept.
func (a *Aliases) Load() error {
	data, err := os.ReadFile(a.path)
	if errors.Is(err, fs.ErrNotExist) {
		a.set(map[string]string{})
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read aliases: %w", err)
	}

	raw := make(map[string]string)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse aliases: %w", err)
	}

	names := make(map[string]string, len(raw))
	for k, v := range raw {
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k != "" && v != "" {
			names[k] = v
		}
	}
	a.set(names)
	return nil
}

func (a *Aliases) set(names map[string]string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.names = names
}

// Start loads the file and reloads it whenever it changes. The parent
// directory is watched so that editors replacing the file are noticed.
func (a *Aliases) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx).With().Str("path", a.path).Logger()

	if err := a.Load(); err != nil {
		logger.Error().Err(err).Msg("failed to load aliases")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Dir(a.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		w.Close()
		return fmt.Errorf("failed to create aliases directory: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	a.mu.Lock()
	a.watcher = w
	a.mu.Unlock()

	logger.Info().Int("aliases", a.Len()).Msg("watching aliases")

	base := filepath.Base(a.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if err := a.Load(); err != nil {
				logger.Warn().Err(err).Msg("failed to reload aliases")
				continue
			}
			logger.Info().Int("aliases", a.Len()).Msg("aliases reloaded")
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("aliases watcher error")
		}
	}
}

func (a *Aliases) Shutdown(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.watcher == nil {
		return nil
	}
	err := a.watcher.Close()
	a.watcher = nil
	return err
}
