package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Loader holds the current configuration and reloads it when the file changes.
type Loader struct {
	path   string
	logger *slog.Logger

	mu       sync.RWMutex
	current  *Config
	onChange []func(*Config)
}

// NewLoader performs the initial load. An empty path serves defaults and
// never reloads.
func NewLoader(path string, logger *slog.Logger) (*Loader, error) {
	cfg, err := LoadAndValidate(path)
	if err != nil {
		return nil, err
	}
	return NewLoaderFrom(path, cfg, logger), nil
}

// NewLoaderFrom creates a Loader whose current config is cfg, which must
// already have been loaded from path and validated. The file is not read
// until the next reload.
func NewLoaderFrom(path string, cfg *Config, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{path: path, logger: logger, current: cfg}
}

// Config returns the current (latest) configuration.
func (l *Loader) Config() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// OnChange registers a callback invoked whenever the config reloads.
func (l *Loader) OnChange(fn func(*Config)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Reload forces an immediate re-read of the config file. On error the
// current configuration is kept.
func (l *Loader) Reload() (*Config, error) {
	cfg, err := LoadAndValidate(l.path)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.current = cfg
	callbacks := make([]func(*Config), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()
	for _, fn := range callbacks {
		fn(cfg)
	}
	return cfg, nil
}

// Watch reloads the config on file changes until ctx is done.
//
// The parent directory is watched so that editors which replace the file
// by rename keep triggering reloads.
func (l *Loader) Watch(ctx context.Context) error {
	if l.path == "" {
		<-ctx.Done()
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config watcher: %w", err)
	}
	defer w.Close()

	target := filepath.Clean(l.path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("config watcher add %s: %w", filepath.Dir(target), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if _, err := l.Reload(); err != nil {
				l.logger.Warn("config reload failed, keeping previous config",
					"path", l.path,
					"error", err,
				)
				continue
			}
			l.logger.Info("config reloaded", "path", l.path)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			l.logger.Warn("config watcher error", "error", err)
		}
	}
}
