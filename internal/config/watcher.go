package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/giantswarm/wirecheck/pkg/logging"
)

// DefaultDebounceInterval is how long the watcher waits for further writes
// before reloading config.yaml.
const DefaultDebounceInterval = 500 * time.Millisecond

// Watcher reloads config.yaml when it changes and hands valid configurations
// to a callback. Invalid edits are logged and ignored, the last good
// configuration stays in effect.
type Watcher struct {
	configPath string
	debounce   time.Duration
	onChange   func(WirecheckConfig)
	done       chan struct{}
}

// NewWatcher creates a watcher for <configPath>/config.yaml.
func NewWatcher(configPath string, debounce time.Duration, onChange func(WirecheckConfig)) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounceInterval
	}
	return &Watcher{
		configPath: configPath,
		debounce:   debounce,
		onChange:   onChange,
		done:       make(chan struct{}),
	}
}

// Start begins watching. The configuration directory must exist. Watching
// stops when ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	// The directory is watched rather than the file so that editors which
	// replace the file on save keep being followed.
	if err := fsw.Add(w.configPath); err != nil {
		fsw.Close()
		return fmt.Errorf("failed to watch %s: %w", w.configPath, err)
	}

	go w.processEvents(ctx, fsw)

	logging.Info("ConfigWatcher", "Watching %s for configuration changes", filepath.Join(w.configPath, configFileName))
	return nil
}

// Done is closed once the watcher has stopped.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

func (w *Watcher) processEvents(ctx context.Context, fsw *fsnotify.Watcher) {
	defer close(w.done)
	defer fsw.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != configFileName {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logging.Error("ConfigWatcher", err, "Filesystem watcher error")
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadConfig(w.configPath)
	if err != nil {
		logging.Warn("ConfigWatcher", "Ignoring configuration change: %v", err)
		return
	}
	logging.Debug("ConfigWatcher", "Reloaded %s", filepath.Join(w.configPath, configFileName))
	w.onChange(cfg)
}
