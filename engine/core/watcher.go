package core

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher reloads a configuration file whenever it is written or
// replaced and hands the new Config to a callback. A file that fails to
// decode is logged and the previous Config stays current.
type ConfigWatcher struct {
	path     string
	onChange func(*Config)

	mutex   sync.RWMutex
	current *Config

	fsnotify  *fsnotify.Watcher
	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

// WatchConfig loads path once and then keeps watching it until ctx is
// cancelled or Close is called. onChange may be nil.
func WatchConfig(ctx context.Context, path string, onChange func(*Config)) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(abs)
	if err != nil {
		return nil, err
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors often replace the file instead of writing it.
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	cw := &ConfigWatcher{
		path:     abs,
		onChange: onChange,
		current:  cfg,
		fsnotify: fsWatch,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go cw.start(ctx)

	return cw, nil
}

// Current returns the last configuration that loaded successfully.
func (cw *ConfigWatcher) Current() *Config {
	cw.mutex.RLock()
	defer cw.mutex.RUnlock()
	return cw.current
}

func (cw *ConfigWatcher) Path() string {
	return cw.path
}

// Close stops the watcher and waits for its goroutine to exit.
func (cw *ConfigWatcher) Close() error {
	err := ErrWatcherClosed
	cw.closeOnce.Do(func() {
		close(cw.done)
		err = nil
	})
	<-cw.stopped
	return err
}

func (cw *ConfigWatcher) start(ctx context.Context) {
	defer close(cw.stopped)
	defer cw.fsnotify.Close()

	for {
		select {
		case e, ok := <-cw.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != cw.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				cw.reload()
			}

		case err, ok := <-cw.fsnotify.Errors:
			if !ok {
				return
			}
			LogError("config watcher: %s", err)

		case <-ctx.Done():
			return

		case <-cw.done:
			return
		}
	}
}

func (cw *ConfigWatcher) reload() {
	cfg, err := LoadConfig(cw.path)
	if err != nil {
		LogWarn("config watcher: keeping previous configuration: %s", err)
		return
	}

	cw.mutex.Lock()
	cw.current = cfg
	cw.mutex.Unlock()

	LogDebug("config watcher: reloaded %s", cw.path)
	if cw.onChange != nil {
		cw.onChange(cfg)
	}
}
