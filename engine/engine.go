package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/spaghettifunk/vengine/engine/core"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

func (s Stage) String() string {
	switch s {
	case EngineStageUninitialized:
		return "uninitialized"
	case EngineStageInitializing:
		return "initializing"
	case EngineStageInitialized:
		return "initialized"
	case EngineStageShuttingDown:
		return "shutting down"
	default:
		return fmt.Sprintf("stage(%d)", uint8(s))
	}
}

// Engine wires the ambient services (configuration and logging) the math
// core and its consumers rely on.
type Engine struct {
	currentStage Stage
	configPath   string
	hotReload    bool

	mutex   sync.RWMutex
	config  *core.Config
	watcher *core.ConfigWatcher
}

type Option func(*Engine)

// WithConfigFile makes Initialize read the given .toml, .yaml or .yml file.
func WithConfigFile(path string) Option {
	return func(e *Engine) {
		e.configPath = path
	}
}

// WithHotReload re-applies the configuration whenever the file changes.
// It has no effect without WithConfigFile.
func WithHotReload(enabled bool) Option {
	return func(e *Engine) {
		e.hotReload = enabled
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		currentStage: EngineStageUninitialized,
		config:       core.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Initialize(ctx context.Context) error {
	if e.currentStage != EngineStageUninitialized {
		return fmt.Errorf("engine cannot be initialized in stage %s", e.currentStage)
	}
	e.currentStage = EngineStageInitializing

	cfg := core.DefaultConfig()
	if e.configPath != "" {
		if e.hotReload {
			w, err := core.WatchConfig(ctx, e.configPath, e.onConfigReload)
			if err != nil {
				e.currentStage = EngineStageUninitialized
				return err
			}
			e.watcher = w
			cfg = w.Current()
		} else {
			loaded, err := core.LoadConfig(e.configPath)
			if err != nil {
				e.currentStage = EngineStageUninitialized
				return err
			}
			cfg = loaded
		}
	}

	if err := e.applyConfig(cfg); err != nil {
		if e.watcher != nil {
			e.watcher.Close()
			e.watcher = nil
		}
		e.currentStage = EngineStageUninitialized
		return err
	}

	e.currentStage = EngineStageInitialized
	core.LogInfo("engine initialized (config: %q, hot reload: %t)", e.configPath, e.watcher != nil)
	return nil
}

// Config returns a copy of the configuration currently in effect.
func (e *Engine) Config() core.Config {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	return *e.config
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) Shutdown() error {
	if e.currentStage != EngineStageInitialized {
		return nil
	}
	e.currentStage = EngineStageShuttingDown

	var err error
	if e.watcher != nil {
		err = e.watcher.Close()
		e.watcher = nil
	}

	core.LogInfo("engine shut down")
	e.currentStage = EngineStageUninitialized
	return err
}

func (e *Engine) applyConfig(cfg *core.Config) error {
	if err := core.LoggerConfigure(cfg.Log); err != nil {
		return err
	}
	e.mutex.Lock()
	e.config = cfg
	e.mutex.Unlock()
	return nil
}

func (e *Engine) onConfigReload(cfg *core.Config) {
	if err := e.applyConfig(cfg); err != nil {
		core.LogError("failed to apply reloaded config: %s", err)
		return
	}
	core.LogInfo("configuration reloaded, log level %s", cfg.Log.Level)
}
