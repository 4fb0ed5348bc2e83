package main

import (
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/presetly/internal/config"
	"github.com/alexisbeaulieu97/presetly/internal/document"
	"github.com/alexisbeaulieu97/presetly/internal/logger"
	"github.com/alexisbeaulieu97/presetly/internal/mode"
	"github.com/alexisbeaulieu97/presetly/internal/preset"
	"github.com/alexisbeaulieu97/presetly/internal/provider"
	"github.com/alexisbeaulieu97/presetly/internal/storage"
)

// appContext bundles the services each command needs: parsed configuration,
// the merged preset registry, persistent storage and a logger.
type appContext struct {
	cfg      *config.Config
	log      *logger.Logger
	registry *preset.Registry
	result   preset.CollectionResult
	store    storage.Store
}

func newAppContext(flags *rootFlags) (*appContext, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: cfg.Logging.HumanReadable})
	if err != nil {
		return nil, err
	}

	var custom map[string]preset.Preset
	if cfg.Presets.Collection != "" {
		custom, err = config.LoadCollection(cfg.Presets.Collection)
		if err != nil {
			return nil, err
		}
	}

	registry, result := preset.BuildRegistry(custom, log)

	store, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	return &appContext{
		cfg:      cfg,
		log:      log,
		registry: registry,
		result:   result,
		store:    store,
	}, nil
}

// loadConfig reads the config file named by the flag, falling back to the
// default location. A missing default file is not an error.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	if flags.configPath != "" {
		return config.ParseConfig(flags.configPath)
	}

	path, err := defaultConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return config.ParseConfig(path)
		}
	}

	cfg := &config.Config{Version: "1.0"}
	cfg.ApplyDefaults()
	return cfg, nil
}

func openStore(cfg *config.Config) (storage.Store, error) {
	dir := cfg.Storage.Path
	if dir == "" {
		var err error
		dir, err = defaultStateDir()
		if err != nil {
			return nil, err
		}
	}
	return storage.NewFileStore(dir)
}

// newProvider wires an attached provider over an in-memory document. CLI
// commands mutate persisted state through it and render the document.
func (app *appContext) newProvider() (*provider.Provider, *document.Memory) {
	doc := document.NewMemory()

	prov := provider.New(doc, app.store, app.registry, mode.EnvSource{}, provider.Options{
		DefaultMode:     mode.Mode(app.cfg.Engine.DefaultMode),
		DefaultPresetID: app.cfg.Engine.DefaultPreset,
		ModeKey:         app.cfg.Engine.ModeKey,
		PresetKey:       app.cfg.Engine.PresetKey,
		ReducedMotion:   app.cfg.Engine.ReducedMotion,
		Logger:          app.log,
	})
	prov.Attach()

	return prov, doc
}

func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "presetly", "presetly.yaml"), nil
}

func defaultStateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", "presetly"), nil
}
