// Package config loads and validates the engine configuration document and
// custom preset collection files.
package config

// Config represents the full engine configuration document.
type Config struct {
	Version string        `yaml:"version" validate:"required,semver"`
	Name    string        `yaml:"name,omitempty" validate:"omitempty,max=100"`
	Engine  EngineConfig  `yaml:"engine,omitempty"`
	Storage StorageConfig `yaml:"storage,omitempty"`
	Presets PresetConfig  `yaml:"presets,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// EngineConfig holds the reconciliation defaults handed to the provider.
type EngineConfig struct {
	DefaultMode   string `yaml:"default_mode,omitempty" validate:"omitempty,theme_mode"`
	DefaultPreset string `yaml:"default_preset,omitempty" validate:"omitempty,preset_key"`
	ModeKey       string `yaml:"mode_key,omitempty" validate:"omitempty,storage_key"`
	PresetKey     string `yaml:"preset_key,omitempty" validate:"omitempty,storage_key"`
	ReducedMotion bool   `yaml:"reduced_motion,omitempty"`
}

// StorageConfig selects where persisted mode and preset state live.
type StorageConfig struct {
	Path string `yaml:"path,omitempty"`
}

// PresetConfig points at an optional custom preset collection file.
type PresetConfig struct {
	Collection string `yaml:"collection,omitempty"`
}

// LoggingConfig tunes diagnostic output.
type LoggingConfig struct {
	Level         string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	HumanReadable bool   `yaml:"human_readable,omitempty"`
}

// ApplyDefaults fills zero-valued fields so callers never re-check for
// empty keys.
func (c *Config) ApplyDefaults() {
	if c.Engine.DefaultMode == "" {
		c.Engine.DefaultMode = "system"
	}
	if c.Engine.ModeKey == "" {
		c.Engine.ModeKey = "theme-engine-theme"
	}
	if c.Engine.PresetKey == "" {
		c.Engine.PresetKey = "theme-preset"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "warn"
	}
}
