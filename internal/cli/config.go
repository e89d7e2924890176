package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/agentdeck/agentdeck/pkg/errors"
	"github.com/agentdeck/agentdeck/pkg/workflow"
)

// =============================================================================
// Config - Optional User Preferences
// =============================================================================

// Config holds user preferences loaded from config.toml in the agentdeck
// config directory. Every field is optional; absent values fall back to
// the built-in export defaults.
type Config struct {
	Export ExportConfig `toml:"export"`
}

// ExportConfig overrides export serializer defaults.
type ExportConfig struct {
	Model       string  `toml:"model"`
	Temperature float64 `toml:"temperature"`
	Out         string  `toml:"out"` // default output path; empty means stdout
}

// defaultConfig returns the built-in defaults.
func defaultConfig() Config {
	return Config{
		Export: ExportConfig{
			Model:       workflow.DefaultModel,
			Temperature: workflow.DefaultTemperature,
		},
	}
}

// loadConfig reads the config file at path, or from the default location
// (~/.config/agentdeck/config.toml) when path is empty. A missing file is
// not an error: defaults apply. A file that exists but fails to parse
// returns the defaults alongside an INVALID_FORMAT error so the caller can
// warn and continue.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return defaultConfig(), errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %s", path)
	}

	if cfg.Export.Model == "" {
		cfg.Export.Model = workflow.DefaultModel
	}
	if cfg.Export.Temperature == 0 {
		cfg.Export.Temperature = workflow.DefaultTemperature
	}
	return cfg, nil
}
