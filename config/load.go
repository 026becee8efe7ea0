package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/portal/internal/logx"
)

// Load reads configuration from path. If path is empty, uses DefaultPath.
// A missing file yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = defaultPath
	}

	cfg := Default()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("config_version", cfg.ConfigVersion)
	v.SetDefault("editor.scroll_grace", cfg.Editor.ScrollGrace)
	v.SetDefault("editor.scroll_distance", cfg.Editor.ScrollDistance)
	v.SetDefault("editor.min_gutter_width", cfg.Editor.MinGutterWidth)
	v.SetDefault("ui.backend", cfg.UI.Backend)
	v.SetDefault("ui.show_status", cfg.UI.ShowStatus)
	v.SetDefault("ui.show_help", cfg.UI.ShowHelp)
	v.SetDefault("theme.gutter", cfg.Theme.Gutter)
	v.SetDefault("theme.gutter_active", cfg.Theme.GutterActive)
	v.SetDefault("theme.status", cfg.Theme.Status)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("log.level", cfg.Log.Level)

	configLoaded := false
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
		configLoaded = true
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	if configLoaded {
		if !v.IsSet("config_version") {
			return Config{}, fmt.Errorf("config_version is required; expected %d", CurrentVersion)
		}
		if v.GetInt("config_version") != CurrentVersion {
			return Config{}, fmt.Errorf("unsupported config_version %d; expected %d", v.GetInt("config_version"), CurrentVersion)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that viper cannot type-check.
func Validate(cfg Config) error {
	switch cfg.UI.Backend {
	case BackendBubbleTea, BackendTcell:
	default:
		return fmt.Errorf("unsupported ui.backend %q", cfg.UI.Backend)
	}
	if cfg.Editor.ScrollGrace < 0 {
		return fmt.Errorf("editor.scroll_grace must not be negative")
	}
	if cfg.Editor.ScrollDistance < 1 {
		return fmt.Errorf("editor.scroll_distance must be at least 1")
	}
	if cfg.Editor.MinGutterWidth < 1 {
		return fmt.Errorf("editor.min_gutter_width must be at least 1")
	}
	if !logx.KnownLevel(cfg.Log.Level) {
		return fmt.Errorf("unsupported log.level %q", cfg.Log.Level)
	}
	return nil
}

// WriteDefault writes the default config to the target path.
func WriteDefault(path string, overwrite bool) (string, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return "", err
		}
		path = defaultPath
	}

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config already exists at %s", path)
		}
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return "", err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}
