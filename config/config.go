// Package config loads portal's YAML configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/iw2rmb/portal/viewport"
)

// CurrentVersion is the config_version this build reads and writes.
const CurrentVersion = 1

const (
	BackendBubbleTea = "bubbletea"
	BackendTcell     = "tcell"
)

type Config struct {
	ConfigVersion int          `mapstructure:"config_version" yaml:"config_version"`
	Editor        EditorConfig `mapstructure:"editor" yaml:"editor"`
	UI            UIConfig     `mapstructure:"ui" yaml:"ui"`
	Theme         ThemeConfig  `mapstructure:"theme" yaml:"theme"`
	Log           LogConfig    `mapstructure:"log" yaml:"log"`
}

type EditorConfig struct {
	ScrollGrace    int `mapstructure:"scroll_grace" yaml:"scroll_grace"`
	ScrollDistance int `mapstructure:"scroll_distance" yaml:"scroll_distance"`
	MinGutterWidth int `mapstructure:"min_gutter_width" yaml:"min_gutter_width"`
}

type UIConfig struct {
	Backend    string `mapstructure:"backend" yaml:"backend"`
	ShowStatus bool   `mapstructure:"show_status" yaml:"show_status"`
	ShowHelp   bool   `mapstructure:"show_help" yaml:"show_help"`
}

// ThemeConfig holds lipgloss color strings (ANSI numbers or #rrggbb).
type ThemeConfig struct {
	Gutter       string `mapstructure:"gutter" yaml:"gutter"`
	GutterActive string `mapstructure:"gutter_active" yaml:"gutter_active"`
	Status       string `mapstructure:"status" yaml:"status"`
}

type LogConfig struct {
	// File receives structured logs; empty discards them.
	File  string `mapstructure:"file" yaml:"file"`
	Level string `mapstructure:"level" yaml:"level"`
}

func Default() Config {
	return Config{
		ConfigVersion: CurrentVersion,
		Editor: EditorConfig{
			ScrollGrace:    viewport.DefaultScrollGrace,
			ScrollDistance: viewport.DefaultScrollDistance,
			MinGutterWidth: viewport.DefaultMinGutterWidth,
		},
		UI: UIConfig{
			Backend:    BackendBubbleTea,
			ShowStatus: true,
		},
		Theme: ThemeConfig{
			Gutter:       "240",
			GutterActive: "250",
			Status:       "",
		},
		Log: LogConfig{Level: "info"},
	}
}

// ViewportOptions converts the editor section for viewport.New.
func (c Config) ViewportOptions(height int) viewport.Options {
	return viewport.Options{
		Height:         height,
		ScrollGrace:    c.Editor.ScrollGrace,
		ScrollDistance: c.Editor.ScrollDistance,
		MinGutterWidth: c.Editor.MinGutterWidth,
	}
}

// DefaultPath is config.yaml under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "portal", "config.yaml"), nil
}
