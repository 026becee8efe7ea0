package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(strings.TrimSpace(body)+"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Default()
	if cfg != want {
		t.Fatalf("config: got %+v, want %+v", cfg, want)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
config_version: 1
editor:
  scroll_grace: 1
ui:
  backend: tcell
  show_help: true
log:
  file: /tmp/portal.log
  level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Editor.ScrollGrace != 1 || cfg.Editor.ScrollDistance != 5 {
		t.Fatalf("editor: got %+v", cfg.Editor)
	}
	if cfg.UI.Backend != BackendTcell || !cfg.UI.ShowHelp || !cfg.UI.ShowStatus {
		t.Fatalf("ui: got %+v", cfg.UI)
	}
	if cfg.Log.File != "/tmp/portal.log" || cfg.Log.Level != "debug" {
		t.Fatalf("log: got %+v", cfg.Log)
	}
	if cfg.Theme.Gutter != "240" {
		t.Fatalf("theme default lost: got %+v", cfg.Theme)
	}
}

func TestLoadAcceptsWarnLevel(t *testing.T) {
	path := writeConfig(t, "config_version: 1\nlog:\n  level: warn\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("log level: got %q, want %q", cfg.Log.Level, "warn")
	}
}

func TestLoadRequiresConfigVersion(t *testing.T) {
	path := writeConfig(t, `
ui:
  backend: tcell
`)
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "config_version is required") {
		t.Fatalf("expected config_version error, got %v", err)
	}
}

func TestLoadRejectsUnsupportedConfigVersion(t *testing.T) {
	path := writeConfig(t, `config_version: 7`)
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "unsupported config_version") {
		t.Fatalf("expected config_version error, got %v", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{body: "config_version: 1\nui:\n  backend: gtk\n", want: "unsupported ui.backend"},
		{body: "config_version: 1\neditor:\n  scroll_grace: -2\n", want: "scroll_grace"},
		{body: "config_version: 1\neditor:\n  scroll_distance: 0\n", want: "scroll_distance"},
		{body: "config_version: 1\nlog:\n  level: shouty\n", want: "unsupported log.level"},
	}
	for _, tc := range cases {
		path := writeConfig(t, tc.body)
		if _, err := Load(path); err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("config %q: expected %q error, got %v", tc.body, tc.want, err)
		}
	}
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	written, err := WriteDefault(path, false)
	if err != nil {
		t.Fatalf("write default: %v", err)
	}
	if written != path {
		t.Fatalf("written path: got %q, want %q", written, path)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load written default: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("round trip: got %+v, want %+v", cfg, Default())
	}

	if _, err := WriteDefault(path, false); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected exists error, got %v", err)
	}
	if _, err := WriteDefault(path, true); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
}

func TestViewportOptions(t *testing.T) {
	cfg := Default()
	cfg.Editor.ScrollGrace = 2
	opts := cfg.ViewportOptions(17)
	if opts.Height != 17 || opts.ScrollGrace != 2 || opts.ScrollDistance != 5 || opts.MinGutterWidth != 3 {
		t.Fatalf("options: got %+v", opts)
	}
}
