package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yllada/datawindow/common"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Theme != common.ThemeAuto {
		t.Errorf("Theme = %v, want %v", cfg.Theme, common.ThemeAuto)
	}
	if cfg.WindowWidth != 1024 || cfg.WindowHeight != 768 {
		t.Errorf("window size = %dx%d, want 1024x768", cfg.WindowWidth, cfg.WindowHeight)
	}
	if !cfg.ShowTray {
		t.Error("ShowTray should be true by default")
	}
	if cfg.Level() != common.LevelInfo {
		t.Errorf("Level() = %v, want INFO", cfg.Level())
	}
	if cfg.LogToFile {
		t.Error("LogToFile should be false by default")
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", "config.yaml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	want := DefaultConfig()
	want.path = path
	if *cfg != *want {
		t.Errorf("LoadFrom() = %+v, want defaults", cfg)
	}
	if common.FileExists(path) {
		t.Error("LoadFrom() must not create the file")
	}
}

func TestLoadFrom_EmptyFile(t *testing.T) {
	path := writeConfig(t, "")
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	want := DefaultConfig()
	want.path = path
	if *cfg != *want {
		t.Errorf("LoadFrom() = %+v, want defaults", cfg)
	}
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, "theme: dark\nshow_tray: false\n"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Theme != common.ThemeDark {
		t.Errorf("Theme = %v, want dark", cfg.Theme)
	}
	if cfg.ShowTray {
		t.Error("ShowTray should be false")
	}
	if cfg.WindowWidth != common.DefaultWindowWidth {
		t.Errorf("WindowWidth = %v, want default %v", cfg.WindowWidth, common.DefaultWindowWidth)
	}
}

func TestLoadFrom_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(*Config) bool
	}{
		{"unknown theme", "theme: neon\n", func(c *Config) bool { return c.Theme == common.ThemeAuto }},
		{"tiny width", "window_width: 10\n", func(c *Config) bool { return c.WindowWidth == common.MinWindowWidth }},
		{"tiny height", "window_height: -5\n", func(c *Config) bool { return c.WindowHeight == common.MinWindowHeight }},
		{"bad log level", "log_level: loud\n", func(c *Config) bool { return c.LogLevel == "info" }},
		{"debug log level", "log_level: debug\n", func(c *Config) bool { return c.Level() == common.LevelDebug }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFrom(writeConfig(t, tt.content))
			if err != nil {
				t.Fatalf("LoadFrom() error = %v", err)
			}
			if !tt.check(cfg) {
				t.Errorf("unexpected config %+v", cfg)
			}
		})
	}
}

func TestLoadFrom_RejectsUnknownFields(t *testing.T) {
	_, err := LoadFrom(writeConfig(t, "theme: dark\nauto_reconnect: true\n"))
	if !errors.Is(err, common.ErrConfigLoad) {
		t.Errorf("LoadFrom() error = %v, want ErrConfigLoad", err)
	}
}

func TestLoadFrom_MalformedYAML(t *testing.T) {
	_, err := LoadFrom(writeConfig(t, "theme: [unclosed\n"))
	if !errors.Is(err, common.ErrConfigLoad) {
		t.Errorf("LoadFrom() error = %v, want ErrConfigLoad", err)
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Theme = common.ThemeLight
	cfg.WindowWidth = 1280
	cfg.LogToFile = true

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %v, want 0600", perm)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("LoadFrom() = %+v, want %+v", loaded, cfg)
	}
}

func TestSaveTo_UnwritableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0600); err != nil {
		t.Fatal(err)
	}

	err := DefaultConfig().SaveTo(filepath.Join(blocker, "config.yaml"))
	if !errors.Is(err, common.ErrConfigSave) {
		t.Errorf("SaveTo() error = %v, want ErrConfigSave", err)
	}
}

func TestSave_WritesLoadedPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeConfig(t, "theme: dark\n")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %v, want %v", cfg.Path(), path)
	}

	cfg.Theme = common.ThemeLight
	cfg.ShowTray = false
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if reloaded.Theme != common.ThemeLight || reloaded.ShowTray {
		t.Errorf("reloaded = %+v, want light theme without tray", reloaded)
	}

	if _, err := os.Stat(filepath.Join(home, ".config")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Save() touched the default config directory: %v", err)
	}
}

func TestSave_MissingFileBindsPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "custom", "config.yaml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !common.FileExists(path) {
		t.Errorf("Save() did not write %v", path)
	}
}

func TestSave_UnboundUsesDefaultPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := DefaultConfig().Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	path, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if !common.FileExists(path) {
		t.Errorf("Save() did not write %v", path)
	}
}

func TestDefaultPath_CreatesNothing(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}
	if filepath.Dir(path) != filepath.Join(home, ".config", common.ConfigDirName) {
		t.Errorf("DefaultPath() = %v", path)
	}
	if _, err := os.Stat(filepath.Dir(path)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("DefaultPath() created %v", filepath.Dir(path))
	}
}
