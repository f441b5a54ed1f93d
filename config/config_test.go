package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glint.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Window.Width != 640 || cfg.Window.Height != 480 {
		t.Errorf("default window = %dx%d, want 640x480", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Shader.Path == "" {
		t.Error("default shader path is empty")
	}
	if cfg.Clear == (Clear{}) {
		t.Error("default clear color is zero")
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[window]
width = 800
height = 600
title = "custom"
vsync = true

[shader]
path = "other.shader"
watch = true

[clear]
r = 0.2
g = 0.3
b = 0.4
a = 1.0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("window = %dx%d, want 800x600", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "custom" {
		t.Errorf("title = %q, want %q", cfg.Window.Title, "custom")
	}
	if cfg.Shader.Path != "other.shader" || !cfg.Shader.Watch {
		t.Errorf("shader = %+v, want other.shader watched", cfg.Shader)
	}
	if cfg.Clear.G != 0.3 {
		t.Errorf("clear.g = %v, want 0.3", cfg.Clear.G)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeConfig(t, `
[window]
title = "only a title"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Window.Width != 640 || cfg.Window.Height != 480 {
		t.Errorf("window = %dx%d, want defaults 640x480", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "only a title" {
		t.Errorf("title = %q, want the configured one", cfg.Window.Title)
	}
	if cfg.Shader.Path != Default().Shader.Path {
		t.Errorf("shader path = %q, want default", cfg.Shader.Path)
	}
	if cfg.Clear == (Clear{}) {
		t.Error("clear color not defaulted")
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() error = nil, want error for missing file")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the path", err)
	}
}

func TestLoadBadTOML(t *testing.T) {
	path := writeConfig(t, "[window\nwidth = ")
	if _, err := Load(path); err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
}
