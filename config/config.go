// Package config loads the demo's TOML configuration.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Window configures the demo window.
type Window struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Title     string `toml:"title"`
	Resizable bool   `toml:"resizable"`
	VSync     bool   `toml:"vsync"`
}

// Shader configures the shader asset.
type Shader struct {
	// Path is the annotated single-file shader asset.
	Path string `toml:"path"`

	// Watch rebuilds the program when the asset changes on disk.
	Watch bool `toml:"watch"`
}

// Clear is the frame clear color.
type Clear struct {
	R float32 `toml:"r"`
	G float32 `toml:"g"`
	B float32 `toml:"b"`
	A float32 `toml:"a"`
}

// Config is the demo configuration.
type Config struct {
	Window Window `toml:"window"`
	Shader Shader `toml:"shader"`
	Clear  Clear  `toml:"clear"`
}

// Default returns the configuration used when no file is given: a 640x480
// vsynced window, the bundled shader asset, and a dark gray clear color.
func Default() Config {
	return Config{
		Window: Window{
			Width:  640,
			Height: 480,
			Title:  "glint demo",
			VSync:  true,
		},
		Shader: Shader{
			Path: "assets/basic.shader",
		},
		Clear: Clear{R: 0.1, G: 0.1, B: 0.12, A: 1},
	}
}

// Load reads a TOML config file and fills unset fields from Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %q: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %q: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
	}
	if c.Window.Title == "" {
		c.Window.Title = def.Window.Title
	}
	if c.Shader.Path == "" {
		c.Shader.Path = def.Shader.Path
	}
	if c.Clear == (Clear{}) {
		c.Clear = def.Clear
	}
}
