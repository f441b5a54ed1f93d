// Package window wraps glfw window and context creation for glint.
//
// GLFW requires all of this to happen on the main OS thread; callers
// should lock it in an init function:
//
//	func init() { runtime.LockOSThread() }
package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glint-gfx/glint"
)

// Config configures a window. Zero values get defaults applied.
type Config struct {
	// Width and Height are the framebuffer size in screen coordinates.
	// Defaults: 640x480.
	Width  int
	Height int

	// Title is the window title. Default: "glint".
	Title string

	// Resizable allows the user to resize the window.
	Resizable bool

	// VSync synchronizes buffer swaps with the display refresh.
	VSync bool
}

func (c *Config) applyDefaults() {
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	if c.Title == "" {
		c.Title = "glint"
	}
}

// Window owns a glfw window and its OpenGL context.
type Window struct {
	*glfw.Window
}

// New initializes glfw, opens a window with a 4.1 core-profile context,
// and makes that context current on the calling thread. The caller must
// initialize a driver (driver.InitDefault) afterwards, and must call
// Close before the process exits.
func New(cfg Config) (*Window, error) {
	cfg.applyDefaults()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("window: glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("window: create %dx%d %q: %w", cfg.Width, cfg.Height, cfg.Title, err)
	}

	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	glint.Logger().Info("window: created",
		"width", cfg.Width, "height", cfg.Height, "title", cfg.Title, "vsync", cfg.VSync)

	return &Window{Window: win}, nil
}

// Close destroys the window and terminates glfw. The rendering context
// dies with it, so driver objects must be deleted first.
func (w *Window) Close() {
	w.Destroy()
	glfw.Terminate()
}

// PollEvents processes pending window events. Call once per frame.
func PollEvents() {
	glfw.PollEvents()
}
