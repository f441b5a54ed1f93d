// Command glintdemo opens a window and draws a color-pulsing shape with
// an error-checked shader program built from a single annotated asset.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/chewxy/math32"

	"github.com/glint-gfx/glint"
	"github.com/glint-gfx/glint/config"
	"github.com/glint-gfx/glint/driver"
	_ "github.com/glint-gfx/glint/driver/gldriver"
	"github.com/glint-gfx/glint/window"
)

func init() {
	// OpenGL and glfw require the main OS thread.
	runtime.LockOSThread()
}

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file (optional)")
		shaderPath = flag.String("shader", "", "shader asset path (overrides config)")
		triangle   = flag.Bool("triangle", false, "draw the unindexed triangle instead of the quad")
		watch      = flag.Bool("watch", false, "rebuild the program when the shader asset changes")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		glint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *shaderPath != "" {
		cfg.Shader.Path = *shaderPath
	}
	if *watch {
		cfg.Shader.Watch = true
	}

	win, err := window.New(window.Config{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		Resizable: cfg.Window.Resizable,
		VSync:     cfg.Window.VSync,
	})
	if err != nil {
		log.Fatalf("Failed to open window: %v", err)
	}
	defer win.Close()

	drv, err := driver.InitDefault()
	if err != nil {
		log.Fatalf("Failed to initialize driver: %v", err)
	}

	src, err := glint.ParseFile(cfg.Shader.Path)
	if err != nil {
		log.Fatalf("Failed to read shader: %v", err)
	}
	prog, err := glint.LinkProgram(drv, src)
	if err != nil {
		log.Fatalf("Failed to build program: %v", err)
	}
	// prog is replaced on hot reload; release whichever is current at exit.
	defer func() { prog.Delete() }()

	var mesh *glint.Mesh
	if *triangle {
		mesh, err = glint.NewTriangle(drv)
	} else {
		mesh, err = glint.NewQuad(drv)
	}
	if err != nil {
		log.Fatalf("Failed to upload mesh: %v", err)
	}
	defer mesh.Delete()

	var watcher *glint.Watcher
	if cfg.Shader.Watch {
		watcher, err = glint.Watch(cfg.Shader.Path)
		if err != nil {
			log.Fatalf("Failed to watch shader: %v", err)
		}
		defer watcher.Close()
	}

	fatal := func(err error) {
		if err != nil {
			log.Fatalf("Driver error, aborting: %v", err)
		}
	}

	start := time.Now()
	for !win.ShouldClose() {
		if watcher != nil {
			select {
			case <-watcher.Changed():
				prog = reload(drv, cfg.Shader.Path, prog)
			default:
			}
		}

		fatal(glint.Check(drv, "Clear()", func() {
			drv.ClearColor(cfg.Clear.R, cfg.Clear.G, cfg.Clear.B, cfg.Clear.A)
			drv.Clear(driver.ColorBufferBit)
		}))

		// Pulse the fill color over time.
		t := float32(time.Since(start).Seconds())
		r := 0.5 + 0.5*math32.Sin(2*t)
		g := 0.5 + 0.5*math32.Sin(2*t+2)
		b := 0.5 + 0.5*math32.Sin(2*t+4)

		fatal(prog.Use())
		fatal(prog.SetUniform4f("u_Color", r, g, b, 1))
		fatal(mesh.Draw())

		win.SwapBuffers()
		window.PollEvents()
	}
}

// reload rebuilds the program from the asset on disk. A broken asset
// keeps the old program running; this is a live-editing aid, not a
// correctness path.
func reload(drv driver.Driver, path string, old *glint.Program) *glint.Program {
	src, err := glint.ParseFile(path)
	if err != nil {
		log.Printf("Reload skipped: %v", err)
		return old
	}
	next, err := glint.LinkProgram(drv, src)
	if err != nil {
		log.Printf("Reload skipped: %v", err)
		return old
	}
	if err := old.Delete(); err != nil {
		log.Printf("Releasing old program: %v", err)
	}
	log.Printf("Shader reloaded from %s", path)
	return next
}
