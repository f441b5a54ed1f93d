// Package glint is a minimal immediate-mode OpenGL demo library.
//
// # Overview
//
// glint builds error-checked shader programs from single-file annotated
// GLSL assets and draws simple hardcoded meshes with them. It exists to
// make the usual first steps of an OpenGL program (compile, link,
// validate, set a uniform, draw) loud about failure instead of silent.
//
// # Quick Start
//
//	import (
//	    "github.com/glint-gfx/glint"
//	    "github.com/glint-gfx/glint/driver"
//	    _ "github.com/glint-gfx/glint/driver/gldriver"
//	    "github.com/glint-gfx/glint/window"
//	)
//
//	win, _ := window.New(window.Config{Width: 640, Height: 480, Title: "demo"})
//	drv, _ := driver.InitDefault()
//
//	src, _ := glint.ParseFile("assets/basic.shader")
//	prog, _ := glint.LinkProgram(drv, src)
//	mesh, _ := glint.NewQuad(drv)
//
//	for !win.ShouldClose() {
//	    drv.Clear(driver.ColorBufferBit)
//	    prog.Use()
//	    prog.SetUniform4f("u_Color", 1, 0.5, 0.5, 1)
//	    mesh.Draw()
//	    win.SwapBuffers()
//	    window.PollEvents()
//	}
//
// # Architecture
//
// The library is organized into:
//   - Public API: Source, Program, Mesh, Check
//   - driver: the GL call surface as an interface, with a registry
//   - driver/gldriver: the real driver over go-gl
//   - driver/drivertest: a scripted fake for context-free tests
//   - window: glfw window/context glue
//
// # Error Policy
//
// Driver errors surfaced by [Check] and missing uniforms (-1 locations)
// indicate invalid API usage; callers should treat them as fatal and stop
// rendering. A stage that fails to compile is recoverable: it is reported
// as a [CompileError] and the link attempt is abandoned cleanly.
//
// # Threading
//
// Everything here is single-threaded by construction: handles belong to
// the rendering context current on the calling thread. Lock the main OS
// thread before creating the window and keep all calls on it.
package glint

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
