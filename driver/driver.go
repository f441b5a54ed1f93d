// Package driver defines the graphics call surface glint renders through.
//
// The Driver interface covers the small slice of OpenGL this project
// issues: shader and program objects, one 4-float uniform, buffer and
// vertex-array state, clears and draws, and the driver error queue.
// Implementations are selected through a registry (see Register and
// Default), so the real GL driver and the scripted test driver are
// interchangeable from the library's point of view.
//
// Handle types are opaque integers. The zero value of Shader and Program
// means "absent or failed"; drivers never hand out 0 for a live object.
package driver

// Enum is a raw graphics API enumerant.
type Enum uint32

// Opaque driver object handles. 0 is never a valid live object.
type (
	Shader      uint32
	Program     uint32
	Buffer      uint32
	VertexArray uint32
)

// Uniform is a resolved uniform location. -1 means "not found".
type Uniform int32

// Enumerants used by this project, values per the OpenGL core profile.
const (
	// Shader object kinds.
	VertexShader   Enum = 0x8B31
	FragmentShader Enum = 0x8B30

	// Shader and program object queries.
	CompileStatus  Enum = 0x8B81
	LinkStatus     Enum = 0x8B82
	ValidateStatus Enum = 0x8B83
	InfoLogLength  Enum = 0x8B84

	// Buffer targets and usage.
	ArrayBuffer        Enum = 0x8892
	ElementArrayBuffer Enum = 0x8893
	StaticDraw         Enum = 0x88E4

	// Data types.
	Float        Enum = 0x1406
	UnsignedInt  Enum = 0x1405
	UnsignedByte Enum = 0x1401

	// Primitive modes.
	Triangles Enum = 0x0004

	// Clear masks.
	ColorBufferBit Enum = 0x00004000

	// Error queue codes. NoError marks the queue empty.
	NoError                     Enum = 0
	InvalidEnum                 Enum = 0x0500
	InvalidValue                Enum = 0x0501
	InvalidOperation            Enum = 0x0502
	OutOfMemory                 Enum = 0x0505
	InvalidFramebufferOperation Enum = 0x0506
)

// Driver is the graphics backend glint issues calls through.
//
// Drivers are tied to a single rendering context on the calling thread and
// are not safe for concurrent use. Init must be called with that context
// current, before any other method.
type Driver interface {
	// Name returns the driver identifier (e.g. "gl", "fake").
	Name() string

	// Init prepares the driver for use. For the GL driver this loads the
	// function pointers of the current context.
	Init() error

	// Shader objects.
	CreateShader(kind Enum) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	GetShaderi(s Shader, pname Enum) int32
	// GetShaderInfoLog fills buf with the shader's info log and returns
	// the number of bytes written.
	GetShaderInfoLog(s Shader, buf []byte) int32
	DeleteShader(s Shader)
	// IsShader reports whether s still names a live shader object.
	IsShader(s Shader) bool

	// Program objects.
	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	ValidateProgram(p Program)
	GetProgrami(p Program, pname Enum) int32
	GetProgramInfoLog(p Program, buf []byte) int32
	UseProgram(p Program)
	DeleteProgram(p Program)

	// Uniforms.
	GetUniformLocation(p Program, name string) Uniform
	Uniform4f(u Uniform, v0, v1, v2, v3 float32)

	// Buffer and vertex state.
	CreateBuffer() Buffer
	BindBuffer(target Enum, b Buffer)
	BufferDataFloat32(target Enum, data []float32, usage Enum)
	BufferDataUint32(target Enum, data []uint32, usage Enum)
	DeleteBuffer(b Buffer)
	CreateVertexArray() VertexArray
	BindVertexArray(v VertexArray)
	DeleteVertexArray(v VertexArray)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, ty Enum, normalized bool, stride, offset int32)

	// Frame operations.
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	DrawArrays(mode Enum, first, count int32)
	DrawElements(mode Enum, count int32, ty Enum, offset int)
	Viewport(x, y, width, height int32)

	// GetError pops one code from the driver error queue, NoError when the
	// queue is empty. Drivers may queue several codes per failing call;
	// callers drain until NoError.
	GetError() Enum
}

// ErrorString returns a readable name for a driver error code.
func ErrorString(code Enum) string {
	switch code {
	case NoError:
		return "NO_ERROR"
	case InvalidEnum:
		return "INVALID_ENUM"
	case InvalidValue:
		return "INVALID_VALUE"
	case InvalidOperation:
		return "INVALID_OPERATION"
	case OutOfMemory:
		return "OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "INVALID_FRAMEBUFFER_OPERATION"
	default:
		return "UNKNOWN"
	}
}
