// Package gldriver implements driver.Driver on top of the go-gl OpenGL
// 4.1 core-profile bindings.
//
// Importing this package registers the driver under driver.DriverGL:
//
//	import _ "github.com/glint-gfx/glint/driver/gldriver"
//
// Init loads the function pointers of the rendering context current on the
// calling thread, so the window's context must be made current first.
package gldriver

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/glint-gfx/glint"
	"github.com/glint-gfx/glint/driver"
)

func init() {
	driver.Register(driver.DriverGL, func() driver.Driver { return &glDriver{} })
}

// glDriver forwards every call to the bound GL context. It holds no state
// of its own beyond the initialized flag; all object state lives in the
// driver proper.
type glDriver struct {
	initialized bool
}

func (d *glDriver) Name() string { return driver.DriverGL }

func (d *glDriver) Init() error {
	if d.initialized {
		return nil
	}
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gldriver: %w", err)
	}
	d.initialized = true
	glint.Logger().Info("gldriver: context initialized",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return nil
}

func (d *glDriver) CreateShader(kind driver.Enum) driver.Shader {
	return driver.Shader(gl.CreateShader(uint32(kind)))
}

func (d *glDriver) ShaderSource(s driver.Shader, src string) {
	csources, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(uint32(s), 1, csources, nil)
}

func (d *glDriver) CompileShader(s driver.Shader) {
	gl.CompileShader(uint32(s))
}

func (d *glDriver) GetShaderi(s driver.Shader, pname driver.Enum) int32 {
	var v int32
	gl.GetShaderiv(uint32(s), uint32(pname), &v)
	return v
}

func (d *glDriver) GetShaderInfoLog(s driver.Shader, buf []byte) int32 {
	if len(buf) == 0 {
		return 0
	}
	var written int32
	gl.GetShaderInfoLog(uint32(s), int32(len(buf)), &written, &buf[0])
	return written
}

func (d *glDriver) DeleteShader(s driver.Shader) {
	gl.DeleteShader(uint32(s))
}

func (d *glDriver) IsShader(s driver.Shader) bool {
	return gl.IsShader(uint32(s))
}

func (d *glDriver) CreateProgram() driver.Program {
	return driver.Program(gl.CreateProgram())
}

func (d *glDriver) AttachShader(p driver.Program, s driver.Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (d *glDriver) LinkProgram(p driver.Program) {
	gl.LinkProgram(uint32(p))
}

func (d *glDriver) ValidateProgram(p driver.Program) {
	gl.ValidateProgram(uint32(p))
}

func (d *glDriver) GetProgrami(p driver.Program, pname driver.Enum) int32 {
	var v int32
	gl.GetProgramiv(uint32(p), uint32(pname), &v)
	return v
}

func (d *glDriver) GetProgramInfoLog(p driver.Program, buf []byte) int32 {
	if len(buf) == 0 {
		return 0
	}
	var written int32
	gl.GetProgramInfoLog(uint32(p), int32(len(buf)), &written, &buf[0])
	return written
}

func (d *glDriver) UseProgram(p driver.Program) {
	gl.UseProgram(uint32(p))
}

func (d *glDriver) DeleteProgram(p driver.Program) {
	gl.DeleteProgram(uint32(p))
}

func (d *glDriver) GetUniformLocation(p driver.Program, name string) driver.Uniform {
	return driver.Uniform(gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00")))
}

func (d *glDriver) Uniform4f(u driver.Uniform, v0, v1, v2, v3 float32) {
	gl.Uniform4f(int32(u), v0, v1, v2, v3)
}

func (d *glDriver) CreateBuffer() driver.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return driver.Buffer(b)
}

func (d *glDriver) BindBuffer(target driver.Enum, b driver.Buffer) {
	gl.BindBuffer(uint32(target), uint32(b))
}

func (d *glDriver) BufferDataFloat32(target driver.Enum, data []float32, usage driver.Enum) {
	gl.BufferData(uint32(target), 4*len(data), gl.Ptr(data), uint32(usage))
}

func (d *glDriver) BufferDataUint32(target driver.Enum, data []uint32, usage driver.Enum) {
	gl.BufferData(uint32(target), 4*len(data), gl.Ptr(data), uint32(usage))
}

func (d *glDriver) DeleteBuffer(b driver.Buffer) {
	v := uint32(b)
	gl.DeleteBuffers(1, &v)
}

func (d *glDriver) CreateVertexArray() driver.VertexArray {
	var v uint32
	gl.GenVertexArrays(1, &v)
	return driver.VertexArray(v)
}

func (d *glDriver) BindVertexArray(v driver.VertexArray) {
	gl.BindVertexArray(uint32(v))
}

func (d *glDriver) DeleteVertexArray(v driver.VertexArray) {
	h := uint32(v)
	gl.DeleteVertexArrays(1, &h)
}

func (d *glDriver) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (d *glDriver) VertexAttribPointer(index uint32, size int32, ty driver.Enum, normalized bool, stride, offset int32) {
	gl.VertexAttribPointerWithOffset(index, size, uint32(ty), normalized, stride, uintptr(offset))
}

func (d *glDriver) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *glDriver) Clear(mask driver.Enum) {
	gl.Clear(uint32(mask))
}

func (d *glDriver) DrawArrays(mode driver.Enum, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

func (d *glDriver) DrawElements(mode driver.Enum, count int32, ty driver.Enum, offset int) {
	gl.DrawElementsWithOffset(uint32(mode), count, uint32(ty), uintptr(offset))
}

func (d *glDriver) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (d *glDriver) GetError() driver.Enum {
	return driver.Enum(gl.GetError())
}
