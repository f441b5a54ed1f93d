// Package drivertest provides a scripted in-memory driver.Driver for
// testing the shader pipeline without a rendering context.
//
// The fake hands out sequential handles, keeps a ledger of live and
// deleted objects, and lets tests script compile/link verdicts, info
// logs, uniform locations, and the contents of the error queue. Every
// call is appended to an ordered log so tests can assert call sequencing.
//
// Importing this package registers the fake under driver.DriverFake, but
// tests usually construct one directly with New so scripting stays local
// to the test.
package drivertest

import (
	"fmt"

	"github.com/glint-gfx/glint/driver"
)

func init() {
	driver.Register(driver.DriverFake, func() driver.Driver { return New() })
}

type shaderObject struct {
	kind     driver.Enum
	source   string
	compiled bool
	deleted  bool
}

type programObject struct {
	attached  []driver.Shader
	linked    bool
	validated bool
	deleted   bool
}

// Driver is the scripted fake. The zero value is not usable; call New.
type Driver struct {
	nextShader  driver.Shader
	nextProgram driver.Program
	nextBuffer  driver.Buffer
	nextVAO     driver.VertexArray

	shaders  map[driver.Shader]*shaderObject
	programs map[driver.Program]*programObject
	buffers  map[driver.Buffer]bool
	vaos     map[driver.VertexArray]bool

	// Scripted behavior.
	initErr      error
	compileFail  map[driver.Enum]string // stage kind -> info log
	linkFail     string                 // non-empty -> link fails with this log
	validateFail string                 // non-empty -> validate reports failure
	uniforms     map[string]driver.Uniform
	callErrors   map[string][]driver.Enum // method name -> codes queued when called

	errQueue []driver.Enum
	calls    []string

	// Last Uniform4f call, for assertions.
	LastUniform [4]float32
	used        driver.Program
}

// New returns an empty fake driver with nothing scripted: every compile
// and link succeeds and every uniform lookup misses (-1).
func New() *Driver {
	return &Driver{
		nextShader:  1,
		nextProgram: 1,
		nextBuffer:  1,
		nextVAO:     1,
		shaders:     make(map[driver.Shader]*shaderObject),
		programs:    make(map[driver.Program]*programObject),
		buffers:     make(map[driver.Buffer]bool),
		vaos:        make(map[driver.VertexArray]bool),
		compileFail: make(map[driver.Enum]string),
		uniforms:    make(map[string]driver.Uniform),
		callErrors:  make(map[string][]driver.Enum),
	}
}

// FailInit makes Init return err.
func (d *Driver) FailInit(err error) { d.initErr = err }

// FailCompile scripts a compile failure for the given stage kind. The log
// is what GetShaderInfoLog will produce for the failed stage.
func (d *Driver) FailCompile(kind driver.Enum, log string) {
	d.compileFail[kind] = log
}

// FailLink scripts the next link to fail with the given info log.
func (d *Driver) FailLink(log string) { d.linkFail = log }

// FailValidate scripts validation to report failure with the given log.
func (d *Driver) FailValidate(log string) { d.validateFail = log }

// SetUniformLocation scripts the location returned for a uniform name.
// Unscripted names resolve to -1, as in the real driver.
func (d *Driver) SetUniformLocation(name string, loc driver.Uniform) {
	d.uniforms[name] = loc
}

// QueueErrors pushes codes onto the error queue directly, simulating stale
// errors left behind by earlier unrelated calls.
func (d *Driver) QueueErrors(codes ...driver.Enum) {
	d.errQueue = append(d.errQueue, codes...)
}

// FailCall scripts codes to be queued every time the named method (e.g.
// "UseProgram") is called.
func (d *Driver) FailCall(method string, codes ...driver.Enum) {
	d.callErrors[method] = append(d.callErrors[method], codes...)
}

// CallLog returns the ordered list of driver calls made so far.
func (d *Driver) CallLog() []string { return d.calls }

// LiveShaders returns the handles of shader objects that have been created
// but not deleted. An empty result after linking proves no stage leaked.
func (d *Driver) LiveShaders() []driver.Shader {
	var live []driver.Shader
	for h, s := range d.shaders {
		if !s.deleted {
			live = append(live, h)
		}
	}
	return live
}

// LiveBuffers returns the handles of undeleted buffer objects.
func (d *Driver) LiveBuffers() []driver.Buffer {
	var live []driver.Buffer
	for h, ok := range d.buffers {
		if ok {
			live = append(live, h)
		}
	}
	return live
}

// Used returns the program most recently activated with UseProgram.
func (d *Driver) Used() driver.Program { return d.used }

// Attached returns the shaders attached to p, in attach order.
func (d *Driver) Attached(p driver.Program) []driver.Shader {
	if obj, ok := d.programs[p]; ok {
		return obj.attached
	}
	return nil
}

func (d *Driver) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

// call records the invocation and queues any errors scripted for it.
func (d *Driver) call(method string, format string, args ...any) {
	d.record(format, args...)
	if codes, ok := d.callErrors[method]; ok {
		d.errQueue = append(d.errQueue, codes...)
	}
}

func (d *Driver) Name() string { return driver.DriverFake }

func (d *Driver) Init() error { return d.initErr }

func (d *Driver) CreateShader(kind driver.Enum) driver.Shader {
	h := d.nextShader
	d.nextShader++
	d.shaders[h] = &shaderObject{kind: kind}
	d.call("CreateShader", "CreateShader(%#x) = %d", uint32(kind), h)
	return h
}

func (d *Driver) ShaderSource(s driver.Shader, src string) {
	d.call("ShaderSource", "ShaderSource(%d)", s)
	if obj, ok := d.shaders[s]; ok {
		obj.source = src
	} else {
		d.errQueue = append(d.errQueue, driver.InvalidValue)
	}
}

func (d *Driver) CompileShader(s driver.Shader) {
	d.call("CompileShader", "CompileShader(%d)", s)
	obj, ok := d.shaders[s]
	if !ok {
		d.errQueue = append(d.errQueue, driver.InvalidValue)
		return
	}
	_, fail := d.compileFail[obj.kind]
	obj.compiled = !fail
}

func (d *Driver) GetShaderi(s driver.Shader, pname driver.Enum) int32 {
	d.call("GetShaderiv", "GetShaderiv(%d, %#x)", s, uint32(pname))
	obj, ok := d.shaders[s]
	if !ok {
		d.errQueue = append(d.errQueue, driver.InvalidValue)
		return 0
	}
	switch pname {
	case driver.CompileStatus:
		if obj.compiled {
			return 1
		}
		return 0
	case driver.InfoLogLength:
		if log, fail := d.compileFail[obj.kind]; fail {
			// GL reports the length including the NUL terminator.
			return int32(len(log)) + 1
		}
		return 0
	}
	return 0
}

func (d *Driver) GetShaderInfoLog(s driver.Shader, buf []byte) int32 {
	d.call("GetShaderInfoLog", "GetShaderInfoLog(%d)", s)
	obj, ok := d.shaders[s]
	if !ok {
		return 0
	}
	log, fail := d.compileFail[obj.kind]
	if !fail {
		return 0
	}
	n := copy(buf, log)
	return int32(n)
}

func (d *Driver) DeleteShader(s driver.Shader) {
	d.call("DeleteShader", "DeleteShader(%d)", s)
	obj, ok := d.shaders[s]
	if !ok || obj.deleted {
		d.errQueue = append(d.errQueue, driver.InvalidValue)
		return
	}
	obj.deleted = true
}

func (d *Driver) IsShader(s driver.Shader) bool {
	d.call("IsShader", "IsShader(%d)", s)
	obj, ok := d.shaders[s]
	return ok && !obj.deleted
}

func (d *Driver) CreateProgram() driver.Program {
	h := d.nextProgram
	d.nextProgram++
	d.programs[h] = &programObject{}
	d.call("CreateProgram", "CreateProgram() = %d", h)
	return h
}

func (d *Driver) AttachShader(p driver.Program, s driver.Shader) {
	d.call("AttachShader", "AttachShader(%d, %d)", p, s)
	obj, ok := d.programs[p]
	sh, sok := d.shaders[s]
	if !ok || !sok || sh.deleted {
		d.errQueue = append(d.errQueue, driver.InvalidValue)
		return
	}
	obj.attached = append(obj.attached, s)
}

func (d *Driver) LinkProgram(p driver.Program) {
	d.call("LinkProgram", "LinkProgram(%d)", p)
	obj, ok := d.programs[p]
	if !ok {
		d.errQueue = append(d.errQueue, driver.InvalidValue)
		return
	}
	obj.linked = d.linkFail == ""
}

func (d *Driver) ValidateProgram(p driver.Program) {
	d.call("ValidateProgram", "ValidateProgram(%d)", p)
	if obj, ok := d.programs[p]; ok {
		obj.validated = d.validateFail == ""
	}
}

func (d *Driver) GetProgrami(p driver.Program, pname driver.Enum) int32 {
	d.call("GetProgramiv", "GetProgramiv(%d, %#x)", p, uint32(pname))
	obj, ok := d.programs[p]
	if !ok {
		d.errQueue = append(d.errQueue, driver.InvalidValue)
		return 0
	}
	switch pname {
	case driver.LinkStatus:
		if obj.linked {
			return 1
		}
		return 0
	case driver.ValidateStatus:
		if obj.validated {
			return 1
		}
		return 0
	case driver.InfoLogLength:
		switch {
		case d.linkFail != "":
			return int32(len(d.linkFail)) + 1
		case d.validateFail != "":
			return int32(len(d.validateFail)) + 1
		}
		return 0
	}
	return 0
}

func (d *Driver) GetProgramInfoLog(p driver.Program, buf []byte) int32 {
	d.call("GetProgramInfoLog", "GetProgramInfoLog(%d)", p)
	switch {
	case d.linkFail != "":
		return int32(copy(buf, d.linkFail))
	case d.validateFail != "":
		return int32(copy(buf, d.validateFail))
	}
	return 0
}

func (d *Driver) UseProgram(p driver.Program) {
	d.call("UseProgram", "UseProgram(%d)", p)
	if p != 0 {
		if obj, ok := d.programs[p]; !ok || obj.deleted || !obj.linked {
			d.errQueue = append(d.errQueue, driver.InvalidOperation)
			return
		}
	}
	d.used = p
}

func (d *Driver) DeleteProgram(p driver.Program) {
	d.call("DeleteProgram", "DeleteProgram(%d)", p)
	obj, ok := d.programs[p]
	if !ok || obj.deleted {
		d.errQueue = append(d.errQueue, driver.InvalidValue)
		return
	}
	obj.deleted = true
}

func (d *Driver) GetUniformLocation(p driver.Program, name string) driver.Uniform {
	d.call("GetUniformLocation", "GetUniformLocation(%d, %q)", p, name)
	if loc, ok := d.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *Driver) Uniform4f(u driver.Uniform, v0, v1, v2, v3 float32) {
	d.call("Uniform4f", "Uniform4f(%d)", u)
	d.LastUniform = [4]float32{v0, v1, v2, v3}
}

func (d *Driver) CreateBuffer() driver.Buffer {
	h := d.nextBuffer
	d.nextBuffer++
	d.buffers[h] = true
	d.call("CreateBuffer", "CreateBuffer() = %d", h)
	return h
}

func (d *Driver) BindBuffer(target driver.Enum, b driver.Buffer) {
	d.call("BindBuffer", "BindBuffer(%#x, %d)", uint32(target), b)
}

func (d *Driver) BufferDataFloat32(target driver.Enum, data []float32, usage driver.Enum) {
	d.call("BufferData", "BufferData(%#x, %d floats)", uint32(target), len(data))
}

func (d *Driver) BufferDataUint32(target driver.Enum, data []uint32, usage driver.Enum) {
	d.call("BufferData", "BufferData(%#x, %d uints)", uint32(target), len(data))
}

func (d *Driver) DeleteBuffer(b driver.Buffer) {
	d.call("DeleteBuffer", "DeleteBuffer(%d)", b)
	if !d.buffers[b] {
		d.errQueue = append(d.errQueue, driver.InvalidValue)
		return
	}
	d.buffers[b] = false
}

func (d *Driver) CreateVertexArray() driver.VertexArray {
	h := d.nextVAO
	d.nextVAO++
	d.vaos[h] = true
	d.call("CreateVertexArray", "CreateVertexArray() = %d", h)
	return h
}

func (d *Driver) BindVertexArray(v driver.VertexArray) {
	d.call("BindVertexArray", "BindVertexArray(%d)", v)
}

func (d *Driver) DeleteVertexArray(v driver.VertexArray) {
	d.call("DeleteVertexArray", "DeleteVertexArray(%d)", v)
	d.vaos[v] = false
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	d.call("EnableVertexAttribArray", "EnableVertexAttribArray(%d)", index)
}

func (d *Driver) VertexAttribPointer(index uint32, size int32, ty driver.Enum, normalized bool, stride, offset int32) {
	d.call("VertexAttribPointer", "VertexAttribPointer(%d, %d)", index, size)
}

func (d *Driver) ClearColor(r, g, b, a float32) {
	d.call("ClearColor", "ClearColor(%g, %g, %g, %g)", r, g, b, a)
}

func (d *Driver) Clear(mask driver.Enum) {
	d.call("Clear", "Clear(%#x)", uint32(mask))
}

func (d *Driver) DrawArrays(mode driver.Enum, first, count int32) {
	d.call("DrawArrays", "DrawArrays(%#x, %d, %d)", uint32(mode), first, count)
}

func (d *Driver) DrawElements(mode driver.Enum, count int32, ty driver.Enum, offset int) {
	d.call("DrawElements", "DrawElements(%#x, %d)", uint32(mode), count)
}

func (d *Driver) Viewport(x, y, width, height int32) {
	d.call("Viewport", "Viewport(%d, %d, %d, %d)", x, y, width, height)
}

func (d *Driver) GetError() driver.Enum {
	if len(d.errQueue) == 0 {
		return driver.NoError
	}
	code := d.errQueue[0]
	d.errQueue = d.errQueue[1:]
	return code
}
