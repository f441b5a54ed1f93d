package glint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/glint-gfx/glint/driver"
)

// StageKind identifies one half of a shader program.
type StageKind int

const (
	StageVertex StageKind = iota
	StageFragment
)

func (k StageKind) String() string {
	switch k {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("StageKind(%d)", int(k))
	}
}

func (k StageKind) glEnum() driver.Enum {
	if k == StageVertex {
		return driver.VertexShader
	}
	return driver.FragmentShader
}

// compileStage turns one GLSL source string into a compiled stage object.
//
// On failure the half-built stage object is deleted before returning, so
// a zero handle from here never needs cleanup. The driver's diagnostic
// log (retrieved into a buffer of exactly the reported length) comes back
// inside a *CompileError. Empty source is passed through unmodified;
// what an empty stage compiles to is the driver's business.
func compileStage(d driver.Driver, kind StageKind, src string) (driver.Shader, error) {
	s := d.CreateShader(kind.glEnum())
	d.ShaderSource(s, src)
	d.CompileShader(s)

	if d.GetShaderi(s, driver.CompileStatus) == 0 {
		logLen := d.GetShaderi(s, driver.InfoLogLength)
		buf := make([]byte, logLen)
		n := d.GetShaderInfoLog(s, buf)
		d.DeleteShader(s)
		return 0, &CompileError{Stage: kind, Log: string(buf[:n])}
	}
	return s, nil
}

// programInfoLog retrieves the program's diagnostic log.
func programInfoLog(d driver.Driver, p driver.Program) string {
	logLen := d.GetProgrami(p, driver.InfoLogLength)
	buf := make([]byte, logLen)
	n := d.GetProgramInfoLog(p, buf)
	return string(buf[:n])
}

// Program is a linked, driver-executable shader program. It is the only
// long-lived handle the pipeline produces; the stage objects it was
// linked from are deleted before LinkProgram returns.
//
// Program is tied to the rendering context of the thread that created it
// and is not safe for concurrent use.
type Program struct {
	d      driver.Driver
	handle driver.Program

	// Uniform locations are immutable after linking, so lookups are
	// cached per name.
	locs map[string]driver.Uniform
}

// LinkProgram compiles both stages of src and links them into a program.
//
// If either stage fails to compile, no attach is attempted: the surviving
// stage and the program object are deleted and the compile error(s) are
// returned. After a successful link both stage objects are deleted; their
// contents live on in the program (ownership transfer, not just cleanup).
// Validation runs as a diagnostic; a validation failure is logged at Warn
// level but does not fail the build unless the driver also queues an
// error.
func LinkProgram(d driver.Driver, src Source) (*Program, error) {
	var prog driver.Program
	if err := Check(d, "CreateProgram()", func() { prog = d.CreateProgram() }); err != nil {
		return nil, err
	}

	vs, verr := compileStage(d, StageVertex, src.Vertex)
	fs, ferr := compileStage(d, StageFragment, src.Fragment)
	if verr != nil || ferr != nil {
		// Never attach a zero handle; fail the link attempt cleanly.
		if vs != 0 {
			d.DeleteShader(vs)
		}
		if fs != 0 {
			d.DeleteShader(fs)
		}
		d.DeleteProgram(prog)
		return nil, errors.Join(verr, ferr)
	}

	fail := func(err error) (*Program, error) {
		d.DeleteShader(vs)
		d.DeleteShader(fs)
		d.DeleteProgram(prog)
		return nil, err
	}

	if err := Check(d, "AttachShader(vertex)", func() { d.AttachShader(prog, vs) }); err != nil {
		return fail(err)
	}
	if err := Check(d, "AttachShader(fragment)", func() { d.AttachShader(prog, fs) }); err != nil {
		return fail(err)
	}

	if err := Check(d, "LinkProgram()", func() { d.LinkProgram(prog) }); err != nil {
		return fail(err)
	}
	if d.GetProgrami(prog, driver.LinkStatus) == 0 {
		return fail(&LinkError{Log: programInfoLog(d, prog)})
	}

	if err := Check(d, "ValidateProgram()", func() { d.ValidateProgram(prog) }); err != nil {
		return fail(err)
	}
	if d.GetProgrami(prog, driver.ValidateStatus) == 0 {
		Logger().Warn("glint: program failed validation",
			"program", uint32(prog), "log", strings.TrimSpace(programInfoLog(d, prog)))
	}

	// The stages are linked in; their objects are no longer needed.
	if err := Check(d, "DeleteShader(vertex)", func() { d.DeleteShader(vs) }); err != nil {
		d.DeleteShader(fs)
		d.DeleteProgram(prog)
		return nil, err
	}
	if err := Check(d, "DeleteShader(fragment)", func() { d.DeleteShader(fs) }); err != nil {
		d.DeleteProgram(prog)
		return nil, err
	}

	Logger().Info("glint: program linked", "program", uint32(prog))
	return &Program{d: d, handle: prog, locs: make(map[string]driver.Uniform)}, nil
}

// Handle returns the raw driver handle, 0 after Delete.
func (p *Program) Handle() driver.Program { return p.handle }

// Use activates the program for subsequent draw calls.
func (p *Program) Use() error {
	return Check(p.d, fmt.Sprintf("UseProgram(%d)", uint32(p.handle)), func() {
		p.d.UseProgram(p.handle)
	})
}

// UniformLocation resolves a uniform name to its location. A -1 location
// means the program does not declare the uniform; that is an error here,
// never a silent no-op. Resolved locations are cached.
func (p *Program) UniformLocation(name string) (driver.Uniform, error) {
	if loc, ok := p.locs[name]; ok {
		return loc, nil
	}

	var loc driver.Uniform
	err := Check(p.d, fmt.Sprintf("GetUniformLocation(%q)", name), func() {
		loc = p.d.GetUniformLocation(p.handle, name)
	})
	if err != nil {
		return -1, err
	}
	if loc == -1 {
		return -1, fmt.Errorf("%w: %q in program %d", ErrUniformNotFound, name, uint32(p.handle))
	}

	p.locs[name] = loc
	return loc, nil
}

// SetUniform4f updates a vec4 uniform for the next draw.
func (p *Program) SetUniform4f(name string, v0, v1, v2, v3 float32) error {
	loc, err := p.UniformLocation(name)
	if err != nil {
		return err
	}
	return Check(p.d, fmt.Sprintf("Uniform4f(%q)", name), func() {
		p.d.Uniform4f(loc, v0, v1, v2, v3)
	})
}

// Delete releases the driver program. It must be called before context
// teardown; further calls are no-ops.
func (p *Program) Delete() error {
	if p.handle == 0 {
		return nil
	}
	err := Check(p.d, fmt.Sprintf("DeleteProgram(%d)", uint32(p.handle)), func() {
		p.d.DeleteProgram(p.handle)
	})
	p.handle = 0
	return err
}
