package glint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/glint-gfx/glint/driver"
)

// ErrUniformNotFound is returned when a uniform name resolves to the -1
// location, meaning the linked program does not declare it (or the
// compiler eliminated it as unused).
var ErrUniformNotFound = errors.New("glint: uniform not found")

// CallError reports driver errors drained from the error queue after a
// wrapped call. GPU state after a reported error is unreliable; callers
// should stop rendering rather than continue.
type CallError struct {
	// Call is the textual form of the failing call, e.g. "UseProgram(3)".
	Call string

	// File and Line locate the wrapped call site.
	File string
	Line int

	// Codes holds every error code drained after the call, in queue
	// order. Drivers may queue more than one code per failing call.
	Codes []driver.Enum
}

func (e *CallError) Error() string {
	names := make([]string, len(e.Codes))
	for i, code := range e.Codes {
		names[i] = fmt.Sprintf("%s (%#04x)", driver.ErrorString(code), uint32(code))
	}
	return fmt.Sprintf("glint: %s failed at %s:%d: %s",
		e.Call, e.File, e.Line, strings.Join(names, ", "))
}

// CompileError reports a shader stage that failed to compile. Unlike a
// CallError this is recoverable: the stage object has already been
// deleted and no driver state was corrupted.
type CompileError struct {
	// Stage is the kind of stage that failed.
	Stage StageKind

	// Log is the driver's diagnostic text for the failure.
	Log string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("glint: compile %s shader: %s", e.Stage, strings.TrimSpace(e.Log))
}

// LinkError reports a program that failed to link.
type LinkError struct {
	// Log is the driver's diagnostic text for the failure.
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("glint: link program: %s", strings.TrimSpace(e.Log))
}
