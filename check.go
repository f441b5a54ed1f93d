package glint

import (
	"runtime"

	"github.com/glint-gfx/glint/driver"
)

// ClearErrors drains the driver error queue until it is empty, discarding
// stale codes left behind by earlier unchecked calls. Calling it on an
// already-empty queue is a no-op.
func ClearErrors(d driver.Driver) {
	for d.GetError() != driver.NoError {
	}
}

// drainErrors empties the error queue and returns every code found, in
// queue order. Drivers may queue several distinct codes per failing call,
// so polling continues until the queue reports NoError.
func drainErrors(d driver.Driver) []driver.Enum {
	var codes []driver.Enum
	for {
		code := d.GetError()
		if code == driver.NoError {
			return codes
		}
		codes = append(codes, code)
	}
}

// Check wraps a single driver call with error-queue bookkeeping: the
// queue is cleared before fn runs and drained after it returns. Any codes
// found afterward come back as a *CallError locating the Check call site,
// with call naming the operation for the report.
//
// A non-nil result means driver state is unreliable; the intended caller
// response is to stop rendering (log.Fatal in the demo), not to retry.
func Check(d driver.Driver, call string, fn func()) error {
	ClearErrors(d)
	fn()
	codes := drainErrors(d)
	if len(codes) == 0 {
		return nil
	}
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file, line = "unknown", 0
	}
	err := &CallError{Call: call, File: file, Line: line, Codes: codes}
	Logger().Debug("glint: driver error", "call", call, "codes", len(codes))
	return err
}
