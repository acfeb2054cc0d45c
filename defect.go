// defect.go — the default, concrete Defect implementation.
//
// Grounded on the teacher's defectErr (construct.go): "models an
// unexpected programming error (bug/invariant violation). Always
// captures a stack at creation for debuggability." CapturedDefect plays
// the same role here, as the payload a Die leaf carries, rather than as
// one of three flat error categories — the host runtime is free to
// supply its own Defect implementation instead (spec.md §6 treats
// Defect as an external collaborator type), but this module ships a
// usable default so callers never have to write their own just to call
// Die(err).
package cause

import (
	"fmt"
	"io"
	"runtime"
)

// CapturedDefect is the default Defect implementation: it wraps a Go
// error and, like the teacher's defectErr, captures a bounded stack
// trace at construction time via runtime.Callers/runtime.CallersFrames
// — the same technique the teacher's stack.go uses, reapplied here
// because a Die leaf needs exactly the same "boundary, always capture"
// behavior the teacher gives Defect(err).
type CapturedDefect struct {
	cause error
	stack []defectFrame
}

// defectFrame is one resolved call site, mirroring the teacher's Frame.
type defectFrame struct {
	Function string
	File     string
	Line     int
}

const defectMaxDepth = 64

// NewCapturedDefect wraps err as a CapturedDefect, capturing a stack
// trace starting at the caller. If err is nil, a placeholder error is
// used so the defect's own Error() is never empty — the teacher's
// Defect(nil) applies the identical "avoid nil unwrap surprises" guard.
func NewCapturedDefect(err error) *CapturedDefect {
	if err == nil {
		err = fmt.Errorf("nil defect")
	}
	return &CapturedDefect{cause: err, stack: captureDefectStack(1)}
}

// captureDefectStack skips runtime.Callers and its own frame via
// baseSkip, plus skipExtra more frames (NewCapturedDefect passes 1 to
// hide its own frame), exactly as the teacher's
// captureStack/captureStackDefault pair documents in stack.go.
func captureDefectStack(skipExtra int) []defectFrame {
	pc := make([]uintptr, defectMaxDepth)
	const baseSkip = 2 // runtime.Callers, captureDefectStack
	n := runtime.Callers(baseSkip+skipExtra, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make([]defectFrame, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, defectFrame{Function: fr.Function, File: fr.File, Line: fr.Line})
		if !more {
			break
		}
	}
	return out
}

// Error implements the error interface embedded in Defect.
func (d *CapturedDefect) Error() string {
	return d.cause.Error()
}

// Unwrap exposes the wrapped cause to errors.Is/As.
func (d *CapturedDefect) Unwrap() error { return d.cause }

// PrintStackTrace renders the captured stack, one frame per line, to w.
// A defect captured with no resolvable frames writes nothing.
func (d *CapturedDefect) PrintStackTrace(w stringWriter) {
	for _, fr := range d.stack {
		_, _ = w.WriteString(fmt.Sprintf("\t%s\n\t\t%s:%d\n", fr.Function, fr.File, fr.Line))
	}
}

// Equal implements Defect's value-equality contract: two
// CapturedDefects are equal when their wrapped causes render the same
// message. This mirrors how the teacher's fmt.Formatter renders a cause
// by its Error() string rather than by pointer identity, which is the
// right notion of equality for a "did the same failure happen" check
// across two independently-captured defects.
func (d *CapturedDefect) Equal(other Defect) bool {
	o, ok := other.(*CapturedDefect)
	return ok && o.cause.Error() == d.cause.Error()
}

// WriteStackTrace is a convenience that renders d's stack to an
// io.Writer, for callers who already have one (e.g. os.Stderr) instead
// of the narrower stringWriter Defect.PrintStackTrace requires.
func WriteStackTrace(d Defect, w io.Writer) {
	var sb stringWriterAdapter
	sb.w = w
	d.PrintStackTrace(&sb)
}

// stringWriterAdapter adapts an io.Writer to the stringWriter interface
// Defect.PrintStackTrace writes through, so PrintStackTrace
// implementations never need to import io themselves.
type stringWriterAdapter struct{ w io.Writer }

func (a *stringWriterAdapter) WriteString(s string) (int, error) {
	return io.WriteString(a.w, s)
}

var (
	_ Defect = (*CapturedDefect)(nil)
)
