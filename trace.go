// trace.go — the default, concrete ZTrace implementation.
//
// Grounded on the teacher's stack.go in technique: the same
// runtime.Callers/runtime.CallersFrames skip-frame accounting, reused
// here to back the opaque trace a Traced node carries instead of a
// failureErr's optional stack. Stamped with a UUID per SPEC_FULL.md §3
// so two independently captured traces are never mistaken for each
// other by identity, even though trace identity never affects Equal
// (spec.md invariant 4: Traced is transparent).
package cause

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/google/uuid"
)

const traceMaxDepth = 64

// CapturedTrace is the default ZTrace: a UUID-stamped, bounded call
// stack captured at the point CaptureTrace is invoked (TracedC only
// attaches an already-captured trace).
type CapturedTrace struct {
	ID     uuid.UUID
	Frames []TraceFrame
}

// TraceFrame is one resolved call site within a CapturedTrace.
type TraceFrame struct {
	Function string
	File     string
	Line     int
}

// CaptureTrace captures the caller's current stack as a CapturedTrace,
// skipping skipExtra additional frames beyond this function itself —
// the same skip-model the teacher documents for captureStackDefault,
// so a thin wrapper around CaptureTrace can hide its own frame by
// passing skipExtra+1.
func CaptureTrace(skipExtra int) *CapturedTrace {
	pc := make([]uintptr, traceMaxDepth)
	const baseSkip = 2 // runtime.Callers, CaptureTrace
	n := runtime.Callers(baseSkip+skipExtra, pc)
	if n == 0 {
		return &CapturedTrace{ID: uuid.New()}
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make([]TraceFrame, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, TraceFrame{Function: fr.Function, File: fr.File, Line: fr.Line})
		if !more {
			break
		}
	}
	return &CapturedTrace{ID: uuid.New(), Frames: out}
}

// PrettyPrint implements ZTrace: one frame per line, most recent call
// first, prefixed with the trace's UUID so two renderings of distinct
// traces are visually distinguishable even if the call sites coincide.
func (t *CapturedTrace) PrettyPrint() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Execution trace %s:", t.ID)
	for _, fr := range t.Frames {
		fmt.Fprintf(&sb, "\n\tat %s(%s:%d)", fr.Function, fr.File, fr.Line)
	}
	return sb.String()
}

var _ ZTrace = (*CapturedTrace)(nil)
