// pretty.go — the box-drawing pretty-printer (spec.md §4.3).
//
// Grounded on the teacher's format.go in spirit (turning a structured
// value into deterministic, total, panic-free text) but the format
// itself is specific to this module — no pack repo renders a tree as
// ASCII box-drawing art, so the line-building logic here is written
// from spec.md directly. Deliberately dependency-free: spec.md's S1/S2
// scenarios are EXACT-STRING contracts, and any general-purpose layout
// library (lipgloss included — see pretty_style.go for where that one
// belongs) risks inserting padding or trimming whitespace this contract
// cannot tolerate. Plain strings.Builder only.
package cause

import (
	"fmt"
	"strings"
)

// Render renders c as a human-readable failure report. Render never
// panics on a well-formed Cause (spec.md §4.3: "The printer MUST be
// total and MUST not throw on any well-formed Cause.").
func Render[E comparable](c Cause[E]) string {
	var sb strings.Builder
	sb.WriteString("Fiber failed.")

	if block, ok := soleFailureBlock[E](c); ok {
		for _, line := range block {
			sb.WriteByte('\n')
			sb.WriteString(line)
		}
		return sb.String()
	}

	sb.WriteString("\n╥")
	steps := buildSequential[E](c, nil)
	renderSteps(&sb, steps, "")
	sb.WriteString("\n▼")
	return sb.String()
}

// soleFailureBlock reports whether c, after peeling any chain of
// Traced/Meta wrappers, is a single leaf with no Then/Both structure at
// all — spec.md §4.3 point 4's "when the whole tree is one Failure
// block" case, which skips the ╥/Sequential wrapping entirely.
func soleFailureBlock[E comparable](c Cause[E]) ([]string, bool) {
	var trace ZTrace
	var stackless bool
	cur := c
	for {
		switch n := cur.(type) {
		case Traced[E]:
			trace = n.Trace
			cur = n.Cause
			continue
		case Meta[E]:
			stackless = n.Stackless
			cur = n.Cause
			continue
		case Empty:
			return nil, false
		case Fail[E], Die, Interrupt:
			return renderLeaf[E](cur, trace, stackless), true
		default:
			return nil, false
		}
	}
}

// renderStepKind distinguishes the two Step shapes spec.md §4.3 point 1
// describes: a Failure block (one leaf's rendered lines) or a Parallel
// block (several Sequentials, rendered side by side).
type renderStepKind byte

const (
	stepFailure renderStepKind = iota
	stepParallel
	stepNote
)

// renderStepNode is one Step in a normalized Sequential.
type renderStepNode struct {
	kind     renderStepKind
	lines    []string          // stepFailure, stepNote
	branches [][]renderStepNode // stepParallel: one Sequential per branch
}

// buildSequential normalizes cur (followed, in order, by each element of
// cont) into a flat list of Steps — folding consecutive Thens into one
// Sequential automatically, since the iterative spine walk never starts
// a new Step for a Then node itself, only for what it contains. Walks
// the Then-spine with an explicit continuation list instead of
// recursing, exactly like canon.go's chainsSeq, so a right- or left-
// nested chain of depth 100,000 renders without growing the host call
// stack (spec.md §5, testable property 14). Only a genuine Both fork
// recurses, one level per nesting of parallel composition.
func buildSequential[E comparable](cur Cause[E], cont []Cause[E]) []renderStepNode {
	return buildSequentialFrom[E](cur, cont, nil, false, false)
}

// buildSequentialFrom is buildSequential generalized to accept the
// trace/stackless/rethrown state an enclosing Traced/Meta wrapper has
// already accumulated before reaching this subtree. collectParallelBranches
// needs this: each branch of a Both is itself rendered by a fresh call into
// this function, and a Meta/Traced wrapping the WHOLE Both (rather than one
// of its branches) must still reach every branch's Die leaves and rethrow
// header, per spec.md §4.3 point 1 ("Meta... propagating the stackless flag
// to Die/Throwable rendering" through Both, not just Then).
func buildSequentialFrom[E comparable](cur Cause[E], cont []Cause[E], initTrace ZTrace, initStackless, initRethrown bool) []renderStepNode {
	var steps []renderStepNode
	trace := initTrace
	stackless := initStackless
	rethrown := initRethrown

	flushLeaf := func(n Cause[E]) {
		lines := renderLeaf[E](n, trace, stackless)
		if rethrown {
			lines = append([]string{"An error was rethrown with a new trace."}, lines...)
		}
		steps = append(steps, renderStepNode{kind: stepFailure, lines: lines})
		trace, stackless, rethrown = nil, false, false
	}

	for {
		switch n := cur.(type) {
		case Empty:
			// identity: contributes no Step.

		case Traced[E]:
			if isLeaf[E](n.Cause) {
				trace = n.Trace
			} else {
				rethrown = true
			}
			cur = n.Cause
			continue

		case Meta[E]:
			stackless = n.Stackless
			cur = n.Cause
			continue

		case Fail[E]:
			flushLeaf(n)

		case Die:
			flushLeaf(n)

		case Interrupt:
			flushLeaf(n)

		case Then[E]:
			newCont := make([]Cause[E], 0, len(cont)+1)
			newCont = append(newCont, n.Right)
			newCont = append(newCont, cont...)
			cur, cont = n.Left, newCont
			continue

		case Both[E]:
			// The accumulated trace/stackless/rethrown state belongs to
			// this Both as a whole (it was set by an ancestor Traced/Meta
			// wrapping the entire parallel subtree), not to any single
			// branch: a pending rethrow header is emitted once, here,
			// above the parallel block, and stackless/trace are threaded
			// into every branch so each one renders its own Die/Fail
			// leaves consistently with the wrapper that enclosed the fork.
			if rethrown {
				steps = append(steps, renderStepNode{
					kind:  stepNote,
					lines: []string{"An error was rethrown with a new trace."},
				})
			}
			branches := collectParallelBranches[E](n, cont, trace, stackless)
			steps = append(steps, renderStepNode{kind: stepParallel, branches: branches})
			return steps

		default:
			panic("cause: buildSequential encountered an unknown Cause node")
		}

		if len(cont) == 0 {
			return steps
		}
		cur, cont = cont[0], cont[1:]
	}
}

// collectParallelBranches flattens nested Both nodes into one list of
// branches (realizing Both's associativity/commutativity in the
// printer, the same way it's realized in canon.go), each rendered with
// the shared continuation appended. trace/stackless carry the state an
// enclosing Traced/Meta accumulated around the WHOLE fork down into every
// branch (the corresponding rethrow header, if any, was already emitted
// once by the caller, above the parallel block — it is deliberately not
// re-threaded here, since the header belongs to the fork as a whole, not
// to each branch individually).
func collectParallelBranches[E comparable](n Both[E], cont []Cause[E], trace ZTrace, stackless bool) [][]renderStepNode {
	var branches [][]renderStepNode
	var collect func(c Cause[E])
	collect = func(c Cause[E]) {
		if b, ok := c.(Both[E]); ok {
			collect(b.Left)
			collect(b.Right)
			return
		}
		branches = append(branches, buildSequentialFrom[E](c, cont, trace, stackless, false))
	}
	collect(n.Left)
	collect(n.Right)
	return branches
}

// isLeaf reports whether c itself is a Fail, Die, or Interrupt (a
// Traced/Meta wrapper is not peeled, so it counts as a non-leaf) — used
// to decide whether a Traced wrapper attaches its
// trace to a single leaf or instead produces a rethrow header above a
// larger subtree (spec.md §4.3 point 2's last bullet).
func isLeaf[E any](c Cause[E]) bool {
	switch c.(type) {
	case Fail[E], Die, Interrupt:
		return true
	default:
		return false
	}
}

// renderLeaf renders a single Fail/Die/Interrupt node's lines, the
// first prefixed "─ " per spec.md §4.3 point 3; payload/stack/trace
// lines that follow are emitted as-is (see S1's exact-string contract:
// fail("x")'s payload line carries no further indentation).
func renderLeaf[E comparable](n Cause[E], trace ZTrace, stackless bool) []string {
	var lines []string
	switch v := n.(type) {
	case Fail[E]:
		lines = append(lines, "─ A checked error was not handled.")
		lines = append(lines, renderValue(v.Value)...)

	case Die:
		lines = append(lines, "─ An unchecked error was produced.")
		lines = append(lines, strings.Split(v.Defect.Error(), "\n")...)
		if !stackless {
			var sb strings.Builder
			v.Defect.PrintStackTrace(&sb)
			if s := strings.TrimRight(sb.String(), "\n"); s != "" {
				lines = append(lines, strings.Split(s, "\n")...)
			}
		}

	case Interrupt:
		lines = append(lines, fmt.Sprintf("─ An interrupt was produced by #%d.", v.ID.Seq))
	}

	if trace != nil {
		lines = append(lines, strings.Split(trace.PrettyPrint(), "\n")...)
	}
	return lines
}

// renderValue stringifies a Fail payload: its Error() text when it
// implements error, otherwise its default formatting — spec.md §4.3
// point 2's "e.toString split by lines" for the non-throwable case.
func renderValue[E any](v E) []string {
	if err, ok := any(v).(error); ok {
		return strings.Split(err.Error(), "\n")
	}
	return strings.Split(fmt.Sprintf("%v", v), "\n")
}

// renderSteps lays out a Sequential: spec.md §4.3 point 3's "separate
// steps with ║ lines and arrows" for Failure/Note steps, and the
// ══╦══╦…══╗ header with "  ║"-indented branch bodies for a Parallel
// step.
func renderSteps(sb *strings.Builder, steps []renderStepNode, indent string) {
	for i, step := range steps {
		if i > 0 {
			sb.WriteByte('\n')
			sb.WriteString(indent)
			sb.WriteString("║")
		}
		switch step.kind {
		case stepFailure, stepNote:
			for _, line := range step.lines {
				sb.WriteByte('\n')
				sb.WriteString(indent)
				sb.WriteString(line)
			}
		case stepParallel:
			sb.WriteByte('\n')
			sb.WriteString(indent)
			sb.WriteString(parallelHeader(len(step.branches)))
			for _, branch := range step.branches {
				sb.WriteByte('\n')
				sb.WriteString(indent)
				sb.WriteString("  ║")
				renderSteps(sb, branch, indent+"  ")
			}
		}
	}
}

// parallelHeader builds "══╦══╦…══╗" with one "══╦" per branch beyond
// the first, per spec.md §4.3 point 3 (S2's contract: two branches
// produce exactly "══╦══╗").
func parallelHeader(branchCount int) string {
	var sb strings.Builder
	for i := 0; i < branchCount; i++ {
		sb.WriteString("══╦")
	}
	s := sb.String()
	return strings.TrimSuffix(s, "╦") + "╗"
}
