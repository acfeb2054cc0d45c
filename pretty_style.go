// pretty_style.go — an optional colorized rendering of the same
// failure report Render (pretty.go) produces in plain text.
//
// Grounded on the retrieval pack's charmbracelet/lipgloss + its
// muesli/termenv transitive dependency, the terminal-styling stack
// several pack repos reach for when a CLI needs colored output. Kept
// entirely separate from pretty.go's plain-text path: spec.md's S1/S2
// exact-string contracts forbid any layout library from touching that
// path, since lipgloss's ANSI wrapping and termenv's color-profile
// detection are both free to vary whitespace and escape sequences in
// ways the plain contract cannot tolerate. RenderStyled reuses the same
// renderStepNode IR buildSequential produces, so the two renderers can
// never disagree about Cause structure — only about how it looks.
package cause

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleHeader    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	styleFailFirst = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	styleParallel  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleNote      = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("5"))
	styleBody      = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

// RenderStyled renders c exactly like Render, but with ANSI color
// applied to the header, failure headers, parallel dividers, and rethrow
// notes — for a host printing directly to an interactive terminal. The
// structural content (which lines appear, in what order) is identical
// to Render; only the styling of each line differs (the escape sequences
// around it, and lipgloss's expansion of tab characters to spaces).
func RenderStyled[E comparable](c Cause[E]) string {
	var sb strings.Builder
	sb.WriteString(styleHeader.Render("Fiber failed."))

	if block, ok := soleFailureBlock[E](c); ok {
		writeStyledLines(&sb, block)
		return sb.String()
	}

	sb.WriteByte('\n')
	sb.WriteString(styleParallel.Render("╥"))
	steps := buildSequential[E](c, nil)
	renderStepsStyled(&sb, steps, "")
	sb.WriteByte('\n')
	sb.WriteString(styleParallel.Render("▼"))
	return sb.String()
}

func writeStyledLines(sb *strings.Builder, lines []string) {
	for i, line := range lines {
		sb.WriteByte('\n')
		if i == 0 {
			sb.WriteString(styleFailFirst.Render(line))
			continue
		}
		sb.WriteString(styleBody.Render(line))
	}
}

func renderStepsStyled(sb *strings.Builder, steps []renderStepNode, indent string) {
	for i, step := range steps {
		if i > 0 {
			sb.WriteByte('\n')
			sb.WriteString(indent)
			sb.WriteString(styleParallel.Render("║"))
		}
		switch step.kind {
		case stepFailure:
			for j, line := range step.lines {
				sb.WriteByte('\n')
				sb.WriteString(indent)
				if j == 0 {
					sb.WriteString(styleFailFirst.Render(line))
					continue
				}
				sb.WriteString(styleBody.Render(line))
			}
		case stepNote:
			for _, line := range step.lines {
				sb.WriteByte('\n')
				sb.WriteString(indent)
				sb.WriteString(styleNote.Render(line))
			}
		case stepParallel:
			sb.WriteByte('\n')
			sb.WriteString(indent)
			sb.WriteString(styleParallel.Render(parallelHeader(len(step.branches))))
			for _, branch := range step.branches {
				sb.WriteByte('\n')
				sb.WriteString(indent)
				sb.WriteString(styleParallel.Render("  ║"))
				renderStepsStyled(sb, branch, indent+"  ")
			}
		}
	}
}
