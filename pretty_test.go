package cause

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSoleFailureExactString(t *testing.T) {
	c := Seq(FailC[string]("x"), Ok[string]())
	got := Render(c)
	assert.Equal(t, "Fiber failed.\n─ A checked error was not handled.\nx", got)
}

func TestRenderParallelBeginsWithHeader(t *testing.T) {
	a := Par(FailC[string]("a"), FailC[string]("b"))
	b := Par(FailC[string]("b"), FailC[string]("a"))

	const wantPrefix = "Fiber failed.\n╥\n══╦══╗"
	assert.True(t, strings.HasPrefix(Render(a), wantPrefix))
	assert.True(t, strings.HasPrefix(Render(b), wantPrefix))
}

func TestRenderInterruptMentionsFiberNumber(t *testing.T) {
	c := InterruptC[string](FiberID{StartNanos: 0, Seq: 42})
	assert.Contains(t, Render(c), "An interrupt was produced by #42.")
}

func TestRenderDieIncludesStackUnlessStackless(t *testing.T) {
	d := NewCapturedDefect(assertErr{"boom"})

	withStack := Render(DieC[string](d))
	assert.Contains(t, withStack, "boom")
	assert.Contains(t, withStack, "\t\t")

	stackless := Render(Stackless[string](DieC[string](d)))
	assert.Contains(t, stackless, "boom")
	assert.NotContains(t, stackless, "\t\t")
}

func TestRenderRethrowHeaderOnTracedNonLeaf(t *testing.T) {
	inner := Seq(FailC[string]("a"), FailC[string]("b"))
	tr := CaptureTrace(0)
	c := TracedC(inner, tr)

	assert.Contains(t, Render(c), "An error was rethrown with a new trace.")
}

func TestRenderEmptyIsTotal(t *testing.T) {
	assert.NotPanics(t, func() {
		Render(Ok[string]())
	})
}

func TestRenderNeverPanicsOnDeepTree(t *testing.T) {
	var c Cause[int] = FailC[int](0)
	for i := 1; i < 10_000; i++ {
		c = Then[int]{Left: c, Right: FailC[int](i)}
	}
	assert.NotPanics(t, func() {
		Render(c)
	})
}

func TestRenderMultiWayParallelHeader(t *testing.T) {
	c := Par(Par(FailC[string]("a"), FailC[string]("b")), FailC[string]("c"))
	got := Render(c)
	assert.Contains(t, got, "╥")
	assert.Contains(t, got, "╦")
	assert.Contains(t, got, "╗")
}

func TestRenderStacklessPropagatesThroughBoth(t *testing.T) {
	d1 := NewCapturedDefect(assertErr{"boom1"})
	d2 := NewCapturedDefect(assertErr{"boom2"})

	got := Render(Stackless[string](Par(DieC[string](d1), DieC[string](d2))))

	assert.Contains(t, got, "boom1")
	assert.Contains(t, got, "boom2")
	assert.NotContains(t, got, "\t\t")
}

func TestRenderRethrowHeaderOnTracedBoth(t *testing.T) {
	inner := Par(FailC[string]("a"), FailC[string]("b"))
	tr := CaptureTrace(0)
	c := TracedC(inner, tr)

	assert.Contains(t, Render(c), "An error was rethrown with a new trace.")
}
