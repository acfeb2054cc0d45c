package cause

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func countingFold[E any](c Cause[E]) int {
	return Fold(c, FoldCases[E, int]{
		Empty:     func() int { return 0 },
		Fail:      func(E) int { return 1 },
		Die:       func(Defect) int { return 1 },
		Interrupt: func(FiberID) int { return 1 },
		Then:      func(l, r int) int { return l + r },
		Both:      func(l, r int) int { return l + r },
		Traced:    func(inner int, _ ZTrace) int { return inner },
	})
}

func TestFoldCountsLeaves(t *testing.T) {
	c := Par(Seq(FailC[string]("a"), FailC[string]("b")), FailC[string]("c"))
	assert.Equal(t, 3, countingFold(c))
}

func TestFoldTreatsMetaAsTransparent(t *testing.T) {
	c := Stackless(FailC[string]("a"))
	assert.Equal(t, 1, countingFold(c))
}

func TestFoldHonorsTracedCombiner(t *testing.T) {
	tr := CaptureTrace(0)
	c := TracedC(FailC[string]("a"), tr)

	seen := Fold(c, FoldCases[string, string]{
		Fail:   func(e string) string { return e },
		Traced: func(inner string, t ZTrace) string { return inner + "!" },
	})
	assert.Equal(t, "a!", seen)
}

func TestFoldNilCasesReturnZeroValue(t *testing.T) {
	c := FailC[string]("a")
	n := Fold(c, FoldCases[string, int]{})
	assert.Equal(t, 0, n)
}

func TestFoldLabelsLeavesLeftToRight(t *testing.T) {
	c := Par(FailC[int](1), Seq[int](DieC[int](NewCapturedDefect(assertErr{"x"})), InterruptC[int](FiberID{Seq: 9})))

	labels := Fold(c, FoldCases[int, []string]{
		Empty:     func() []string { return []string{"E"} },
		Fail:      func(n int) []string { return []string{"F" + strconv.Itoa(n)} },
		Die:       func(Defect) []string { return []string{"D"} },
		Interrupt: func(FiberID) []string { return []string{"I"} },
		Then:      func(l, r []string) []string { return append(append([]string{}, l...), r...) },
		Both:      func(l, r []string) []string { return append(append([]string{}, l...), r...) },
	})

	if diff := cmp.Diff([]string{"F1", "D", "I"}, labels); diff != "" {
		t.Errorf("Fold label order mismatch (-want +got):\n%s", diff)
	}
}

func TestVisitLeavesStopsEarly(t *testing.T) {
	c := Par(FailC[string]("a"), FailC[string]("b"))

	var seen []string
	visitLeaves(c, leafVisitor[string]{
		Fail: func(e string) bool {
			seen = append(seen, e)
			return false
		},
	})

	assert.Equal(t, []string{"a"}, seen)
}

func TestVisitSubtreesIncludesRootAndEveryNode(t *testing.T) {
	leaf := FailC[string]("a")
	c := Seq(leaf, FailC[string]("b"))

	count := 0
	visitSubtrees(c, func(Cause[string]) bool {
		count++
		return true
	})

	assert.Equal(t, 3, count) // the Then node itself, plus its two leaves
}

func TestVisitSubtreesEarlyExit(t *testing.T) {
	c := Seq(FailC[string]("a"), FailC[string]("b"))

	count := 0
	visitSubtrees(c, func(Cause[string]) bool {
		count++
		return false
	})

	assert.Equal(t, 1, count)
}
