// construct.go — smart constructors for the Cause algebra.
//
// Scope (spec.md §4.1):
//   - Leaf constructors: Ok (the empty cause), FailC, DieC, InterruptC.
//   - Combinators: Seq (spec.md's "++"), Par (spec.md's "&&").
//   - Annotation constructors: Stack, Stackless, TracedC.
//
// All constructors here are pure and total; none fail. Per
// SPEC_FULL.md's "Producer contract", external callers MUST only reach
// the package through these functions (and the combinators in
// combinators.go) — the node structs in cause.go are public only so
// that Fold/projections can type-switch on them from within this
// package's own algorithms and so advanced callers can pattern-match
// when writing their own folds.
package cause

// Ok returns the empty cause: no failure occurred. It is the identity
// for both Seq and Par (spec.md invariant 2/3).
func Ok[E any]() Cause[E] {
	return Empty{}
}

// FailC lifts a domain error value e into a Cause leaf.
//
// Named FailC (not Fail) to avoid colliding with the Fail[E] struct
// type in cause.go; callers typically import this package under a
// short alias (e.g. c.FailC) where the distinction reads naturally.
func FailC[E any](e E) Cause[E] {
	return Fail[E]{Value: e}
}

// DieC lifts a host defect into a Cause leaf, representing an
// unexpected, non-domain failure.
func DieC[E any](d Defect) Cause[E] {
	return Die{Defect: d}
}

// InterruptC records that the current fiber was interrupted by id.
func InterruptC[E any](id FiberID) Cause[E] {
	return Interrupt{ID: id}
}

// Seq composes a and b sequentially ("a ++ b" in spec.md): a occurred,
// then b occurred. Seq enforces the Empty-identity law eagerly, exactly
// as spec.md §4.1 requires: "Returns b when a is Empty, a when b is
// Empty, otherwise Then(a, b)." Eagerly resolving this common case keeps
// everyday trees small without changing equality (Equal still proves
// Then(Empty, x) == x independently, for trees that arrive already
// built from elsewhere).
func Seq[E any](a, b Cause[E]) Cause[E] {
	if isEmpty1[E](a) {
		return b
	}
	if isEmpty1[E](b) {
		return a
	}
	return Then[E]{Left: a, Right: b}
}

// Par composes a and b in parallel ("a && b" in spec.md): they occurred
// concurrently. Unlike Seq, Par does NOT fold Empty eagerly — spec.md
// §4.1 is explicit that "&& always builds Both(a, b); Empty identity is
// resolved by equality, not construction." This matters because Par
// must stay a pure, cheap constructor callable from a hot failure path
// (a fiber join) without paying for an equality check on every call.
func Par[E any](a, b Cause[E]) Cause[E] {
	return Both[E]{Left: a, Right: b}
}

// isEmpty1 is a single-level Empty check used only by Seq's eager
// identity fold. It intentionally does NOT look through Traced/Meta —
// Seq is a raw structural constructor, and a traced/annotated Empty is
// vanishingly rare to construct directly; the general "is this whole
// subtree vacuous" question belongs to IsEmpty in projections.go, which
// IS wrapper-transparent.
func isEmpty1[E any](c Cause[E]) bool {
	_, ok := c.(Empty)
	return ok
}

// Stack wraps c in a Meta annotation requesting that any Die leaves
// within it render WITH their defect's stack trace (spec.md §4.1).
func Stack[E any](c Cause[E]) Cause[E] {
	return Meta[E]{Cause: c, Stackless: false}
}

// Stackless wraps c in a Meta annotation requesting that any Die leaves
// within it render WITHOUT their defect's stack trace (spec.md §4.1).
func Stackless[E any](c Cause[E]) Cause[E] {
	return Meta[E]{Cause: c, Stackless: true}
}

// TracedC wraps c with an execution trace t (spec.md's "traced(c, t)").
// Traced is transparent to every observable operation except
// Render/RenderStyled and Untraced.
func TracedC[E any](c Cause[E], t ZTrace) Cause[E] {
	return Traced[E]{Cause: c, Trace: t}
}
