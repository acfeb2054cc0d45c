// fiberid.go — fiber identity (spec.md §3/§6).
//
// FiberID itself lives in cause.go alongside the other external value
// types; this file holds the one small piece of supporting machinery a
// producer needs to mint fresh, monotonically distinct IDs, since
// spec.md pins the shape ("(startTimeNanos, seqNumber)") but leaves
// "how a runtime actually allocates one" to the host. No pack repo
// models fiber identity (it is unique to an effect-system runtime), so
// this is grounded directly on spec.md rather than on teacher prior
// art — kept intentionally tiny and dependency-free.
package cause

import "sync/atomic"

var fiberSeq int64

// NewFiberID mints a fresh FiberID stamped with startNanos (the fiber's
// start time, in nanoseconds since an arbitrary epoch chosen by the
// caller) and a process-wide monotonically increasing sequence number.
func NewFiberID(startNanos int64) FiberID {
	return FiberID{
		StartNanos: startNanos,
		Seq:        atomic.AddInt64(&fiberSeq, 1),
	}
}
