// hash.go — structural hashing for Cause, consistent with Equal
// (spec.md testable property 9: equal causes must hash equal).
//
// Built from the same canonical chain multiset equality.go decides
// Equal with (canon.go), so the two can never disagree: Hash never
// recomputes its own, possibly-diverging, notion of canonical form.
// Leaf payloads are hashed with mitchellh/hashstructure (the teacher's
// pack has no hashing of its own — xgx-error never needed to compare
// error values for equality — so this is adopted from the wider
// retrieval pack for hashing arbitrary Fail[E].Value and FiberID
// payloads) and folded together with cespare/xxhash, the same
// combinator used elsewhere in the pack for fast non-cryptographic
// digests.
package cause

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/mitchellh/hashstructure/v2"
)

// emptyHash is the fixed sentinel returned for any cause canonically
// equivalent to Empty (spec.md §4.4: "empty-list -> Empty's hash").
const emptyHash uint64 = 0xE3117E0000E3117E

const (
	failTag      byte = 'F'
	dieTag       byte = 'D'
	interruptTag byte = 'I'
)

// Hash computes a structural digest of c. Hash(a) == Hash(b) whenever
// Equal(a, b), by construction (both are derived from canonicalChains).
// The converse does not hold in general — Hash is permitted to be
// coarser than Equal (spec.md §4.4) — but in this implementation they
// diverge only on ordinary 64-bit hash collisions, not on any
// structural shortcut.
func Hash[E comparable](c Cause[E]) uint64 {
	chains := canonicalChains[E](c)

	if len(chains) == 0 {
		return emptyHash
	}
	if len(chains) == 1 && len(chains[0]) == 1 {
		return atomHash(chains[0][0])
	}

	var combined uint64
	for _, ch := range chains {
		// addition: commutative and associative, matching Both's laws;
		// unlike XOR it does not cancel out when the same chain appears
		// twice in the multiset (Both is not idempotent — see canon.go).
		combined += chainHash(ch)
	}
	return combined
}

// chainHash folds an ordered chain into one hash. Order matters here —
// this mirrors Then's non-commutativity — so each atom's hash is mixed
// in sequence via xxhash's running digest rather than combined with an
// order-independent operator.
func chainHash[E comparable](chain []leafAtom[E]) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, a := range chain {
		h := atomHash(a)
		putUint64(&buf, h)
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// atomHash hashes a single leaf, tagging the digest with its variant so
// a Fail carrying the same bit pattern as a Die's message digest can
// never collide by construction.
func atomHash[E comparable](a leafAtom[E]) uint64 {
	switch a.kind {
	case atomFailKind:
		h, err := hashstructure.Hash(a.fail, hashstructure.FormatV2, nil)
		if err != nil {
			h = xxhash.Sum64String(fmt.Sprintf("%v", a.fail))
		}
		return mixTag(failTag, h)
	case atomDieKind:
		return mixTag(dieTag, xxhash.Sum64String(a.die.Error()))
	case atomInterruptKind:
		h, err := hashstructure.Hash(a.intr, hashstructure.FormatV2, nil)
		if err != nil {
			h = xxhash.Sum64String(a.intr.String())
		}
		return mixTag(interruptTag, h)
	default:
		return 0
	}
}

func mixTag(tag byte, h uint64) uint64 {
	d := xxhash.New()
	_, _ = d.Write([]byte{tag})
	var buf [8]byte
	putUint64(&buf, h)
	_, _ = d.Write(buf[:])
	return d.Sum64()
}

func putUint64(buf *[8]byte, v uint64) {
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
}
