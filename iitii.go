package iitii

import "sync/atomic"

// IITII is an implicit interval tree augmented with an outside-max
// augment and a per-domain rank-prediction model (§1): queries
// predict a starting leaf, climb only as far as provably necessary,
// and then delegate to the same scanner IIT uses. Build it with
// Builder.BuildII; once built it is immutable and safe for concurrent
// read-only queries except for the two diagnostic counters below,
// which are atomics (§5).
type IITII[P Pos, I any] struct {
	nodes     []node[P, I]
	root      rank
	rootLevel int

	domains    uint
	minBeg     P
	domainSize P
	parameters []float32 // domains rows of (intercept, slope, level)

	queries        atomic.Uint64
	totalClimbCost atomic.Uint64
}

// Len returns the number of items indexed.
func (t *IITII[P, I]) Len() int { return len(t.nodes) }

// Queries returns the number of Overlap calls served so far. Calls on
// an empty index, or with qbeg >= qend, return before being counted.
func (t *IITII[P, I]) Queries() uint64 { return t.queries.Load() }

// TotalClimbCost returns the cumulative climb cost (§4.6 step 3)
// across all Overlap calls so far.
func (t *IITII[P, I]) TotalClimbCost() uint64 { return t.totalClimbCost.Load() }

// Overlap clears out, appends every indexed item overlapping
// [qbeg, qend), and returns (out, cost) where cost is the number of
// tree nodes visited plus the climb cost (§4.6, §6).
func (t *IITII[P, I]) Overlap(qbeg, qend P, out []I) ([]I, int) {
	out = out[:0]
	if qbeg >= qend || len(t.nodes) == 0 {
		return out, 0
	}

	t.queries.Add(1)

	pred, ok := predictLeaf(t.parameters, t.minBeg, t.domainSize, t.domains, len(t.nodes), qbeg)
	if !ok {
		// No prediction for this domain: fall back to the same
		// root-scan IIT.Overlap would perform.
		return scan(t.nodes, t.root, qbeg, qend, out)
	}

	climbCost := 0
	subtree := pred
	n := rank(len(t.nodes))
	for subtree != t.root &&
		(subtree >= n ||
			qbeg < t.nodes[subtree].outsideMaxEnd ||
			outsideMinBeg(t.nodes, subtree) < qend) {
		subtree = parent(subtree, t.root)
		climbCost++
	}

	t.totalClimbCost.Add(uint64(climbCost))

	out, scanCost := scan(t.nodes, subtree, qbeg, qend, out)
	return out, scanCost + climbCost
}

// OverlapSlice is a convenience wrapper around Overlap that allocates
// and returns a fresh result slice.
func (t *IITII[P, I]) OverlapSlice(qbeg, qend P) []I {
	out, _ := t.Overlap(qbeg, qend, nil)
	return out
}
