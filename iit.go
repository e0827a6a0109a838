package iitii

// IIT is an implicit interval tree: a textbook augmented interval
// tree laid out in a single sorted array, with structural position
// (rank) standing in for child/parent pointers. Build it with
// Builder.Build; once built it is immutable and safe for concurrent
// read-only queries.
type IIT[P Pos, I any] struct {
	nodes     []node[P, I]
	root      rank
	rootLevel int
}

// Len returns the number of items indexed.
func (t *IIT[P, I]) Len() int { return len(t.nodes) }

// Overlap clears out, appends every indexed item overlapping
// [qbeg, qend), and returns (out, cost) where cost is the number of
// tree nodes visited (§4.2, §6). If qbeg >= qend the result is empty
// and cost is 0, per the numeric contract in §6.
func (t *IIT[P, I]) Overlap(qbeg, qend P, out []I) ([]I, int) {
	out = out[:0]
	if qbeg >= qend || len(t.nodes) == 0 {
		return out, 0
	}
	return scan(t.nodes, t.root, qbeg, qend, out)
}

// OverlapSlice is a convenience wrapper around Overlap that allocates
// and returns a fresh result slice.
func (t *IIT[P, I]) OverlapSlice(qbeg, qend P) []I {
	out, _ := t.Overlap(qbeg, qend, nil)
	return out
}
