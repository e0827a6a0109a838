package iitii

import (
	"math/rand"
	"sort"
)

// ivl is the test Item: a half-open [Beg, End) interval tagged with
// an ID, matching spec.md §8's "items are (beg, end, id) triples".
type ivl struct {
	Beg, End int
	ID       int
}

func ivlBeg(i ivl) int { return i.Beg }
func ivlEnd(i ivl) int { return i.End }

func newBuilder(opts ...BuilderOption[int]) *Builder[int, ivl] {
	return NewBuilder[int, ivl](ivlBeg, ivlEnd, opts...)
}

// bruteOverlap is the oracle: a linear scan that reports every item
// whose interval overlaps [qbeg, qend).
func bruteOverlap(items []ivl, qbeg, qend int) []ivl {
	var out []ivl
	if qbeg >= qend {
		return out
	}
	for _, it := range items {
		if it.Beg < qend && qbeg < it.End {
			out = append(out, it)
		}
	}
	return out
}

func idSet(items []ivl) map[int]bool {
	s := make(map[int]bool, len(items))
	for _, it := range items {
		s[it.ID] = true
	}
	return s
}

func idSlice(items []ivl) []int {
	ids := make([]int, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	sort.Ints(ids)
	return ids
}

// randomIntervals generates n random half-open intervals with begin
// in [0, begRange) and length in [1, maxLen], matching scenario S5.
func randomIntervals(rng *rand.Rand, n, begRange, maxLen int) []ivl {
	items := make([]ivl, n)
	for i := range items {
		beg := rng.Intn(begRange)
		length := 1 + rng.Intn(maxLen)
		items[i] = ivl{Beg: beg, End: beg + length, ID: i}
	}
	return items
}
