package iitii

import (
	"math/rand"
	"testing"
)

func buildIIT(items []ivl) *IIT[int, ivl] {
	b := newBuilder()
	b.AddRange(items)
	idx, err := b.Build()
	if err != nil {
		panic(err)
	}
	return idx
}

// S1: empty index.
func TestScenarioEmptyIndex(t *testing.T) {
	idx := buildIIT(nil)
	out, cost := idx.Overlap(0, 100, nil)
	if len(out) != 0 || cost != 0 {
		t.Errorf("overlap(0,100) = (%v, %d), want ([], 0)", out, cost)
	}
}

// S2: single interval.
func TestScenarioSingleInterval(t *testing.T) {
	idx := buildIIT([]ivl{{10, 20, 1}})

	check := func(qbeg, qend int, wantIDs []int) {
		t.Helper()
		out, _ := idx.Overlap(qbeg, qend, nil)
		if got := idSlice(out); !intSlicesEqual(got, wantIDs) {
			t.Errorf("overlap(%d,%d) ids = %v, want %v", qbeg, qend, got, wantIDs)
		}
	}
	check(5, 15, []int{1})
	check(20, 25, nil)
	check(15, 20, []int{1})
	check(0, 10, nil)
}

// S3: nested & adjacent.
func TestScenarioNestedAdjacent(t *testing.T) {
	items := []ivl{{0, 100, 0}, {10, 20, 1}, {20, 30, 2}, {15, 18, 3}}
	idx := buildIIT(items)

	check := func(qbeg, qend int, want []int) {
		t.Helper()
		out, _ := idx.Overlap(qbeg, qend, nil)
		if got := idSlice(out); !intSlicesEqual(got, want) {
			t.Errorf("overlap(%d,%d) ids = %v, want %v", qbeg, qend, got, want)
		}
	}
	check(16, 17, []int{0, 1, 3})
	check(20, 21, []int{0, 2})
	check(100, 200, nil)
}

// S4: ties on beg.
func TestScenarioTiesOnBeg(t *testing.T) {
	items := []ivl{{5, 10, 0}, {5, 20, 1}, {5, 7, 2}}
	idx := buildIIT(items)

	check := func(qbeg, qend int, want []int) {
		t.Helper()
		out, _ := idx.Overlap(qbeg, qend, nil)
		if got := idSlice(out); !intSlicesEqual(got, want) {
			t.Errorf("overlap(%d,%d) ids = %v, want %v", qbeg, qend, got, want)
		}
	}
	check(6, 8, []int{0, 1, 2})
	check(8, 9, []int{0, 1})
}

func TestOverlapEmptyQueryRange(t *testing.T) {
	idx := buildIIT([]ivl{{0, 10, 0}})
	out, cost := idx.Overlap(5, 5, nil)
	if len(out) != 0 || cost != 0 {
		t.Errorf("overlap with qbeg==qend = (%v, %d), want ([], 0)", out, cost)
	}
	out, cost = idx.Overlap(10, 5, nil)
	if len(out) != 0 || cost != 0 {
		t.Errorf("overlap with qbeg>qend = (%v, %d), want ([], 0)", out, cost)
	}
}

// Invariants 4 & 5 (soundness & completeness) against brute force,
// across many random datasets and queries.
func TestIITSoundnessAndCompleteness(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 30; trial++ {
		n := rng.Intn(300)
		items := randomIntervals(rng, n, 2000, 40)
		idx := buildIIT(items)

		for q := 0; q < 20; q++ {
			qbeg := rng.Intn(2100)
			qend := qbeg + rng.Intn(100)
			got, _ := idx.Overlap(qbeg, qend, nil)
			want := bruteOverlap(items, qbeg, qend)
			if !intSlicesEqual(idSlice(got), idSlice(want)) {
				t.Fatalf("trial %d n=%d q=[%d,%d): got %v, want %v",
					trial, n, qbeg, qend, idSlice(got), idSlice(want))
			}
		}
	}
}

// Invariant 7: overlap is idempotent and does not mutate the index.
func TestOverlapIdempotent(t *testing.T) {
	items := randomIntervals(rand.New(rand.NewSource(9)), 500, 5000, 30)
	idx := buildIIT(items)

	first, cost1 := idx.Overlap(100, 500, nil)
	second, cost2 := idx.Overlap(100, 500, nil)
	if cost1 != cost2 || !intSlicesEqual(idSlice(first), idSlice(second)) {
		t.Errorf("repeated identical queries differed: (%v,%d) vs (%v,%d)",
			idSlice(first), cost1, idSlice(second), cost2)
	}
}

func intSlicesEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
