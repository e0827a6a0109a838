package iitii

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Pos is the position type an index is built over. It must be totally
// ordered and support the arithmetic the rank-prediction model needs
// (subtraction and division against its own domain width).
type Pos interface {
	constraints.Integer | constraints.Float
}

// NPos returns the sentinel reserved for "no position": the maximum
// representable value of P. Callers must never use it as a real
// interval endpoint.
func NPos[P Pos]() P {
	var zero P
	switch any(zero).(type) {
	case float32:
		return any(float32(math.MaxFloat32)).(P)
	case float64:
		return any(float64(math.MaxFloat64)).(P)
	}

	x := zero
	x--
	if x > 0 {
		return x // unsigned: decrementing zero wrapped to all-ones, already the max value
	}
	bitSize := unsafe.Sizeof(zero) * 8
	return P((uint64(1) << (bitSize - 1)) - 1) // signed: max is 2^(bits-1) - 1
}

// node is the storage atom of both IIT and IITII: an item plus its
// augments. insideMaxEnd is shared by both variants; outsideMaxEnd is
// meaningful only within IITII (where "no qualifying node" is the
// type's minimum value) and is left at the zero value in an IIT.
type node[P Pos, I any] struct {
	item          I
	begCache      P
	endCache      P
	insideMaxEnd  P
	outsideMaxEnd P
}

func (n *node[P, I]) beg() P { return n.begCache }
func (n *node[P, I]) end() P { return n.endCache }

// less orders nodes by (beg, end) ascending, matching the sort
// invariant relied on throughout the scan and augmentation algorithms.
func less[P Pos, I any](a, b *node[P, I]) bool {
	if a.begCache != b.begCache {
		return a.begCache < b.begCache
	}
	return a.endCache < b.endCache
}
