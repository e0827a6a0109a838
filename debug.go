package iitii

import (
	"fmt"
	"io"
)

// Dump writes one line per real node to w, in the teacher package's
// Print/traverse idiom generalized from a pointer tree to the
// implicit array layout: rank, level, and augments. The walk starts
// at the root and visits left subtree, node, right subtree, so the
// lines come out in ascending rank order.
func (t *IIT[P, I]) Dump(w io.Writer) error {
	return dumpSubtree(t.nodes, t.root, w, false)
}

// Dump is IITII's variant of IIT.Dump, additionally printing
// outsideMaxEnd per node.
func (t *IITII[P, I]) Dump(w io.Writer) error {
	return dumpSubtree(t.nodes, t.root, w, true)
}

func dumpSubtree[P Pos, I any](nodes []node[P, I], r rank, w io.Writer, outside bool) error {
	if r == noRank {
		return nil
	}
	if r >= rank(len(nodes)) {
		// An imaginary node's right subtree is entirely imaginary;
		// real nodes can only lie to its left.
		return dumpSubtree(nodes, left(r), w, outside)
	}
	if err := dumpSubtree(nodes, left(r), w, outside); err != nil {
		return err
	}
	nd := &nodes[r]
	var err error
	if outside {
		_, err = fmt.Fprintf(w, "rank=%d level=%d item=%v insideMaxEnd=%v outsideMaxEnd=%v\n",
			r, level(r), nd.item, nd.insideMaxEnd, nd.outsideMaxEnd)
	} else {
		_, err = fmt.Fprintf(w, "rank=%d level=%d item=%v insideMaxEnd=%v\n",
			r, level(r), nd.item, nd.insideMaxEnd)
	}
	if err != nil {
		return err
	}
	return dumpSubtree(nodes, right(r), w, outside)
}
