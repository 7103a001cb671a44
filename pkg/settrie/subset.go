package settrie

import (
	"slices"

	"github.com/khalid-nowaf/settrie/pkg/trie"
)

// subsetWalk only follows edges whose element is still ahead in the query:
// a node reached by matching query[i] continues with query[i+1:], so any
// branch labelled with something absent from the rest of the query is never
// entered. Every node reached is a subset of the query.
type subsetWalk[K any, V any] struct {
	nodes   *trie.Trie[K, V]
	compare func(a, b K) int
	query   []K
}

func (w *subsetWalk[K, V]) accept(frame) bool {
	return true
}

func (w *subsetWalk[K, V]) expand(f frame, frontier []frame) []frame {
	start := len(frontier)
	rest := w.query[f.pos:]

	// scan whichever side is shorter; on sorted input both find the same
	// children in the same order
	if w.nodes.ChildCount(f.node) < len(rest) {
		for label, child := range w.nodes.Children(f.node) {
			if i, found := slices.BinarySearchFunc(rest, label, w.compare); found {
				frontier = append(frontier, frame{node: child, pos: f.pos + i + 1})
			}
		}
	} else {
		for i, element := range rest {
			if child, ok := w.nodes.Child(f.node, element); ok {
				frontier = append(frontier, frame{node: child, pos: f.pos + i + 1})
			}
		}
	}

	slices.Reverse(frontier[start:])
	return frontier
}
