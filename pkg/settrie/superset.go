package settrie

import (
	"slices"

	"github.com/khalid-nowaf/settrie/pkg/trie"
)

// supersetWalk visits every edge that can still lead to query[pos]: smaller
// elements are extras of the candidate superset and keep pos, the element
// equal to query[pos] consumes it. Once a sibling passes query[pos] the
// remaining ones cannot contain it anymore on a sorted path. A node is a
// superset when the whole query has been consumed on the way to it.
type supersetWalk[K any, V any] struct {
	nodes   *trie.Trie[K, V]
	compare func(a, b K) int
	query   []K
}

func (w *supersetWalk[K, V]) accept(f frame) bool {
	return f.pos == len(w.query)
}

func (w *supersetWalk[K, V]) expand(f frame, frontier []frame) []frame {
	start := len(frontier)
	for label, child := range w.nodes.Children(f.node) {
		if f.pos == len(w.query) {
			frontier = append(frontier, frame{node: child, pos: f.pos})
			continue
		}

		c := w.compare(label, w.query[f.pos])
		if c > 0 {
			break
		}
		if c == 0 {
			frontier = append(frontier, frame{node: child, pos: f.pos + 1})
		} else {
			frontier = append(frontier, frame{node: child, pos: f.pos})
		}
	}
	slices.Reverse(frontier[start:])
	return frontier
}
