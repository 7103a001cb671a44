package settrie

import (
	"slices"

	"github.com/khalid-nowaf/settrie/pkg/trie"
)

// valuesWalk visits the whole trie.
type valuesWalk[K any, V any] struct {
	nodes *trie.Trie[K, V]
}

func (w *valuesWalk[K, V]) accept(frame) bool {
	return true
}

func (w *valuesWalk[K, V]) expand(f frame, frontier []frame) []frame {
	start := len(frontier)
	for _, child := range w.nodes.Children(f.node) {
		frontier = append(frontier, frame{node: child})
	}
	slices.Reverse(frontier[start:])
	return frontier
}
