package settrie

import (
	"iter"

	"github.com/khalid-nowaf/settrie/pkg/trie"
)

// frame is one pending node of a traversal together with how much of the
// query has been consumed on the path leading to it.
type frame struct {
	node trie.Handle
	pos  int
}

// walker decides which nodes a traversal yields and which children it visits.
type walker interface {
	// accept reports whether the value of f's node, if any, is a match.
	accept(f frame) bool
	// expand appends the frames of f's children to visit, the first child to
	// visit last so it is popped first.
	expand(f frame, frontier []frame) []frame
}

// Iter is a lazy depth first traversal over a SetTrie. Each call to Next
// advances the traversal to the next match:
//
//	it := s.Subsets(query)
//	for it.Next() {
//		fmt.Println(it.Key(), it.Value())
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
//
// An Iter cannot be restarted. It holds no resources, so an unfinished one
// can simply be dropped.
type Iter[K any, V any] struct {
	set      *SetTrie[K, V]
	walk     walker
	frontier []frame
	version  uint64
	current  trie.Handle
	err      error
}

func newIter[K any, V any](s *SetTrie[K, V], walk walker) *Iter[K, V] {
	return &Iter[K, V]{
		set:      s,
		walk:     walk,
		frontier: []frame{{node: trie.Root, pos: 0}},
		version:  s.version,
		current:  trie.Nil,
	}
}

// Next advances to the next match and reports whether there is one. It
// returns false when the traversal is over or the SetTrie was modified since
// the iterator was created; Err tells the two apart.
func (it *Iter[K, V]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.version != it.set.version {
		it.err = ErrConcurrentModification
		it.frontier = nil
		it.current = trie.Nil
		return false
	}

	for len(it.frontier) > 0 {
		top := it.frontier[len(it.frontier)-1]
		it.frontier = it.walk.expand(top, it.frontier[:len(it.frontier)-1])

		if it.walk.accept(top) && it.set.nodes.Metadata(top.node) != nil {
			it.current = top.node
			return true
		}
	}
	it.current = trie.Nil
	return false
}

// Value returns the value of the current match, the zero V when there is none.
func (it *Iter[K, V]) Value() V {
	if it.current == trie.Nil {
		var zero V
		return zero
	}
	return *it.set.nodes.Metadata(it.current)
}

// Key returns the key of the current match, nil when there is none.
func (it *Iter[K, V]) Key() []K {
	if it.current == trie.Nil {
		return nil
	}
	return it.set.nodes.Path(it.current)
}

// Err returns ErrConcurrentModification if the traversal was cut short.
func (it *Iter[K, V]) Err() error {
	return it.err
}

// Collect drains the iterator into a slice of values.
func (it *Iter[K, V]) Collect() []V {
	values := []V{}
	for it.Next() {
		values = append(values, it.Value())
	}
	return values
}

// All drains the iterator as a range-over-func sequence of keys and values.
// Check Err after the loop.
func (it *Iter[K, V]) All() iter.Seq2[[]K, V] {
	return func(yield func([]K, V) bool) {
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Values is like All but only yields values, skipping key reconstruction.
func (it *Iter[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
