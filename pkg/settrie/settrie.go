package settrie

import (
	"fmt"
	"iter"
	"strings"

	"github.com/khalid-nowaf/settrie/pkg/trie"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// SetTrie maps sets to values and answers subset and superset queries.
//
// Keys and queries are slices that the caller keeps sorted ascending, without
// duplicates, under the ordering the SetTrie was created with. This is not
// checked (see WithKeyCheck): an unsorted key or query gives meaningless
// results, not an error.
//
// A SetTrie is not safe for concurrent use. Iterators created by Subsets,
// Supersets and Values stop with ErrConcurrentModification once the trie is
// modified.
type SetTrie[K any, V any] struct {
	nodes   *trie.Trie[K, V]
	compare func(a, b K) int
	len     int
	version uint64
	opts    *Options
}

// New creates an empty SetTrie ordering elements with < and >.
func New[K constraints.Ordered, V any](opts ...Option) *SetTrie[K, V] {
	return NewFunc[K, V](defaultCompare[K], opts...)
}

// NewFunc creates an empty SetTrie ordering elements with compare, which must
// return a negative number when a < b, zero when a == b and a positive number
// when a > b.
func NewFunc[K any, V any](compare func(a, b K) int, opts ...Option) *SetTrie[K, V] {
	options := DefaultOptions()
	for _, opt := range opts {
		options = opt(options)
	}
	return &SetTrie[K, V]{
		nodes:   trie.NewTrieWithCapacity[K, V](compare, options.NodeCapacity),
		compare: compare,
		opts:    options,
	}
}

// Collect builds a SetTrie from key/value pairs, later pairs overwriting
// earlier ones with the same key.
func Collect[K constraints.Ordered, V any](seq iter.Seq2[[]K, V], opts ...Option) *SetTrie[K, V] {
	s := New[K, V](opts...)
	s.Extend(seq)
	return s
}

func defaultCompare[K constraints.Ordered](a, b K) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Insert stores value under key. If key was already present its previous
// value is returned and replaced is true.
func (s *SetTrie[K, V]) Insert(key []K, value V) (previous V, replaced bool) {
	s.checkKey(key)
	s.version++

	at := s.nodes.Build(trie.Root, key)
	if old := s.nodes.Metadata(at); old != nil {
		// write through so pointers handed out by Entry stay bound to the key
		previous, *old = *old, value
		return previous, true
	}
	s.len++
	s.nodes.UpdateMetadata(at, &value)
	return previous, false
}

// Extend inserts every pair of seq.
func (s *SetTrie[K, V]) Extend(seq iter.Seq2[[]K, V]) {
	for key, value := range seq {
		s.Insert(key, value)
	}
}

// Contains reports whether exactly key has been inserted.
func (s *SetTrie[K, V]) Contains(key []K) bool {
	_, ok := s.Get(key)
	return ok
}

// Get returns the value stored under exactly key.
func (s *SetTrie[K, V]) Get(key []K) (V, bool) {
	var zero V
	s.checkKey(key)

	at, ok := s.nodes.Seek(trie.Root, key)
	if !ok {
		return zero, false
	}
	if value := s.nodes.Metadata(at); value != nil {
		return *value, true
	}
	return zero, false
}

// Len returns the number of stored keys.
func (s *SetTrie[K, V]) Len() int {
	return s.len
}

// Subsets iterates over every stored key that is a subset of query, in
// depth first order: a key comes before the keys extending it, and siblings
// follow the order of query.
func (s *SetTrie[K, V]) Subsets(query []K) *Iter[K, V] {
	s.checkKey(query)
	return newIter(s, &subsetWalk[K, V]{nodes: s.nodes, compare: s.compare, query: query})
}

// Supersets iterates over every stored key that is a superset of query, in
// depth first order. Unlike Subsets it cannot skip branches whose elements
// are missing from query, so prefer Subsets when a problem allows both.
func (s *SetTrie[K, V]) Supersets(query []K) *Iter[K, V] {
	s.checkKey(query)
	return newIter(s, &supersetWalk[K, V]{nodes: s.nodes, compare: s.compare, query: query})
}

// Values iterates over every stored value in depth first order of the keys.
func (s *SetTrie[K, V]) Values() *Iter[K, V] {
	return newIter(s, &valuesWalk[K, V]{nodes: s.nodes})
}

// All yields every key with its value in depth first order.
func (s *SetTrie[K, V]) All() iter.Seq2[[]K, V] {
	return s.Values().All()
}

// Stats describes the shape of a SetTrie.
type Stats struct {
	Keys   int // stored keys
	Nodes  int // trie nodes, root included
	Height int // length of the longest key
}

func (s *SetTrie[K, V]) Stats() Stats {
	return Stats{
		Keys:   s.len,
		Nodes:  s.nodes.Size(),
		Height: s.nodes.Height(),
	}
}

// String lists one "[k1 k2] => value" line per stored key.
func (s *SetTrie[K, V]) String() string {
	var sb strings.Builder
	for key, value := range s.All() {
		fmt.Fprintf(&sb, "%v => %v\n", key, value)
	}
	return sb.String()
}

func (s *SetTrie[K, V]) checkKey(key []K) {
	if !s.opts.CheckKeys {
		return
	}
	for i := 1; i < len(key); i++ {
		if s.compare(key[i-1], key[i]) >= 0 {
			panic(errors.Wrapf(ErrUnsortedKey, "element %d (%v) does not follow %v in %v", i, key[i], key[i-1], key))
		}
	}
}
