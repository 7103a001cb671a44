package settrie

import "github.com/khalid-nowaf/settrie/pkg/trie"

// Entry is a cursor on the value slot of a single key, obtained from
// SetTrie.Entry. The path to the key already exists, so every method works
// on the slot directly without walking the trie again.
type Entry[K any, V any] struct {
	set  *SetTrie[K, V]
	node trie.Handle
}

// Entry returns the cursor for key, creating the path to it if needed. The
// slot itself stays empty until a value is inserted through the cursor.
func (s *SetTrie[K, V]) Entry(key []K) *Entry[K, V] {
	s.checkKey(key)
	s.version++
	return &Entry[K, V]{set: s, node: s.nodes.Build(trie.Root, key)}
}

// Entry continues from this entry's key with more elements, each greater
// than the last element of the current key. Building a long chain of keys
// this way avoids walking from the root for each of them.
func (e *Entry[K, V]) Entry(suffix []K) *Entry[K, V] {
	e.set.checkKey(suffix)
	e.set.version++
	return &Entry[K, V]{set: e.set, node: e.set.nodes.Build(e.node, suffix)}
}

// Key returns the full key the entry points at.
func (e *Entry[K, V]) Key() []K {
	return e.set.nodes.Path(e.node)
}

// Get returns the stored value, if any.
func (e *Entry[K, V]) Get() (V, bool) {
	if value := e.set.nodes.Metadata(e.node); value != nil {
		return *value, true
	}
	var zero V
	return zero, false
}

// Insert stores value, returning the value it replaced.
func (e *Entry[K, V]) Insert(value V) (previous V, replaced bool) {
	if old := e.set.nodes.Metadata(e.node); old != nil {
		previous, *old = *old, value
		return previous, true
	}
	e.fill(value)
	return previous, false
}

// OrInsert returns a pointer to the stored value, storing value first if the
// slot is empty.
func (e *Entry[K, V]) OrInsert(value V) *V {
	if current := e.set.nodes.Metadata(e.node); current != nil {
		return current
	}
	return e.fill(value)
}

// OrInsertWith is like OrInsert but only calls factory when the slot is empty.
func (e *Entry[K, V]) OrInsertWith(factory func() V) *V {
	if current := e.set.nodes.Metadata(e.node); current != nil {
		return current
	}
	return e.fill(factory())
}

// AndModify applies f to the stored value in place, doing nothing when the
// slot is empty. It returns the entry so it can be followed by OrInsert.
func (e *Entry[K, V]) AndModify(f func(*V)) *Entry[K, V] {
	if current := e.set.nodes.Metadata(e.node); current != nil {
		f(current)
	}
	return e
}

func (e *Entry[K, V]) fill(value V) *V {
	e.set.len++
	e.set.version++
	e.set.nodes.UpdateMetadata(e.node, &value)
	return &value
}
