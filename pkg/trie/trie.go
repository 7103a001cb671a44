package trie

import (
	"fmt"
	"iter"
	"slices"
)

// Handle addresses a node inside a Trie's arena.
type Handle = int

// Root is the handle of the node representing the empty path.
// Nil is returned when there is no node.
const (
	Root Handle = 0
	Nil  Handle = -1
)

type edge[K any] struct {
	label K
	node  Handle
}

type node[K any, T any] struct {
	parent   Handle    // handle of the parent node, Nil for the root
	label    K         // element on the edge coming from the parent
	depth    int       // number of edges between the root and this node
	children []edge[K] // sorted ascending by label
	metadata *T        // value slot, nil when empty
}

// Trie is a generic prefix tree whose edges are labelled with elements of K
// and whose nodes carry an optional *T. Nodes live in a single arena and
// refer to each other by Handle.
type Trie[K any, T any] struct {
	nodes   []node[K, T]
	compare func(a, b K) int
}

// NewTrie creates a trie holding only the root node.
// compare must define a total order over K.
func NewTrie[K any, T any](compare func(a, b K) int) *Trie[K, T] {
	return NewTrieWithCapacity[K, T](compare, 1)
}

// NewTrieWithCapacity is like NewTrie but reserves room for capacity nodes.
func NewTrieWithCapacity[K any, T any](compare func(a, b K) int, capacity int) *Trie[K, T] {
	if compare == nil {
		panic("[BUG] NewTrie: compare must not be nil")
	}
	if capacity < 1 {
		capacity = 1
	}
	t := &Trie[K, T]{
		nodes:   make([]node[K, T], 0, capacity),
		compare: compare,
	}
	t.nodes = append(t.nodes, node[K, T]{parent: Nil})
	return t
}

func (t *Trie[K, T]) at(h Handle) *node[K, T] {
	if h < 0 || h >= len(t.nodes) {
		panic(fmt.Sprintf("[BUG] trie: handle %d out of range [0, %d)", h, len(t.nodes)))
	}
	return &t.nodes[h]
}

// search returns the index of label among the children of n, or the
// index it would be inserted at.
func (t *Trie[K, T]) search(n *node[K, T], label K) (int, bool) {
	return slices.BinarySearchFunc(n.children, label, func(e edge[K], k K) int {
		return t.compare(e.label, k)
	})
}

// Child returns the child of at reached through label. It never allocates.
func (t *Trie[K, T]) Child(at Handle, label K) (Handle, bool) {
	n := t.at(at)
	if i, found := t.search(n, label); found {
		return n.children[i].node, true
	}
	return Nil, false
}

// AttachChild returns the child of at reached through label, creating an
// empty one first if it does not exist yet.
func (t *Trie[K, T]) AttachChild(at Handle, label K) Handle {
	n := t.at(at)
	i, found := t.search(n, label)
	if found {
		return n.children[i].node
	}

	child := len(t.nodes)
	depth := n.depth + 1
	n.children = slices.Insert(n.children, i, edge[K]{label: label, node: child})
	// n may be stale after this append, do not touch it again
	t.nodes = append(t.nodes, node[K, T]{parent: at, label: label, depth: depth})
	return child
}

// Seek follows labels from `from` without creating nodes.
// The second result is false as soon as one label has no child.
func (t *Trie[K, T]) Seek(from Handle, labels []K) (Handle, bool) {
	current := from
	for _, label := range labels {
		next, ok := t.Child(current, label)
		if !ok {
			return Nil, false
		}
		current = next
	}
	return current, true
}

// Build follows labels from `from`, attaching missing nodes on the way,
// and returns the last node of the path.
func (t *Trie[K, T]) Build(from Handle, labels []K) Handle {
	current := from
	for _, label := range labels {
		current = t.AttachChild(current, label)
	}
	return current
}

// Metadata returns the value slot of the node, nil when empty.
func (t *Trie[K, T]) Metadata(at Handle) *T {
	return t.at(at).metadata
}

// UpdateMetadata replaces the value slot of the node. Passing nil empties it.
func (t *Trie[K, T]) UpdateMetadata(at Handle, metadata *T) {
	t.at(at).metadata = metadata
}

// Parent returns the parent handle, Nil for the root.
func (t *Trie[K, T]) Parent(at Handle) Handle {
	return t.at(at).parent
}

// Label returns the element on the edge leading to the node.
// The root has no incoming edge and reports the zero K.
func (t *Trie[K, T]) Label(at Handle) K {
	return t.at(at).label
}

// Depth returns the number of edges between the root and the node.
func (t *Trie[K, T]) Depth(at Handle) int {
	return t.at(at).depth
}

// IsRoot checks if the handle is the root of the trie.
func (t *Trie[K, T]) IsRoot(at Handle) bool {
	return t.at(at).parent == Nil
}

// IsLeaf checks if the node has no children.
func (t *Trie[K, T]) IsLeaf(at Handle) bool {
	return len(t.at(at).children) == 0
}

func (t *Trie[K, T]) ChildCount(at Handle) int {
	return len(t.at(at).children)
}

// Children yields the children of the node ascending by label.
func (t *Trie[K, T]) Children(at Handle) iter.Seq2[K, Handle] {
	return func(yield func(K, Handle) bool) {
		for _, e := range t.at(at).children {
			if !yield(e.label, e.node) {
				return
			}
		}
	}
}

// applies a function to each child of the node, ascending by label.
func (t *Trie[K, T]) ForEachChild(at Handle, f func(label K, child Handle)) {
	for _, e := range t.at(at).children {
		f(e.label, e.node)
	}
}

// ForEachStepDown applies f to every descendant of `at` in pre-order, children
// ascending by label. A descendant is only expanded while `while` holds for it;
// pass nil to visit the whole subtree. The walk keeps its own stack so the
// depth of the trie is not bounded by the goroutine stack.
func (t *Trie[K, T]) ForEachStepDown(at Handle, f func(Handle), while func(Handle) bool) {
	stack := t.pushChildren(nil, at)
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		f(current)
		if while == nil || while(current) {
			stack = t.pushChildren(stack, current)
		}
	}
}

// pushChildren appends the children of `at` so the smallest label is on top.
func (t *Trie[K, T]) pushChildren(stack []Handle, at Handle) []Handle {
	children := t.at(at).children
	for i := len(children) - 1; i >= 0; i-- {
		stack = append(stack, children[i].node)
	}
	return stack
}

// applies a function to each ancestor of the node, moving from the node
// towards the root. The root itself is not visited.
func (t *Trie[K, T]) ForEachStepUp(at Handle, f func(Handle), while func(Handle) bool) {
	current := at
	for !t.IsRoot(current) && (while == nil || while(current)) {
		f(current)
		current = t.Parent(current)
	}
}

// Path returns the labels from the root down to the node.
func (t *Trie[K, T]) Path(at Handle) []K {
	path := make([]K, t.Depth(at))
	i := len(path) - 1
	t.ForEachStepUp(at, func(h Handle) {
		path[i] = t.Label(h)
		i--
	}, nil)
	return path
}

// Leafs returns every descendant of `at` without children.
func (t *Trie[K, T]) Leafs(at Handle) []Handle {
	leafs := []Handle{}
	t.ForEachStepDown(at, func(h Handle) {
		if t.IsLeaf(h) {
			leafs = append(leafs, h)
		}
	}, nil)
	return leafs
}

// Size returns the number of nodes, root included.
func (t *Trie[K, T]) Size() int {
	return len(t.nodes)
}

// Height returns the depth of the deepest node.
func (t *Trie[K, T]) Height() int {
	height := 0
	for i := range t.nodes {
		height = max(height, t.nodes[i].depth)
	}
	return height
}
