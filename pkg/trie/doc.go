// ## Overview
// Package trie implements a generic, arena backed trie (prefix tree).
// Every edge is labelled with an element of K and every node owns an optional
// value slot of type *T. Nodes are addressed by Handle, an index into the
// arena, with Root fixed at 0. Children are kept sorted by label using the
// compare function given at construction, so walks are deterministic.
//
// ## Example usage:
//
//	t := trie.NewTrie[string, int](strings.Compare)
//
//	// walk the path, creating missing nodes
//	end := t.Build(trie.Root, []string{"accounting", "banking"})
//	v := 1
//	t.UpdateMetadata(end, &v)
//
//	// walk it again without creating anything
//	if h, ok := t.Seek(trie.Root, []string{"accounting", "banking"}); ok {
//		fmt.Println(t.Path(h), *t.Metadata(h)) // Output: [accounting banking] 1
//	}
//
//	// visit every node below the root
//	t.ForEachStepDown(trie.Root, func(h trie.Handle) {
//		fmt.Println(t.Depth(h), t.Label(h))
//	}, nil)
//
// Walks never recurse, so very deep tries are fine.
package trie
