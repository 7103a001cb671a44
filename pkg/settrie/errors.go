package settrie

import "github.com/pkg/errors"

var (
	// ErrConcurrentModification is reported by an iterator whose SetTrie was
	// modified after the iterator was created.
	ErrConcurrentModification = errors.New("settrie: trie modified during traversal")
	// ErrUnsortedKey is the panic value (wrapped) raised by WithKeyCheck when a
	// key or query is not strictly ascending.
	ErrUnsortedKey = errors.New("settrie: key is not sorted ascending without duplicates")
)
