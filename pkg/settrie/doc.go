// Package settrie implements a map keyed by sets that answers subset and
// superset queries without scanning every key.
//
// Keys are slices sorted ascending with no duplicates. The SetTrie relies
// on that order to skip branches and never validates it unless created with
// WithKeyCheck; unsorted input silently gives wrong answers.
//
//	employees := settrie.New[string, string]()
//	employees.Insert([]string{"accounting", "banking"}, "Daniels")
//	employees.Insert([]string{"accounting", "banking", "crime"}, "Stevens")
//
//	employees.Subsets([]string{"accounting", "banking", "crime"}).Collect() // [Daniels Stevens]
//	employees.Subsets([]string{"accounting", "banking"}).Collect()          // [Daniels]
//	employees.Supersets([]string{"accounting"}).Collect()                   // [Daniels Stevens]
//
// Queries are lazy: an Iter walks the trie one match at a time, keeping its
// own frontier of pending nodes, and stops with ErrConcurrentModification if
// the SetTrie changes underneath it.
package settrie
