package settrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func smallTrie() *SetTrie[int, rune] {
	s := New[int, rune]()
	s.Insert([]int{1, 2, 3}, 'a')
	s.Insert([]int{1, 2}, 'b')
	s.Insert([]int{0, 2, 4}, 'c')
	s.Insert([]int{0}, 'd')
	s.Insert([]int{0, 3}, 'e')
	s.Insert([]int{}, 'f')
	s.Insert([]int{2, 3}, 'g')
	s.Insert([]int{2}, 'h')
	s.Insert([]int{5}, 'i')
	return s
}

func TestSubsetsOrder(t *testing.T) {
	s := smallTrie()

	testCases := []struct {
		name     string
		query    []int
		expected []rune
	}{
		{"depth first in query order", []int{1, 2, 3, 5}, []rune{'f', 'b', 'a', 'h', 'g', 'i'}},
		{"empty query only matches the empty key", []int{}, []rune{'f'}},
		{"single element", []int{5}, []rune{'f', 'i'}},
		{"missing element", []int{6}, []rune{'f'}},
		{"everything", []int{0, 1, 2, 3, 4, 5}, []rune{'f', 'd', 'c', 'e', 'b', 'a', 'h', 'g', 'i'}},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, s.Subsets(tc.query).Collect(), tc.name)
	}
}

func TestSubsetsSkipsPartialMatches(t *testing.T) {
	s := New[int, rune]()
	s.Insert([]int{1, 2}, 'a')

	assert.Empty(t, s.Subsets([]int{0, 1}).Collect())
	assert.Equal(t, []rune{'a'}, s.Subsets([]int{0, 1, 2}).Collect())
	assert.Equal(t, []rune{'a'}, s.Subsets([]int{1, 2}).Collect())

	s.Insert([]int{0, 2}, 'z')
	assert.Equal(t, []rune{'z'}, s.Subsets([]int{0, 2}).Collect())
}

func TestSubsetsKeys(t *testing.T) {
	s := smallTrie()

	keys := [][]int{}
	for key := range s.Subsets([]int{0, 3, 4}).All() {
		keys = append(keys, key)
	}
	assert.Equal(t, [][]int{{}, {0}, {0, 3}}, keys)
}

// TestSubsetsSelf checks that every key is among its own subsets.
func TestSubsetsSelf(t *testing.T) {
	s := smallTrie()
	for key, value := range s.All() {
		assert.Contains(t, s.Subsets(key).Collect(), value, "key %v", key)
	}
}
