package settrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupersetsSmall(t *testing.T) {
	s := New[int, rune]()
	s.Insert([]int{1, 2, 3}, 'a')
	s.Insert([]int{1, 2, 4}, 'b')
	s.Insert([]int{0, 2, 4}, 'c')

	assert.Equal(t, []rune{'a', 'b'}, s.Supersets([]int{1, 2}).Collect())
	assert.Equal(t, []rune{'c', 'b'}, s.Supersets([]int{4}).Collect())
	assert.Equal(t, []rune{'c'}, s.Supersets([]int{0, 4}).Collect())
	assert.Empty(t, s.Supersets([]int{0, 1}).Collect())
}

func TestSupersetsOrder(t *testing.T) {
	s := New[int, string]()
	s.Insert([]int{1}, "a")
	s.Insert([]int{2}, "b")
	s.Insert([]int{2, 3}, "c")
	s.Insert([]int{3}, "d")
	s.Insert([]int{2, 3, 4}, "e")

	testCases := []struct {
		query    []int
		expected []string
	}{
		{[]int{}, []string{"a", "b", "c", "e", "d"}},
		{[]int{2}, []string{"b", "c", "e"}},
		{[]int{1}, []string{"a"}},
		{[]int{2, 3}, []string{"c", "e"}},
		{[]int{3}, []string{"c", "e", "d"}},
		{[]int{4}, []string{"e"}},
		{[]int{1, 2}, []string{}},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, s.Supersets(tc.query).Collect(), "supersets of %v", tc.query)
	}
}

func TestSupersetsRootValue(t *testing.T) {
	s := New[int, rune]()
	s.Insert([]int{}, 'e')
	s.Insert([]int{1, 2}, 'a')

	assert.Equal(t, []rune{'e', 'a'}, s.Supersets(nil).Collect())
	assert.Equal(t, []rune{'a'}, s.Supersets([]int{1}).Collect(), "The empty key is no superset of a non empty query")
	assert.Empty(t, s.Supersets([]int{0}).Collect())

	s.Insert([]int{0, 2}, 'b')
	assert.Equal(t, []rune{'a'}, s.Supersets([]int{1, 2}).Collect())
	assert.Equal(t, []rune{'b', 'a'}, s.Supersets([]int{2}).Collect())
}

// TestExactMatch checks that a key is both a subset and a superset of itself
// and, when no other key equals it, the only such key.
func TestExactMatch(t *testing.T) {
	s := smallTrie()
	for key, value := range s.All() {
		subsets := s.Subsets(key).Collect()
		both := []rune{}
		for _, v := range s.Supersets(key).Collect() {
			for _, w := range subsets {
				if v == w {
					both = append(both, v)
				}
			}
		}
		assert.Equal(t, []rune{value}, both, "key %v", key)
	}
}
