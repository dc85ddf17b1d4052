package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"b": 1, "a": 2, "C": 3, "ab": 4}
	assert.Equal(t, []string{"C", "a", "ab", "b"}, SortedKeys(m))
	assert.Empty(t, SortedKeys(map[string]int(nil)))
}

func TestAt(t *testing.T) {
	s := [][]string{{"display"}, {}}

	v, ok := At(s, 0)
	assert.True(t, ok)
	assert.Equal(t, []string{"display"}, v)

	_, ok = At(s, 2)
	assert.False(t, ok)

	_, ok = At(s, -1)
	assert.False(t, ok)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty([]int(nil)))
	assert.False(t, IsEmpty([]int{3}))
}
