package sets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := New("b", "a")
	s.Add("c")
	s.Add("a")

	assert.True(t, s.Has("a"))
	assert.Len(t, s, 3)

	s.Delete("b")
	s.Delete("missing")
	assert.False(t, s.Has("b"))
	assert.Equal(t, []string{"a", "c"}, Sorted(s))
}

func TestSet_CloneIsIndependent(t *testing.T) {
	s := New(1, 2)
	c := s.Clone()
	c.Add(3)

	assert.False(t, s.Has(3))
	assert.True(t, c.Has(3))
}

func TestSorted_Empty(t *testing.T) {
	assert.Empty(t, Sorted(Set[string]{}))
}
