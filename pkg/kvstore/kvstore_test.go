package kvstore

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_PutGetDelete(t *testing.T) {
	t.Parallel()
	s := New[string]()

	_, ok := s.Get("a")
	assert.False(t, ok)
	assert.False(t, s.Exists("a"))

	s.Put("a", "one")
	got, ok := s.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "one", got)
	assert.True(t, s.Exists("a"))

	// Повторный Put перезаписывает
	s.Put("a", "two")
	got, _ = s.Get("a")
	assert.Equal(t, "two", got)
	assert.Equal(t, 1, s.Len())

	assert.True(t, s.Delete("a"))
	assert.False(t, s.Delete("a"))
	assert.False(t, s.Exists("a"))
	assert.Equal(t, 0, s.Len())
}

func TestStore_List(t *testing.T) {
	t.Parallel()
	s := New[int]()

	s.Put("a", 1)
	s.Put("b", 2)
	s.Put("c", 3)

	values := s.List()
	sort.Ints(values)
	assert.Equal(t, []int{1, 2, 3}, values)
	assert.Equal(t, 3, s.Len())
}
