package collections

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashMap(t *testing.T) {
	type Mock struct {
		A string
		B int
	}
	s := NewHashMap[string, *Mock](4)
	_ = s.Put("aa", &Mock{
		A: "aa",
		B: 22,
	}, false)
	_ = s.Put("bb", &Mock{
		A: "bb",
		B: 55,
	}, false)
	require.Equal(t, 2, s.Size())
	require.Equal(t, true, s.Contains("aa"))
	require.Equal(t, true, s.Contains("bb"))
	require.Equal(t, false, s.Contains("cc"))
	require.Equal(t, 2, len(s.Keys()))
	require.Equal(t, 2, len(s.Values()))
	require.ErrorIs(t, s.Put("aa", &Mock{A: "xx"}, false), ErrKeyExisted)
	v, err := s.Get("aa")
	require.Nil(t, err)
	require.Equal(t, 22, v.B)
	require.Nil(t, s.Put("aa", &Mock{A: "xx"}, true))
	v, _ = s.Get("aa")
	require.Equal(t, "xx", v.A)
	require.Nil(t, s.Delete("bb"))
	require.Equal(t, false, s.Contains("bb"))
	require.Equal(t, 1, s.Size())
	require.ErrorIs(t, s.Delete("bb"), ErrValueNotExisted)
	_, err = s.Get("bb")
	require.ErrorIs(t, err, ErrValueNotExisted)
}

func TestHashMapClearAndClone(t *testing.T) {
	for _, keep := range []bool{true, false} {
		s := NewHashMap[string, int](2)
		_ = s.Put("a", 1, false)
		_ = s.Put("b", 2, false)
		c := s.Clone()
		s.Clear(keep)
		require.Equal(t, 0, s.Size())
		require.Equal(t, false, s.Contains("a"))
		require.Equal(t, 2, c.Size())
		require.Equal(t, map[string]int{"a": 1, "b": 2}, c.ToMap())
		_ = s.Put("c", 3, false)
		require.Equal(t, map[string]int{"c": 3}, s.ToMap())
	}

	s := NewHashMap[string, int](-1)
	_ = s.Put("x", 1, false)
	_ = s.Put("y", 2, false)
	keys := make([]string, 0)
	s.Each(func(k string, v int) {
		keys = append(keys, k)
	})
	sort.Strings(keys)
	require.Equal(t, []string{"x", "y"}, keys)
	out := s.ToMap()
	out["z"] = 3
	require.Equal(t, false, s.Contains("z"))
}
