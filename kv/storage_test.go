package kv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	t.Run("get inserted", func(t *testing.T) {
		s := New().Set("host", "example.com").Set("accept", "*/*")
		require.Equal(t, 2, s.Len())
		require.Equal(t, "example.com", s.Value("host"))
		require.True(t, s.Has("accept"))
		require.False(t, s.Has("content-length"))
	})

	t.Run("set overwrites", func(t *testing.T) {
		s := New().Set("x-custom", "1").Set("x-custom", "2")
		require.Equal(t, 1, s.Len())
		require.Equal(t, "2", s.Value("x-custom"))
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		s := New().Set("host", "a")
		require.Equal(t, "a", s.Value("Host"))
		require.True(t, s.Has("HOST"))
	})

	t.Run("value or fallback", func(t *testing.T) {
		s := New()
		require.Equal(t, "0", s.ValueOr("content-length", "0"))
		s.Set("content-length", "13")
		require.Equal(t, "13", s.ValueOr("content-length", "0"))
	})

	t.Run("keys", func(t *testing.T) {
		s := New().Set("a", "1").Set("b", "2").Set("a", "3")
		require.Equal(t, []string{"a", "b"}, s.Keys())
	})

	t.Run("expose", func(t *testing.T) {
		s := New().Set("a", "1").Set("b", "2")
		require.Equal(t, []Pair{{"a", "1"}, {"b", "2"}}, s.Expose())
	})

	t.Run("iter", func(t *testing.T) {
		s := New().Set("a", "1").Set("b", "2")

		var pairs []Pair
		for key, value := range s.Iter() {
			pairs = append(pairs, Pair{key, value})
		}
		require.Equal(t, []Pair{{"a", "1"}, {"b", "2"}}, pairs)

		for key, value := range s.Iter() {
			require.Equal(t, "a", key)
			require.Equal(t, "1", value)
			break
		}
	})

	t.Run("clear", func(t *testing.T) {
		s := New().Set("a", "1")
		require.True(t, s.Clear().Empty())
	})

	t.Run("clone is independent", func(t *testing.T) {
		s := New().Set("a", "1")
		c := s.Clone()
		s.Set("a", "2")
		require.Equal(t, "1", c.Value("a"))
	})
}
