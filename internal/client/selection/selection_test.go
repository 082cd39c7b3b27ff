package selection

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToggle(t *testing.T) {
	s := New()

	s.Toggle("8.8.8.8")
	require.True(t, s.Has("8.8.8.8"))
	require.Equal(t, 1, s.Count())

	s.Toggle("8.8.8.8")
	require.False(t, s.Has("8.8.8.8"))
	require.Equal(t, 0, s.Count())
}

func TestClear(t *testing.T) {
	s := New()
	s.Toggle("8.8.8.8")
	s.Toggle("1.1.1.1")

	s.Clear()
	require.Equal(t, 0, s.Count())
}

func TestSelected_ReturnsCopy(t *testing.T) {
	s := New()
	s.Toggle("8.8.8.8")

	got := s.Selected()
	delete(got, "8.8.8.8")
	require.True(t, s.Has("8.8.8.8"))
}

func TestPrune(t *testing.T) {
	s := New()
	s.Toggle("8.8.8.8")
	s.Toggle("1.1.1.1")

	s.Prune([]string{"8.8.8.8"})
	require.True(t, s.Has("8.8.8.8"))
	require.False(t, s.Has("1.1.1.1"))
	require.Equal(t, 1, s.Count())
}
