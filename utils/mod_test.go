package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCenterDistance(t *testing.T) {
	t.Run("odd board center cell", func(t *testing.T) {
		// Center of a 7x7 board is (3.5, 3.5)
		require.Equal(t, 0.5, CenterDistance(7, 7, 3, 3))
	})

	t.Run("corner is farther than center", func(t *testing.T) {
		require.Greater(t, CenterDistance(7, 7, 0, 0), CenterDistance(7, 7, 3, 3))
	})

	t.Run("rows and columns use height and width", func(t *testing.T) {
		require.Equal(t, 4.0+1.0, CenterDistance(4, 2, 3, 3))
	})
}

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b"}, "b"))
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3))
}
