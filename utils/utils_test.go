package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMax(t *testing.T) {
	require.Equal(t, 7, Max(3, 7))
	require.Equal(t, -3, Max(-7, -3))
	require.Equal(t, uint64(5), Max(uint64(5), uint64(5)))
	require.Equal(t, "b", Max("b", "a"))
}

func TestCount(t *testing.T) {
	require.Equal(t, 2, Count([]int64{1, -1, 0, 1}, 1))
	require.Equal(t, 1, Count([]int64{1, -1, 0, 1}, -1))
	require.Equal(t, 0, Count([]int64{}, 1))
}
