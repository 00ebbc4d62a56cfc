package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortedUnique(t *testing.T) {
	require.Equal(t, []string{"abseil", "fmt", "zlib"},
		SortedUnique([]string{"zlib", "fmt", "abseil", "zlib", "fmt"}))
	require.Empty(t, SortedUnique(nil))
	require.Equal(t, []string{"one"}, SortedUnique([]string{"one"}))
}

func TestIsHousekeepingEntry(t *testing.T) {
	require.True(t, IsHousekeepingEntry(".DS_Store"))
	require.True(t, IsHousekeepingEntry(".git"))
	require.False(t, IsHousekeepingEntry("zlib"))
}
