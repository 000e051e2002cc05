package mem_test

import (
	"testing"

	"github.com/memforge/memforge/mem"
	"github.com/stretchr/testify/require"
)

func TestAlignUp(t *testing.T) {
	require.Equal(t, 8, mem.AlignUp(5, 8))
	require.Equal(t, 8, mem.AlignUp(8, 8))
	require.Equal(t, 0, mem.AlignUp(0, 8))
	require.Equal(t, 16, mem.AlignUp(9, 8))
}

func TestAlignDown(t *testing.T) {
	require.Equal(t, 8, mem.AlignDown(13, 8))
	require.Equal(t, 8, mem.AlignDown(8, 8))
	require.Equal(t, 0, mem.AlignDown(7, 8))
}

func TestCheckPow2(t *testing.T) {
	require.NoError(t, mem.CheckPow2(1, "align"))
	require.NoError(t, mem.CheckPow2(64, "align"))

	err := mem.CheckPow2(6, "align")
	require.Error(t, err)
	require.ErrorIs(t, err, mem.ErrPowerOfTwo)
}
