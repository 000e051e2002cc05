package mem_test

import (
	"testing"
	"unsafe"

	"github.com/memforge/memforge/heap"
	"github.com/memforge/memforge/mem"
	"github.com/stretchr/testify/require"
)

func TestReallocateTrivialSameLength(t *testing.T) {
	allocator := heap.New()
	b := allocator.Allocate(8)
	saved := b

	handled, ok := mem.ReallocateTrivial(allocator, &b, 8)
	require.True(t, handled)
	require.True(t, ok)
	require.Equal(t, saved, b)

	allocator.Deallocate(&b)
}

func TestReallocateTrivialToZeroDeallocates(t *testing.T) {
	allocator := heap.New()
	b := allocator.Allocate(8)

	handled, ok := mem.ReallocateTrivial(allocator, &b, 0)
	require.True(t, handled)
	require.True(t, ok)
	require.True(t, b.IsEmpty())
	require.Equal(t, 0, allocator.AllocationCount())
}

func TestReallocateTrivialFromEmptyAllocates(t *testing.T) {
	allocator := heap.New()
	var b mem.Block

	handled, ok := mem.ReallocateTrivial(allocator, &b, 16)
	require.True(t, handled)
	require.True(t, ok)
	require.Equal(t, 16, b.Length)

	allocator.Deallocate(&b)
}

func TestReallocateTrivialLeavesTrueResizesAlone(t *testing.T) {
	allocator := heap.New()
	b := allocator.Allocate(8)
	saved := b

	handled, ok := mem.ReallocateTrivial(allocator, &b, 16)
	require.False(t, handled)
	require.False(t, ok)
	require.Equal(t, saved, b)

	allocator.Deallocate(&b)
}

func TestReallocateWithCopyPreservesContents(t *testing.T) {
	allocator := heap.New()
	b := allocator.Allocate(8)
	data := unsafe.Slice((*byte)(b.Ptr), b.Length)
	for i := range data {
		data[i] = byte(i + 1)
	}

	require.True(t, mem.ReallocateWithCopy(allocator, &b, 16))
	require.Equal(t, 16, b.Length)

	moved := unsafe.Slice((*byte)(b.Ptr), b.Length)
	for i := 0; i < 8; i++ {
		require.Equal(t, byte(i+1), moved[i])
	}

	require.True(t, mem.ReallocateWithCopy(allocator, &b, 4))
	require.Equal(t, 4, b.Length)
	shrunk := unsafe.Slice((*byte)(b.Ptr), b.Length)
	for i := 0; i < 4; i++ {
		require.Equal(t, byte(i+1), shrunk[i])
	}

	allocator.Deallocate(&b)
	require.Equal(t, 0, allocator.AllocationCount())
}
