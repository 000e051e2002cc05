package heap_test

import (
	"testing"
	"unsafe"

	"github.com/memforge/memforge/heap"
	"github.com/memforge/memforge/mem"
	"github.com/stretchr/testify/require"
)

func TestAllocateZeroBytesResultsInEmptyBlock(t *testing.T) {
	allocator := heap.New()
	require.True(t, allocator.Allocate(0).IsEmpty())
	require.True(t, allocator.Allocate(-1).IsEmpty())
	require.Equal(t, 0, allocator.AllocationCount())
}

func TestAllocateResultsInZeroedBlock(t *testing.T) {
	allocator := heap.New()

	b := allocator.Allocate(32)
	require.False(t, b.IsEmpty())
	require.Equal(t, 32, b.Length)
	require.Equal(t, 1, allocator.AllocationCount())
	require.True(t, allocator.Owns(b))

	data := unsafe.Slice((*byte)(b.Ptr), b.Length)
	for _, v := range data {
		require.Zero(t, v)
	}

	allocator.Deallocate(&b)
}

func TestDeallocateUnpinsAndResets(t *testing.T) {
	allocator := heap.New()

	b := allocator.Allocate(8)
	saved := b

	allocator.Deallocate(&b)
	require.True(t, b.IsEmpty())
	require.Equal(t, 0, allocator.AllocationCount())
	require.False(t, allocator.Owns(saved))

	// a second deallocation of the now-empty block is a no-op
	allocator.Deallocate(&b)
}

func TestReallocatePreservesData(t *testing.T) {
	allocator := heap.New()

	b := allocator.Allocate(8)
	data := unsafe.Slice((*byte)(b.Ptr), b.Length)
	for i := range data {
		data[i] = byte(i + 1)
	}

	require.True(t, allocator.Reallocate(&b, 16))
	require.Equal(t, 16, b.Length)
	require.Equal(t, 1, allocator.AllocationCount())

	grown := unsafe.Slice((*byte)(b.Ptr), b.Length)
	for i := 0; i < 8; i++ {
		require.Equal(t, byte(i+1), grown[i])
	}

	require.True(t, allocator.Reallocate(&b, 0))
	require.True(t, b.IsEmpty())
	require.Equal(t, 0, allocator.AllocationCount())

	require.False(t, allocator.Reallocate(&b, -1))
}

func TestDeallocateAll(t *testing.T) {
	allocator := heap.New()

	var blocks []mem.Block
	for i := 0; i < 3; i++ {
		blocks = append(blocks, allocator.Allocate(8))
	}
	require.Equal(t, 3, allocator.AllocationCount())

	allocator.DeallocateAll()
	require.Equal(t, 0, allocator.AllocationCount())
	require.False(t, allocator.Owns(blocks[0]))
}
