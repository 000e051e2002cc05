package region_test

import (
	"testing"
	"unsafe"

	"github.com/memforge/memforge/mem"
	"github.com/memforge/memforge/region"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadGeometry(t *testing.T) {
	_, err := region.New(64, 0)
	require.Error(t, err)

	_, err = region.New(64, 6)
	require.ErrorIs(t, err, mem.ErrPowerOfTwo)

	_, err = region.New(20, 8)
	require.Error(t, err)

	_, err = region.New(0, 8)
	require.Error(t, err)
}

func TestAllocateAndDeallocate(t *testing.T) {
	r, err := region.New(64, 8)
	require.NoError(t, err)

	b := r.Allocate(16)
	require.False(t, b.IsEmpty())
	require.Equal(t, 16, b.Length)
	require.Equal(t, 48, r.FreeBytes())

	data := unsafe.Slice((*byte)(b.Ptr), b.Length)
	for i := range data {
		data[i] = byte(i)
	}

	r.Deallocate(&b)
	require.True(t, b.IsEmpty())
	require.Equal(t, 64, r.FreeBytes())
	require.NoError(t, r.Validate())
}

func TestAllocateFailsWhenNoRunFits(t *testing.T) {
	r, err := region.New(64, 8)
	require.NoError(t, err)

	require.True(t, r.Allocate(65).IsEmpty())
	require.True(t, r.Allocate(0).IsEmpty())

	whole := r.Allocate(64)
	require.False(t, whole.IsEmpty())
	require.True(t, r.Allocate(8).IsEmpty())

	r.Deallocate(&whole)
}

func TestTruncatedDeallocation(t *testing.T) {
	r, err := region.New(64, 8)
	require.NoError(t, err)
	require.True(t, r.SupportsTruncatedDeallocation())

	whole := r.Allocate(32)
	require.False(t, whole.IsEmpty())

	// free the two middle chunks of the four-chunk allocation
	middle := mem.Block{Ptr: unsafe.Add(whole.Ptr, 8), Length: 16}
	r.Deallocate(&middle)
	require.Equal(t, 48, r.FreeBytes())

	// first fit lands exactly in the gap
	refill := r.Allocate(16)
	require.Equal(t, unsafe.Add(whole.Ptr, 8), refill.Ptr)
	require.NoError(t, r.Validate())
}

func TestAllocationRoundsUpToWholeChunks(t *testing.T) {
	r, err := region.New(64, 8)
	require.NoError(t, err)

	b := r.Allocate(9)
	require.Equal(t, 9, b.Length)
	require.Equal(t, 48, r.FreeBytes())

	r.Deallocate(&b)
	require.Equal(t, 64, r.FreeBytes())
	require.NoError(t, r.Validate())
}

func TestOwnsIsAnAddressRangeTest(t *testing.T) {
	r, err := region.New(64, 8)
	require.NoError(t, err)

	b := r.Allocate(8)
	require.True(t, r.Owns(b))

	var foreign [8]byte
	require.False(t, r.Owns(mem.Block{Ptr: unsafe.Pointer(&foreign[0]), Length: 8}))
	require.False(t, r.Owns(mem.Block{}))

	r.Deallocate(&b)
}

func TestExpand(t *testing.T) {
	r, err := region.New(32, 8)
	require.NoError(t, err)

	a := r.Allocate(8)
	b := r.Allocate(8)

	// the next chunk is taken
	require.False(t, r.Expand(&a, 8))
	require.Equal(t, 8, a.Length)

	r.Deallocate(&b)
	require.True(t, r.Expand(&a, 8))
	require.Equal(t, 16, a.Length)
	require.Equal(t, 16, r.FreeBytes())

	// growth within the slack of a partially used chunk claims nothing
	c := r.Allocate(4)
	require.True(t, r.Expand(&c, 3))
	require.Equal(t, 7, c.Length)
	require.Equal(t, 8, r.FreeBytes())

	// growing past the end of the slab fails
	d := r.Allocate(8)
	require.False(t, r.Expand(&d, 8))

	require.True(t, r.Expand(&d, 0))
	require.False(t, r.Expand(&d, -1))
	require.NoError(t, r.Validate())
}

func TestDeallocateAll(t *testing.T) {
	r, err := region.New(64, 8)
	require.NoError(t, err)

	r.Allocate(24)
	r.Allocate(8)
	require.Equal(t, 32, r.FreeBytes())

	r.DeallocateAll()
	require.Equal(t, 64, r.FreeBytes())
	require.NoError(t, r.Validate())
}
