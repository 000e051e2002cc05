package stats_test

import (
	"testing"

	"github.com/memforge/memforge/affix"
	"github.com/memforge/memforge/freelist"
	"github.com/memforge/memforge/heap"
	"github.com/memforge/memforge/mem"
	"github.com/memforge/memforge/region"
	"github.com/memforge/memforge/stats"
	"github.com/stretchr/testify/require"
)

// inPlaceAllocator resolves shrinking reallocations without moving memory,
// so the decorator's in-place/move classification can be observed.
type inPlaceAllocator struct {
	*heap.Allocator
}

func (a *inPlaceAllocator) Reallocate(b *mem.Block, n int) bool {
	if handled, ok := mem.ReallocateTrivial(a.Allocator, b, n); handled {
		return ok
	}
	if n < b.Length {
		b.Length = n
		return true
	}
	return mem.ReallocateWithCopy(a.Allocator, b, n)
}

func TestAllocateCallCounters(t *testing.T) {
	d := stats.New(heap.New(), stats.NumAllocate|stats.NumAllocateOK)

	zero := d.Allocate(0)
	require.True(t, zero.IsEmpty())

	b := d.Allocate(16)
	require.False(t, b.IsEmpty())

	require.Equal(t, 2, d.NumAllocate())
	require.Equal(t, 1, d.NumAllocateOK())

	d.Deallocate(&b)
}

func TestByteCountersAndHighTide(t *testing.T) {
	d := stats.New(heap.New(), stats.BytesAll)

	a := d.Allocate(100)
	b := d.Allocate(200)
	require.Equal(t, 300, d.BytesAllocated()-d.BytesDeallocated())
	require.Equal(t, 300, d.BytesHighTide())

	d.Deallocate(&a)
	require.Equal(t, 200, d.BytesAllocated()-d.BytesDeallocated())
	require.Equal(t, 300, d.BytesHighTide())

	c := d.Allocate(50)
	require.Equal(t, 250, d.BytesAllocated()-d.BytesDeallocated())
	require.Equal(t, 300, d.BytesHighTide())

	d.Deallocate(&b)
	d.Deallocate(&c)
	require.Equal(t, 0, d.BytesAllocated()-d.BytesDeallocated())
	require.Equal(t, 300, d.BytesHighTide())
}

func TestSlackOverAPoolBacking(t *testing.T) {
	pool := freelist.NewSequential(heap.New(), 8, 16)
	d := stats.New(pool, stats.BytesAll)

	b := d.Allocate(10)
	require.Equal(t, 16, b.Length)
	require.Equal(t, 6, d.BytesSlack())

	d.Deallocate(&b)
	pool.Destroy()
}

func TestReallocateClassification(t *testing.T) {
	backing := &inPlaceAllocator{heap.New()}
	d := stats.New(backing, stats.NumAll|stats.BytesAll)

	b := d.Allocate(64)
	require.Equal(t, 64, d.BytesAllocated())

	// same size resolves in place with no byte movement
	require.True(t, d.Reallocate(&b, 64))
	require.Equal(t, 1, d.NumReallocate())
	require.Equal(t, 1, d.NumReallocateOK())
	require.Equal(t, 1, d.NumReallocateInPlace())
	require.Equal(t, 0, d.BytesMoved())

	// shrinking resolves in place and contracts
	require.True(t, d.Reallocate(&b, 32))
	require.Equal(t, 32, b.Length)
	require.Equal(t, 2, d.NumReallocateInPlace())
	require.Equal(t, 32, d.BytesContracted())
	require.Equal(t, 32, d.BytesDeallocated())

	// growing moves the block
	require.True(t, d.Reallocate(&b, 128))
	require.Equal(t, 128, b.Length)
	require.Equal(t, 3, d.NumReallocate())
	require.Equal(t, 2, d.NumReallocateInPlace())
	require.Equal(t, 32, d.BytesMoved())
	require.Equal(t, 64+128, d.BytesAllocated())
	require.Equal(t, 32+32, d.BytesDeallocated())

	d.Deallocate(&b)
	require.Equal(t, 64+128, d.BytesDeallocated())
}

func collectSizes(d *stats.Decorator) []int {
	var sizes []int
	for info := d.Allocations(); info != nil; info = info.Next() {
		sizes = append(sizes, info.Size)
	}
	return sizes
}

func TestAllocationMetadataList(t *testing.T) {
	d := stats.New(heap.New(), stats.All)
	require.Nil(t, d.Allocations())

	a := d.Allocate(8)
	b := d.Allocate(16)
	c := d.Allocate(24)
	require.Equal(t, 3, d.LiveAllocationCount())
	require.NoError(t, d.Validate())

	// most recent first
	require.Equal(t, []int{24, 16, 8}, collectSizes(d))

	head := d.Allocations()
	require.Contains(t, head.File, "decorator_test.go")
	require.Contains(t, head.Function, "TestAllocationMetadataList")
	require.NotZero(t, head.Line)
	require.False(t, head.Time.IsZero())

	require.Nil(t, head.Prev())
	require.Same(t, head, head.Next().Prev())

	// unlink from the middle
	d.Deallocate(&b)
	require.Equal(t, []int{24, 8}, collectSizes(d))
	require.NoError(t, d.Validate())

	// unlink the head
	d.Deallocate(&c)
	require.Equal(t, []int{8}, collectSizes(d))

	d.Deallocate(&a)
	require.Nil(t, d.Allocations())
	require.Equal(t, 0, d.LiveAllocationCount())
	require.NoError(t, d.Validate())
}

func TestSlackWithSizeCapture(t *testing.T) {
	pool := freelist.NewSequential(heap.New(), 16, 32)
	d := stats.New(pool, stats.BytesAll|stats.CallerSize)

	b := d.Allocate(16)
	require.Equal(t, 16, b.Length)
	require.Equal(t, 0, d.BytesSlack())

	d.Deallocate(&b)
	require.Equal(t, 0, d.BytesSlack())
	pool.Destroy()
}

func TestReallocateToZeroDropsRecord(t *testing.T) {
	d := stats.New(heap.New(), stats.All)

	b := d.Allocate(8)
	require.Equal(t, 1, d.LiveAllocationCount())

	require.True(t, d.Reallocate(&b, 0))
	require.True(t, b.IsEmpty())
	require.Equal(t, 0, d.LiveAllocationCount())
	require.NoError(t, d.Validate())
}

func TestReallocateFromEmptyCreatesRecord(t *testing.T) {
	d := stats.New(heap.New(), stats.All)

	var b mem.Block
	require.True(t, d.Reallocate(&b, 8))
	require.Equal(t, 1, d.LiveAllocationCount())
	require.Equal(t, 8, d.Allocations().Size)

	d.Deallocate(&b)
	require.Equal(t, 0, d.LiveAllocationCount())
}

func TestReallocateMovePreservesRecord(t *testing.T) {
	d := stats.New(heap.New(), stats.All)

	b := d.Allocate(8)
	require.True(t, d.Reallocate(&b, 24))
	require.Equal(t, 1, d.LiveAllocationCount())
	require.NoError(t, d.Validate())

	d.Deallocate(&b)
	require.Equal(t, 0, d.LiveAllocationCount())
}

func TestOwnsAndExpandCapabilities(t *testing.T) {
	r, err := region.New(128, 8)
	require.NoError(t, err)

	d := stats.New(r, stats.NumAll|stats.BytesAll)
	require.True(t, d.CanOwn())
	require.True(t, d.CanExpand())

	b := d.Allocate(8)
	require.True(t, d.Owns(b))
	require.Equal(t, 1, d.NumOwns())

	require.True(t, d.Expand(&b, 8))
	require.Equal(t, 16, b.Length)
	require.Equal(t, 1, d.NumExpand())
	require.Equal(t, 1, d.NumExpandOK())
	require.Equal(t, 8, d.BytesExpanded())
	require.Equal(t, 16, d.BytesAllocated())
	require.Equal(t, 16, d.BytesHighTide())

	d.Deallocate(&b)
	require.Equal(t, 16, d.BytesDeallocated())
	require.NoError(t, r.Validate())
}

func TestExpandWithMetadataCapture(t *testing.T) {
	r, err := region.New(128, 8)
	require.NoError(t, err)

	d := stats.New(r, stats.All)

	b := d.Allocate(8)
	require.True(t, d.Owns(b))
	require.True(t, d.Expand(&b, 8))
	require.Equal(t, 16, b.Length)

	d.Deallocate(&b)
	require.Equal(t, 0, d.LiveAllocationCount())
	require.NoError(t, r.Validate())
	require.Equal(t, 128, r.FreeBytes())
}

func TestExpandUnavailable(t *testing.T) {
	d := stats.New(heap.New(), stats.NumAll)
	require.False(t, d.CanExpand())

	b := d.Allocate(8)
	require.False(t, d.Expand(&b, 8))
	require.Equal(t, 0, d.NumExpand())

	d.Deallocate(&b)
}

func TestOwnsUnavailable(t *testing.T) {
	d := stats.New(affix.New(heap.New(), 0, 0), stats.NumAll)
	require.False(t, d.CanOwn())

	b := d.Allocate(8)
	require.False(t, d.Owns(b))
	require.Equal(t, 0, d.NumOwns())

	d.Deallocate(&b)
}

func TestDeallocateAllDropsRecords(t *testing.T) {
	backing := heap.New()
	d := stats.New(backing, stats.All)

	d.Allocate(8)
	d.Allocate(16)
	require.Equal(t, 2, d.LiveAllocationCount())

	d.DeallocateAll()
	require.Equal(t, 1, d.NumDeallocateAll())
	require.Equal(t, 0, d.LiveAllocationCount())
	require.Nil(t, d.Allocations())
	require.Equal(t, 0, backing.AllocationCount())
	require.NoError(t, d.Validate())
}

func TestNoMetadataMeansPassThrough(t *testing.T) {
	backing := heap.New()
	d := stats.New(backing, stats.NumAll|stats.BytesAll)

	b := d.Allocate(8)
	// without metadata capture, blocks carry no envelope
	require.True(t, backing.Owns(b))
	require.Nil(t, d.Allocations())

	d.Deallocate(&b)
}

func TestSnapshot(t *testing.T) {
	d := stats.New(heap.New(), stats.NumAll|stats.BytesAll)

	b := d.Allocate(32)
	d.Deallocate(&b)

	snap := d.Snapshot()
	require.Equal(t, 1, snap.NumAllocate)
	require.Equal(t, 1, snap.NumAllocateOK)
	require.Equal(t, 1, snap.NumDeallocate)
	require.Equal(t, 32, snap.BytesAllocated)
	require.Equal(t, 32, snap.BytesDeallocated)
	require.Equal(t, 32, snap.BytesHighTide)
}
