// Package region provides a chunked arena allocator: one contiguous slab of
// memory carved into fixed-size chunks tracked by a free bitmap. Because any
// chunk-aligned sub-range of a prior allocation can be freed on its own, the
// region supports truncated deallocation, which lets the free list pool
// batch its backing requests into a single call.
package region

import (
	"math/bits"
	"unsafe"

	cerrors "github.com/cockroachdb/errors"
	"github.com/memforge/memforge/internal/utils"
	"github.com/memforge/memforge/mem"
)

// Allocator carves a slab of capacity bytes into capacity/chunkSize chunks.
// Allocations claim contiguous chunk runs first-fit; frees return them. By
// default the allocator assumes a single owner; WithMutex makes it safe for
// concurrent use, e.g. below a shared free list pool.
type Allocator struct {
	mutex utils.OptionalMutex

	slab      []byte
	base      unsafe.Pointer
	chunkSize int
	chunks    int
	freeCount int

	// one bit per chunk, set = free
	bitmap []uint64
}

var _ mem.Allocator = (*Allocator)(nil)
var _ mem.Owner = (*Allocator)(nil)
var _ mem.Expander = (*Allocator)(nil)
var _ mem.BulkDeallocator = (*Allocator)(nil)
var _ mem.Validatable = (*Allocator)(nil)

// Option configures an Allocator at construction.
type Option func(*Allocator)

// WithMutex serializes all operations internally, making the region safe for
// concurrent callers.
func WithMutex() Option {
	return func(a *Allocator) {
		a.mutex.UseMutex = true
	}
}

// New returns a region of capacity bytes split into chunkSize-byte chunks.
// chunkSize must be a power of two and capacity a positive multiple of it.
func New(capacity, chunkSize int, opts ...Option) (*Allocator, error) {
	if chunkSize <= 0 {
		return nil, cerrors.Newf("chunkSize must be positive, not %d", chunkSize)
	}
	if err := mem.CheckPow2(uint(chunkSize), "chunkSize"); err != nil {
		return nil, err
	}
	if capacity <= 0 || capacity%chunkSize != 0 {
		return nil, cerrors.Newf("capacity %d is not a positive multiple of the chunk size %d", capacity, chunkSize)
	}

	chunks := capacity / chunkSize
	slab := make([]byte, capacity)
	a := &Allocator{
		slab:      slab,
		base:      unsafe.Pointer(&slab[0]),
		chunkSize: chunkSize,
		chunks:    chunks,
		bitmap:    make([]uint64, (chunks+63)/64),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.markAllFree()
	return a, nil
}

func (a *Allocator) markAllFree() {
	for i := range a.bitmap {
		a.bitmap[i] = ^uint64(0)
	}
	// clear the tail bits past the last chunk
	if tail := a.chunks % 64; tail != 0 {
		a.bitmap[len(a.bitmap)-1] = (uint64(1) << tail) - 1
	}
	a.freeCount = a.chunks
}

func (a *Allocator) isFree(chunk int) bool {
	return a.bitmap[chunk/64]&(uint64(1)<<(chunk%64)) != 0
}

func (a *Allocator) claim(first, count int) {
	for chunk := first; chunk < first+count; chunk++ {
		a.bitmap[chunk/64] &^= uint64(1) << (chunk % 64)
	}
	a.freeCount -= count
}

func (a *Allocator) release(first, count int) {
	for chunk := first; chunk < first+count; chunk++ {
		mem.DebugAssert(!a.isFree(chunk), "chunk released twice")
		a.bitmap[chunk/64] |= uint64(1) << (chunk % 64)
	}
	a.freeCount += count
}

// findRun returns the first chunk of a contiguous run of count free chunks,
// or -1 when no such run exists.
func (a *Allocator) findRun(count int) int {
	run := 0
	for chunk := 0; chunk < a.chunks; chunk++ {
		if !a.isFree(chunk) {
			run = 0
			continue
		}
		run++
		if run == count {
			return chunk - count + 1
		}
	}
	return -1
}

func (a *Allocator) chunksFor(length int) int {
	return mem.AlignUp(length, uint(a.chunkSize)) / a.chunkSize
}

func (a *Allocator) chunkOf(p unsafe.Pointer) int {
	offset := int(uintptr(p) - uintptr(a.base))
	mem.DebugAssert(offset%a.chunkSize == 0, "block address is not chunk-aligned")
	return offset / a.chunkSize
}

// Allocate claims a contiguous run of chunks covering n bytes and returns a
// block of exactly n bytes, or an empty block when n is not positive or no
// run is large enough.
func (a *Allocator) Allocate(n int) mem.Block {
	if n <= 0 || n > len(a.slab) {
		return mem.Block{}
	}

	a.mutex.Lock()
	defer a.mutex.Unlock()

	count := a.chunksFor(n)
	first := a.findRun(count)
	if first < 0 {
		return mem.Block{}
	}
	a.claim(first, count)
	return mem.Block{
		Ptr:    unsafe.Add(a.base, first*a.chunkSize),
		Length: n,
	}
}

// Deallocate releases the chunks covering b and resets b. b may be any
// chunk-aligned sub-range of an earlier allocation, which is what makes
// truncated deallocation work. Deallocating an empty block is a no-op.
func (a *Allocator) Deallocate(b *mem.Block) {
	if b.IsEmpty() {
		return
	}
	mem.DebugAssert(a.Owns(*b), "block was not allocated from this region")

	a.mutex.Lock()
	a.release(a.chunkOf(b.Ptr), a.chunksFor(b.Length))
	a.mutex.Unlock()

	b.Reset()
}

// Owns reports whether b's address lies within the region's slab.
func (a *Allocator) Owns(b mem.Block) bool {
	if b.IsEmpty() {
		return false
	}
	p := uintptr(b.Ptr)
	return p >= uintptr(a.base) && p < uintptr(a.base)+uintptr(len(a.slab))
}

// Expand grows b in place by delta bytes when the chunks following it are
// free (or the growth still fits the chunks it already holds). On success
// b.Length grows by delta; otherwise b is unchanged and Expand reports
// false.
func (a *Allocator) Expand(b *mem.Block, delta int) bool {
	if b.IsEmpty() || delta < 0 {
		return false
	}
	if delta == 0 {
		return true
	}

	a.mutex.Lock()
	defer a.mutex.Unlock()

	held := a.chunksFor(b.Length)
	needed := a.chunksFor(b.Length + delta)
	if needed > held {
		first := a.chunkOf(b.Ptr) + held
		extra := needed - held
		if first+extra > a.chunks {
			return false
		}
		for chunk := first; chunk < first+extra; chunk++ {
			if !a.isFree(chunk) {
				return false
			}
		}
		a.claim(first, extra)
	}
	b.Length += delta
	return true
}

// DeallocateAll releases every chunk at once. Blocks previously handed out
// must not be used afterwards.
func (a *Allocator) DeallocateAll() {
	a.mutex.Lock()
	a.markAllFree()
	a.mutex.Unlock()
}

// FreeBytes returns the number of bytes not currently claimed by any
// allocation.
func (a *Allocator) FreeBytes() int {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	return a.freeCount * a.chunkSize
}

// SupportsTruncatedDeallocation is always true: any chunk-aligned sub-range
// of an allocation can be released independently.
func (a *Allocator) SupportsTruncatedDeallocation() bool {
	return true
}

// Validate cross-checks the free counter against the bitmap population.
func (a *Allocator) Validate() error {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	popCount := 0
	for _, word := range a.bitmap {
		popCount += bits.OnesCount64(word)
	}
	if popCount != a.freeCount {
		return cerrors.Newf("the listed number of free chunks (%d) does not match the bitmap population (%d)", a.freeCount, popCount)
	}
	if tail := a.chunks % 64; tail != 0 {
		if a.bitmap[len(a.bitmap)-1]>>tail != 0 {
			return cerrors.New("bitmap has free bits past the last chunk")
		}
	}
	return nil
}
