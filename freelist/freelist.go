// Package freelist implements a bounded pool that recycles fixed-size memory
// blocks, minimizing calls into a backing allocator. The pool serves requests
// whose size falls within a [min, max] interval and always hands out blocks
// of exactly max bytes; up to the pool's capacity, deallocated blocks are
// parked on a stack of free pointers instead of being returned to the backing
// allocator.
//
// The shared variant keeps its free pointers in a lock-free fixed-capacity
// stack and may be called from multiple goroutines with no external locking.
// The sequential variant uses a plain bounded stack and requires a single
// owner or external mutual exclusion.
package freelist

import (
	"unsafe"

	"github.com/memforge/memforge/internal/stack"
	"github.com/memforge/memforge/mem"
)

const (
	// DefaultPoolSize is the number of free pointers a pool retains when
	// WithPoolSize is not given.
	DefaultPoolSize = 1024
	// DefaultBatchAllocations is the number of blocks requested from the
	// backing allocator on a pool miss when WithBatchAllocations is not
	// given.
	DefaultBatchAllocations = 8
)

type config struct {
	poolSize int
	batch    int
}

// Option configures a pool at construction.
type Option func(*config)

// WithPoolSize sets how many free pointers the pool retains before surplus
// deallocations fall through to the backing allocator.
func WithPoolSize(n int) Option {
	return func(c *config) {
		c.poolSize = n
	}
}

// WithBatchAllocations sets how many blocks' worth of memory the pool
// requests from the backing allocator on a pool miss.
func WithBatchAllocations(n int) Option {
	return func(c *config) {
		c.batch = n
	}
}

// FreeList recycles blocks whose requested size falls within
// [MinSize, MaxSize], returning uniformly MaxSize-sized blocks.
type FreeList struct {
	backing mem.Allocator
	root    stack.Stack

	lower mem.Bound
	upper mem.Bound

	batch     int
	truncated bool
}

var _ mem.Allocator = (*FreeList)(nil)
var _ mem.Reallocator = (*FreeList)(nil)
var _ mem.Owner = (*FreeList)(nil)

func newFreeList(backing mem.Allocator, newStack func(int) stack.Stack, opts []Option) *FreeList {
	cfg := config{
		poolSize: DefaultPoolSize,
		batch:    DefaultBatchAllocations,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &FreeList{
		backing:   backing,
		root:      newStack(cfg.poolSize),
		batch:     cfg.batch,
		truncated: backing.SupportsTruncatedDeallocation(),
	}
}

func newLockFree(capacity int) stack.Stack { return stack.NewLockFree(capacity) }
func newBounded(capacity int) stack.Stack  { return stack.NewBounded(capacity) }

// NewShared returns a pool accepting sizes in [minSize, maxSize] whose free
// pointers sit in a lock-free stack, making Allocate and Deallocate safe to
// call from multiple goroutines simultaneously.
func NewShared(backing mem.Allocator, minSize, maxSize int, opts ...Option) *FreeList {
	f := newFreeList(backing, newLockFree, opts)
	f.lower = mem.Fixed(minSize)
	f.upper = mem.Fixed(maxSize)
	return f
}

// NewSharedDeferred returns a shared pool whose bounds are not initialized
// yet; SetBounds must be called exactly once before the first allocation.
func NewSharedDeferred(backing mem.Allocator, opts ...Option) *FreeList {
	return newFreeList(backing, newLockFree, opts)
}

// NewSequential returns a pool accepting sizes in [minSize, maxSize] backed
// by a plain bounded stack. It is safe only under single-owner use or
// external mutual exclusion.
func NewSequential(backing mem.Allocator, minSize, maxSize int, opts ...Option) *FreeList {
	f := newFreeList(backing, newBounded, opts)
	f.lower = mem.Fixed(minSize)
	f.upper = mem.Fixed(maxSize)
	return f
}

// NewSequentialDeferred returns a sequential pool whose bounds are not
// initialized yet; SetBounds must be called exactly once before the first
// allocation.
func NewSequentialDeferred(backing mem.Allocator, opts ...Option) *FreeList {
	return newFreeList(backing, newBounded, opts)
}

// SetBounds fixes the accepted size interval of a pool built with one of the
// Deferred constructors. It may be called only once, before the first
// allocation; re-setting initialized bounds is a programming error that
// panics under the debug_memforge build tag and is unspecified otherwise.
func (f *FreeList) SetBounds(minSize, maxSize int) {
	f.lower.Set(minSize)
	f.upper.Set(maxSize)
}

// MinSize returns the lower edge of the accepted size interval.
func (f *FreeList) MinSize() int {
	return f.lower.Value()
}

// MaxSize returns the upper edge of the accepted size interval. Every block
// the pool hands out is exactly this long.
func (f *FreeList) MaxSize() int {
	return f.upper.Value()
}

// SupportsTruncatedDeallocation forwards the backing allocator's capability.
func (f *FreeList) SupportsTruncatedDeallocation() bool {
	return f.truncated
}

// Allocate provides a block of MaxSize bytes for any n within the accepted
// interval, and an empty block for any n outside it. A pooled pointer is
// reused when one is available; otherwise the pool requests a batch of
// blocks from the backing allocator, parks all but one and returns that one.
func (f *FreeList) Allocate(n int) mem.Block {
	mem.DebugAssert(f.lower.Initialized(), "the lower bound was not initialized")
	mem.DebugAssert(f.upper.Initialized(), "the upper bound was not initialized")

	if n < f.lower.Value() || n > f.upper.Value() {
		return mem.Block{}
	}

	if p, ok := f.root.Pop(); ok {
		return mem.Block{Ptr: p, Length: f.upper.Value()}
	}

	blockSize := f.upper.Value()
	if f.truncated {
		// One request for the whole batch keeps the backing allocator's
		// bookkeeping hot; the surplus sub-blocks can be deallocated
		// independently later.
		batch := f.backing.Allocate(blockSize * f.batch)
		if !batch.IsEmpty() {
			// The first sub-block goes straight to the caller.
			for i := 1; i < f.batch; i++ {
				sub := unsafe.Add(batch.Ptr, i*blockSize)
				if !f.root.Push(sub) {
					surplus := mem.Block{Ptr: sub, Length: blockSize}
					f.backing.Deallocate(&surplus)
				}
			}
			return mem.Block{Ptr: batch.Ptr, Length: blockSize}
		}
		return f.backing.Allocate(blockSize)
	}

	for i := 0; i < f.batch-1; i++ {
		b := f.backing.Allocate(blockSize)
		if b.IsEmpty() {
			return b
		}
		if !f.root.Push(b.Ptr) {
			// the pool filled up in the meantime, so exit the batch early
			return b
		}
	}
	return f.backing.Allocate(blockSize)
}

// Reallocate resolves only the trivial cases; pooled blocks are fixed-size
// by construction, so anything requiring a true resize reports false.
func (f *FreeList) Reallocate(b *mem.Block, n int) bool {
	handled, ok := mem.ReallocateTrivial(f, b, n)
	return handled && ok
}

// Owns reports whether b's length falls within the accepted interval. This
// is a range test on the length, not a pointer identity test: a non-empty
// block produced elsewhere whose length happens to fall in range also
// reports true. Known limitation.
func (f *FreeList) Owns(b mem.Block) bool {
	return !b.IsEmpty() && f.lower.Value() <= b.Length && b.Length <= f.upper.Value()
}

// Deallocate parks b's pointer on the pool when b is owned and the pool has
// room, resetting b. When the pool is full the block is forwarded to the
// backing allocator instead. Deallocating an empty block is a no-op.
func (f *FreeList) Deallocate(b *mem.Block) {
	if b.IsEmpty() || !f.Owns(*b) {
		return
	}
	if f.root.Push(b.Ptr) {
		b.Reset()
		return
	}
	f.backing.Deallocate(b)
}

// Destroy drains the pool, returning every resident pointer to the backing
// allocator as a MaxSize-long block. Blocks still held by callers are
// unaffected; the pool must not be used afterwards.
func (f *FreeList) Destroy() {
	for {
		p, ok := f.root.Pop()
		if !ok {
			return
		}
		old := mem.Block{Ptr: p, Length: f.upper.Value()}
		f.backing.Deallocate(&old)
	}
}
