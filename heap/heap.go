// Package heap provides the pass-through allocator that forwards every
// request directly to the Go runtime heap. It is the usual leaf at the
// bottom of an allocator composition.
package heap

import (
	"sync"
	"unsafe"

	"github.com/dolthub/swiss"
	"github.com/memforge/memforge/mem"
)

// Allocator hands out blocks backed by ordinary byte slices. Every live
// allocation is pinned in a registry keyed by its address, so the garbage
// collector keeps the memory alive while callers hold only raw pointers into
// it. The allocator is safe for concurrent use.
type Allocator struct {
	mu       sync.Mutex
	registry *swiss.Map[uintptr, []byte]
}

var _ mem.Allocator = (*Allocator)(nil)
var _ mem.Reallocator = (*Allocator)(nil)
var _ mem.Owner = (*Allocator)(nil)
var _ mem.BulkDeallocator = (*Allocator)(nil)

// New returns an empty heap allocator.
func New() *Allocator {
	return &Allocator{
		registry: swiss.NewMap[uintptr, []byte](64),
	}
}

// Allocate returns a zeroed block of exactly n bytes, or an empty block when
// n is not positive.
func (a *Allocator) Allocate(n int) mem.Block {
	if n <= 0 {
		return mem.Block{}
	}
	buf := make([]byte, n)
	p := unsafe.Pointer(&buf[0])

	a.mu.Lock()
	a.registry.Put(uintptr(p), buf)
	a.mu.Unlock()

	return mem.Block{Ptr: p, Length: n}
}

// Deallocate unpins b's memory, handing it back to the garbage collector,
// and resets b. Deallocating an empty block is a no-op.
func (a *Allocator) Deallocate(b *mem.Block) {
	if b.IsEmpty() {
		return
	}
	a.mu.Lock()
	a.registry.Delete(uintptr(b.Ptr))
	a.mu.Unlock()
	b.Reset()
}

// Owns is an identity test against the registry of live allocations, unlike
// the range test used by the free list pool.
func (a *Allocator) Owns(b mem.Block) bool {
	if b.IsEmpty() {
		return false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.registry.Get(uintptr(b.Ptr))
	return ok
}

// Reallocate resizes b, moving it when the size actually changes. Negative
// sizes report false.
func (a *Allocator) Reallocate(b *mem.Block, n int) bool {
	if n < 0 {
		return false
	}
	return mem.ReallocateWithCopy(a, b, n)
}

// DeallocateAll unpins every live allocation at once. Blocks previously
// handed out must not be used afterwards.
func (a *Allocator) DeallocateAll() {
	a.mu.Lock()
	a.registry = swiss.NewMap[uintptr, []byte](64)
	a.mu.Unlock()
}

// AllocationCount returns the number of live allocations.
func (a *Allocator) AllocationCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.registry.Count()
}

// SupportsTruncatedDeallocation is always false: the registry can only
// release an allocation by the exact address it was handed out with.
func (a *Allocator) SupportsTruncatedDeallocation() bool {
	return false
}
