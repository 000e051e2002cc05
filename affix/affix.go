// Package affix provides a composition allocator that attaches fixed-size
// metadata regions immediately before and/or after every block it hands out.
// Wrappers use it to stash bookkeeping next to an allocation without the
// caller's cooperation; the stats decorator keeps its per-allocation record
// pointer in a prefix placed this way.
package affix

import (
	"unsafe"

	"github.com/memforge/memforge/mem"
)

// Allocator reserves prefixSize bytes before and suffixSize bytes after each
// block it allocates from the backing allocator, returning only the
// user-visible middle to the caller.
type Allocator struct {
	backing    mem.Allocator
	prefixSize int
	suffixSize int
}

var _ mem.Allocator = (*Allocator)(nil)
var _ mem.Reallocator = (*Allocator)(nil)

// New returns an affix allocator over backing. prefixSize and suffixSize may
// each be zero; the corresponding region accessor then returns nil.
func New(backing mem.Allocator, prefixSize, suffixSize int) *Allocator {
	return &Allocator{
		backing:    backing,
		prefixSize: prefixSize,
		suffixSize: suffixSize,
	}
}

func (a *Allocator) PrefixSize() int { return a.prefixSize }
func (a *Allocator) SuffixSize() int { return a.suffixSize }

// OuterBlock reconstructs the backing allocator's view of b: the envelope
// covering prefix, user-visible memory and suffix.
func (a *Allocator) OuterBlock(b mem.Block) mem.Block {
	if b.IsEmpty() {
		return mem.Block{}
	}
	return mem.Block{
		Ptr:    unsafe.Add(b.Ptr, -a.prefixSize),
		Length: a.prefixSize + b.Length + a.suffixSize,
	}
}

// Prefix returns b's prefix region, or nil if there is none. The region's
// lifetime is strictly bound to b's lifetime: the pointer must not be used
// after b is deallocated or reallocated.
func (a *Allocator) Prefix(b mem.Block) unsafe.Pointer {
	if a.prefixSize == 0 || b.IsEmpty() {
		return nil
	}
	return unsafe.Add(b.Ptr, -a.prefixSize)
}

// Suffix returns b's suffix region, or nil if there is none. The same
// lifetime rule as Prefix applies.
func (a *Allocator) Suffix(b mem.Block) unsafe.Pointer {
	if a.suffixSize == 0 || b.IsEmpty() {
		return nil
	}
	return unsafe.Add(b.Ptr, b.Length)
}

// Allocate requests an enveloped block from the backing allocator and hands
// back the user-visible middle, n bytes long.
func (a *Allocator) Allocate(n int) mem.Block {
	if n <= 0 {
		return mem.Block{}
	}
	outer := a.backing.Allocate(a.prefixSize + n + a.suffixSize)
	if outer.IsEmpty() {
		return mem.Block{}
	}
	return mem.Block{
		Ptr:    unsafe.Add(outer.Ptr, a.prefixSize),
		Length: n,
	}
}

// Deallocate reconstructs the envelope around b and returns it to the
// backing allocator. b is reset.
func (a *Allocator) Deallocate(b *mem.Block) {
	if b.IsEmpty() {
		return
	}
	outer := a.OuterBlock(*b)
	a.backing.Deallocate(&outer)
	b.Reset()
}

// Reallocate resizes b by moving the whole envelope, so the affix regions
// travel with the block. The trivial cases are resolved first.
func (a *Allocator) Reallocate(b *mem.Block, n int) bool {
	if handled, ok := mem.ReallocateTrivial(a, b, n); handled {
		return ok
	}

	moved := a.Allocate(n)
	if moved.IsEmpty() {
		return false
	}

	if a.prefixSize > 0 {
		mem.CopyBytes(a.Prefix(moved), a.Prefix(*b), a.prefixSize)
	}
	preserved := b.Length
	if n < preserved {
		preserved = n
	}
	mem.CopyBytes(moved.Ptr, b.Ptr, preserved)
	if a.suffixSize > 0 {
		mem.CopyBytes(a.Suffix(moved), a.Suffix(*b), a.suffixSize)
	}

	old := *b
	a.Deallocate(&old)
	*b = moved
	return true
}

// SupportsTruncatedDeallocation is always false: deallocation must
// reconstruct the envelope, which requires the block boundaries the caller
// was given.
func (a *Allocator) SupportsTruncatedDeallocation() bool {
	return false
}
