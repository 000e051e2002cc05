// Package mem defines the block descriptor and the capability contract that
// every allocation component in this module exchanges, along with the shared
// reallocation helpers and debug assertion hooks the components build on.
package mem

// Allocator is the minimum contract a backing allocator satisfies. Components
// in this module compose by wrapping one another behind this interface.
type Allocator interface {
	// Allocate returns a block of at least size bytes, or an empty block if
	// the request cannot be satisfied.
	Allocate(size int) Block
	// Deallocate returns b's memory to the allocator. Implementations that
	// take back the memory reset b.
	Deallocate(b *Block)
	// SupportsTruncatedDeallocation reports whether pieces of a single larger
	// allocation can be deallocated independently of one another.
	SupportsTruncatedDeallocation() bool
}

// Reallocator is implemented by allocators that can resize a block they
// handed out. Reallocate reports false when the block could not be resized;
// the block is unchanged in that case.
type Reallocator interface {
	Reallocate(b *Block, newSize int) bool
}

// Owner is implemented by allocators that can answer ownership queries.
type Owner interface {
	Owns(b Block) bool
}

// Expander is implemented by allocators that can grow a block in place by
// delta bytes. Expand reports false when in-place growth is not possible;
// the block is unchanged in that case.
type Expander interface {
	Expand(b *Block, delta int) bool
}

// BulkDeallocator is implemented by allocators that can release every
// outstanding allocation in one call.
type BulkDeallocator interface {
	DeallocateAll()
}

// ReallocatorOf returns a's reallocation capability, if it has one.
func ReallocatorOf(a Allocator) (Reallocator, bool) {
	r, ok := a.(Reallocator)
	return r, ok
}

// OwnerOf returns a's ownership capability, if it has one.
func OwnerOf(a Allocator) (Owner, bool) {
	o, ok := a.(Owner)
	return o, ok
}

// ExpanderOf returns a's in-place expansion capability, if it has one.
func ExpanderOf(a Allocator) (Expander, bool) {
	e, ok := a.(Expander)
	return e, ok
}

// BulkDeallocatorOf returns a's bulk deallocation capability, if it has one.
func BulkDeallocatorOf(a Allocator) (BulkDeallocator, bool) {
	b, ok := a.(BulkDeallocator)
	return b, ok
}
