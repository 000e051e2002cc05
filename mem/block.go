package mem

import "unsafe"

// Block describes a single region of memory handed out by an Allocator. A
// Block has exactly one owner at a time; ownership transfers on every
// Allocate, Deallocate and Reallocate call and is never duplicated.
//
// The empty Block is the universal failure signal for allocation operations:
// an Allocate call that cannot be satisfied returns one.
type Block struct {
	Ptr    unsafe.Pointer
	Length int
}

// IsEmpty returns true if the block describes no memory.
func (b Block) IsEmpty() bool {
	return b.Ptr == nil && b.Length == 0
}

// Reset clears the block. It must be applied whenever ownership of the
// underlying memory is handed elsewhere, so the holder cannot keep a dangling
// reference to memory that is no longer under its control.
func (b *Block) Reset() {
	b.Ptr = nil
	b.Length = 0
}

// CopyBytes copies n bytes from src to dst. Both regions must be at least n
// bytes long and owned by the caller.
func CopyBytes(dst, src unsafe.Pointer, n int) {
	if n <= 0 {
		return
	}
	copy(unsafe.Slice((*byte)(dst), n), unsafe.Slice((*byte)(src), n))
}
