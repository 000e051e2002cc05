package mem

// ReallocateTrivial resolves the degenerate reallocation cases that every
// allocator shares, against the provided allocator's own primitives:
// resizing to the current length is a no-op, resizing to zero deallocates,
// and "resizing" an empty block allocates. handled reports whether one of
// these cases applied; when it did, ok carries the outcome. When handled is
// false the block is untouched and the caller must perform a true resize
// itself (or report failure, if it cannot move memory).
func ReallocateTrivial(a Allocator, b *Block, n int) (handled, ok bool) {
	if b.Length == n {
		return true, true
	}
	if n == 0 {
		a.Deallocate(b)
		return true, true
	}
	if b.IsEmpty() {
		*b = a.Allocate(n)
		return true, !b.IsEmpty()
	}
	return false, false
}

// ReallocateWithCopy resizes b to n bytes by moving it: a fresh block is
// allocated, the surviving bytes are copied across and the old block is
// returned to the allocator. The trivial cases are resolved first. On
// failure b is unchanged.
func ReallocateWithCopy(a Allocator, b *Block, n int) bool {
	if handled, ok := ReallocateTrivial(a, b, n); handled {
		return ok
	}

	moved := a.Allocate(n)
	if moved.IsEmpty() {
		return false
	}

	preserved := b.Length
	if n < preserved {
		preserved = n
	}
	CopyBytes(moved.Ptr, b.Ptr, preserved)

	old := *b
	a.Deallocate(&old)
	*b = moved
	return true
}
