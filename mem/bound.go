package mem

// Bound is a scalar size limit that is fixed exactly once: either at
// construction through Fixed, or later through a single Set call. Once a
// bound holds a value it must never change; re-setting it is a programming
// error that panics under the debug_memforge build tag and is unspecified
// otherwise. The same applies to reading a bound that was never set.
type Bound struct {
	value int
	set   bool
}

// Fixed returns a bound already initialized to v.
func Fixed(v int) Bound {
	return Bound{value: v, set: true}
}

// Set initializes the bound's value. It may be called at most once, and only
// on a bound that was not built with Fixed.
func (b *Bound) Set(v int) {
	DebugAssert(!b.set, "bound value re-set after initialization")
	b.value = v
	b.set = true
}

// Value returns the bound's value. The bound must have been initialized.
func (b Bound) Value() int {
	DebugAssert(b.set, "bound value read before initialization")
	return b.value
}

// Initialized reports whether the bound holds a value yet.
func (b Bound) Initialized() bool {
	return b.set
}
