package stack

import "unsafe"

// Bounded is a plain array-backed stack with no synchronization. Correct use
// requires a single owner or external mutual exclusion.
type Bounded struct {
	items []unsafe.Pointer
}

var _ Stack = (*Bounded)(nil)

// NewBounded returns a Bounded stack that holds up to capacity pointers.
func NewBounded(capacity int) *Bounded {
	return &Bounded{
		items: make([]unsafe.Pointer, 0, capacity),
	}
}

func (s *Bounded) Push(p unsafe.Pointer) bool {
	if len(s.items) == cap(s.items) {
		return false
	}
	s.items = append(s.items, p)
	return true
}

func (s *Bounded) Pop() (unsafe.Pointer, bool) {
	n := len(s.items)
	if n == 0 {
		return nil, false
	}
	p := s.items[n-1]
	s.items[n-1] = nil
	s.items = s.items[:n-1]
	return p, true
}

func (s *Bounded) Cap() int {
	return cap(s.items)
}
