package stack

import (
	"math"
	"sync/atomic"
	"unsafe"
)

const nilIndex uint32 = math.MaxUint32

type node struct {
	value unsafe.Pointer
	next  uint32
}

// LockFree is a fixed-capacity concurrent stack. All nodes live in one
// preallocated array; the value list and the free-node list are Treiber
// stacks of node indices. Each list head packs a 32-bit node index together
// with a 32-bit tag that is bumped on every successful swap, so a
// compare-and-swap retry cannot be fooled by a node that was popped and
// re-pushed in the meantime.
//
// Push and Pop never block; they fail only on capacity exhaustion (full on
// Push, empty on Pop).
type LockFree struct {
	nodes []node
	head  atomic.Uint64
	free  atomic.Uint64
}

var _ Stack = (*LockFree)(nil)

// NewLockFree returns a LockFree stack that holds up to capacity pointers.
func NewLockFree(capacity int) *LockFree {
	s := &LockFree{
		nodes: make([]node, capacity),
	}
	for i := range s.nodes {
		s.nodes[i].next = uint32(i) + 1
	}
	firstFree := nilIndex
	if capacity > 0 {
		s.nodes[capacity-1].next = nilIndex
		firstFree = 0
	}
	s.head.Store(pack(0, nilIndex))
	s.free.Store(pack(0, firstFree))
	return s
}

func pack(tag, index uint32) uint64 {
	return uint64(tag)<<32 | uint64(index)
}

func unpack(v uint64) (tag, index uint32) {
	return uint32(v >> 32), uint32(v)
}

// popIndex removes the top node of the list at head and transfers ownership
// of that node to the caller.
func (s *LockFree) popIndex(head *atomic.Uint64) (uint32, bool) {
	for {
		old := head.Load()
		tag, index := unpack(old)
		if index == nilIndex {
			return 0, false
		}
		next := atomic.LoadUint32(&s.nodes[index].next)
		if head.CompareAndSwap(old, pack(tag+1, next)) {
			return index, true
		}
	}
}

// pushIndex publishes a node the caller owns onto the list at head.
func (s *LockFree) pushIndex(head *atomic.Uint64, index uint32) {
	for {
		old := head.Load()
		tag, top := unpack(old)
		atomic.StoreUint32(&s.nodes[index].next, top)
		if head.CompareAndSwap(old, pack(tag+1, index)) {
			return
		}
	}
}

func (s *LockFree) Push(p unsafe.Pointer) bool {
	index, ok := s.popIndex(&s.free)
	if !ok {
		return false
	}
	s.nodes[index].value = p
	s.pushIndex(&s.head, index)
	return true
}

func (s *LockFree) Pop() (unsafe.Pointer, bool) {
	index, ok := s.popIndex(&s.head)
	if !ok {
		return nil, false
	}
	p := s.nodes[index].value
	s.nodes[index].value = nil
	s.pushIndex(&s.free, index)
	return p, true
}

func (s *LockFree) Cap() int {
	return len(s.nodes)
}
