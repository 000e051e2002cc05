// Package stack provides the fixed-capacity pointer containers that back the
// free list pool. Both variants hold raw addresses only; ownership of the
// memory behind a pointer transfers to the stack on Push and back to the
// caller on Pop.
package stack

import "unsafe"

// Stack is a fixed-capacity LIFO of raw pointers. Push reports false when
// the stack is full and Pop reports false when it is empty; both are
// expected outcomes for callers, not error conditions, and neither call
// blocks.
type Stack interface {
	Push(p unsafe.Pointer) bool
	Pop() (unsafe.Pointer, bool)
	Cap() int
}
