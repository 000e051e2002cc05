// Package stats provides a decorator that wraps any backing allocator and
// records a configurable set of usage statistics: per-call counters,
// cumulative byte counters, and per-allocation metadata records threaded
// through an intrusive doubly linked list of live allocations.
//
// The decorator forwards all allocation semantics unchanged. It carries no
// synchronization of its own: it is safe only under single-goroutine use of
// the wrapped allocator, or external serialization around the whole
// decorator.
package stats

import (
	"runtime"
	"time"
	"unsafe"

	"github.com/memforge/memforge/affix"
	"github.com/memforge/memforge/mem"
	"github.com/pkg/errors"
)

// Decorator wraps a backing allocator and records the statistics selected by
// its flags.
type Decorator struct {
	// target is what calls are delegated to: the affix allocator when
	// per-allocation metadata is captured, the backing allocator otherwise.
	target  mem.Allocator
	affixed *affix.Allocator

	// capabilities of the backing allocator, nil when absent
	reallocator mem.Reallocator
	owner       mem.Owner
	expander    mem.Expander
	bulk        mem.BulkDeallocator

	flags    Flags
	counters [flagIndexCount]int

	// head designates the most recently allocated still-live record
	head *AllocationInfo
	live int
}

var _ mem.Allocator = (*Decorator)(nil)
var _ mem.Reallocator = (*Decorator)(nil)
var _ mem.Validatable = (*Decorator)(nil)

// New wraps backing in a decorator recording the statistics selected by
// flags. When any Caller* flag is set, every block gains a pointer-sized
// prefix referencing its AllocationInfo record; when none are, the backing
// allocator is used directly with zero added overhead.
func New(backing mem.Allocator, flags Flags) *Decorator {
	d := &Decorator{
		target: backing,
		flags:  flags,
	}
	if flags&CallerAll != 0 {
		d.affixed = affix.New(backing, int(unsafe.Sizeof(uintptr(0))), 0)
		d.target = d.affixed
	}
	d.reallocator, _ = mem.ReallocatorOf(backing)
	d.owner, _ = mem.OwnerOf(backing)
	d.expander, _ = mem.ExpanderOf(backing)
	d.bulk, _ = mem.BulkDeallocatorOf(backing)
	return d
}

func (d *Decorator) up(flag Flags) {
	if d.flags&flag != 0 {
		d.counters[flagIndex(flag)]++
	}
}

func (d *Decorator) upOK(flag Flags, ok bool) {
	if d.flags&flag != 0 && ok {
		d.counters[flagIndex(flag)]++
	}
}

func (d *Decorator) add(flag Flags, delta int) {
	if d.flags&flag != 0 {
		d.counters[flagIndex(flag)] += delta
	}
}

func (d *Decorator) counter(flag Flags) int {
	return d.counters[flagIndex(flag)]
}

func (d *Decorator) updateHighTide() {
	if d.flags&BytesHighTide == 0 {
		return
	}
	outstanding := d.counter(BytesAllocated) - d.counter(BytesDeallocated)
	if d.counter(BytesHighTide) < outstanding {
		d.counters[flagIndex(BytesHighTide)] = outstanding
	}
}

// Allocate delegates to the backing allocator and records the enabled
// allocation statistics. When metadata capture is enabled the call site is
// taken from the calling frame via the runtime.
func (d *Decorator) Allocate(n int) mem.Block {
	result := d.target.Allocate(n)
	d.up(NumAllocate)
	d.upOK(NumAllocateOK, n > 0 && !result.IsEmpty())
	d.add(BytesAllocated, result.Length)
	if !result.IsEmpty() {
		d.add(BytesSlack, result.Length-n)
	}
	d.updateHighTide()
	if !result.IsEmpty() && d.affixed != nil {
		d.recordAllocation(result, n)
	}
	mem.DebugValidate(d)
	return result
}

// recordAllocation populates a fresh metadata record, splices it onto the
// head of the live list and stores it in b's prefix. The record itself is an
// ordinary garbage-collected value kept alive by the list, so the raw prefix
// only ever acts as a lookup cache; its lifetime is strictly bound to b's.
func (d *Decorator) recordAllocation(b mem.Block, requested int) {
	info := &AllocationInfo{}
	if d.flags&CallerSize != 0 {
		info.Size = requested
	}
	if d.flags&(CallerFile|CallerFunction|CallerLine) != 0 {
		// two frames up: the caller of the exported operation
		pc, file, line, ok := runtime.Caller(2)
		if ok {
			if d.flags&CallerFile != 0 {
				info.File = file
			}
			if d.flags&CallerLine != 0 {
				info.Line = line
			}
			if d.flags&CallerFunction != 0 {
				if fn := runtime.FuncForPC(pc); fn != nil {
					info.Function = fn.Name()
				}
			}
		}
	}
	if d.flags&CallerTime != 0 {
		info.Time = time.Now()
	}

	info.next = d.head
	if d.head != nil {
		d.head.prev = info
	}
	d.head = info
	d.live++

	*(**AllocationInfo)(d.affixed.Prefix(b)) = info
}

// unlinkAllocation removes b's metadata record from the live list through
// the record's own neighbor links.
func (d *Decorator) unlinkAllocation(b mem.Block) {
	info := *(**AllocationInfo)(d.affixed.Prefix(b))
	if info == nil {
		return
	}
	if d.flags&CallerSize != 0 {
		d.add(BytesSlack, info.Size-b.Length)
	}
	if info.prev != nil {
		info.prev.next = info.next
	}
	if info.next != nil {
		info.next.prev = info.prev
	}
	if info == d.head {
		d.head = info.next
	}
	info.prev = nil
	info.next = nil
	d.live--
}

// Deallocate records the enabled deallocation statistics, drops b's metadata
// record if one exists and forwards b to the backing allocator.
func (d *Decorator) Deallocate(b *mem.Block) {
	d.up(NumDeallocate)
	d.add(BytesDeallocated, b.Length)
	if !b.IsEmpty() && d.affixed != nil {
		d.unlinkAllocation(*b)
	}
	d.target.Deallocate(b)
	mem.DebugValidate(d)
}

func (d *Decorator) delegateReallocate(b *mem.Block, n int) bool {
	if d.affixed != nil {
		return d.affixed.Reallocate(b, n)
	}
	if d.reallocator != nil {
		return d.reallocator.Reallocate(b, n)
	}
	return mem.ReallocateWithCopy(d.target, b, n)
}

// Reallocate delegates to the backing allocator and classifies the outcome:
// an unchanged address counts as in-place growth or contraction, a changed
// address as a move.
func (d *Decorator) Reallocate(b *mem.Block, n int) bool {
	original := *b
	d.up(NumReallocate)

	if d.affixed != nil && n == 0 && !b.IsEmpty() {
		// the delegate will deallocate; the record has to come off first
		d.unlinkAllocation(*b)
	}

	if !d.delegateReallocate(b, n) {
		return false
	}
	d.up(NumReallocateOK)

	delta := b.Length - original.Length
	if b.Ptr == original.Ptr {
		d.up(NumReallocateInPlace)
		if delta > 0 {
			d.add(BytesAllocated, delta)
			d.add(BytesExpanded, delta)
		} else {
			d.add(BytesDeallocated, -delta)
			d.add(BytesContracted, -delta)
		}
	} else {
		d.add(BytesAllocated, b.Length)
		d.add(BytesMoved, original.Length)
		d.add(BytesDeallocated, original.Length)
	}

	if d.affixed != nil && original.IsEmpty() && !b.IsEmpty() {
		// reallocation from an empty block is an allocation in disguise
		d.recordAllocation(*b, n)
	}

	d.updateHighTide()
	return true
}

// CanOwn reports whether the backing allocator exposes ownership queries.
func (d *Decorator) CanOwn() bool {
	return d.owner != nil
}

// Owns forwards the ownership test to the backing allocator and counts the
// call. It reports false when the backing allocator does not expose Owns;
// use CanOwn to distinguish "not owned" from "not supported".
func (d *Decorator) Owns(b mem.Block) bool {
	if d.owner == nil {
		return false
	}
	d.up(NumOwns)
	if d.affixed != nil && !b.IsEmpty() {
		b = d.affixed.OuterBlock(b)
	}
	return d.owner.Owns(b)
}

// CanExpand reports whether the backing allocator exposes in-place growth.
func (d *Decorator) CanExpand() bool {
	return d.expander != nil
}

// Expand forwards in-place growth to the backing allocator and counts the
// call. It reports false when the backing allocator does not expose Expand;
// use CanExpand to distinguish failure from unavailability.
func (d *Decorator) Expand(b *mem.Block, delta int) bool {
	if d.expander == nil {
		return false
	}
	d.up(NumExpand)

	var ok bool
	if d.affixed != nil {
		if b.IsEmpty() {
			return false
		}
		outer := d.affixed.OuterBlock(*b)
		ok = d.expander.Expand(&outer, delta)
		if ok {
			b.Length += delta
		}
	} else {
		ok = d.expander.Expand(b, delta)
	}
	if !ok {
		return false
	}

	d.up(NumExpandOK)
	d.add(BytesExpanded, delta)
	d.add(BytesAllocated, delta)
	d.updateHighTide()
	return true
}

// DeallocateAll forwards bulk deallocation to the backing allocator when it
// exposes one, dropping every live metadata record. It is a no-op otherwise.
func (d *Decorator) DeallocateAll() {
	if d.bulk == nil {
		return
	}
	d.up(NumDeallocateAll)
	d.head = nil
	d.live = 0
	d.bulk.DeallocateAll()
}

// SupportsTruncatedDeallocation forwards the backing allocator's capability.
// Note that with metadata capture enabled, blocks carry a prefix envelope
// and must always travel back through the decorator whole.
func (d *Decorator) SupportsTruncatedDeallocation() bool {
	if d.affixed != nil {
		return false
	}
	return d.target.SupportsTruncatedDeallocation()
}

// Allocations returns the metadata record of the most recently allocated
// still-live allocation, or nil when none are live or metadata capture is
// disabled. Walk Next for older records. The sequence is forward-only and
// not a snapshot: any Allocate or Deallocate call invalidates it.
func (d *Decorator) Allocations() *AllocationInfo {
	return d.head
}

// LiveAllocationCount returns the number of live metadata records.
func (d *Decorator) LiveAllocationCount() int {
	return d.live
}

// Validate walks the live-allocation list and cross-checks it against the
// record count.
func (d *Decorator) Validate() error {
	actual := 0
	var prev *AllocationInfo
	for info := d.head; info != nil; info = info.next {
		if info.prev != prev {
			return errors.Errorf("allocation record %d has a broken back link", actual)
		}
		prev = info
		actual++
	}
	if actual != d.live {
		return errors.Errorf("the listed number of live allocations (%d) does not match the record count (%d)", d.live, actual)
	}
	return nil
}
