package stats

import (
	"time"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// AllocationInfo is the per-allocation metadata record captured when any
// Caller* flag is enabled. One record exists per live allocation; the
// records form an intrusive doubly linked list ordered most-recent-first,
// and each record unlinks through its own neighbor links in O(1) when its
// allocation is freed; the list is never traversed for removal.
//
// Only the fields whose Caller* flag was enabled are populated; the rest
// keep their zero values.
type AllocationInfo struct {
	// Size is the byte count the caller requested, which can be smaller
	// than the block the allocator returned.
	Size     int
	File     string
	Function string
	Line     int
	Time     time.Time

	prev, next *AllocationInfo
}

// Next returns the record of the next-older live allocation, or nil at the
// end of the list.
func (i *AllocationInfo) Next() *AllocationInfo {
	return i.next
}

// Prev returns the record of the next-younger live allocation, or nil at the
// head of the list.
func (i *AllocationInfo) Prev() *AllocationInfo {
	return i.prev
}

func (i *AllocationInfo) printParameters(json *jwriter.ObjectState) {
	json.Name("Size").Int(i.Size)
	if i.File != "" {
		json.Name("File").String(i.File)
	}
	if i.Function != "" {
		json.Name("Function").String(i.Function)
	}
	if i.Line != 0 {
		json.Name("Line").Int(i.Line)
	}
	if !i.Time.IsZero() {
		json.Name("Time").String(i.Time.Format(time.RFC3339Nano))
	}
}
