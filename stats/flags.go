package stats

import "math/bits"

// Flags selects which statistics a Decorator records. The set is chosen at
// construction and cannot be altered afterwards; reading a counter whose
// flag was not set yields an unspecified value.
type Flags uint32

const (
	// NumOwns counts the number of calls to Owns.
	NumOwns Flags = 1 << iota
	// NumAllocate counts the number of calls to Allocate. All calls are
	// counted, including requests for zero bytes or failed requests.
	NumAllocate
	// NumAllocateOK counts the number of calls to Allocate that succeeded,
	// i.e. they were for more than zero bytes and returned a non-empty
	// block.
	NumAllocateOK
	// NumExpand counts the number of calls to Expand, regardless of
	// arguments or result.
	NumExpand
	// NumExpandOK counts the number of calls to Expand that resulted in a
	// successful expansion.
	NumExpandOK
	// NumReallocate counts the number of calls to Reallocate, regardless of
	// arguments or result.
	NumReallocate
	// NumReallocateOK counts the number of calls to Reallocate that
	// succeeded. (Reallocations to zero bytes count as successful.)
	NumReallocateOK
	// NumReallocateInPlace counts the number of calls to Reallocate that
	// resolved without moving memory. If this number is close to the total
	// number of reallocations, the backing allocator finds room at the
	// current block's end in a large fraction of cases, but internal
	// fragmentation may be high.
	NumReallocateInPlace
	// NumDeallocate counts the number of calls to Deallocate.
	NumDeallocate
	// NumDeallocateAll counts the number of calls to DeallocateAll.
	NumDeallocateAll

	// BytesAllocated tracks total cumulative bytes allocated by means of
	// Allocate, Expand and Reallocate (when resulting in an expansion). The
	// number always grows and indicates allocation traffic. Subtract
	// BytesDeallocated to compute bytes currently outstanding.
	BytesAllocated
	// BytesDeallocated tracks total cumulative bytes deallocated by means of
	// Deallocate and Reallocate (when resulting in a contraction). The
	// number always grows and indicates deallocation traffic.
	BytesDeallocated
	// BytesExpanded tracks the sum of all deltas in successful Expand calls
	// and in-place growing reallocations.
	BytesExpanded
	// BytesContracted tracks the sum of all size reductions from in-place
	// shrinking reallocations.
	BytesContracted
	// BytesMoved tracks the sum of all bytes moved by Reallocate calls that
	// were unable to resolve in place. A large number relative to
	// BytesAllocated indicates that the application should preallocate more.
	BytesMoved
	// BytesSlack measures the current number of extra bytes allocated beyond
	// the bytes requested (internal fragmentation). It goes up and down with
	// time, and can only shrink again when CallerSize is also enabled, since
	// the requested size must be recovered at deallocation time.
	BytesSlack
	// BytesHighTide measures the maximum number of outstanding allocated
	// bytes observed over the decorator's lifetime, useful for dimensioning
	// allocators. It is meaningful only when BytesAllocated and
	// BytesDeallocated are also enabled.
	BytesHighTide

	// CallerSize stores the size asked by the caller in each allocation's
	// metadata record.
	CallerSize
	// CallerFile stores the caller's source file in each allocation's
	// metadata record.
	CallerFile
	// CallerFunction stores the caller's function name in each allocation's
	// metadata record.
	CallerFunction
	// CallerLine stores the caller's source line in each allocation's
	// metadata record.
	CallerLine
	// CallerTime stores the time of each allocation in its metadata record.
	CallerTime

	flagIndexCount = iota
)

const (
	// NumAll selects every call counter.
	NumAll = NumOwns | NumAllocate | NumAllocateOK | NumExpand | NumExpandOK |
		NumReallocate | NumReallocateOK | NumReallocateInPlace | NumDeallocate |
		NumDeallocateAll
	// BytesAll selects every byte counter.
	BytesAll = BytesAllocated | BytesDeallocated | BytesExpanded |
		BytesContracted | BytesMoved | BytesSlack | BytesHighTide
	// CallerAll selects every per-allocation metadata capture. Setting any
	// of these attaches an AllocationInfo record to every block via a prefix
	// region.
	CallerAll = CallerSize | CallerFile | CallerFunction | CallerLine | CallerTime
	// All combines every flag above.
	All = NumAll | BytesAll | CallerAll
)

func flagIndex(f Flags) int {
	return bits.TrailingZeros32(uint32(f))
}
