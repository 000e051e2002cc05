package stats

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"golang.org/x/exp/slog"
)

// BuildStatsString writes the enabled counters, and the live allocation
// records when metadata capture is on, as one JSON object.
func (d *Decorator) BuildStatsString(writer *jwriter.Writer) {
	obj := writer.Object()
	defer obj.End()

	if d.flags&NumAll != 0 {
		calls := obj.Name("Calls").Object()
		d.printCounter(&calls, "Owns", NumOwns)
		d.printCounter(&calls, "Allocate", NumAllocate)
		d.printCounter(&calls, "AllocateOK", NumAllocateOK)
		d.printCounter(&calls, "Expand", NumExpand)
		d.printCounter(&calls, "ExpandOK", NumExpandOK)
		d.printCounter(&calls, "Reallocate", NumReallocate)
		d.printCounter(&calls, "ReallocateOK", NumReallocateOK)
		d.printCounter(&calls, "ReallocateInPlace", NumReallocateInPlace)
		d.printCounter(&calls, "Deallocate", NumDeallocate)
		d.printCounter(&calls, "DeallocateAll", NumDeallocateAll)
		calls.End()
	}

	if d.flags&BytesAll != 0 {
		bytes := obj.Name("Bytes").Object()
		d.printCounter(&bytes, "Allocated", BytesAllocated)
		d.printCounter(&bytes, "Deallocated", BytesDeallocated)
		d.printCounter(&bytes, "Expanded", BytesExpanded)
		d.printCounter(&bytes, "Contracted", BytesContracted)
		d.printCounter(&bytes, "Moved", BytesMoved)
		d.printCounter(&bytes, "Slack", BytesSlack)
		d.printCounter(&bytes, "HighTide", BytesHighTide)
		bytes.End()
	}

	if d.affixed != nil {
		arrayState := obj.Name("Allocations").Array()
		defer arrayState.End()

		for info := d.head; info != nil; info = info.next {
			infoObj := arrayState.Object()
			info.printParameters(&infoObj)
			infoObj.End()
		}
	}
}

func (d *Decorator) printCounter(json *jwriter.ObjectState, name string, flag Flags) {
	if d.flags&flag != 0 {
		json.Name(name).Int(d.counter(flag))
	}
}

// DebugLogAllAllocations writes one log line per live allocation record,
// most recent first.
func (d *Decorator) DebugLogAllAllocations(logger *slog.Logger) {
	for info := d.head; info != nil; info = info.next {
		logger.Info("live allocation",
			slog.Int("size", info.Size),
			slog.String("file", info.File),
			slog.String("function", info.Function),
			slog.Int("line", info.Line),
			slog.Time("time", info.Time),
		)
	}
}
