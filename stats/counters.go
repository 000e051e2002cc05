package stats

// Counter accessors return the running value recorded for one statistic.
// Reading a counter whose flag was not passed to New yields an unspecified
// value.

func (d *Decorator) NumOwns() int              { return d.counter(NumOwns) }
func (d *Decorator) NumAllocate() int          { return d.counter(NumAllocate) }
func (d *Decorator) NumAllocateOK() int        { return d.counter(NumAllocateOK) }
func (d *Decorator) NumExpand() int            { return d.counter(NumExpand) }
func (d *Decorator) NumExpandOK() int          { return d.counter(NumExpandOK) }
func (d *Decorator) NumReallocate() int        { return d.counter(NumReallocate) }
func (d *Decorator) NumReallocateOK() int      { return d.counter(NumReallocateOK) }
func (d *Decorator) NumReallocateInPlace() int { return d.counter(NumReallocateInPlace) }
func (d *Decorator) NumDeallocate() int        { return d.counter(NumDeallocate) }
func (d *Decorator) NumDeallocateAll() int     { return d.counter(NumDeallocateAll) }
func (d *Decorator) BytesAllocated() int       { return d.counter(BytesAllocated) }
func (d *Decorator) BytesDeallocated() int     { return d.counter(BytesDeallocated) }
func (d *Decorator) BytesExpanded() int        { return d.counter(BytesExpanded) }
func (d *Decorator) BytesContracted() int      { return d.counter(BytesContracted) }
func (d *Decorator) BytesMoved() int           { return d.counter(BytesMoved) }
func (d *Decorator) BytesSlack() int           { return d.counter(BytesSlack) }
func (d *Decorator) BytesHighTide() int        { return d.counter(BytesHighTide) }

// Counters is a point-in-time copy of every statistic a Decorator records.
// Fields whose flags were disabled hold unspecified values.
type Counters struct {
	NumOwns              int
	NumAllocate          int
	NumAllocateOK        int
	NumExpand            int
	NumExpandOK          int
	NumReallocate        int
	NumReallocateOK      int
	NumReallocateInPlace int
	NumDeallocate        int
	NumDeallocateAll     int

	BytesAllocated   int
	BytesDeallocated int
	BytesExpanded    int
	BytesContracted  int
	BytesMoved       int
	BytesSlack       int
	BytesHighTide    int
}

// Snapshot copies the current counter values out of the decorator.
func (d *Decorator) Snapshot() Counters {
	return Counters{
		NumOwns:              d.counter(NumOwns),
		NumAllocate:          d.counter(NumAllocate),
		NumAllocateOK:        d.counter(NumAllocateOK),
		NumExpand:            d.counter(NumExpand),
		NumExpandOK:          d.counter(NumExpandOK),
		NumReallocate:        d.counter(NumReallocate),
		NumReallocateOK:      d.counter(NumReallocateOK),
		NumReallocateInPlace: d.counter(NumReallocateInPlace),
		NumDeallocate:        d.counter(NumDeallocate),
		NumDeallocateAll:     d.counter(NumDeallocateAll),
		BytesAllocated:       d.counter(BytesAllocated),
		BytesDeallocated:     d.counter(BytesDeallocated),
		BytesExpanded:        d.counter(BytesExpanded),
		BytesContracted:      d.counter(BytesContracted),
		BytesMoved:           d.counter(BytesMoved),
		BytesSlack:           d.counter(BytesSlack),
		BytesHighTide:        d.counter(BytesHighTide),
	}
}
