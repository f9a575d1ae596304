package spmc

// Reader is a lightweight cursor into a Ring. It carries no reference to
// any other reader and is not tracked by the ring; creating or discarding
// one is constant-time and allocation-free. Methods take a pointer receiver
// because Read/ReadLast advance nextIdx.
type Reader[T any] struct {
	ring    *Ring[T]
	nextIdx uint32
}

// Read returns a pointer into the ring's own storage for the next record
// this reader has not yet observed, or (nil, false) if the writer has not
// produced it yet.
//
// If the writer has lapped this reader one or more full revolutions, Read
// skips ahead to the latest record written into the slot this reader was
// waiting on (up to one revolution older than the newest record, which
// further reads then reach in order) — this is the intended
// "slow readers lose data" behaviour, not an error. Use NextSeq before and
// after a successful Read to recover how many records were skipped
// (newSeq - oldSeq - 1).
//
// The returned pointer is valid only until the ring's next revolution
// touches this slot again. Callers that need the value beyond that window,
// or that hand it to code that may run arbitrarily long, must copy it out
// first.
func (r *Reader[T]) Read() (*T, bool) {
	slot := &r.ring.slots[r.nextIdx&r.ring.mask]
	observed := slot.seq.Load()

	if int32(observed-r.nextIdx) < 0 {
		return nil, false
	}

	r.nextIdx = observed + 1
	return &slot.payload, true
}

// ReadLast drains the reader to the newest available record, discarding
// everything in between, and returns it — or (nil, false) if nothing new
// has arrived since the last read. Useful for coalescing readers that only
// care about the current state, not the history leading up to it.
func (r *Reader[T]) ReadLast() (*T, bool) {
	var last *T
	for {
		v, ok := r.Read()
		if !ok {
			return last, last != nil
		}
		last = v
	}
}

// NextSeq returns the sequence number this reader expects to observe next.
// Comparing it before and after a Read call recovers the skip count.
func (r *Reader[T]) NextSeq() uint32 {
	return r.nextIdx
}
