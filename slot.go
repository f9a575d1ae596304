package spmc

import "sync/atomic"

// Slot is one cell of the ring: a sequence number plus storage for one
// payload. seq is monotonically non-decreasing; it starts at zero and, once
// the writer has passed over this slot k times (k >= 1), holds the sequence
// value i+(k-1)*N for a ring of capacity N (i being the slot's index), or
// k*N for slot 0, since the first write stores sequence 1 into slot 1.
//
// seq is padded onto its own cache line, ahead of payload, so that a
// reader's acquire-load on one slot's seq does not generate coherence
// traffic against the neighboring slot's payload writes. This cannot be a
// complete guarantee for an arbitrary generic T — if sizeof(T) is not
// itself a multiple of the cache line size, a slot's payload can still
// abut the next slot's seq — but it is the same partial guarantee the
// teacher's own control-block padding offers (see DESIGN.md).
type Slot[T any] struct {
	seq     atomic.Uint32
	_       [60]byte
	payload T
}
