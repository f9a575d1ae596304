// Package spmc implements a bounded, lock-free, single-producer
// multi-consumer broadcast ring buffer.
//
// One writer appends fixed-size records; any number of independent readers
// observe the stream at their own pace. The writer never blocks and never
// looks at reader state. A reader that falls behind is allowed to miss
// records — when the writer laps it, the reader's next read jumps ahead to
// the latest record written into the slot it was waiting on instead of
// replaying the overwritten history.
//
// Construct a ring with NewRing, which hands back both the ring and its
// sole Writer:
//
//	ring, w := spmc.NewRing[Tick](1024)
//	r := ring.NewReader()
//
//	w.Write(func(t *Tick) { *t = Tick{Price: 101.5} })
//
//	if v, ok := r.Read(); ok {
//		fmt.Println(v.Price)
//	}
//
// Correctness rests on a per-slot sequence number and an acquire/release
// protocol: the writer fills a slot's payload with ordinary memory
// operations, then release-stores the slot's sequence number. A reader
// acquire-loads that sequence number; if it has reached the value the
// reader expects next (or passed it), the payload write that preceded the release-store is
// guaranteed visible. No retry loop is needed on the read side because
// sequence numbers only ever increase.
package spmc
