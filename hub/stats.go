package hub

import "sync/atomic"

// hubStats holds the hub's observability counters. Every field is an
// atomic.Int64 read without the subscriber-table mutex — this is
// deliberately not the latency-histogram accounting the spec excludes as
// out of scope, just the same "is it alive, how much work has it done"
// counters every ambient stack in the corpus carries.
type hubStats struct {
	subscriptions  atomic.Int64
	published      atomic.Int64
	delivered      atomic.Int64
	filtered       atomic.Int64
	dropped        atomic.Int64
	callbackPanics atomic.Int64
}

// Stats is a point-in-time snapshot of a Hub's counters.
type Stats struct {
	// Subscriptions is the number of Subscribe calls made so far (not the
	// current subscriber count — use Hub.SubscriberCount for that).
	Subscriptions int64
	// Published is the number of records handed to Publish (and its typed
	// wrappers) so far.
	Published int64
	// Delivered is the number of records that passed a subscriber's tag
	// filter and were handed to its callback, counting only calls that
	// returned without panicking (see CallbackPanics).
	Delivered int64
	// Filtered is the number of records a subscriber's reader observed but
	// discarded because the tag did not match.
	Filtered int64
	// Dropped is the total number of records skipped across all
	// subscribers because the writer lapped their reader.
	Dropped int64
	// CallbackPanics is the number of times a subscriber's callback
	// panicked and was recovered.
	CallbackPanics int64
}

func (s *hubStats) snapshot() Stats {
	return Stats{
		Subscriptions:  s.subscriptions.Load(),
		Published:      s.published.Load(),
		Delivered:      s.delivered.Load(),
		Filtered:       s.filtered.Load(),
		Dropped:        s.dropped.Load(),
		CallbackPanics: s.callbackPanics.Load(),
	}
}
