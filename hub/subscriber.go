package hub

import (
	"sync/atomic"

	"github.com/river-walras/spmc"
	"github.com/river-walras/spmc/marketdata"
)

// Callback is invoked once per delivered record. The payload pointer is
// valid only for the duration of the call — it points at a thread-local
// copy the hub takes before invoking the callback, never at the ring's own
// slot.
type Callback func(tag marketdata.Tag, payload *marketdata.Variant)

// subscriber is the hub-level record the spec calls a quadruple of filter,
// callback, thread and reader, plus the identifier and running flag. It is
// created in Subscribe and destroyed in Unsubscribe or StopAll; it must not
// outlive its Hub.
type subscriber struct {
	id       uint64
	tag      marketdata.Tag
	callback Callback
	reader   spmc.Reader[marketdata.Variant]
	running  atomic.Bool
	// done is closed by the consumer goroutine when it exits, letting
	// Unsubscribe/StopAll block on exactly this one subscriber.
	done chan struct{}
}
