package hub

import (
	"io"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/river-walras/spmc"
	"github.com/river-walras/spmc/marketdata"
)

const idleSleep = time.Microsecond

// Hub owns one ring of marketdata.Variant and a set of subscribers, each
// with a data-type filter, callback, dedicated consumer goroutine and its
// own reader handle. The subscriber table is guarded by mu; mu is acquired
// on the subscribe/unsubscribe/stop-all paths, by SubscriberCount, and once
// when a consumer goroutine starts, never on Publish or on a consumer
// goroutine's read loop.
type Hub struct {
	ring   *spmc.Ring[marketdata.Variant]
	writer *spmc.Writer[marketdata.Variant]

	mu          sync.Mutex
	subscribers map[uint64]*subscriber
	nextID      atomic.Uint64

	logger      *slog.Logger
	spinReaders bool

	stats hubStats
}

// New constructs a Hub around a ring of the given capacity, which must be a
// power of two.
func New(capacity uint32, opts ...Option) *Hub {
	ring, writer := spmc.NewRing[marketdata.Variant](capacity)

	h := &Hub{
		ring:        ring,
		writer:      writer,
		subscribers: make(map[uint64]*subscriber),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Publish broadcasts a record to every current subscriber; subscribers added
// afterwards do not see it. It never blocks, never fails, and never touches
// the subscriber-table mutex.
func (h *Hub) Publish(v marketdata.Variant) {
	h.writer.Write(func(slot *marketdata.Variant) { *slot = v })
	h.stats.published.Add(1)
}

// PublishKline wraps k as a Variant and publishes it.
func (h *Hub) PublishKline(k marketdata.Kline) {
	h.Publish(marketdata.NewKlineVariant(k))
}

// PublishTrade wraps tr as a Variant and publishes it.
func (h *Hub) PublishTrade(tr marketdata.Trade) {
	h.Publish(marketdata.NewTradeVariant(tr))
}

// PublishBookL1 wraps b as a Variant and publishes it.
func (h *Hub) PublishBookL1(b marketdata.BookL1) {
	h.Publish(marketdata.NewBookL1Variant(b))
}

// PublishBatch publishes every record in vs, in order. It exists for
// caller convenience (the original prototype's add_klines/add_trades/
// add_books_l1 batch bindings) — Publish already never touches the
// subscriber table, so there is no separate fast path to gain here, only a
// more convenient call shape for callers with a slice in hand.
func (h *Hub) PublishBatch(vs []marketdata.Variant) {
	for _, v := range vs {
		h.Publish(v)
	}
}

// Subscribe registers a callback for records tagged with tag and returns a
// unique, never-reused subscriber id. The consumer goroutine is running
// before Subscribe returns.
func (h *Hub) Subscribe(tag marketdata.Tag, cb Callback) uint64 {
	id := h.nextID.Add(1)
	sub := &subscriber{
		id:       id,
		tag:      tag,
		callback: cb,
		reader:   h.ring.NewReader(),
		done:     make(chan struct{}),
	}
	sub.running.Store(true)

	h.mu.Lock()
	h.subscribers[id] = sub
	h.mu.Unlock()

	go h.consume(id)

	h.stats.subscriptions.Add(1)
	return id
}

// Unsubscribe stops the given subscriber's callback from being invoked
// again and blocks until its consumer goroutine has exited. Unsubscribing
// an unknown or already-removed id is an idempotent no-op.
func (h *Hub) Unsubscribe(id uint64) {
	h.mu.Lock()
	sub, ok := h.subscribers[id]
	h.mu.Unlock()
	if !ok {
		return
	}

	sub.running.Store(false)
	<-sub.done

	h.mu.Lock()
	delete(h.subscribers, id)
	h.mu.Unlock()
}

// StopAll stops every subscriber, joins every consumer goroutine, and
// clears the subscriber table. It is safe to call even if Publish was
// never called, and safe to call from a deferred cleanup.
func (h *Hub) StopAll() {
	h.mu.Lock()
	subs := make([]*subscriber, 0, len(h.subscribers))
	for _, sub := range h.subscribers {
		sub.running.Store(false)
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		<-sub.done
	}

	h.mu.Lock()
	h.subscribers = make(map[uint64]*subscriber)
	h.mu.Unlock()
}

// SubscriberCount returns the current number of active subscribers. It is
// observational only.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Stats returns a point-in-time snapshot of the hub's counters.
func (h *Hub) Stats() Stats {
	return h.stats.snapshot()
}

// consume is the per-subscriber consumer loop (spec §4.3): read, idle-wait
// on no data, filter by tag, copy before invoking, repeat until running is
// cleared.
func (h *Hub) consume(id uint64) {
	h.mu.Lock()
	sub, ok := h.subscribers[id]
	h.mu.Unlock()
	if !ok {
		return
	}
	defer close(sub.done)

	for sub.running.Load() {
		prevSeq := sub.reader.NextSeq()
		v, ok := sub.reader.Read()
		if !ok {
			if h.spinReaders {
				runtime.Gosched()
			} else {
				time.Sleep(idleSleep)
			}
			continue
		}

		if skipped := int64(sub.reader.NextSeq()-prevSeq) - 1; skipped > 0 {
			h.stats.dropped.Add(skipped)
		}

		if v.Tag != sub.tag {
			h.stats.filtered.Add(1)
			continue
		}

		// Copy before invoking: the slot view is only valid until the
		// ring's next revolution touches it, and the callback may run
		// arbitrarily long.
		local := *v
		h.invoke(sub, &local)
	}
}

func (h *Hub) invoke(sub *subscriber, payload *marketdata.Variant) {
	defer func() {
		if r := recover(); r != nil {
			h.stats.callbackPanics.Add(1)
			h.logger.Error("subscriber callback panicked",
				slog.Uint64("subscriber_id", sub.id),
				slog.String("tag", sub.tag.String()),
				slog.Any("panic", r))
		}
	}()

	sub.callback(sub.tag, payload)
	h.stats.delivered.Add(1)
}
