// Package hub implements the market-data broadcast hub: a named service
// wrapped around an spmc.Ring[marketdata.Variant] that demultiplexes
// published records to dynamically subscribed, type-filtered callbacks,
// each running on its own goroutine.
//
// A zero-value Hub is not usable; construct one with New. The hub never
// blocks on Publish and never takes its subscriber-table lock on the
// publish or read-loop fast paths — subscribe/unsubscribe/stop-all and
// publish never contend with each other.
//
//	h := hub.New(1024)
//	defer h.StopAll()
//
//	id := h.Subscribe(marketdata.TagTrade, func(tag marketdata.Tag, v *marketdata.Variant) {
//		fmt.Println(v.Trade.Symbol, v.Trade.Price)
//	})
//	defer h.Unsubscribe(id)
//
//	h.PublishTrade(marketdata.Trade{Symbol: "BTCUSDT", Price: 50000})
//
// Callbacks run on a hub-owned goroutine, not on the publisher's goroutine,
// and must not call Subscribe or Unsubscribe on their own subscriber id —
// Unsubscribe blocks until that goroutine exits, so a callback unsubscribing
// itself would deadlock. Subscribing to other subscribers from within a
// callback is fine.
//
// A callback that panics is recovered and logged; the record that caused it
// is dropped, and the subscriber's goroutine keeps running — a misbehaving
// callback does not silently remove a subscription.
package hub
