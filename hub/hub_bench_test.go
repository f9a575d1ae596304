package hub_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/river-walras/spmc/hub"
	"github.com/river-walras/spmc/marketdata"
)

// Benchmark: single producer, four subscribers on the same tag, matching
// teacher style benchmarks (BenchmarkMPMC_MPMC, BenchmarkMPSC_MP1C).
//
// Subscribers may legitimately miss records under load (spec §1: the
// writer never blocks, slow readers drop), so this benchmark does not wait
// for an exact delivery count — it measures publish throughput with live
// broadcast subscribers attached, then gives them a short grace period to
// drain before reporting.
func BenchmarkHub_1P4Subscribers(b *testing.B) {
	const subscribers = 4

	h := hub.New(1 << 16)
	defer h.StopAll()

	var delivered atomic.Int64
	for i := 0; i < subscribers; i++ {
		id := h.Subscribe(marketdata.TagTrade, func(tag marketdata.Tag, v *marketdata.Variant) {
			delivered.Add(1)
		})
		defer h.Unsubscribe(id)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.PublishTrade(marketdata.Trade{Symbol: "BTCUSDT", Price: float64(i)})
	}
	b.StopTimer()

	time.Sleep(5 * time.Millisecond)
	b.ReportMetric(float64(delivered.Load()), "delivered")
}
