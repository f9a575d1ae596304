package hub

import "log/slog"

// Option configures a Hub at construction time.
type Option func(*Hub)

// WithLogger sets the logger used to report callback panics. The default
// logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Hub) { h.logger = logger }
}

// WithSpinReaders switches every subscriber's idle loop from a ~1µs sleep
// to a bare runtime.Gosched() when its reader has nothing new. This is the
// specialised low-latency variant the spec permits as an alternative to the
// default sleep form — it trades a pegged core per idle subscriber for
// lower wake-up latency, and is a hub-wide choice rather than a
// per-subscriber one, since mixing the two modes on one hub has no benefit.
func WithSpinReaders() Option {
	return func(h *Hub) { h.spinReaders = true }
}
