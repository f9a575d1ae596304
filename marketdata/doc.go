// Package marketdata defines the concrete tagged-variant payload broadcast
// over a spmc.Ring by the hub package: Kline, Trade and BookL1 records, and
// Variant, the flat tagged union over them.
//
// This is a direct, field-for-field rendering of the record shapes the
// market-data hub prototype ("original_source/msgbus/market_data.hpp")
// ships with. The C++ prototype represents the union with std::variant and
// a char[32] symbol buffer; the Go rendering uses a tag field plus one
// value field per arm (Go has no tagged-union language feature), and a
// plain string for the symbol, since Go strings are immutable and therefore
// carry the same "safe to copy, no aliasing hazard" property the fixed
// char buffer was there to guarantee.
package marketdata
