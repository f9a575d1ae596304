package marketdata

import "time"

// Tag discriminates the arm of a Variant in use. It is a plain field, read
// without any lock or method dispatch — the zero-cost tag the hub's filter
// contract requires.
type Tag int8

const (
	TagKline Tag = iota
	TagTrade
	TagBookL1
)

// String renders a Tag for logging, matching the original prototype's
// "kline"/"trade"/"book_l1" callback discriminant strings.
func (t Tag) String() string {
	switch t {
	case TagKline:
		return "kline"
	case TagTrade:
		return "trade"
	case TagBookL1:
		return "book_l1"
	default:
		return "unknown"
	}
}

// Kline is one OHLCV candle for a symbol.
type Kline struct {
	Timestamp time.Time
	Symbol    string
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
}

// Trade is one executed print for a symbol.
type Trade struct {
	Timestamp    time.Time
	Symbol       string
	Price        float64
	Quantity     float64
	IsBuyerMaker bool
}

// BookL1 is the top-of-book snapshot for a symbol.
type BookL1 struct {
	Timestamp   time.Time
	Symbol      string
	BidPrice    float64
	BidQuantity float64
	AskPrice    float64
	AskQuantity float64
}

// Variant is a flat tagged union over Kline, Trade and BookL1 — the
// broadcast payload type for the ring a Hub owns. It fits in one ring slot
// and is trivially copyable: every field is a fixed-width value, and the
// embedded strings are immutable, so copying a Variant never aliases
// mutable storage between the ring's slot and a reader's or subscriber's
// local copy.
type Variant struct {
	Tag   Tag
	Kline Kline
	Trade Trade
	Book  BookL1
}

// NewKlineVariant wraps a Kline as a Variant tagged TagKline.
func NewKlineVariant(k Kline) Variant {
	return Variant{Tag: TagKline, Kline: k}
}

// NewTradeVariant wraps a Trade as a Variant tagged TagTrade.
func NewTradeVariant(tr Trade) Variant {
	return Variant{Tag: TagTrade, Trade: tr}
}

// NewBookL1Variant wraps a BookL1 as a Variant tagged TagBookL1.
func NewBookL1Variant(b BookL1) Variant {
	return Variant{Tag: TagBookL1, Book: b}
}
