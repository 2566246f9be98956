package model

import (
	"fmt"
	"strconv"
)

// FieldMissingError reports a required field absent from an otherwise
// valid JSON record.
type FieldMissingError struct {
	Field string
}

func (e *FieldMissingError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// BookLevel is a single resting price level. Price and size are the
// exchange's decimal text, never reformatted or re-sorted here.
type BookLevel struct {
	Price string `json:"price"`
	Size  string `json:"size"`
}

// OrderbookSnapshot is a full book state captured by the collector.
// Bids and asks arrive best-price-first by producer convention.
type OrderbookSnapshot struct {
	Timestamp string      `json:"timestamp"`
	AssetID   string      `json:"asset_id"`
	Market    string      `json:"market"`
	Bids      []BookLevel `json:"bids"`
	Asks      []BookLevel `json:"asks"`

	// Optional BTC reference prices for hourly candle markets.
	// Zero or negative means the collector had no reading.
	BTCPriceCurrent    float64 `json:"btc_price_current"`
	BTCPriceHourlyOpen float64 `json:"btc_price_hourly_open"`
	BTCPriceHourly     float64 `json:"btc_price_hourly"` // legacy name for hourly open
}

// Validate checks required-field presence. Empty bids or asks arrays are
// valid (a one-sided book); only an absent key is not.
func (s *OrderbookSnapshot) Validate() error {
	switch {
	case s.Timestamp == "":
		return &FieldMissingError{Field: "timestamp"}
	case s.AssetID == "":
		return &FieldMissingError{Field: "asset_id"}
	case s.Market == "":
		return &FieldMissingError{Field: "market"}
	case s.Bids == nil:
		return &FieldMissingError{Field: "bids"}
	case s.Asks == nil:
		return &FieldMissingError{Field: "asks"}
	}
	return nil
}

// HourlyOpen resolves the hourly open reference price, preferring the
// explicit btc_price_hourly_open over the legacy btc_price_hourly field.
// ok is false when neither carries a positive value.
func (s *OrderbookSnapshot) HourlyOpen() (open float64, ok bool) {
	if s.BTCPriceHourlyOpen > 0 {
		return s.BTCPriceHourlyOpen, true
	}
	if s.BTCPriceHourly > 0 {
		return s.BTCPriceHourly, true
	}
	return 0, false
}

// Trade is one executed trade.
type Trade struct {
	Timestamp  string `json:"timestamp"`
	AssetID    string `json:"asset_id"`
	Side       string `json:"side"` // "BUY" or "SELL"; other values pass through
	Price      string `json:"price"`
	Size       string `json:"size"`
	FeeRateBps string `json:"fee_rate_bps"`
}

// Validate checks required-field presence.
func (t *Trade) Validate() error {
	switch {
	case t.Timestamp == "":
		return &FieldMissingError{Field: "timestamp"}
	case t.AssetID == "":
		return &FieldMissingError{Field: "asset_id"}
	case t.Side == "":
		return &FieldMissingError{Field: "side"}
	case t.Price == "":
		return &FieldMissingError{Field: "price"}
	case t.Size == "":
		return &FieldMissingError{Field: "size"}
	case t.FeeRateBps == "":
		return &FieldMissingError{Field: "fee_rate_bps"}
	}
	return nil
}

// Notional returns price * size, the cash value implied by the trade.
func (t *Trade) Notional() (float64, error) {
	price, err := strconv.ParseFloat(t.Price, 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", t.Price, err)
	}
	size, err := strconv.ParseFloat(t.Size, 64)
	if err != nil {
		return 0, fmt.Errorf("parse size %q: %w", t.Size, err)
	}
	return price * size, nil
}

// FeePercent converts the basis-point fee rate to a percentage.
func (t *Trade) FeePercent() (float64, error) {
	bps, err := strconv.ParseFloat(t.FeeRateBps, 64)
	if err != nil {
		return 0, fmt.Errorf("parse fee_rate_bps %q: %w", t.FeeRateBps, err)
	}
	return bps / 100, nil
}

// TickSizeChange records a market's minimum price increment changing.
// Old and new tick sizes are opaque tokens echoed as the producer wrote
// them, with no numeric interpretation.
type TickSizeChange struct {
	Timestamp   string `json:"timestamp"`
	AssetID     string `json:"asset_id"`
	Market      string `json:"market"`
	OldTickSize any    `json:"old_tick_size"`
	NewTickSize any    `json:"new_tick_size"`
}

// Validate checks required-field presence.
func (c *TickSizeChange) Validate() error {
	switch {
	case c.Timestamp == "":
		return &FieldMissingError{Field: "timestamp"}
	case c.AssetID == "":
		return &FieldMissingError{Field: "asset_id"}
	case c.Market == "":
		return &FieldMissingError{Field: "market"}
	case c.OldTickSize == nil:
		return &FieldMissingError{Field: "old_tick_size"}
	case c.NewTickSize == nil:
		return &FieldMissingError{Field: "new_tick_size"}
	}
	return nil
}
