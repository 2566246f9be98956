package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rickgao/polymarket-data/internal/model"
	"github.com/rickgao/polymarket-data/internal/stream"
)

// formatPercent renders a fee percentage with minimal digits, keeping a
// trailing ".0" on whole numbers so 100 bps reads "1.0%", not "1%".
func formatPercent(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// TradeReporter renders trades and accumulates the running aggregate:
// record count, total notional volume, and per-side tallies. Side labels
// are taken verbatim from the records; any label grows the map.
type TradeReporter struct {
	w    io.Writer
	opts Options

	count       int
	totalVolume float64
	sideCounts  map[string]int
}

// NewTradeReporter creates a reporter writing to w.
func NewTradeReporter(w io.Writer, opts Options) *TradeReporter {
	return &TradeReporter{
		w:          w,
		opts:       opts,
		sideCounts: make(map[string]int),
	}
}

// Record prints one trade with its zero-based stream index and folds it
// into the aggregate.
func (r *TradeReporter) Record(i int, t model.Trade) error {
	notional, err := t.Notional()
	if err != nil {
		return fmt.Errorf("trade #%d: %w", i+1, err)
	}
	feePct, err := t.FeePercent()
	if err != nil {
		return fmt.Errorf("trade #%d: %w", i+1, err)
	}

	fmt.Fprintf(r.w, "\nTrade #%d\n", i+1)
	fmt.Fprintf(r.w, "Time: %s\n", Timestamp(t.Timestamp))
	fmt.Fprintf(r.w, "Asset ID: %s\n", truncateID(t.AssetID, r.opts.AssetIDWidth))
	fmt.Fprintf(r.w, "Side: %4s  Price: %6s  Size: %s\n", t.Side, t.Price, t.Size)
	fmt.Fprintf(r.w, "Fee Rate: %s bps (%s%%)\n", t.FeeRateBps, formatPercent(feePct))
	fmt.Fprintf(r.w, "Notional Value: $%.2f\n", notional)

	r.count++
	r.totalVolume += notional
	r.sideCounts[t.Side]++
	return nil
}

// Count returns the total trades aggregated so far.
func (r *TradeReporter) Count() int {
	return r.count
}

// TotalVolume returns the summed notional value of all trades seen.
func (r *TradeReporter) TotalVolume() float64 {
	return r.totalVolume
}

// SideCount returns the tally for a side label, 0 for labels never seen.
func (r *TradeReporter) SideCount(side string) int {
	return r.sideCounts[side]
}

// Summary prints the terminal aggregate: trade count, total volume, and
// the BUY and SELL tallies.
func (r *TradeReporter) Summary() {
	fmt.Fprintf(r.w, "\n%s\n", strings.Repeat("=", bannerWidth))
	fmt.Fprintf(r.w, "Total trades: %d\n", r.count)
	fmt.Fprintf(r.w, "Total volume: $%.2f\n", r.totalVolume)
	if r.count > 0 {
		fmt.Fprintf(r.w, "Buy trades: %d\n", r.sideCounts["BUY"])
		fmt.Fprintf(r.w, "Sell trades: %d\n", r.sideCounts["SELL"])
	}
}

// Trades streams the trade dataset at path, prints each record, and ends
// with the aggregate summary, stopping after limit records when limit > 0.
func Trades(w io.Writer, path string, limit int, opts Options) error {
	if err := requireFile(path); err != nil {
		return err
	}

	banner(w, "TRADES")

	rep := NewTradeReporter(w, opts)
	if err := stream.Each(path, limit, rep.Record); err != nil {
		return err
	}
	rep.Summary()
	return nil
}
