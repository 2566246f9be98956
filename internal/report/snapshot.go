package report

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rickgao/polymarket-data/internal/model"
	"github.com/rickgao/polymarket-data/internal/stream"
)

// SnapshotReporter renders orderbook snapshots one record at a time and
// counts how many it has shown.
type SnapshotReporter struct {
	w     io.Writer
	opts  Options
	pr    *message.Printer
	count int
}

// NewSnapshotReporter creates a reporter writing to w.
func NewSnapshotReporter(w io.Writer, opts Options) *SnapshotReporter {
	return &SnapshotReporter{
		w:    w,
		opts: opts,
		pr:   message.NewPrinter(language.English),
	}
}

// Record prints one snapshot with its zero-based stream index.
func (r *SnapshotReporter) Record(i int, snap model.OrderbookSnapshot) error {
	fmt.Fprintf(r.w, "\nSnapshot #%d\n", i+1)
	fmt.Fprintf(r.w, "Time: %s\n", Timestamp(snap.Timestamp))
	fmt.Fprintf(r.w, "Asset ID: %s\n", truncateID(snap.AssetID, r.opts.AssetIDWidth))
	fmt.Fprintf(r.w, "Market: %s\n", snap.Market)

	r.printBTC(snap)
	r.printSide("Bids", snap.Bids)
	r.printSide("Asks", snap.Asks)

	r.count++
	return nil
}

// printBTC writes the BTC candle commentary when reference prices are
// available. A positive current with a positive hourly open gets the full
// change line; a positive current alone is shown bare; otherwise nothing.
func (r *SnapshotReporter) printBTC(snap model.OrderbookSnapshot) {
	current := snap.BTCPriceCurrent
	if current <= 0 {
		return
	}

	open, ok := snap.HourlyOpen()
	if !ok {
		r.pr.Fprintf(r.w, "BTC Price: $%.2f\n", current)
		return
	}

	// Equal open and current counts as up.
	movement := "UP"
	if current < open {
		movement = "DOWN"
	}
	change := current - open
	changePct := change / open * 100
	// Only the price levels get digit grouping; the change annotation
	// stays plain.
	r.pr.Fprintf(r.w, "BTC 1H Candle: Open=$%.2f Current=$%.2f ", open, current)
	fmt.Fprintf(r.w, "(%+.2f / %+.2f%%) %s\n", change, changePct, movement)
}

// printSide lists up to BookDepth levels of one book side. An empty side
// is omitted without suppressing the other.
func (r *SnapshotReporter) printSide(label string, levels []model.BookLevel) {
	if len(levels) == 0 {
		return
	}
	fmt.Fprintf(r.w, "\nTop %d %s:\n", r.opts.BookDepth, label)
	for i, lvl := range levels {
		if i >= r.opts.BookDepth {
			break
		}
		fmt.Fprintf(r.w, "  %d. Price: %6s  Size: %s\n", i+1, lvl.Price, lvl.Size)
	}
}

// Count returns how many snapshots have been printed.
func (r *SnapshotReporter) Count() int {
	return r.count
}

// Summary prints the terminal snapshot count.
func (r *SnapshotReporter) Summary() {
	fmt.Fprintf(r.w, "\nTotal snapshots: %d\n", r.count)
}

// Snapshots streams the snapshot dataset at path and prints each record,
// stopping after limit records when limit > 0.
func Snapshots(w io.Writer, path string, limit int, opts Options) error {
	if err := requireFile(path); err != nil {
		return err
	}

	banner(w, "ORDERBOOK SNAPSHOTS")

	rep := NewSnapshotReporter(w, opts)
	if err := stream.Each(path, limit, rep.Record); err != nil {
		return err
	}
	rep.Summary()
	return nil
}
