package report

import (
	"fmt"
	"io"

	"github.com/rickgao/polymarket-data/internal/model"
	"github.com/rickgao/polymarket-data/internal/stream"
)

// TickChangeReporter renders tick-size change events and counts them.
// Old and new tick sizes are echoed exactly as the producer wrote them.
type TickChangeReporter struct {
	w     io.Writer
	opts  Options
	count int
}

// NewTickChangeReporter creates a reporter writing to w.
func NewTickChangeReporter(w io.Writer, opts Options) *TickChangeReporter {
	return &TickChangeReporter{w: w, opts: opts}
}

// Record prints one change event with its zero-based stream index.
func (r *TickChangeReporter) Record(i int, c model.TickSizeChange) error {
	fmt.Fprintf(r.w, "\nChange #%d\n", i+1)
	fmt.Fprintf(r.w, "Time: %s\n", Timestamp(c.Timestamp))
	fmt.Fprintf(r.w, "Asset ID: %s\n", truncateID(c.AssetID, r.opts.AssetIDWidth))
	fmt.Fprintf(r.w, "Market: %s\n", c.Market)
	fmt.Fprintf(r.w, "Old Tick Size: %v -> New Tick Size: %v\n", c.OldTickSize, c.NewTickSize)

	r.count++
	return nil
}

// Count returns how many change events have been printed.
func (r *TickChangeReporter) Count() int {
	return r.count
}

// Summary prints the terminal change count.
func (r *TickChangeReporter) Summary() {
	fmt.Fprintf(r.w, "\nTotal tick size changes: %d\n", r.count)
}

// TickChanges streams the tick-size change dataset at path and prints
// each record, stopping after limit records when limit > 0.
func TickChanges(w io.Writer, path string, limit int, opts Options) error {
	if err := requireFile(path); err != nil {
		return err
	}

	banner(w, "TICK SIZE CHANGES")

	rep := NewTickChangeReporter(w, opts)
	if err := stream.Each(path, limit, rep.Record); err != nil {
		return err
	}
	rep.Summary()
	return nil
}
