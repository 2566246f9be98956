package main

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/rickgao/polymarket-data/internal/stream"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

func TestRunDatasetFaultDoesNotStopOthers(t *testing.T) {
	var out, logs bytes.Buffer
	logger := newTestLogger(&logs)

	// First dataset fails mid-stream after partial output; the second
	// must still run to completion.
	runDataset(&out, logger, "trades", func() error {
		fmt.Fprintln(&out, "Trade #1")
		return &stream.DecodeError{Path: "data/trades.json", Line: 2, Err: errors.New("invalid character '{'")}
	})
	runDataset(&out, logger, "tick-changes", func() error {
		fmt.Fprintln(&out, "Total tick size changes: 0")
		return nil
	})

	got := out.String()
	if !strings.Contains(got, "Trade #1") {
		t.Errorf("partial output before the fault was lost:\n%s", got)
	}
	if !strings.Contains(got, "Error reading trades:") {
		t.Errorf("output missing fault line:\n%s", got)
	}
	if !strings.Contains(got, "Total tick size changes: 0") {
		t.Errorf("second dataset did not run after the first failed:\n%s", got)
	}

	// The fault line follows the partial output, never replaces it.
	if strings.Index(got, "Trade #1") > strings.Index(got, "Error reading trades:") {
		t.Errorf("fault line printed before the partial output:\n%s", got)
	}

	logged := logs.String()
	if !strings.Contains(logged, "dataset=trades") {
		t.Errorf("structured log missing failed dataset:\n%s", logged)
	}
	if strings.Count(logged, "dataset processing failed") != 1 {
		t.Errorf("want exactly one failure log line, got:\n%s", logged)
	}
}

func TestRunDatasetNotFound(t *testing.T) {
	var out, logs bytes.Buffer
	logger := newTestLogger(&logs)

	runDataset(&out, logger, "snapshots", func() error {
		return &stream.NotFoundError{Path: "data/orderbook_snapshots.json"}
	})

	want := "File not found: data/orderbook_snapshots.json\n"
	if out.String() != want {
		t.Errorf("output = %q, want single line %q", out.String(), want)
	}
	// A missing file is "no data yet", not a failure worth logging.
	if logs.Len() != 0 {
		t.Errorf("missing file produced log output:\n%s", logs.String())
	}
}

func TestRunDatasetSuccessIsSilent(t *testing.T) {
	var out, logs bytes.Buffer
	logger := newTestLogger(&logs)

	runDataset(&out, logger, "stats", func() error { return nil })

	if out.Len() != 0 || logs.Len() != 0 {
		t.Errorf("clean run produced extra output: out=%q logs=%q", out.String(), logs.String())
	}
}
