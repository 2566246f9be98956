package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStatistics(t *testing.T) {
	dir := t.TempDir()

	// Three terminated lines, one of them not even JSON: the line scan
	// counts every line regardless of decodability.
	snapshots := "{\"a\":1}\nnot json at all\n{\"b\":2}\n"
	if err := os.WriteFile(filepath.Join(dir, "orderbook_snapshots.json"), []byte(snapshots), 0o644); err != nil {
		t.Fatalf("write snapshots: %v", err)
	}
	// Trailing unterminated line still counts.
	trades := "{\"a\":1}\n{\"b\":2}"
	if err := os.WriteFile(filepath.Join(dir, "trades.json"), []byte(trades), 0o644); err != nil {
		t.Fatalf("write trades: %v", err)
	}
	// tick_size_changes.json deliberately absent.

	datasets := []Dataset{
		{Label: "Orderbook Snapshots", File: "orderbook_snapshots.json"},
		{Label: "Trades", File: "trades.json"},
		{Label: "Tick Size Changes", File: "tick_size_changes.json"},
	}

	var buf bytes.Buffer
	if err := Statistics(&buf, dir, datasets); err != nil {
		t.Fatalf("Statistics() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"DATA STATISTICS",
		"Orderbook Snapshots:",
		"Messages: 3",
		"Messages: 2",
		"Size: 0.00 MB",
		"Tick Size Changes: No data yet",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestStatisticsAllMissing(t *testing.T) {
	datasets := []Dataset{
		{Label: "Trades", File: "trades.json"},
	}

	var buf bytes.Buffer
	if err := Statistics(&buf, t.TempDir(), datasets); err != nil {
		t.Fatalf("Statistics() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Trades: No data yet") {
		t.Errorf("output missing no-data line:\n%s", buf.String())
	}
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty file", "", 0},
		{"single terminated line", "a\n", 1},
		{"single unterminated line", "a", 1},
		{"blank lines count", "a\n\nb\n", 3},
		{"trailing unterminated", "a\nb\nc", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "f.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write file: %v", err)
			}

			got, err := countLines(path)
			if err != nil {
				t.Fatalf("countLines() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("countLines(%q) = %d, want %d", tt.content, got, tt.want)
			}
		})
	}
}
