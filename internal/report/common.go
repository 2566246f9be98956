package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rickgao/polymarket-data/internal/stream"
)

const bannerWidth = 70

// Options controls display shaping shared by the per-record formatters.
type Options struct {
	BookDepth    int // best levels shown per book side
	AssetIDWidth int // leading characters of an asset ID shown before truncation
}

// DefaultOptions matches the collector's capture conventions: top 5 book
// levels, 20-character asset ID prefix.
func DefaultOptions() Options {
	return Options{BookDepth: 5, AssetIDWidth: 20}
}

func banner(w io.Writer, title string) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", rule, title, rule)
}

// truncateID shortens an asset ID for display. IDs within width render
// unchanged; longer ones keep their first width characters plus "...".
// Counted in runes so a multibyte character is never split.
func truncateID(id string, width int) string {
	if width <= 0 {
		return id
	}
	runes := []rune(id)
	if len(runes) <= width {
		return id
	}
	return string(runes[:width]) + "..."
}

// requireFile maps an absent dataset file to *stream.NotFoundError before
// any banner is printed, so a missing file reports as a single line.
func requireFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &stream.NotFoundError{Path: path}
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	return nil
}
