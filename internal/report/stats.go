package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Dataset names one of the collector's capture files.
type Dataset struct {
	Label string // display name, e.g. "Orderbook Snapshots"
	File  string // filename within the data directory
}

// Statistics reports, for every dataset, its record count by full line
// scan and its on-disk size in mebibytes. The count is independent of
// decoding: every line counts whether or not it would decode. A dataset
// whose file does not exist reports "No data yet" and the remaining
// datasets still report.
func Statistics(w io.Writer, dataDir string, datasets []Dataset) error {
	banner(w, "DATA STATISTICS")

	for _, ds := range datasets {
		path := filepath.Join(dataDir, ds.File)

		info, err := os.Stat(path)
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(w, "\n%s: No data yet\n", ds.Label)
			continue
		}
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}

		lines, err := countLines(path)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "\n%s:\n", ds.Label)
		fmt.Fprintf(w, "  File: %s\n", path)
		fmt.Fprintf(w, "  Messages: %d\n", lines)
		fmt.Fprintf(w, "  Size: %.2f MB\n", float64(info.Size())/1024/1024)
	}
	return nil
}

// countLines scans the whole file counting line terminators. A trailing
// unterminated line counts as one; an empty file counts zero.
func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var (
		count    int
		last     byte = '\n'
		nonEmpty bool
	)
	buf := make([]byte, 256<<10)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			nonEmpty = true
			count += bytes.Count(buf[:n], []byte{'\n'})
			last = buf[n-1]
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read %s: %w", path, err)
		}
	}
	if nonEmpty && last != '\n' {
		count++
	}
	return count, nil
}
