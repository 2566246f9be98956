package stream

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	initialLineBuffer = 64 << 10
	// Snapshot lines carry full books with 70+ digit asset IDs; allow
	// lines well past bufio's default token size.
	maxLineBytes = 16 << 20
)

// Reader yields raw non-blank lines from an NDJSON file in physical order.
type Reader struct {
	path    string
	f       *os.File
	scanner *bufio.Scanner
	limit   int
	yielded int
	line    int
}

// Open opens path for a single forward pass. limit > 0 caps the number of
// lines Next will yield; limit <= 0 means unlimited.
func Open(path string, limit int) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, initialLineBuffer), maxLineBytes)
	return &Reader{path: path, f: f, scanner: sc, limit: limit}, nil
}

// Next returns the next non-blank line, or io.EOF at end of file and once
// the record cap is reached. Past the cap no further bytes are read.
func (r *Reader) Next() ([]byte, error) {
	if r.limit > 0 && r.yielded >= r.limit {
		return nil, io.EOF
	}
	for r.scanner.Scan() {
		r.line++
		line := r.scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		r.yielded++
		return line, nil
	}
	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	return nil, io.EOF
}

// Line returns the 1-based physical line number of the line Next last
// returned.
func (r *Reader) Line() int {
	return r.line
}

// Close releases the file handle.
func (r *Reader) Close() error {
	return r.f.Close()
}

// validator is implemented by record types that check required fields.
type validator interface {
	Validate() error
}

// Each streams path, decodes every non-blank line into a T and passes it
// to fn along with its zero-based record index, stopping after limit
// records when limit > 0. The file handle is released on every exit path.
// A malformed line surfaces as *DecodeError; records already handed to fn
// before the fault stand.
func Each[T any](path string, limit int, fn func(i int, rec T) error) error {
	r, err := Open(path, limit)
	if err != nil {
		return err
	}
	defer r.Close()

	for i := 0; ; i++ {
		line, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		var rec T
		dec := json.NewDecoder(bytes.NewReader(line))
		dec.UseNumber()
		if err := dec.Decode(&rec); err != nil {
			return &DecodeError{Path: path, Line: r.Line(), Err: err}
		}
		if v, ok := any(&rec).(validator); ok {
			if err := v.Validate(); err != nil {
				return &DecodeError{Path: path, Line: r.Line(), Err: err}
			}
		}
		if err := fn(i, rec); err != nil {
			return err
		}
	}
}
