package stream

import "fmt"

// NotFoundError reports that a dataset file does not exist. Callers treat
// it as "no data yet", not as a failure of the whole invocation.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return "file not found: " + e.Path
}

// DecodeError reports a malformed record: either a line that is not valid
// JSON or a valid object missing a required field. Line numbers are
// 1-based and count physical lines, blank ones included.
type DecodeError struct {
	Path string
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s line %d: %v", e.Path, e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
