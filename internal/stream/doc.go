// Package stream reads the collector's append-only NDJSON files one
// record at a time.
//
// Files are consumed lazily and in physical order: a Reader yields raw
// non-blank lines without buffering the file, and the generic Each driver
// decodes each line into a typed record and hands it to a callback. An
// optional cap stops reading once enough records have been yielded, which
// bounds cost on very large capture files.
//
// The package owns the error taxonomy for a single pass: NotFoundError for
// an absent file and DecodeError for a line that is not valid JSON or is
// missing a required field. A fault aborts only the remaining lines of the
// file it occurred in; records already delivered stand.
package stream
