package scan

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/klauspost/compress/gzip"
)

// gzipMagic is the two-byte header every gzip stream starts with.
var gzipMagic = []byte{0x1f, 0x8b}

// ParseFile computes the session duration a single log file records: the
// seconds between its first and last timestamped line. Compressed content
// is detected by sniffing the stream, not by file name, so a plain-text
// latest.log and a rotated .log.gz go through the same path. Returns a
// wrapped I/O error if the file cannot be opened or decompressed, and
// ErrNoTimestamp if no line carries a timestamp prefix.
//
// A file with exactly one timestamped line has duration zero. A log that
// spans midnight yields a negative duration; timestamps carry no date, so
// the subtraction is deliberately not corrected.
func ParseFile(path string) (int64, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r, err := decompressed(f)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}

	var start int64
	for {
		ts, err := scanLine(r)
		if err == nil {
			start = ts
			break
		}
		if err != errNoMatch {
			// Read errors, including a truncated gzip stream, end the
			// scan the same way EOF does.
			return 0, fmt.Errorf("%s: %w", path, ErrNoTimestamp)
		}
	}

	// Failed lines between the first and last timestamp are skipped,
	// not fatal.
	end := start
	for {
		ts, err := scanLine(r)
		if err == nil {
			end = ts
		} else if err != errNoMatch {
			break
		}
	}

	return end - start, nil
}

// decompressed wraps f in a gzip reader when its content is a gzip
// stream, otherwise returns a plain buffered reader over it. Files too
// short to sniff are treated as plain text.
func decompressed(f *os.File) (*bufio.Reader, error) {
	br := bufio.NewReader(f)
	head, err := br.Peek(len(gzipMagic))
	if err != nil || !bytes.Equal(head, gzipMagic) {
		return br, nil
	}
	gz, err := gzip.NewReader(br)
	if err != nil {
		return nil, err
	}
	return bufio.NewReader(gz), nil
}
