// Package sink provides the flat-file destinations fixture streams are
// written to: one file per stream, one comma-separated record per line.
package sink

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LineSink writes comma-separated records to a file through a buffered
// writer. It is not safe for concurrent use; generation is strictly
// sequential and each stream owns its sink for the duration of that
// stream.
type LineSink struct {
	path   string
	f      *os.File
	w      *bufio.Writer
	closed bool
}

// Open creates or truncates the file at path.
func Open(path string) (*LineSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open sink %s: %w", path, err)
	}
	return &LineSink{path: path, f: f, w: bufio.NewWriter(f)}, nil
}

// WriteRecord writes one record: the fields joined with commas, followed
// by a newline. Fields are written verbatim; callers guarantee they
// contain no commas, so no escaping is performed. An empty trailing field
// produces a trailing comma.
func (s *LineSink) WriteRecord(fields ...string) error {
	if s.closed {
		return fmt.Errorf("write to closed sink %s", s.path)
	}
	if _, err := s.w.WriteString(strings.Join(fields, ",")); err != nil {
		return fmt.Errorf("write sink %s: %w", s.path, err)
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("write sink %s: %w", s.path, err)
	}
	return nil
}

// Close flushes buffered data and closes the file. Closing an already
// closed sink is a no-op.
func (s *LineSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.w.Flush(); err != nil {
		s.f.Close()
		return fmt.Errorf("flush sink %s: %w", s.path, err)
	}
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("close sink %s: %w", s.path, err)
	}
	return nil
}

// Path returns the file path the sink writes to.
func (s *LineSink) Path() string {
	return s.path
}
