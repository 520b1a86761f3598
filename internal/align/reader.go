// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadFofName returns the list of alignment file paths named in a
// file-of-filenames stream, one non-empty line per path, in file order.
func ReadFofName(r io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	return names, sc.Err()
}

// Stream presents a concatenation of alignment files named in a
// file-of-filenames as a single continuous line stream, in file order, so
// that pairing state carried by the pair-joiner (C2) is preserved across
// file boundaries exactly as if the files had been concatenated.
type Stream struct {
	names []string
	idx   int

	f  *os.File
	sc *bufio.Scanner

	err error
}

// NewStream returns a Stream over the named alignment files. Each file is
// opened only when the stream reaches it.
func NewStream(names []string) *Stream {
	return &Stream{names: names}
}

// Next advances to the next non-header alignment line across every named
// file, in order, returning false at end of stream or on error (see Err).
func (s *Stream) Next() (line string, ok bool) {
	if s.err != nil {
		return "", false
	}
	for {
		if s.sc == nil {
			if s.idx >= len(s.names) {
				return "", false
			}
			name := s.names[s.idx]
			s.idx++
			f, err := os.Open(name)
			if err != nil {
				s.err = fmt.Errorf("align: could not open %q: %w", name, err)
				return "", false
			}
			s.f = f
			s.sc = bufio.NewScanner(f)
			s.sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
		}
		if s.sc.Scan() {
			line := s.sc.Text()
			if len(line) > 0 && line[0] == '@' {
				continue
			}
			return line, true
		}
		if err := s.sc.Err(); err != nil {
			s.err = fmt.Errorf("align: error reading %q: %w", s.names[s.idx-1], err)
			return "", false
		}
		s.f.Close()
		s.f = nil
		s.sc = nil
	}
}

// Err returns the first error encountered while streaming, if any.
func (s *Stream) Err() error { return s.err }
