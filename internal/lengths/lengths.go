// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lengths builds the scaffold_id -> length map (C1) used to decide
// head/tail evidence thresholds and minimum-size filtering.
package lengths

import (
	"fmt"
	"io"
	"log"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/kortschak/arcs/internal/scaffid"
)

// Map is a scaffold_id -> length in base pairs index. It is built once and
// is read-only thereafter.
type Map map[int]int

// Load reads every record from r (in FASTA format) and returns the scaffold
// length map built from it. Records whose name carries no digits (scaffold
// identifier 0) are skipped. If verbose is true, progress and duplicate-id
// events are logged to l.
func Load(r io.Reader, verbose bool, l *log.Logger) (Map, error) {
	sr := fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA))
	sc := seqio.NewScanner(sr)

	m := make(Map)
	var count int
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		count++

		id := scaffid.FromName(s.Name())
		if id == 0 {
			continue
		}
		size := s.Len()
		if verbose {
			if _, dup := m[id]; dup {
				l.Printf("duplicate scaffold id %d (name %q); last writer wins", id, s.Name())
			}
		}
		m[id] = size
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("lengths: %w", err)
	}
	if verbose {
		l.Printf("saw %d sequences", count)
	}
	return m, nil
}
