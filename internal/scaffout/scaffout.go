// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scaffout emits the group-tagged scaffold sequence output: the
// input scaffold sequences, rewritten with their connected-component
// membership, for every scaffold that ended up in a non-trivial,
// size-bounded group.
package scaffout

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/kortschak/arcs/internal/scaffid"
	"github.com/kortschak/arcs/internal/scaffgraph"
)

// Write reads every record from r and, for each whose scaffold_id maps
// to a vertex in a component of size strictly between 1 and
// maxGrpSize, writes that record to w with its identifier rewritten to
// "<scaffold_id>_group<component_id>" and its comment cleared. Records
// with no usable scaffold_id, or whose scaffold has no surviving vertex
// or lies in an out-of-range component, are dropped.
func Write(r io.Reader, w io.Writer, g *scaffgraph.Graph, maxGrpSize int) error {
	componentOf := make(map[int]int)
	sizeOf := make(map[int]int)
	for _, c := range g.Components() {
		sizeOf[c.ID] = len(c.Scaffolds)
		for _, s := range c.Scaffolds {
			componentOf[s] = c.ID
		}
	}
	return WriteGroups(r, w, componentOf, sizeOf, maxGrpSize)
}

// WriteGroups is the core of Write, parameterized directly over a
// scaffold_id -> component_id map and a component_id -> size map, so it
// can be driven without constructing a full scaffgraph.Graph.
func WriteGroups(r io.Reader, w io.Writer, componentOf, sizeOf map[int]int, maxGrpSize int) error {
	sr := fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA))
	sc := seqio.NewScanner(sr)
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		id := scaffid.FromName(s.Name())
		if id == 0 {
			continue
		}
		comp, ok := componentOf[id]
		if !ok {
			continue
		}
		size := sizeOf[comp]
		if !(size > 1 && size < maxGrpSize) {
			continue
		}
		s.ID = fmt.Sprintf("%d_group%d", id, comp)
		s.Desc = ""
		if _, err := fmt.Fprintf(w, "%60a\n", s); err != nil {
			return err
		}
	}
	return sc.Error()
}
