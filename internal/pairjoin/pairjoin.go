// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pairjoin streams name-sorted alignment records and distills
// each accepted read pair into one (barcode, scaffold, mid-position)
// observation, applied to the barcode index (C3) and barcode
// multiplicity map (C4). This is C2, the alignment pair-joiner.
package pairjoin

import (
	"fmt"
	"strings"

	"github.com/kortschak/arcs/internal/align"
	"github.com/kortschak/arcs/internal/arcsconfig"
	"github.com/kortschak/arcs/internal/barcode"
	"github.com/kortschak/arcs/internal/lengths"
)

// lineSource is the minimal interface a continuous alignment line stream
// must satisfy; *align.Stream implements it.
type lineSource interface {
	Next() (line string, ok bool)
	Err() error
}

// Joiner runs the pair-joining state machine across one or more
// alignment sources, writing accepted observations into a barcode
// index and multiplicity map.
type Joiner struct {
	Params  arcsconfig.Params
	Lengths lengths.Map
	Index   *barcode.Index
	Mult    barcode.Multiplicity

	// state carried across records, and across file boundaries within a
	// single Run call, exactly as the original tool carries it across
	// BAM files named in a file-of-filenames.
	ct       int
	prevName string
	prevSI   float64
	prevRec  align.Record
	prevRef  int
	prevPos  int

	pendingValid   bool
	pendingBarcode string
	pendingRef     int
	pendingPos     int
}

// NewJoiner returns a Joiner ready to stream alignment records into idx
// and mult, using sizes to gate the minimum-size filter and decide the
// short/long regime for each committed observation.
func NewJoiner(p arcsconfig.Params, sizes lengths.Map, idx *barcode.Index, mult barcode.Multiplicity) *Joiner {
	return &Joiner{
		Params:  p,
		Lengths: sizes,
		Index:   idx,
		Mult:    mult,
		ct:      1,
	}
}

// Run streams every non-header record from src through the pair-joining
// state machine. It returns an error if the stream is not sorted by read
// name at the point two mates of a pair are expected to be adjacent, or
// if src itself fails.
func (j *Joiner) Run(src lineSource) error {
	for {
		line, ok := src.Next()
		if !ok {
			break
		}
		rec, ok := align.Parse(line)
		if !ok {
			continue
		}

		bc := extractBarcode(rec.Name, j.Params.IndexLen)
		if bc != "" {
			j.Mult.Inc(bc)
		}
		si := rec.SequenceIdentity()

		if j.ct >= 3 {
			j.ct = 1
		}
		switch j.ct {
		case 1:
			if rec.Name != j.prevName {
				j.prevName = rec.Name
				j.prevSI = si
				j.prevRec = rec
				j.prevRef = rec.Ref
				j.prevPos = rec.Pos

				if j.pendingValid {
					j.commit()
					j.pendingValid = false
				}
			} else {
				// Three or more records for the same read name: drop
				// any pending observation and restart pairing from the
				// next record.
				j.pendingValid = false
				j.ct = 0
			}
		case 2:
			if rec.Name != j.prevName {
				return fmt.Errorf("pairjoin: input not name-sorted: prev read %q, curr read %q", j.prevName, rec.Name)
			}
			if len(rec.Seq) != 0 && rec.Accepted() && j.prevRec.Accepted() &&
				si >= j.Params.SeqID && j.prevSI >= j.Params.SeqID &&
				j.prevRef == rec.Ref && rec.Ref != 0 && bc != "" {
				j.pendingValid = true
				j.pendingBarcode = bc
				j.pendingRef = rec.Ref
				j.pendingPos = (j.prevPos + rec.Pos) / 2
			}
		}
		j.ct++
	}
	if err := src.Err(); err != nil {
		return err
	}
	// A pending observation at end of stream is discarded, not committed.
	return nil
}

// commit applies the staged pending observation to the barcode index,
// per the short/long regime described on barcode.Counts.
func (j *Joiner) commit() {
	size, ok := j.Lengths[j.pendingRef]
	if !ok || size < j.Params.MinSize {
		return
	}

	tally := j.Index.Tally(j.pendingBarcode)
	e := j.Params.EndLength
	if size <= 2*e {
		tally.AddHeadEvidence(j.pendingRef, j.pendingPos)
		tally.AddSumOrTail(j.pendingRef, 1)
		return
	}
	switch {
	case j.pendingPos <= e:
		tally.AddHeadEvidence(j.pendingRef, 1)
	case j.pendingPos >= size-e:
		tally.AddSumOrTail(j.pendingRef, 1)
	}
}

// extractBarcode returns the upper-cased barcode carried by a read name,
// or "" if the suffix after the read name's first underscore is not
// exactly indexLen characters drawn from {A,T,G,C}.
func extractBarcode(name string, indexLen int) string {
	i := strings.IndexByte(name, '_')
	if i < 0 {
		return ""
	}
	suffix := strings.ToUpper(name[i+1:])
	if len(suffix) != indexLen {
		return ""
	}
	for i := 0; i < len(suffix); i++ {
		switch suffix[i] {
		case 'A', 'T', 'G', 'C':
		default:
			return ""
		}
	}
	return suffix
}
