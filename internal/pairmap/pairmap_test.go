// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pairmap

import (
	"testing"

	"github.com/kortschak/arcs/internal/arcsconfig"
	"github.com/kortschak/arcs/internal/barcode"
	"github.com/kortschak/arcs/internal/lengths"
	"github.com/kortschak/arcs/internal/sharedbarcode"
)

func params() arcsconfig.Params {
	p := arcsconfig.Default()
	p.EndLength = 1000
	p.MinReads = 2
	p.ErrorPercent = 0
	p.MinMult = 1
	p.MaxMult = 2000
	return p
}

func TestAccumulateHeadTail(t *testing.T) {
	idx := barcode.NewIndex()
	tally := idx.Tally("bc1")
	tally.AddHeadEvidence(1, 10) // scaffold 1: 10 reads anchored head
	tally.AddHeadEvidence(2, 0)
	tally.AddSumOrTail(2, 10) // scaffold 2: 10 reads anchored tail

	mult := barcode.NewMultiplicity()
	for i := 0; i < 1500; i++ {
		mult.Inc("bc1")
	}

	sizes := lengths.Map{1: 10000, 2: 10000}

	m := Accumulate(params(), idx, mult, sizes)
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}

	var gotA, gotB int
	var gotCounts Counts
	m.Do(func(a, b int, counts Counts) {
		gotA, gotB, gotCounts = a, b, counts
	})
	if gotA != 1 || gotB != 2 {
		t.Errorf("pair = (%d, %d), want (1, 2)", gotA, gotB)
	}
	// One barcode contributes one link, however many reads it has.
	if gotCounts[HT] != 1 {
		t.Errorf("counts = %+v, want HT=1", gotCounts)
	}
}

func TestAccumulateSkipsOutOfMultiplicityRange(t *testing.T) {
	idx := barcode.NewIndex()
	tally := idx.Tally("bc1")
	tally.AddHeadEvidence(1, 10)
	tally.AddSumOrTail(2, 10)

	mult := barcode.NewMultiplicity()
	mult.Inc("bc1") // multiplicity 1, below the default min_mult of 1000

	sizes := lengths.Map{1: 10000, 2: 10000}

	p := arcsconfig.Default()
	p.EndLength = 1000
	p.MinReads = 2
	m := Accumulate(p, idx, mult, sizes)
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0 for out-of-range multiplicity", m.Len())
	}
}

func TestAccumulateAmbiguousScaffoldContributesNoLink(t *testing.T) {
	idx := barcode.NewIndex()
	tally := idx.Tally("bc1")
	tally.AddHeadEvidence(1, 10)
	// Scaffold 2 anchored to both ends: ambiguous, so orient.Resolve
	// returns invalid for it, and no pair should be recorded.
	tally.AddHeadEvidence(2, 10)
	tally.AddSumOrTail(2, 10)

	mult := barcode.NewMultiplicity()
	for i := 0; i < 1500; i++ {
		mult.Inc("bc1")
	}
	sizes := lengths.Map{1: 10000, 2: 10000}

	m := Accumulate(params(), idx, mult, sizes)
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0 when one side is ambiguous", m.Len())
	}
}

func TestAccumulateSegmentsReinforcesExistingBin(t *testing.T) {
	idx := barcode.NewIndex()
	tally := idx.Tally("bc1")
	tally.AddHeadEvidence(1, 10)
	tally.AddSumOrTail(2, 10)

	mult := barcode.NewMultiplicity()
	for i := 0; i < 1500; i++ {
		mult.Inc("bc1")
	}
	sizes := lengths.Map{1: 10000, 2: 10000}

	// Segments 11 and 12 belong to scaffolds 1 and 2 respectively, and
	// three barcodes were observed at that finer resolution on both.
	segments := sharedbarcode.SegmentToBarcode{
		11: {"bcA", "bcB", "bcC"},
		12: {"bcA", "bcB", "bcC"},
	}
	segmentOf := map[int]int{11: 1, 12: 2}

	m := AccumulateSegments(params(), idx, mult, sizes, segments, segmentOf, 2)
	counts, ok := m.Get(1, 2)
	if !ok {
		t.Fatalf("Get(1, 2) not found")
	}
	if counts[HT] != 4 {
		t.Errorf("counts[HT] = %d, want 4 (1 whole-scaffold link from bc1 + 3 segment-level)", counts[HT])
	}
}

func TestAccumulateSegmentsIgnoresUnlinkedScaffoldPair(t *testing.T) {
	idx := barcode.NewIndex()
	mult := barcode.NewMultiplicity()
	sizes := lengths.Map{1: 10000, 2: 10000}

	segments := sharedbarcode.SegmentToBarcode{
		11: {"bcA", "bcB"},
		12: {"bcA", "bcB"},
	}
	segmentOf := map[int]int{11: 1, 12: 2}

	m := AccumulateSegments(params(), idx, mult, sizes, segments, segmentOf, 2)
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0: no whole-scaffold link exists to reinforce", m.Len())
	}
}

func TestResolveMaxAndArgmax(t *testing.T) {
	tests := []struct {
		c       Counts
		wWeight int
		wOrient int
	}{
		{Counts{3, 2, 1, 0}, 3, HH},
		{Counts{0, 5, 5, 0}, 5, HT}, // tie broken by lowest index
		{Counts{0, 0, 0, 9}, 9, TT},
	}
	for _, test := range tests {
		w, o := Resolve(test.c)
		if w != test.wWeight || o != test.wOrient {
			t.Errorf("Resolve(%v) = (%d, %d), want (%d, %d)", test.c, w, o, test.wWeight, test.wOrient)
		}
	}
}
