// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pairmap enumerates, per barcode, the scaffold pairs implicated
// by that barcode's per-scaffold tallies and bins each into an
// orientation-typed link count (C6).
package pairmap

import (
	"sort"

	"github.com/biogo/store/llrb"

	"github.com/kortschak/arcs/internal/arcsconfig"
	"github.com/kortschak/arcs/internal/barcode"
	"github.com/kortschak/arcs/internal/lengths"
	"github.com/kortschak/arcs/internal/orient"
	"github.com/kortschak/arcs/internal/sharedbarcode"
)

// Orientation category indices, matching the HH/HT/TH/TT bin order used
// throughout the pair-accumulation and graph stages.
const (
	HH = iota
	HT
	TH
	TT
)

// Counts is the [HH, HT, TH, TT] 4-tuple accumulated for one scaffold
// pair.
type Counts [4]int

// key orders an unordered scaffold pair (a, b) with a < b, and
// implements llrb.Comparable so a Map iterates in a deterministic,
// sorted order - useful for reproducible graph construction and golden
// output comparisons.
type key struct {
	a, b int
}

func (k key) Compare(c llrb.Comparable) int {
	o := c.(key)
	if k.a != o.a {
		return k.a - o.a
	}
	return k.b - o.b
}

// entry pairs a key with its Counts so the llrb tree can recover both
// on iteration.
type entry struct {
	key
	counts *Counts
}

func (e entry) Compare(c llrb.Comparable) int {
	return e.key.Compare(c.(entry).key)
}

// Map is the pair map (C6): unordered scaffold pair (a,b), a<b, to its
// orientation-typed link counts.
type Map struct {
	tree llrb.Tree
	n    int
}

// New returns an empty pair map.
func New() *Map {
	return &Map{}
}

// bump returns the Counts for (a,b) with a<b, creating a zeroed entry
// if this is the first link recorded for that pair.
func (m *Map) bump(a, b int) *Counts {
	if a > b {
		a, b = b, a
	}
	k := key{a, b}
	if found := m.tree.Get(entry{key: k}); found != nil {
		return found.(entry).counts
	}
	c := &Counts{}
	m.tree.Insert(entry{key: k, counts: c})
	m.n++
	return c
}

// Len returns the number of distinct scaffold pairs recorded.
func (m *Map) Len() int { return m.n }

// Get returns the Counts recorded for the unordered scaffold pair
// (a, b), or false if no barcode has ever linked them.
func (m *Map) Get(a, b int) (Counts, bool) {
	if a > b {
		a, b = b, a
	}
	found := m.tree.Get(entry{key: key{a, b}})
	if found == nil {
		return Counts{}, false
	}
	return *found.(entry).counts, true
}

// Add increments the orientation bin (HH, HT, TH or TT) for the
// unordered scaffold pair (a, b), creating the pair's entry if needed.
func (m *Map) Add(a, b, bin int) {
	m.bump(a, b)[bin]++
}

// Do calls fn for every (a, b, counts) triple in ascending (a, b) order.
func (m *Map) Do(fn func(a, b int, counts Counts)) {
	m.tree.Do(func(c llrb.Comparable) bool {
		e := c.(entry)
		fn(e.a, e.b, *e.counts)
		return false
	})
}

// Accumulate builds a pair map from a barcode index (C3), a barcode
// multiplicity map (C4), and a scaffold length index (C1), resolving
// orientations via C5.
//
// Only barcodes whose multiplicity m satisfies minMult <= m <= maxMult
// are considered. For every unordered pair of a barcode's tally keys,
// both sides must resolve valid via orient.Resolve; the pair's entry is
// then bumped in the bin selected by the two head/tail verdicts.
func Accumulate(p arcsconfig.Params, idx *barcode.Index, mult barcode.Multiplicity, sizes lengths.Map) *Map {
	m := New()
	idx.Range(func(bc string, tally barcode.ScaffoldTally) {
		n := mult[bc]
		if n < p.MinMult || n > p.MaxMult {
			return
		}

		scaffolds := make([]int, 0, len(tally))
		for s := range tally {
			scaffolds = append(scaffolds, s)
		}
		sort.Ints(scaffolds)

		for i, o := range scaffolds {
			oValid, oHead := orient.Resolve(p, tally, o, sizes[o])
			if !oValid {
				continue
			}
			for _, q := range scaffolds[i+1:] {
				pValid, pHead := orient.Resolve(p, tally, q, sizes[q])
				if !pValid {
					continue
				}
				m.Add(o, q, bin(oHead, pHead))
			}
		}
	})
	return m
}

// AccumulateSegments extends Accumulate with segment-resolved evidence,
// for callers that can observe barcodes at a resolution finer than a
// whole scaffold (a scaffold subdivided into windows, say). segments
// gives, for each segment, the barcodes seen aligning to it; segmentOf
// maps a segment back to the scaffold_id it belongs to.
//
// Segment pairs that share at least minShared barcodes (via
// internal/sharedbarcode's auxiliary contig-to-contig map) reinforce the
// orientation bin that whole-scaffold accumulation already resolved as
// the winner for their owning scaffold pair: the shared count is added
// to that bin. A segment pair whose owning scaffolds have no
// whole-scaffold link yet, or that maps to a single scaffold, is
// ignored - segment-level agreement corroborates evidence C5 already
// trusts, it never manufactures an orientation on its own.
func AccumulateSegments(p arcsconfig.Params, idx *barcode.Index, mult barcode.Multiplicity, sizes lengths.Map, segments sharedbarcode.SegmentToBarcode, segmentOf map[int]int, minShared int) *Map {
	m := Accumulate(p, idx, mult, sizes)

	shared := sharedbarcode.Build(segments, minShared)
	for s1, row := range shared {
		a, ok := segmentOf[s1]
		if !ok {
			continue
		}
		for s2, count := range row {
			if s2 < s1 {
				// Build's map is symmetric; take each segment pair once.
				continue
			}
			b, ok := segmentOf[s2]
			if !ok || a == b {
				continue
			}
			counts, ok := m.Get(a, b)
			if !ok {
				continue
			}
			_, orientation := Resolve(counts)
			m.bump(a, b)[orientation] += count
		}
	}
	return m
}

// bin maps a pair of head/tail verdicts to its orientation category:
// (head,head)->HH, (head,tail)->HT, (tail,head)->TH, (tail,tail)->TT.
func bin(oHead, pHead bool) int {
	switch {
	case oHead && pHead:
		return HH
	case oHead && !pHead:
		return HT
	case !oHead && pHead:
		return TH
	default:
		return TT
	}
}

// Resolve returns the (weight, orientation) for a Counts 4-tuple: the
// maximum entry and its index, ties broken by lowest index.
func Resolve(c Counts) (weight, orientation int) {
	weight, orientation = c[0], 0
	for i := 1; i < len(c); i++ {
		if c[i] > weight {
			weight, orientation = c[i], i
		}
	}
	return weight, orientation
}
