// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package barcode holds the per-barcode scaffold tally (C3) and the
// per-barcode alignment multiplicity count (C4) accumulated while
// streaming alignment records.
//
// The barcode index is the largest structure in the pipeline and is
// typically sparse - most barcodes only ever touch a handful of
// scaffolds - so ScaffoldTally is a plain Go map keyed by scaffold_id: a
// map already gives the low per-entry overhead and safe
// iterate-and-erase behaviour the design calls for (see
// internal/sharedbarcode for the one place that erases while ranging),
// and no third-party sparse-map implementation in the reference corpus
// offers a clear win over it for this access pattern.
package barcode

// Counts holds the two reserved tally slots for one (barcode, scaffold)
// pair. Their meaning is regime-dependent (see internal/orient):
//
//   - for a short scaffold, HeadEvidence accumulates a sum of read
//     positions and SumOrTail counts how many positions were summed;
//   - for a long scaffold, HeadEvidence counts reads anchored to the
//     head and SumOrTail counts reads anchored to the tail.
type Counts struct {
	HeadEvidence int
	SumOrTail    int
}

// ScaffoldTally maps scaffold_id to the Counts observed for one barcode.
// Entries are only created for scaffolds that pass the minimum-size
// filter during accumulation.
type ScaffoldTally map[int]*Counts

// entry returns the Counts for scaffold, creating a zeroed entry if this
// is the first observation for that scaffold under this barcode.
func (t ScaffoldTally) entry(scaffold int) *Counts {
	c, ok := t[scaffold]
	if !ok {
		c = &Counts{}
		t[scaffold] = c
	}
	return c
}

// AddHeadEvidence adds delta to the head-evidence slot for scaffold.
func (t ScaffoldTally) AddHeadEvidence(scaffold, delta int) {
	t.entry(scaffold).HeadEvidence += delta
}

// AddSumOrTail adds delta to the sum-or-tail slot for scaffold.
func (t ScaffoldTally) AddSumOrTail(scaffold, delta int) {
	t.entry(scaffold).SumOrTail += delta
}

// Index is the barcode -> per-scaffold tally map (C3). Its zero value is
// not usable; construct one with NewIndex.
type Index struct {
	m map[string]ScaffoldTally
}

// NewIndex returns an empty barcode index.
func NewIndex() *Index {
	return &Index{m: make(map[string]ScaffoldTally)}
}

// Tally returns the ScaffoldTally for barcode, creating an empty one if
// this is the first observation of that barcode.
func (idx *Index) Tally(barcode string) ScaffoldTally {
	t, ok := idx.m[barcode]
	if !ok {
		t = make(ScaffoldTally)
		idx.m[barcode] = t
	}
	return t
}

// Len returns the number of distinct barcodes indexed.
func (idx *Index) Len() int { return len(idx.m) }

// Range calls fn for every (barcode, tally) pair in the index. The order
// of iteration is unspecified, matching Go map iteration.
func (idx *Index) Range(fn func(barcode string, tally ScaffoldTally)) {
	for b, t := range idx.m {
		fn(b, t)
	}
}

// Multiplicity is the barcode -> alignment record count map (C4): how
// many alignment records, across every input source, bore a given
// barcode, independent of whether any pair was ever accepted for it.
type Multiplicity map[string]int

// NewMultiplicity returns an empty multiplicity map.
func NewMultiplicity() Multiplicity {
	return make(Multiplicity)
}

// Inc increments the count for barcode.
func (m Multiplicity) Inc(barcode string) {
	m[barcode]++
}
