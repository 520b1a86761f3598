// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sharedbarcode builds the auxiliary contig -> contig
// shared-barcode count map used when barcodes carry segment-level
// resolution finer than a whole scaffold (e.g. a scaffold split into
// windows for denser linkage evidence). It is a read-only derivative
// consumed by pairmap.AccumulateSegments, the segment-resolved entry
// point of the pair accumulator; pairmap.Accumulate does not use it.
package sharedbarcode

// SegmentToBarcode is the input: for each segment, the barcodes
// observed aligning to it. A segment is typically a scaffold_id, or a
// scaffold_id paired with a window index when segment-level resolution
// is in play.
type SegmentToBarcode map[int][]string

// ContigToCount maps a contig to the number of barcodes it shares with
// some other contig.
type ContigToCount map[int]int

// Map is contig -> (contig -> shared-barcode count).
type Map map[int]ContigToCount

// invert builds barcode -> segments from segmentToBarcode.
func invert(segmentToBarcode SegmentToBarcode) map[string][]int {
	inverted := make(map[string][]int)
	for segment, barcodes := range segmentToBarcode {
		for _, bc := range barcodes {
			inverted[bc] = append(inverted[bc], segment)
		}
	}
	return inverted
}

// Build tallies, for every pair of distinct segments that share a
// barcode, the number of barcodes they share, then removes contig pairs
// whose shared count falls below minSharedBarcodes.
//
// The removal walks each inner ContigToCount and deletes entries below
// threshold while ranging over the map - legal and well-defined in Go,
// unlike the google::sparse_hash_map this design is grounded on, which
// required a separate erase-then-compact dance (Resize(0)) to actually
// reclaim the deleted buckets. Go's map has no equivalent shrink-to-fit
// call, so there is no compaction step to perform here; deletion alone
// leaves the map in its final, minimal form for iteration purposes.
func Build(segmentToBarcode SegmentToBarcode, minSharedBarcodes int) Map {
	barcodeToSegments := invert(segmentToBarcode)

	shared := make(Map)
	for _, segments := range barcodeToSegments {
		for _, s1 := range segments {
			for _, s2 := range segments {
				if s1 == s2 {
					continue
				}
				row, ok := shared[s1]
				if !ok {
					row = make(ContigToCount)
					shared[s1] = row
				}
				row[s2]++
			}
		}
	}

	for _, row := range shared {
		for contig, count := range row {
			if count < minSharedBarcodes {
				delete(row, contig)
			}
		}
	}
	return shared
}
