// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orient resolves a barcode's per-scaffold tally (C3) into a
// (valid?, head?) verdict for a single scaffold (C5).
package orient

import (
	"math"

	"github.com/kortschak/arcs/internal/arcsconfig"
	"github.com/kortschak/arcs/internal/barcode"
)

// Resolve returns whether the given barcode's tally for scaffold carries
// usable orientation evidence and, if so, whether that evidence anchors
// the barcode to the scaffold's head. length is the scaffold's length in
// bp as recorded by the scaffold length index (C1).
//
// Two regimes apply, mirroring the dual semantics of the tally's
// head-evidence slot (see package barcode):
//
//   - short scaffold (length <= 2*EndLength): HeadEvidence is a sum of
//     read positions and SumOrTail is the count of reads summed; the
//     verdict comes from how far the average position sits from the
//     scaffold midpoint, relative to ErrorPercent.
//   - long scaffold (length > 2*EndLength): HeadEvidence and SumOrTail
//     are independent head/tail read counts; the verdict comes from
//     which side, if either alone, clears MinReads.
func Resolve(p arcsconfig.Params, tally barcode.ScaffoldTally, scaffold, length int) (valid, head bool) {
	c, ok := tally[scaffold]
	if !ok {
		return false, false
	}

	if length <= 2*p.EndLength {
		count := c.SumOrTail
		if count < p.MinReads {
			return false, false
		}
		avg := float64(c.HeadEvidence) / float64(count)
		percent := avg / float64(length)
		errBand := p.ErrorPercent / 100
		if math.Abs(percent-0.5) > errBand {
			return true, percent < 0.5
		}
		return false, false
	}

	h, tl := c.HeadEvidence, c.SumOrTail
	headOK := h >= p.MinReads
	tailOK := tl >= p.MinReads
	switch {
	case headOK && tailOK:
		// Ambiguously anchored: barcode has enough evidence for both
		// ends, so it cannot be trusted for either.
		return false, false
	case headOK:
		return true, true
	case tailOK:
		return true, false
	default:
		return false, false
	}
}
