// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orient

import (
	"testing"

	"github.com/kortschak/arcs/internal/arcsconfig"
	"github.com/kortschak/arcs/internal/barcode"
)

func params() arcsconfig.Params {
	p := arcsconfig.Default()
	p.EndLength = 1000
	p.MinReads = 2
	p.ErrorPercent = 0
	return p
}

func TestResolveShortHead(t *testing.T) {
	tally := make(barcode.ScaffoldTally)
	tally.AddHeadEvidence(1, 4000) // 10 reads averaging 400
	tally.AddSumOrTail(1, 10)

	valid, head := Resolve(params(), tally, 1, 1500)
	if !valid || !head {
		t.Errorf("Resolve = (%v, %v), want (true, true)", valid, head)
	}
}

func TestResolveShortMidpointTiesInvalid(t *testing.T) {
	tally := make(barcode.ScaffoldTally)
	tally.AddHeadEvidence(1, 750) // average exactly 750 == size/2
	tally.AddSumOrTail(1, 1)

	p := params()
	p.MinReads = 1
	valid, _ := Resolve(p, tally, 1, 1500)
	if valid {
		t.Errorf("percent exactly 0.5 with error_percent=0 must be invalid")
	}
}

func TestResolveShortTooFewReads(t *testing.T) {
	tally := make(barcode.ScaffoldTally)
	tally.AddHeadEvidence(1, 100)
	tally.AddSumOrTail(1, 1)

	valid, _ := Resolve(params(), tally, 1, 1500)
	if valid {
		t.Errorf("a single read must not satisfy min_reads=2")
	}
}

func TestResolveLongHead(t *testing.T) {
	tally := make(barcode.ScaffoldTally)
	tally.AddHeadEvidence(2, 10) // 10 reads in the head
	valid, head := Resolve(params(), tally, 2, 10000)
	if !valid || !head {
		t.Errorf("Resolve = (%v, %v), want (true, true)", valid, head)
	}
}

func TestResolveLongTail(t *testing.T) {
	tally := make(barcode.ScaffoldTally)
	tally.AddSumOrTail(2, 10)
	valid, head := Resolve(params(), tally, 2, 10000)
	if !valid || head {
		t.Errorf("Resolve = (%v, %v), want (true, false)", valid, head)
	}
}

func TestResolveLongAmbiguous(t *testing.T) {
	tally := make(barcode.ScaffoldTally)
	tally.AddHeadEvidence(2, 10)
	tally.AddSumOrTail(2, 10)
	valid, _ := Resolve(params(), tally, 2, 10000)
	if valid {
		t.Errorf("a barcode anchored to both ends must be invalid")
	}
}

func TestResolveMissingScaffold(t *testing.T) {
	tally := make(barcode.ScaffoldTally)
	valid, _ := Resolve(params(), tally, 99, 10000)
	if valid {
		t.Errorf("an absent scaffold entry must be invalid")
	}
}
