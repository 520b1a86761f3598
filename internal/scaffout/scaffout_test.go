// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaffout

import (
	"strings"
	"testing"
)

const testFasta = `>Scaffold_1 some comment
ACGTACGTACGT
>Scaffold_2
TTTTGGGGCCCC
>Scaffold_3
AAAACCCCGGGG
>unmapped
NNNNNNNNNNNN
`

func TestWriteGroupsFiltersAndRewritesIDs(t *testing.T) {
	componentOf := map[int]int{1: 0, 2: 0, 3: 1}
	sizeOf := map[int]int{0: 2, 1: 1}

	var out strings.Builder
	if err := WriteGroups(strings.NewReader(testFasta), &out, componentOf, sizeOf, 100); err != nil {
		t.Fatalf("WriteGroups: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, ">1_group0") {
		t.Errorf("missing rewritten header for scaffold 1:\n%s", got)
	}
	if !strings.Contains(got, ">2_group0") {
		t.Errorf("missing rewritten header for scaffold 2:\n%s", got)
	}
	// Scaffold 3's component has size 1 (not > 1), so it must be
	// dropped; the unmapped record has no usable scaffold_id.
	if strings.Contains(got, "3_group") {
		t.Errorf("scaffold 3 must be excluded (singleton component):\n%s", got)
	}
	if strings.Contains(got, "unmapped") {
		t.Errorf("unmapped record must be excluded:\n%s", got)
	}
}

func TestWriteGroupsRespectsMaxGrpSize(t *testing.T) {
	componentOf := map[int]int{1: 0, 2: 0}
	sizeOf := map[int]int{0: 2}

	var out strings.Builder
	if err := WriteGroups(strings.NewReader(testFasta), &out, componentOf, sizeOf, 2); err != nil {
		t.Fatalf("WriteGroups: %v", err)
	}
	// max_grpSize=2 excludes a component of size 2 (strictly less than
	// required).
	if out.Len() != 0 {
		t.Errorf("expected no output when component size is not strictly less than max_grpSize, got:\n%s", out.String())
	}
}
