// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lengths

import (
	"io/ioutil"
	"log"
	"strings"
	"testing"
)

const testFasta = `>Super-Scaffold_1 some comment
ACGTACGTAC
>Super-Scaffold_2
ACGT
>unmapped
NNNNNNNNNNNNNNNNNNNN
>Super-Scaffold_1 duplicate entry
ACGTACGT
`

func TestLoad(t *testing.T) {
	l := log.New(ioutil.Discard, "", 0)
	m, err := Load(strings.NewReader(testFasta), true, l)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := map[int]int{1: 8, 2: 4}
	if len(m) != len(want) {
		t.Fatalf("got %d entries, want %d: %v", len(m), len(want), m)
	}
	for id, size := range want {
		if m[id] != size {
			t.Errorf("scaffold %d: got length %d, want %d (last writer should win)", id, m[id], size)
		}
	}
	if _, ok := m[0]; ok {
		t.Errorf("identifier 0 must never be stored")
	}
}
