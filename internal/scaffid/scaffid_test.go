// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaffid

import "testing"

var fromNameTests = []struct {
	name string
	want int
}{
	{"Super-Scaffold_962476", 962476},
	{"scaffold1", 1},
	{"*", 0},
	{"unmapped", 0},
	{"contig_0012", 12},
	{"", 0},
}

func TestFromName(t *testing.T) {
	for _, test := range fromNameTests {
		got := FromName(test.name)
		if got != test.want {
			t.Errorf("FromName(%q) = %d, want %d", test.name, got, test.want)
		}
	}
}
