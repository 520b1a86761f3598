// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scaffid extracts the integer identifier a scaffold is known by
// from its textual name.
package scaffid

// FromName returns the scaffold identifier encoded in name, by
// concatenating every decimal digit in name, in order, and parsing the
// result as a base-10 integer. A name with no digits (for example the
// "unmapped" sentinel conventionally produced by an aligner) yields 0,
// which callers must treat as "no usable identifier".
func FromName(name string) int {
	var digits []byte
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}
	if len(digits) == 0 {
		return 0
	}
	var n int
	for _, c := range digits {
		n = n*10 + int(c-'0')
	}
	return n
}
