// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package align parses individual alignment records from a name-sorted,
// whitespace-columnar text stream of barcoded read-pair alignments, and
// computes the per-record sequence identity used to gate acceptance into
// the scaffold-linkage graph.
package align

import (
	"strconv"
	"strings"

	"github.com/biogo/hts/sam"

	"github.com/kortschak/arcs/internal/scaffid"
)

// Record is the subset of an alignment record's fields consumed by the
// scaffold-linkage engine.
type Record struct {
	Name  string
	Flag  sam.Flags
	Ref   int // scaffold identifier; 0 means no usable identifier.
	Pos   int // 1-based position.
	Cigar string
	Seq   string

	raw string // full input line, retained for the NM:i: tag lookup.
}

// acceptedFlags holds the four proper-pair, primary-alignment flag
// combinations accepted by the pair-joiner: the forward/reverse mate
// of read 1 and read 2 in a properly paired alignment.
var acceptedFlags = map[sam.Flags]bool{
	sam.Paired | sam.ProperPair | sam.Reverse | sam.Read1:     true, // 83
	sam.Paired | sam.ProperPair | sam.MateReverse | sam.Read1: true, // 99
	sam.Paired | sam.ProperPair | sam.Reverse | sam.Read2:     true, // 147
	sam.Paired | sam.ProperPair | sam.MateReverse | sam.Read2: true, // 163
}

// Accepted reports whether r's flag is one of the four accepted proper-pair
// primary-alignment combinations.
func (r Record) Accepted() bool {
	return acceptedFlags[r.Flag]
}

// Parse parses one non-header alignment line into a Record. It reports
// false if the line does not carry at least the first eleven
// whitespace-separated SAM-style columns.
func Parse(line string) (Record, bool) {
	fields := strings.Fields(line)
	if len(fields) < 11 {
		return Record{}, false
	}

	flag, err := strconv.Atoi(fields[1])
	if err != nil {
		return Record{}, false
	}
	pos, err := strconv.Atoi(fields[3])
	if err != nil {
		return Record{}, false
	}

	return Record{
		Name:  fields[0],
		Flag:  sam.Flags(flag),
		Ref:   scaffid.FromName(fields[2]),
		Pos:   pos,
		Cigar: fields[5],
		Seq:   fields[9],
		raw:   line,
	}, true
}

// SequenceIdentity returns the percent sequence identity of r, computed from
// its CIGAR string's query-consuming operations (M, =, X, I) and the edit
// distance carried in an NM:i:<int> tag anywhere on the original line. It is
// 0 when the CIGAR has no query-consuming operations.
func (r Record) SequenceIdentity() float64 {
	qalen := queryAlignedLength(r.Cigar)
	if qalen == 0 {
		return 0
	}
	edit := r.editDistance()
	if len(r.Seq) == 0 {
		return 0
	}
	return float64(qalen-edit) / float64(len(r.Seq)) * 100
}

// queryConsuming is the set of CIGAR operations counted by
// queryAlignedLength: alignment match/mismatch, sequence match, and
// insertion to the reference.
var queryConsuming = map[byte]bool{
	'M': true, // sam.CigarMatch
	'=': true, // sam.CigarEqual
	'X': true, // sam.CigarMismatch
	'I': true, // sam.CigarInsertion
}

// queryAlignedLength walks a textual CIGAR string and sums the lengths of
// every <integer><op> token whose op consumes query bases per
// queryConsuming; tokens with other ops are skipped but still consume
// their integer from the string.
func queryAlignedLength(cigar string) int {
	var qalen, value int
	for i := 0; i < len(cigar); i++ {
		c := cigar[i]
		if c >= '0' && c <= '9' {
			value = value*10 + int(c-'0')
			continue
		}
		if queryConsuming[c] {
			qalen += value
		}
		value = 0
	}
	return qalen
}

// editDistance extracts the integer from an NM:i:<int> tag located anywhere
// in r's raw input line, or 0 if no such tag is present.
func (r Record) editDistance() int {
	const tag = "NM:i:"
	i := strings.Index(r.raw, tag)
	if i < 0 {
		return 0
	}
	rest := r.raw[i+len(tag):]
	j := 0
	for j < len(rest) && (rest[j] == '-' || (rest[j] >= '0' && rest[j] <= '9')) {
		j++
	}
	n, err := strconv.Atoi(rest[:j])
	if err != nil {
		return 0
	}
	return n
}
