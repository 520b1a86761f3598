// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaffgraph

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// nodeLine matches one node statement with an id=<scaffold_id>
// attribute, e.g. `0 [id=1962];` or `0 [id="1962"];`.
var nodeLine = regexp.MustCompile(`^\s*(\d+)\s*\[[^]]*\bid="?(\d+)"?\b[^]]*\]`)

// edgeLine matches one undirected edge statement with weight and label
// attributes, e.g. `0 -- 1 [weight=10 label=2];`. An attribute block
// that MarshalDOT spreads over several lines is joined onto the edge's
// line before matching.
var edgeLine = regexp.MustCompile(`^\s*(\d+)\s*--\s*(\d+)\s*\[([^]]*)\]`)

// attrPair pulls one key=value numeric attribute, optionally quoted,
// out of an attribute list fragment.
var attrPair = regexp.MustCompile(`(\w+)\s*=\s*"?(\d+)"?`)

// parseDOT scans a Graphviz-compatible textual graph emitted by
// MarshalDOT, rebuilding vertices and weighted, orientation-labelled
// edges. Lines that match neither nodeLine nor edgeLine (graph
// declaration, braces, comments) are ignored.
func parseDOT(data []byte) (*Graph, error) {
	sg := New()
	fileNodeToScaffold := make(map[int64]int)

	sc := bufio.NewScanner(bytes.NewReader(data))
	var lineNo int
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if m := nodeLine.FindStringSubmatch(line); m != nil {
			fileID, err := strconv.ParseInt(m[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("scaffgraph: line %d: bad node id %q", lineNo, m[1])
			}
			scaffold, err := strconv.Atoi(m[2])
			if err != nil {
				return nil, fmt.Errorf("scaffgraph: line %d: bad scaffold id %q", lineNo, m[2])
			}
			fileNodeToScaffold[fileID] = scaffold
			sg.vertex(scaffold)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scaffgraph: %w", err)
	}

	sc = bufio.NewScanner(bytes.NewReader(data))
	lineNo = 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.Contains(line, "--") && strings.Contains(line, "[") {
			for !strings.Contains(line, "]") && sc.Scan() {
				lineNo++
				line += " " + sc.Text()
			}
		}
		m := edgeLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		fu, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("scaffgraph: line %d: bad edge endpoint %q", lineNo, m[1])
		}
		fv, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("scaffgraph: line %d: bad edge endpoint %q", lineNo, m[2])
		}
		a, ok := fileNodeToScaffold[fu]
		if !ok {
			return nil, fmt.Errorf("scaffgraph: line %d: edge references undeclared node %d", lineNo, fu)
		}
		b, ok := fileNodeToScaffold[fv]
		if !ok {
			return nil, fmt.Errorf("scaffgraph: line %d: edge references undeclared node %d", lineNo, fv)
		}

		var weight, orientation int
		haveWeight, haveLabel := false, false
		for _, am := range attrPair.FindAllStringSubmatch(m[3], -1) {
			n, err := strconv.Atoi(am[2])
			if err != nil {
				continue
			}
			switch am[1] {
			case "weight":
				weight, haveWeight = n, true
			case "label":
				orientation, haveLabel = n, true
			}
		}
		if !haveWeight || !haveLabel {
			return nil, fmt.Errorf("scaffgraph: line %d: edge missing weight or label attribute", lineNo)
		}

		u, v := sg.vertex(a), sg.vertex(b)
		sg.g.SetWeightedEdge(Edge{
			F:           Node{id: u, Scaffold: a},
			T:           Node{id: v, Scaffold: b},
			W:           float64(weight),
			Orientation: orientation,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scaffgraph: %w", err)
	}
	return sg, nil
}
