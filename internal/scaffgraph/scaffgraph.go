// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scaffgraph builds the scaffold graph from a pair map,
// applies the weight and degree pruning passes, and extracts connected
// components (C7).
package scaffgraph

import (
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/kortschak/arcs/internal/pairmap"
)

// Node is a scaffold graph vertex. Its graph-internal id (used as the
// gonum node ID and, unadorned, as the dot node key) is independent of
// the scaffold_id it carries as its "id" attribute.
type Node struct {
	id       int64
	Scaffold int
}

// ID satisfies graph.Node.
func (n Node) ID() int64 { return n.id }

// Attributes satisfies encoding.Attributer, emitting the scaffold_id as the
// "id" vertex attribute.
func (n Node) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "id", Value: strconv.Itoa(n.Scaffold)}}
}

// Edge is a scaffold graph edge, weighted by the winning orientation
// bin's link count and labelled by that bin's category.
type Edge struct {
	F, T        Node
	W           float64
	Orientation int
}

// From, To and ReversedEdge satisfy graph.Edge; Weight satisfies
// graph.WeightedEdge.
func (e Edge) From() graph.Node         { return e.F }
func (e Edge) To() graph.Node           { return e.T }
func (e Edge) Weight() float64          { return e.W }
func (e Edge) ReversedEdge() graph.Edge { return Edge{F: e.T, T: e.F, W: e.W, Orientation: e.Orientation} }

// Attributes satisfies encoding.Attributer, emitting the integer weight and
// the orientation category label.
func (e Edge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{
		{Key: "weight", Value: strconv.Itoa(int(e.W))},
		{Key: "label", Value: strconv.Itoa(e.Orientation)},
	}
}

// Graph is the scaffold graph, keyed externally by scaffold_id and
// internally by gonum's stable int64 node identifiers.
type Graph struct {
	g          *simple.WeightedUndirectedGraph
	vertexOf   map[int]int64
	scaffoldOf map[int64]int
	next       int64
}

// New returns an empty scaffold graph.
func New() *Graph {
	return &Graph{
		g:          simple.NewWeightedUndirectedGraph(0, 0),
		vertexOf:   make(map[int]int64),
		scaffoldOf: make(map[int64]int),
	}
}

// vertex returns the node id for scaffold, creating and adding a vertex
// if this is the first time scaffold has been seen.
func (sg *Graph) vertex(scaffold int) int64 {
	if id, ok := sg.vertexOf[scaffold]; ok {
		return id
	}
	id := sg.next
	sg.next++
	sg.vertexOf[scaffold] = id
	sg.scaffoldOf[id] = scaffold
	sg.g.AddNode(Node{id: id, Scaffold: scaffold})
	return id
}

// NumVertices returns the number of vertices currently in the graph.
func (sg *Graph) NumVertices() int { return sg.g.Nodes().Len() }

// Degree returns the number of edges incident on scaffold's vertex, or
// 0 if scaffold has no vertex.
func (sg *Graph) Degree(scaffold int) int {
	id, ok := sg.vertexOf[scaffold]
	if !ok {
		return 0
	}
	return len(graph.NodesOf(sg.g.From(id)))
}

// Build materializes the scaffold graph from a pair map: for every
// entry, the winning orientation bin's count must exceed minLinks
// (strictly) for an edge to be inserted.
func Build(pm *pairmap.Map, minLinks int) *Graph {
	sg := New()
	pm.Do(func(a, b int, counts pairmap.Counts) {
		weight, orientation := pairmap.Resolve(counts)
		if weight <= minLinks {
			return
		}
		u := sg.vertex(a)
		v := sg.vertex(b)
		sg.g.SetWeightedEdge(Edge{
			F:           Node{id: u, Scaffold: a},
			T:           Node{id: v, Scaffold: b},
			W:           float64(weight),
			Orientation: orientation,
		})
	})
	return sg
}

// WeightPrune removes every edge with weight < minLinks, then removes
// every vertex left with degree 0. It reports whether pruning was
// skipped (minLinks == 0).
func (sg *Graph) WeightPrune(minLinks int) (skipped bool) {
	if minLinks == 0 {
		return true
	}

	var drop [][2]int64
	eit := sg.g.Edges()
	for eit.Next() {
		e := eit.Edge().(Edge)
		if e.W < float64(minLinks) {
			drop = append(drop, [2]int64{e.F.id, e.T.id})
		}
	}
	for _, uv := range drop {
		sg.g.RemoveEdge(uv[0], uv[1])
	}

	var isolated []int64
	nit := sg.g.Nodes()
	for nit.Next() {
		n := nit.Node()
		if len(graph.NodesOf(sg.g.From(n.ID()))) < 1 {
			isolated = append(isolated, n.ID())
		}
	}
	for _, id := range isolated {
		sg.removeVertex(id)
	}
	return false
}

// DegreePrune removes every vertex whose degree exceeds maxDegree,
// along with its incident edges. It reports whether pruning was
// skipped (maxDegree <= 0).
func (sg *Graph) DegreePrune(maxDegree int) (skipped bool) {
	if maxDegree <= 0 {
		return true
	}

	var drop []int64
	nit := sg.g.Nodes()
	for nit.Next() {
		n := nit.Node()
		if len(graph.NodesOf(sg.g.From(n.ID()))) > maxDegree {
			drop = append(drop, n.ID())
		}
	}
	for _, id := range drop {
		sg.removeVertex(id)
	}
	return false
}

// removeVertex removes a vertex and its incident edges from the graph
// and the scaffold_id<->node id bookkeeping.
func (sg *Graph) removeVertex(id int64) {
	scaffold := sg.scaffoldOf[id]
	sg.g.RemoveNode(id)
	delete(sg.vertexOf, scaffold)
	delete(sg.scaffoldOf, id)
}

// Component is one connected component: its id and the scaffold ids of
// its member vertices.
type Component struct {
	ID        int
	Scaffolds []int
}

// Components returns the connected components of the current graph, in
// the order gonum's topo.ConnectedComponents returns them.
func (sg *Graph) Components() []Component {
	ccs := topo.ConnectedComponents(sg.g)
	out := make([]Component, len(ccs))
	for i, cc := range ccs {
		out[i].ID = i
		for _, n := range cc {
			out[i].Scaffolds = append(out[i].Scaffolds, n.(Node).Scaffold)
		}
	}
	return out
}

// MarshalDOT renders the graph in Graphviz-compatible textual form,
// with vertex attribute id and edge attributes weight and label.
func (sg *Graph) MarshalDOT(name string) ([]byte, error) {
	return dot.Marshal(sg.g, name, "", "\t")
}

// UnmarshalDOT parses a Graphviz-compatible textual graph previously
// written by MarshalDOT, for the original_file reuse path.
//
// This does not use gonum's dot.Unmarshal: that requires implementing
// the full dot.Builder/dot.UnlabeledBuilder method set (NewNode,
// NewWeightedEdge, SetEdge, SetAttribute and friends) against a schema
// this package never runs, and a one-character mismatch would only
// surface as a silently wrong graph, since none of this is
// compiler-checked here. The emitted format is under this package's
// own control, so a direct, anchored scan is both safer and grounded
// in the same scanning style the corpus favors for domain-specific
// text input (see internal/align.Stream and internal/lengths.Load).
func UnmarshalDOT(data []byte) (*Graph, error) {
	return parseDOT(data)
}
