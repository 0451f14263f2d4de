// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/GetEdge/EdgeBetween/Edges/EdgesWhere,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock, reads under its read lock.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected edge from→to and returns its ID.
//
// Steps:
//  1. Validate IDs, loops and length.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check the multi-edge constraint.
//  4. Generate the ID, build the Edge, apply opts, store and mirror adjacency.
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed, ErrBadLength, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	e := &Edge{From: from, To: to}
	for _, opt := range opts {
		opt(e)
	}
	if e.Length < 0 || math.IsNaN(e.Length) {
		return "", ErrBadLength
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacencyList[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	e.seq = atomic.AddUint64(&g.nextEdgeID, 1)
	e.ID = formatEdgeID(e.seq)
	g.edges[e.ID] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][e.ID] = struct{}{}
	ensureAdjacency(g, to, from)
	g.adjacencyList[to][from][e.ID] = struct{}{}

	return e.ID, nil
}

// GetEdge returns the edge with the given ID or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgeBetween returns the earliest edge joining a and b in either direction.
//
// Errors: ErrEmptyVertexID, ErrEdgeNotFound.
// Complexity: O(k) for k parallel edges.
func (g *Graph) EdgeBetween(a, b string) (*Edge, error) {
	if a == "" || b == "" {
		return nil, ErrEmptyVertexID
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var best *Edge
	for eid := range g.adjacencyList[a][b] {
		e := g.edges[eid]
		if best == nil || e.seq < best.seq {
			best = e
		}
	}
	if best == nil {
		return nil, ErrEdgeNotFound
	}

	return best, nil
}

// HasEdge reports whether at least one edge joins a and b.
func (g *Graph) HasEdge(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[a][b]) > 0
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	return g.EdgesWhere(nil)
}

// EdgesWhere returns, in insertion order, the edges satisfying pred
// (all edges when pred is nil). pred must not mutate the graph.
func (g *Graph) EdgesWhere(pred func(*Edge) bool) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		if pred == nil || pred(e) {
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out
}

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Neighbors returns the edges incident to id in insertion order.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var out []*Edge
	for _, bucket := range g.adjacencyList[id] {
		for eid := range bucket {
			out = append(out, g.edges[eid])
		}
	}
	sortEdges(out)

	return out, nil
}

// ensureAdjacency lazily allocates adjacencyList[from][to]. Caller holds muEdgeAdj.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}

// formatEdgeID renders "e" + decimal without fmt.
func formatEdgeID(n uint64) string {
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// EdgesOnLevel returns the edges whose level set includes v, using the same
// epsilon-tolerant comparison as narration. Untagged edges never match.
func (g *Graph) EdgesOnLevel(v float64) []*Edge {
	return g.EdgesWhere(func(e *Edge) bool { return e.Levels.Includes(v) })
}
