// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: single-source search with pedestrian costing and path reconstruction.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/indoornav/core"
)

// Dijkstra computes the cheapest cost in seconds from Options.Source to every
// vertex of g, together with the edge each vertex was reached through.
//
// Returns:
//
//   - dist: vertex ID → cost in seconds (+Inf when unreachable).
//   - via:  vertex ID → last edge of one cheapest path (absent for the source
//     and unreachable vertices). Parallel edges are told apart by their ID.
//   - err:  ErrEmptySource, ErrNilGraph or ErrVertexNotFound.
//
// Node-transition costs depend on the arrival edge, which is the one already
// settled for the vertex; the search stays vertex-labelled.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]*core.Edge, error) {
	r, err := newRunner(g, opts)
	if err != nil {
		return nil, nil, err
	}
	if err = r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.via, nil
}

// ShortestPath returns the cheapest path from Options.Source to
// Options.Target. The search stops as soon as the target is settled.
//
// Errors: ErrEmptySource, ErrEmptyTarget, ErrNilGraph, ErrVertexNotFound,
// ErrUnreachable.
func ShortestPath(g *core.Graph, opts ...Option) (Result, error) {
	r, err := newRunner(g, opts)
	if err != nil {
		return Result{}, err
	}
	target := r.options.Target
	if target == "" {
		return Result{}, ErrEmptyTarget
	}
	if !g.HasVertex(target) {
		return Result{}, fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}
	if err = r.process(); err != nil {
		return Result{}, err
	}
	if math.IsInf(r.dist[target], 1) {
		return Result{}, fmt.Errorf("%w: %s→%s", ErrUnreachable, r.options.Source, target)
	}

	// Walk the via-edges back from the target.
	var edges []*core.Edge
	vertices := []string{target}
	for cur := target; cur != r.options.Source; {
		e := r.via[cur]
		edges = append(edges, e)
		cur = e.Other(cur)
		vertices = append(vertices, cur)
	}
	reverse(edges)
	reverse(vertices)

	return Result{Vertices: vertices, Edges: edges, Cost: r.dist[target]}, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	via     map[string]*core.Edge
	visited map[string]bool
	pq      nodePQ
}

// newRunner validates inputs and seeds the queue with the source.
func newRunner(g *core.Graph, opts []Option) (*runner, error) {
	// 1) Build Options from defaults.
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate Source, graph and source membership, in that order.
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, cfg.Source)
	}

	// 3) dist[v] = +Inf for all v, zero at the source.
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(vertices)),
		via:     make(map[string]*core.Edge, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
	}
	r.dist[cfg.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: cfg.Source, dist: 0})

	return r, nil
}

// process pops vertices in cost order until the heap drains, MaxCost is
// exceeded or the target is settled.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxCost {
			break
		}
		r.visited[u] = true
		if u == r.options.Target {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the labels of u's neighbours. r.dist[u] is final.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}
	vu, err := r.g.Vertex(u)
	if err != nil {
		return fmt.Errorf("dijkstra: vertex %q: %w", u, err)
	}
	in := r.via[u]

	for _, e := range neighbors {
		v := e.Other(u)
		if r.visited[v] {
			continue
		}
		newDist := r.dist[u] + r.options.NodeCost(vu, in, e) + r.options.EdgeCost(e)
		if newDist > r.options.MaxCost || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.via[v] = e
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// nodeItem represents a vertex and its tentative cost from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by cost, then by ID so that
// equal-cost paths resolve the same way on every run.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
