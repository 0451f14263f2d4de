// SPDX-License-Identifier: MIT
//
// File: bfs.go
// Role: BFS walker and Components.

package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/indoornav/core"
)

// queueItem pairs a vertex ID with its depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from startID.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound, the
// context error, or an OnVisit error.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Start:  startID,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]*core.Edge, n),
		},
	}
	w.enqueue(startID, 0, nil)

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, d int, via *core.Edge) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if via != nil {
		w.res.Parent[id] = via
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		edges, err := w.graph.Neighbors(item.id)
		if err != nil {
			return err
		}
		for _, e := range edges {
			nbr := e.Other(item.id)
			if w.visited[nbr] || !w.opts.EdgeFilter(e) {
				continue
			}
			w.enqueue(nbr, item.depth+1, e)
		}
	}

	return nil
}

// Components partitions the vertices of g into connected parts under the
// given edge filters. Each part is sorted; parts are ordered by size, then
// by their first vertex.
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.VertexCount())
	var parts [][]string
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id, opts...)
		if err != nil {
			return nil, err
		}
		part := append([]string(nil), res.Order...)
		for _, v := range part {
			seen[v] = true
		}
		sort.Strings(part)
		parts = append(parts, part)
	}
	sort.SliceStable(parts, func(i, j int) bool {
		if len(parts[i]) != len(parts[j]) {
			return len(parts[i]) > len(parts[j])
		}
		return parts[i][0] < parts[j][0]
	})

	return parts, nil
}
