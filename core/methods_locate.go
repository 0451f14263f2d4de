// SPDX-License-Identifier: MIT
//
// File: methods_locate.go
// Role: point -> nearest edge lookup used by location queries.
//
// Concurrency:
//   - Lock order muVert then muEdgeAdj, as in Neighbors.

package core

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// locateTolerance groups edges whose distance to the query point differs by
// less than this many degrees.
const locateTolerance = 1e-9

// NearestEdges returns the edges closest to p in insertion order. Several
// edges are returned when they are equally close (a point on a shared vertex,
// or parallel edges). An empty graph yields ErrEdgeNotFound.
//
// Distances are measured in the lon/lat plane; the lookup is meant for
// snapping a point to the edge it was drawn on, not for metric queries.
// Complexity: O(E).
func (g *Graph) NearestEdges(p orb.Point) ([]*Edge, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	best := math.Inf(1)
	var out []*Edge
	for _, e := range g.edges {
		a, b := g.vertices[e.From].Point, g.vertices[e.To].Point
		d := planar.DistanceFromSegment(a, b, p)
		switch {
		case d < best-locateTolerance:
			best = d
			out = append(out[:0], e)
		case math.Abs(d-best) <= locateTolerance:
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil, ErrEdgeNotFound
	}
	sortEdges(out)

	return out, nil
}
