// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: core.Graph + vertex/edge sequence -> Path.

package route

import (
	"fmt"
	"math"

	"github.com/paulmach/orb/geo"
	"go.uber.org/zap"

	"github.com/katalvlaran/indoornav/core"
	"github.com/katalvlaran/indoornav/dijkstra"
	"github.com/katalvlaran/indoornav/level"
)

// New builds a Path from vertices v0..vn and the edges joining them.
//
// Errors: ErrNilGraph, ErrEmptyPath, ErrDisconnected, core.ErrVertexNotFound.
// Complexity: O(n).
func New(g *core.Graph, vertices []string, edges []*core.Edge, opts ...Option) (*Path, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(edges) == 0 {
		return nil, ErrEmptyPath
	}
	if len(vertices) != len(edges)+1 {
		return nil, fmt.Errorf("%w: %d vertices for %d edges", ErrDisconnected, len(vertices), len(edges))
	}
	cfg := newConfig(opts...)

	p := &Path{
		Nodes: make([]PathNode, len(vertices)),
		Edges: make([]PathEdge, len(edges)),
	}
	for i, id := range vertices {
		v, err := g.Vertex(id)
		if err != nil {
			return nil, fmt.Errorf("route: node %d %q: %w", i, id, err)
		}
		p.Nodes[i] = PathNode{
			Index:  i,
			ID:     v.ID,
			Point:  v.Point,
			Type:   v.Type,
			Indoor: v.Indoor,
			Levels: v.Levels,
		}
	}

	for i, e := range edges {
		from, to := vertices[i], vertices[i+1]
		if e == nil || !(e.From == from && e.To == to || e.From == to && e.To == from) {
			return nil, fmt.Errorf("%w: edge %d between %q and %q", ErrDisconnected, i, from, to)
		}
		heading := bearing(p.Nodes[i], p.Nodes[i+1])
		pe := PathEdge{
			Index:         i,
			ID:            e.ID,
			From:          from,
			To:            to,
			Way:           e.Way,
			Use:           e.Use,
			Indoor:        e.Indoor,
			Levels:        e.Levels,
			LevelsInvalid: e.LevelsInvalid(),
			LevelRef:      e.LevelRef,
			Length:        e.Length,
			Heading:       heading,
		}
		if i > 0 {
			pe.TurnAngle = normalize(math.Round(heading - p.Edges[i-1].Heading))
		}
		p.Edges[i] = pe
	}

	p.StartLevel = checkHint(cfg.logger, "start", cfg.startLevel, p.Edges[0])
	p.EndLevel = checkHint(cfg.logger, "end", cfg.endLevel, p.Edges[len(p.Edges)-1])

	return p, nil
}

// FromResult builds a Path from a dijkstra result.
func FromResult(g *core.Graph, r dijkstra.Result, opts ...Option) (*Path, error) {
	return New(g, r.Vertices, r.Edges, opts...)
}

// FromVertices builds a Path along the given vertex IDs, taking the first
// edge between each consecutive pair.
func FromVertices(g *core.Graph, vertices []string, opts ...Option) (*Path, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(vertices) < 2 {
		return nil, ErrEmptyPath
	}
	edges := make([]*core.Edge, len(vertices)-1)
	for i := range edges {
		e, err := g.EdgeBetween(vertices[i], vertices[i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q-%q: %w", ErrDisconnected, vertices[i], vertices[i+1], err)
		}
		edges[i] = e
	}

	return New(g, vertices, edges, opts...)
}

// checkHint keeps a hint only when the endpoint edge has no level data or
// includes the hinted level.
func checkHint(log *zap.Logger, which string, hint *float64, e PathEdge) *float64 {
	if hint == nil || e.Levels.Empty() || level.Includes(e.Levels, *hint) {
		return hint
	}
	log.Warn("dropping level hint outside endpoint edge",
		zap.String("endpoint", which),
		zap.Float64("level", *hint),
		zap.String("edge", e.ID),
		zap.Stringer("levels", e.Levels))

	return nil
}

func bearing(a, b PathNode) float64 {
	return normalize(geo.Bearing(a.Point, b.Point))
}

// normalize maps degrees into [0, 360).
func normalize(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d == 0 {
		return 0 // also folds -0
	}
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d -= 360
	}

	return d
}
