// SPDX-License-Identifier: MIT
//
// File: planner.go
// Role: Planner: search, path view, timeline, maneuvers and narration.

package directions

import (
	"context"
	"fmt"

	"github.com/paulmach/orb"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/indoornav/bfs"
	"github.com/katalvlaran/indoornav/core"
	"github.com/katalvlaran/indoornav/dijkstra"
	"github.com/katalvlaran/indoornav/maneuver"
	"github.com/katalvlaran/indoornav/narrative"
	"github.com/katalvlaran/indoornav/route"
	"github.com/katalvlaran/indoornav/timeline"
)

// Planner narrates walks on one graph.
type Planner struct {
	g        *core.Graph
	log      *zap.Logger
	costing  []dijkstra.Option
	maneuver []maneuver.Option
	composer *narrative.Composer
	parallel int
}

// New returns a Planner for g.
func New(g *core.Graph, opts ...Option) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	p := &Planner{
		g:        g,
		log:      zap.NewNop(),
		composer: narrative.NewComposer(),
		parallel: DefaultParallelism,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.maneuver = append(p.maneuver, maneuver.WithLogger(p.log))

	return p, nil
}

// Graph returns the graph the planner searches.
func (p *Planner) Graph() *core.Graph { return p.g }

// Route searches the cheapest walk for req and narrates it.
// Errors from the search (unknown vertex, unreachable target) are returned
// wrapped with the endpoints.
func (p *Planner) Route(ctx context.Context, req Request) (*Leg, error) {
	if req.From == "" || req.To == "" {
		return nil, ErrEmptyEndpoint
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := append([]dijkstra.Option{dijkstra.Source(req.From), dijkstra.Target(req.To)}, p.costing...)
	res, err := dijkstra.ShortestPath(p.g, opts...)
	if err != nil {
		return nil, fmt.Errorf("directions: %s -> %s: %w", req.From, req.To, err)
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	ropts := []route.Option{route.WithLogger(p.log)}
	if req.StartLevel != nil {
		ropts = append(ropts, route.WithStartLevel(*req.StartLevel))
	}
	if req.EndLevel != nil {
		ropts = append(ropts, route.WithEndLevel(*req.EndLevel))
	}
	path, err := route.FromResult(p.g, res, ropts...)
	if err != nil {
		return nil, fmt.Errorf("directions: %s -> %s: %w", req.From, req.To, err)
	}

	leg, err := p.Assemble(path)
	if err != nil {
		return nil, err
	}
	leg.Cost = res.Cost
	p.log.Debug("route narrated",
		zap.String("from", req.From),
		zap.String("to", req.To),
		zap.Int("edges", path.Len()),
		zap.Int("maneuvers", len(leg.Maneuvers)),
		zap.Int("level_changes", len(leg.LevelChanges)),
	)

	return leg, nil
}

// Assemble narrates an already chosen path.
func (p *Planner) Assemble(path *route.Path) (*Leg, error) {
	tl := timeline.Build(path)
	ms, err := maneuver.Build(path, tl, p.maneuver...)
	if err != nil {
		return nil, err
	}

	return &Leg{
		Path:         path,
		LevelChanges: tl,
		Maneuvers:    p.composer.Compose(ms),
		Length:       path.Length(0, path.Len()-1),
	}, nil
}

// RouteAll routes every request concurrently, at most WithParallelism at a
// time. The result is index-aligned with reqs. The first error cancels the
// remaining searches and is returned.
func (p *Planner) RouteAll(ctx context.Context, reqs []Request) ([]*Leg, error) {
	legs := make([]*Leg, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.parallel)
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			leg, err := p.Route(gctx, req)
			if err != nil {
				return err
			}
			legs[i] = leg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return legs, nil
}

// Reachable walks the graph breadth-first from id, counting hops. Typical
// options keep the walk on one floor (bfs.OnLevel) or off stairs and
// elevators (bfs.NoVertical).
func (p *Planner) Reachable(ctx context.Context, from string, opts ...bfs.Option) (*bfs.Result, error) {
	return bfs.BFS(p.g, from, append([]bfs.Option{bfs.WithContext(ctx)}, opts...)...)
}

// Locate returns the edges nearest to pt, optionally restricted to those
// including level v.
func (p *Planner) Locate(pt orb.Point, v *float64) ([]EdgeInfo, error) {
	edges, err := p.g.NearestEdges(pt)
	if err != nil {
		return nil, err
	}
	out := make([]EdgeInfo, 0, len(edges))
	for _, e := range edges {
		if v != nil && !e.Levels.Includes(*v) {
			continue
		}
		out = append(out, Info(e))
	}

	return out, nil
}

// EdgesOnLevel lists every edge including level v, in insertion order.
func (p *Planner) EdgesOnLevel(v float64) []EdgeInfo {
	edges := p.g.EdgesOnLevel(v)
	out := make([]EdgeInfo, len(edges))
	for i, e := range edges {
		out[i] = Info(e)
	}

	return out
}
