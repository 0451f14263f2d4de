// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: greedy combination of classified edges into maneuvers.
//
// Merge predicate (the single place encoding boundary policy): the open
// maneuver absorbs edge i iff
//   - edge i has the maneuver's kind: plain walking for Start, Continue,
//     turn and building maneuvers, the same vertical use otherwise;
//   - the heading change at node i is within the straight threshold;
//   - node i is not a node-modeled elevator;
//   - for plain walking, the floor does not change at node i.
// Level changes inside a steps, escalator or elevator run are absorbed.

package maneuver

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/indoornav/label"
	"github.com/katalvlaran/indoornav/level"
	"github.com/katalvlaran/indoornav/route"
	"github.com/katalvlaran/indoornav/timeline"
)

// Build classifies the edges of p and combines them into maneuvers, ending
// with a Destination point maneuver. tl is the level-change log of p (see
// package timeline); it decides plain-walk boundaries and the start/end
// levels of every maneuver. Instructions are left empty for a composer.
//
// Build is deterministic: the same inputs always yield the same boundaries
// and types.
//
// Errors: ErrEmptyPath.
// Complexity: O(n + n·|tl|).
func Build(p *route.Path, tl []timeline.Entry, opts ...Option) ([]Maneuver, error) {
	if p == nil || len(p.Edges) == 0 {
		return nil, ErrEmptyPath
	}
	cfg := newConfig(opts...)
	n := len(p.Edges)

	classes := make([]Classification, n)
	for i := range classes {
		classes[i] = classify(p, i, cfg)
		if e := p.Edges[i]; degraded(e) {
			cfg.logger.Debug("edge classified without its use",
				zap.String("edge", e.ID),
				zap.Stringer("use", e.Use),
				zap.Bool("levels_invalid", e.LevelsInvalid))
		}
	}

	var out []Maneuver
	cur := open(p, 0, classes[0], true)
	for i := 1; i < n; i++ {
		switch {
		case p.Nodes[i].IsElevator():
			out = append(out, cur.m, point(p, TypeElevatorEnter, i))
			cur = open(p, i, classes[i], false)
		case cur.accepts(p, tl, classes[i], i, cfg):
			cur.m.LastEdge = i
			cur.m.Length += p.Edges[i].Length
		default:
			out = append(out, cur.m)
			cur = open(p, i, classes[i], false)
		}
	}
	out = append(out, cur.m, point(p, TypeDestination, n))

	for k := range out {
		annotate(p, tl, &out[k])
	}

	return out, nil
}

// run is an open maneuver plus the edge kind it absorbs.
type run struct {
	m    Maneuver
	kind Class
}

func open(p *route.Path, i int, c Classification, first bool) run {
	e := p.Edges[i]
	r := run{
		m: Maneuver{
			Type:      typeOf(c),
			FirstEdge: i,
			LastEdge:  i,
			Node:      i,
			Way:       e.Way,
			Heading:   e.Heading,
			TurnAngle: e.TurnAngle,
			Length:    e.Length,
		},
		kind: ClassPlain,
	}
	if isSpecial(c.Class) {
		r.kind = c.Class
	} else if first {
		r.m.Type = TypeStart
	}

	return r
}

func (r run) accepts(p *route.Path, tl []timeline.Entry, c Classification, i int, cfg config) bool {
	if c.Class != r.kind {
		return false
	}
	if deviation(p.Edges[i].TurnAngle) > cfg.straight {
		return false
	}
	if r.kind == ClassPlain && timeline.ChangesAt(tl, i) {
		return false
	}

	return true
}

// point builds an empty-range maneuver at node k.
func point(p *route.Path, t Type, k int) Maneuver {
	m := Maneuver{Type: t, FirstEdge: k, LastEdge: k - 1, Node: k}
	if k < len(p.Edges) {
		m.Heading = p.Edges[k].Heading
	}

	return m
}

// annotate resolves start and end levels from the timeline.
func annotate(p *route.Path, tl []timeline.Entry, m *Maneuver) {
	switch {
	case m.Type == TypeDestination:
		m.StartLevel = labelAt(p, tl, m.Node)
		m.EndLevel = m.StartLevel
	case m.IsPoint():
		m.StartLevel = labelAt(p, tl, m.Node-1)
		m.EndLevel = labelAt(p, tl, m.Node)
	case allInvalid(p, m):
		// unusable level data: no annotation
	default:
		m.StartLevel = labelAt(p, tl, m.FirstEdge)
		m.EndLevel = endLevel(p, tl, m.LastEdge)
	}
}

// endLevel is the floor of the last edge in a run. Only a multi-level last
// edge defers to the timeline, which resolves where that run ends.
func endLevel(p *route.Path, tl []timeline.Entry, last int) *label.Level {
	e := p.Edges[last]
	sv, single := e.SingleLevel()
	if !single {
		return labelAt(p, tl, last+1)
	}
	if l := labelAt(p, tl, last+1); l != nil && level.Equal(l.Value, sv) {
		return l
	}

	return &label.Level{Value: sv, Label: e.LevelRef}
}

func allInvalid(p *route.Path, m *Maneuver) bool {
	for i := m.FirstEdge; i <= m.LastEdge; i++ {
		if !p.Edges[i].LevelsInvalid {
			return false
		}
	}

	return true
}

// labelAt returns the level current at node pos, labelled by the adjoining
// single-level edge on that floor (onward edge first).
func labelAt(p *route.Path, tl []timeline.Entry, pos int) *label.Level {
	v, ok := timeline.LevelAt(tl, pos)
	if !ok {
		return nil
	}
	l := &label.Level{Value: v}
	for _, i := range [2]int{pos, pos - 1} {
		if i < 0 || i >= len(p.Edges) {
			continue
		}
		e := p.Edges[i]
		if sv, single := e.SingleLevel(); single && e.LevelRef != "" && level.Equal(sv, v) {
			l.Label = e.LevelRef
			break
		}
	}

	return l
}
