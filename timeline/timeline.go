// SPDX-License-Identifier: MIT

// Package timeline derives the level-change log of a path: the node
// positions at which the traveller's floor changes, in travel order.
//
// Rules:
//
//   - The first entry is (0, start level). The start level is the start hint
//     when present, else the representative level of the first edge that
//     carries level data (its single value, or its lowest range start).
//   - A single-valued edge i sets the level at its start node i.
//   - A run of consecutive multi-level edges (stairs tagged "0;1", "-1;0-2")
//     is one hop and contributes at most one entry, at the run's end node:
//     the onward edge's level, else the end hint when the run ends the path,
//     else the bound of the last set farthest from the current level.
//   - A node-modeled elevator changes the floor through its onward edge; the
//     edge's level is the one walked on, the node's reachable set only
//     documents which floors the car serves.
//   - The end hint applies at the final node.
//   - Edges without usable level data contribute nothing.
//   - An entry is emitted only when its level differs from the current one
//     (level.Equal), so adjacent entries never repeat a level and positions
//     strictly increase.
//
// A path without any level data and without hints yields no entries.
package timeline

import (
	"github.com/katalvlaran/indoornav/level"
	"github.com/katalvlaran/indoornav/route"
)

// Entry marks the node Position at which Level becomes current.
type Entry struct {
	Position int     `json:"position" yaml:"position"`
	Level    float64 `json:"level" yaml:"level"`
}

// Build returns the level-change log of p. It never fails; missing or
// unusable level data only removes entries.
// Complexity: O(len(p.Edges)).
func Build(p *route.Path) []Entry {
	if p == nil || len(p.Edges) == 0 {
		return nil
	}
	edges := p.Edges

	start, ok := startLevel(p)
	if !ok {
		return nil
	}
	b := builder{out: []Entry{{Position: 0, Level: start}}, current: start}

	for i := 0; i < len(edges); {
		e := edges[i]
		if e.Levels.Empty() {
			i++
			continue
		}
		if v, single := e.SingleLevel(); single {
			b.emit(i, v)
			i++
			continue
		}

		// Multi-level run i..j-1 ends at node j.
		j := i
		for j < len(edges) && isMulti(edges[j].Levels) {
			j++
		}
		if v, ok := runEnd(p, j, b.current); ok {
			b.emit(j, v)
		}
		i = j
	}

	if p.EndLevel != nil {
		b.emit(len(edges), *p.EndLevel)
	}

	return b.out
}

// Changes reports whether the log records at least one floor change.
func Changes(entries []Entry) bool { return len(entries) > 1 }

// LevelAt returns the level current at node position pos.
func LevelAt(entries []Entry, pos int) (float64, bool) {
	var (
		v     float64
		found bool
	)
	for _, e := range entries {
		if e.Position > pos {
			break
		}
		v, found = e.Level, true
	}

	return v, found
}

// ChangesAt reports whether an entry sits exactly at node position pos > 0.
func ChangesAt(entries []Entry, pos int) bool {
	if pos == 0 {
		return false
	}
	for _, e := range entries {
		if e.Position == pos {
			return true
		}
	}

	return false
}

type builder struct {
	out     []Entry
	current float64
}

// emit appends (pos, v) unless v is already current. Position 0 is fixed;
// a second entry at the same position replaces the first.
func (b *builder) emit(pos int, v float64) {
	if pos == 0 || level.Equal(v, b.current) {
		return
	}
	last := &b.out[len(b.out)-1]
	if last.Position == pos {
		last.Level = v
		b.current = v
		// Replacing may bring back the level before the replaced entry.
		if n := len(b.out); n >= 2 && level.Equal(b.out[n-2].Level, v) {
			b.out = b.out[:n-1]
		}
		return
	}
	b.out = append(b.out, Entry{Position: pos, Level: v})
	b.current = v
}

func startLevel(p *route.Path) (float64, bool) {
	if p.StartLevel != nil {
		return *p.StartLevel, true
	}
	for _, e := range p.Edges {
		if v, ok := e.Levels.Representative(); ok {
			return v, true
		}
	}

	return 0, false
}

// runEnd picks the level reached at node j after a multi-level run.
func runEnd(p *route.Path, j int, current float64) (float64, bool) {
	if j < len(p.Edges) {
		if v, ok := p.Edges[j].SingleLevel(); ok {
			return v, true
		}
	} else if p.EndLevel != nil {
		return *p.EndLevel, true
	}

	return p.Edges[j-1].Levels.Farthest(current)
}

func isMulti(s level.Set) bool {
	if s.Empty() {
		return false
	}
	_, single := s.SingleValue()

	return !single
}
