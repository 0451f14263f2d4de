// SPDX-License-Identifier: MIT

// Package indoornav narrates pedestrian walks through multi-level
// buildings: which floor each stretch is on, which stairs, escalators and
// elevators to take, and where the walk enters or leaves a building.
//
// The module is organized bottom-up:
//
//	level/      level descriptors ("-1;0-2.5") as ordered range sets
//	label/      "Level 2" or an explicit "Parking" label for a level value
//	core/       thread-safe pedestrian graph: vertices, edges, Use, NodeType
//	builder/    ASCII layouts + OSM-style tag tables -> core.Graph fixtures
//	bfs/        hop-count reachability, per floor or avoiding vertical edges
//	dijkstra/   pedestrian costing: walking speed, steps and elevator penalties
//	route/      read-only path view with headings, turn angles and level hints
//	timeline/   level-change timeline (position, level) along a path
//	maneuver/   edge classification and greedy maneuver combination
//	narrative/  instruction slots, multi-cue composition, distance phrases
//	directions/ Planner facade: search, narrate, locate, reach
//	config/     YAML configuration translated into functional options
//	cmd/indoornav cobra CLI over the above
//
// Quick start:
//
//	m, _ := builder.Campus().Build()
//	p, _ := directions.New(m.Graph)
//	leg, _ := p.Route(ctx, directions.Request{From: "F", To: "J"})
//	for _, mv := range leg.Maneuvers {
//	    fmt.Println(mv.Instructions.Primary)
//	}
package indoornav
