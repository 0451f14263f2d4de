// SPDX-License-Identifier: MIT

// Package directions assembles a walking leg from a pedestrian graph.
//
// A Planner runs the whole indoor narration pipeline for one origin and
// destination:
//
//	dijkstra.ShortestPath -> route.FromResult -> timeline.Build
//	    -> maneuver.Build -> narrative.Composer.Compose
//
// and returns a Leg carrying the path view, the level-change timeline and
// the narrated maneuvers. Edge info queries (Locate, EdgesOnLevel, Info)
// expose an edge's levels in external form for location search.
//
// A Planner holds no mutable state after New and may be shared between
// goroutines; RouteAll fans several requests out over a bounded errgroup.
package directions
