// SPDX-License-Identifier: MIT

// Package route is the read-only view of one computed path that the
// timeline, maneuver and narrative packages consume.
//
// A Path holds n edges and n+1 nodes; Edges[i] runs from Nodes[i] to
// Nodes[i+1] in travel direction. Every PathEdge carries its use, indoor
// flag, parsed level set (or the fact that its descriptor was unusable),
// explicit level label, length and the turn angle at its start node. Nodes
// carry their type and, for node-modeled elevators, the reachable level set.
//
// Optional endpoint level hints (WithStartLevel, WithEndLevel) pin the
// floor of an ambiguous start or end location. A hint that the endpoint
// edge does not include is dropped with a warning.
//
// Paths are built once and never mutated; callers may share them between
// goroutines.
package route
