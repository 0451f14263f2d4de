// SPDX-License-Identifier: MIT

// Package dijkstra finds the cheapest pedestrian path through a core.Graph.
//
// Costs are seconds. An edge costs its length at WalkingSpeedKph; stairs and
// escalators are scaled by StepsFactor; elevator edges add ElevatorPenalty.
// Passing through a node-modeled elevator costs ElevatorPenalty plus
// NodeElevatorCost per floor between the arrival and departure edges.
//
// Dijkstra returns costs and arrival edges for every vertex; ShortestPath
// stops at Options.Target and returns the vertex and edge sequence that the
// route package turns into a Path. Arrival edges rather than predecessor
// vertices are recorded because parallel edges (several ways between the
// same two nodes) are legal.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a lazy decrease-key heap.
//   - Space: O(V + E).
//
// Errors (sentinel):
//
//   - ErrEmptySource, ErrEmptyTarget, ErrNilGraph, ErrVertexNotFound, ErrUnreachable.
//   - ErrBadSpeed, ErrBadPenalty, ErrBadFactor, ErrBadMaxCost are the panic
//     messages of option constructors given meaningless values.
//
// The search reads the graph under its locks; concurrent searches on one
// graph are safe as long as nobody mutates it.
package dijkstra
