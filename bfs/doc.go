// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first reachability over a pedestrian
// core.Graph, counting hops rather than meters.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex to hops from start
//   - Parent: map from vertex to the edge it was reached through
//   - Edges can be pruned with WithEdgeFilter, e.g. OnLevel keeps a walk on
//     one floor and NoVertical forbids stairs, escalators and elevators.
//   - Honors MaxDepth (d>0) or explicit "no limit" (d==0), and cancellation.
//
// Components splits a graph into its connected walkable parts; the builder
// uses it to report unreachable markers of a fixture.
//
// Determinism
//
//	core.Neighbors returns edges in insertion order and BFS enqueues
//	neighbors in that order, so the visit sequence is reproducible.
//
// Complexity: O(V + E) time, O(V) memory.
//
// Usage
//
//	res, err := bfs.BFS(g, "F", bfs.WithEdgeFilter(bfs.OnLevel(1)), bfs.WithMaxDepth(3))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation or ctx.Err()
//	}
//	path, _ := res.PathTo("K")
package bfs
