// SPDX-License-Identifier: MIT

// Package core provides a thread-safe in-memory pedestrian graph whose
// vertices and edges carry the attributes indoor routing needs.
//
// Vertices are intersections with a geographic position (orb.Point), a node
// type (street, node-modeled elevator, building entrance), an indoor flag and
// an optional reachable level set. Edges are walkable segments of a named way
// with a closed Use classification (plain, steps, escalator, elevator), an
// indoor flag, a level set, an optional explicit level label and a length.
//
// Edges are undirected: a pedestrian may walk them both ways, and adjacency is
// mirrored. Adjacency is stored as nested maps,
// adjacencyList[from][to][edgeID] = struct{}{}, so membership, insertion and
// lookup are O(1).
//
// Concurrency:
//
//	muVert guards the vertex catalog, muEdgeAdj guards edges and adjacency.
//	Lock order is always muVert -> muEdgeAdj.
//
// Determinism:
//
//	Vertices() sorts IDs ascending; Edges() and Neighbors() sort by insertion
//	sequence ("e1" < "e2" < ... < "e10").
//
// Errors:
//
//	ErrEmptyVertexID       - zero-length vertex ID.
//	ErrVertexNotFound      - missing vertex.
//	ErrEdgeNotFound        - missing edge.
//	ErrLoopNotAllowed      - edge from a vertex to itself.
//	ErrMultiEdgeNotAllowed - parallel edge without WithMultiEdges.
//	ErrBadLength           - negative or NaN edge length.
package core
