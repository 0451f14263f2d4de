// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, the Use/NodeType enumerations, options and
//       sentinel errors.

package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/indoornav/level"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadLength indicates a negative or NaN edge length.
	ErrBadLength = errors.New("core: bad edge length")
)

// Use is the closed classification of a walkable edge.
type Use uint8

const (
	// UsePlain is any walkway without vertical conveyance (footway, corridor).
	UsePlain Use = iota
	// UseSteps is a staircase.
	UseSteps
	// UseEscalator is a moving staircase.
	UseEscalator
	// UseElevator is an elevator modeled as an edge.
	UseElevator
)

// String returns the lowercase name of u.
func (u Use) String() string {
	switch u {
	case UsePlain:
		return "plain"
	case UseSteps:
		return "steps"
	case UseEscalator:
		return "escalator"
	case UseElevator:
		return "elevator"
	default:
		return fmt.Sprintf("use(%d)", uint8(u))
	}
}

// Valid reports whether u is one of the declared values.
func (u Use) Valid() bool { return u <= UseElevator }

// NodeType classifies a vertex.
type NodeType uint8

const (
	// NodeStreet is an ordinary intersection.
	NodeStreet NodeType = iota
	// NodeElevator is an elevator modeled as a routing node.
	NodeElevator
	// NodeBuildingEntrance is a door between outdoor and indoor space.
	NodeBuildingEntrance
)

// String returns the lowercase name of t.
func (t NodeType) String() string {
	switch t {
	case NodeStreet:
		return "street"
	case NodeElevator:
		return "elevator"
	case NodeBuildingEntrance:
		return "building_entrance"
	default:
		return fmt.Sprintf("node_type(%d)", uint8(t))
	}
}

// Vertex is an intersection of the pedestrian graph.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID string

	// Point is the geographic position (lon, lat).
	Point orb.Point

	// Type distinguishes node-modeled elevators and building entrances.
	Type NodeType

	// Indoor marks vertices inside a building.
	Indoor bool

	// Levels is the reachable level set of a node-modeled elevator; empty
	// means "whatever the adjoining edges say".
	Levels level.Set
}

// Edge is one walkable segment between two vertices.
type Edge struct {
	// ID uniquely identifies this edge ("e1", "e2", ...).
	ID string

	// From and To are the endpoints in digitizing order.
	From string
	To   string

	// Way is the name of the way this edge was split from.
	Way string

	// Use is the vertical-conveyance classification.
	Use Use

	// Indoor marks edges inside a building.
	Indoor bool

	// Levels are the floors the edge occupies; nil when untagged or when
	// LevelDescriptor failed to parse.
	Levels level.Set

	// LevelDescriptor keeps the raw tag so consumers can tell "untagged" from
	// "tagged but unparsable".
	LevelDescriptor string

	// LevelRef is the explicit level label ("Parking"), if any.
	LevelRef string

	// Length in meters.
	Length float64

	seq uint64
}

// Other returns the endpoint of e opposite to id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// LevelsInvalid reports whether a level descriptor was present but unusable.
func (e *Edge) LevelsInvalid() bool {
	return e.LevelDescriptor != "" && e.Levels.Empty()
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// VertexOption sets attributes of a vertex.
type VertexOption func(*Vertex)

// WithPoint sets the vertex position.
func WithPoint(p orb.Point) VertexOption {
	return func(v *Vertex) { v.Point = p }
}

// WithNodeType sets the node type.
func WithNodeType(t NodeType) VertexOption {
	return func(v *Vertex) { v.Type = t }
}

// WithVertexIndoor sets the indoor flag of a vertex.
func WithVertexIndoor(indoor bool) VertexOption {
	return func(v *Vertex) { v.Indoor = indoor }
}

// WithVertexLevels sets the reachable level set of a vertex.
func WithVertexLevels(s level.Set) VertexOption {
	return func(v *Vertex) { v.Levels = s }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithWay sets the way name.
func WithWay(name string) EdgeOption {
	return func(e *Edge) { e.Way = name }
}

// WithUse sets the use classification.
func WithUse(u Use) EdgeOption {
	return func(e *Edge) { e.Use = u }
}

// WithIndoor sets the indoor flag of an edge.
func WithIndoor(indoor bool) EdgeOption {
	return func(e *Edge) { e.Indoor = indoor }
}

// WithLevels sets the parsed level set and the raw descriptor it came from.
// Pass a nil set with a non-empty descriptor to record an unparsable tag.
func WithLevels(s level.Set, descriptor string) EdgeOption {
	return func(e *Edge) {
		e.Levels = s
		e.LevelDescriptor = descriptor
	}
}

// WithLevelRef sets the explicit level label.
func WithLevelRef(ref string) EdgeOption {
	return func(e *Edge) { e.LevelRef = ref }
}

// WithLength sets the edge length in meters.
func WithLength(meters float64) EdgeOption {
	return func(e *Edge) { e.Length = meters }
}

// Graph is the in-memory pedestrian graph.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacencyList.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	allowMulti bool // allow parallel edges

	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[from][to][edgeID] = struct{}{}, mirrored for every edge.
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph. By default parallel edges are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
