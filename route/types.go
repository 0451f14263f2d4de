// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: PathNode, PathEdge, Path and sentinel errors.

package route

import (
	"errors"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/indoornav/core"
	"github.com/katalvlaran/indoornav/level"
)

// Sentinel errors for path construction.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("route: graph is nil")

	// ErrEmptyPath indicates a path without edges.
	ErrEmptyPath = errors.New("route: path has no edges")

	// ErrDisconnected indicates an edge that does not join its neighbouring vertices.
	ErrDisconnected = errors.New("route: edge does not join consecutive vertices")
)

// PathNode is the view of one vertex along the path.
type PathNode struct {
	Index  int
	ID     string
	Point  orb.Point
	Type   core.NodeType
	Indoor bool

	// Levels is the reachable set of a node-modeled elevator.
	Levels level.Set
}

// IsElevator reports whether the node is a node-modeled elevator.
func (n PathNode) IsElevator() bool { return n.Type == core.NodeElevator }

// PathEdge is the view of one traversed edge.
type PathEdge struct {
	Index    int
	ID       string
	From, To string
	Way      string
	Use      core.Use
	Indoor   bool

	// Levels is nil when the edge is untagged or LevelsInvalid is set.
	Levels        level.Set
	LevelsInvalid bool
	LevelRef      string

	// Length in meters.
	Length float64

	// Heading is the compass bearing at the start node, in [0, 360).
	Heading float64

	// TurnAngle is the clockwise change of heading at the start node in whole
	// degrees, [0, 360): 0 straight on, 90 right, 180 reverse, 270 left. Zero
	// for the first edge.
	TurnAngle float64
}

// SingleLevel returns the edge's level when it denotes exactly one floor.
func (e PathEdge) SingleLevel() (float64, bool) { return e.Levels.SingleValue() }

// Path is an ordered, immutable sequence of nodes and edges.
type Path struct {
	Nodes []PathNode
	Edges []PathEdge

	// StartLevel and EndLevel are optional floor hints for the endpoints.
	StartLevel *float64
	EndLevel   *float64
}

// Len returns the number of edges.
func (p *Path) Len() int { return len(p.Edges) }

// Length returns the summed length in meters of edges first..last inclusive.
// An empty or inverted range yields 0.
func (p *Path) Length(first, last int) float64 {
	var sum float64
	for i := max(first, 0); i <= last && i < len(p.Edges); i++ {
		sum += p.Edges[i].Length
	}

	return sum
}

// EdgesOnLevel returns the indices of path edges whose level set includes v.
func (p *Path) EdgesOnLevel(v float64) []int {
	var out []int
	for i := range p.Edges {
		if level.Includes(p.Edges[i].Levels, v) {
			out = append(out, i)
		}
	}

	return out
}
