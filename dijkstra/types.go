// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: sentinel errors, costing Options, functional options and Result.

package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/indoornav/core"
)

// Sentinel errors returned by the pedestrian search.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrEmptyTarget indicates that ShortestPath was called without a target.
	ErrEmptyTarget = errors.New("dijkstra: target vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrUnreachable indicates that no path connects source and target.
	ErrUnreachable = errors.New("dijkstra: target unreachable")

	// ErrBadSpeed indicates a walking speed that is not strictly positive.
	ErrBadSpeed = errors.New("dijkstra: walking speed must be positive")

	// ErrBadPenalty indicates a negative or NaN penalty or traversal cost.
	ErrBadPenalty = errors.New("dijkstra: penalty must be non-negative")

	// ErrBadFactor indicates a steps factor that is not strictly positive.
	ErrBadFactor = errors.New("dijkstra: steps factor must be positive")

	// ErrBadMaxCost indicates a negative MaxCost.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Costing defaults.
const (
	// DefaultWalkingSpeedKph is the pedestrian walking speed.
	DefaultWalkingSpeedKph = 5.1

	// DefaultStepsFactor leaves stairs and escalators at walking pace.
	DefaultStepsFactor = 1.0

	// DefaultNodeElevatorCost is the ride time, in seconds per floor, of a
	// node-modeled elevator.
	DefaultNodeElevatorCost = 30.0
)

// Options configures the search and its pedestrian cost model. All costs are
// seconds.
//
// Source           starting vertex ID (required).
// Target           destination vertex ID (required by ShortestPath only).
// WalkingSpeedKph  pace on every edge.
// ElevatorPenalty  added once per elevator edge and once per elevator node ride.
// StepsFactor      multiplier on stairs and escalator edges.
// NodeElevatorCost per-floor ride time through a node-modeled elevator.
// MaxCost          labels above this cost are not expanded.
type Options struct {
	Source           string
	Target           string
	WalkingSpeedKph  float64
	ElevatorPenalty  float64
	StepsFactor      float64
	NodeElevatorCost float64
	MaxCost          float64
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// Target sets the destination vertex ID.
func Target(id string) Option {
	return func(o *Options) { o.Target = id }
}

// WithWalkingSpeed sets the walking speed in km/h; must be > 0.
func WithWalkingSpeed(kph float64) Option {
	if !(kph > 0) {
		panic(ErrBadSpeed.Error())
	}

	return func(o *Options) { o.WalkingSpeedKph = kph }
}

// WithElevatorPenalty adds s seconds to every elevator use. A penalty of an
// hour effectively routes over stairs whenever stairs exist.
func WithElevatorPenalty(s float64) Option {
	if !(s >= 0) {
		panic(ErrBadPenalty.Error())
	}

	return func(o *Options) { o.ElevatorPenalty = s }
}

// WithStepsFactor scales the walking time on stairs and escalators; must be > 0.
func WithStepsFactor(f float64) Option {
	if !(f > 0) {
		panic(ErrBadFactor.Error())
	}

	return func(o *Options) { o.StepsFactor = f }
}

// WithNodeElevatorCost sets the per-floor ride time of node-modeled elevators.
func WithNodeElevatorCost(s float64) Option {
	if !(s >= 0) {
		panic(ErrBadPenalty.Error())
	}

	return func(o *Options) { o.NodeElevatorCost = s }
}

// WithMaxCost stops expansion beyond s seconds.
func WithMaxCost(s float64) Option {
	if !(s >= 0) {
		panic(ErrBadMaxCost.Error())
	}

	return func(o *Options) { o.MaxCost = s }
}

// DefaultOptions returns Options initialized with the pedestrian defaults
// for the given source vertex ID.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		WalkingSpeedKph:  DefaultWalkingSpeedKph,
		StepsFactor:      DefaultStepsFactor,
		NodeElevatorCost: DefaultNodeElevatorCost,
		MaxCost:          math.Inf(1),
	}
}

// Result is one shortest path.
//
// Vertices has len(Edges)+1 entries; Edges[i] joins Vertices[i] and
// Vertices[i+1]. Cost is the total in seconds.
type Result struct {
	Vertices []string
	Edges    []*core.Edge
	Cost     float64
}
