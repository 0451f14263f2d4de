// SPDX-License-Identifier: MIT
//
// File: costing.go
// Role: pedestrian edge and node-transition costs.

package dijkstra

import (
	"math"

	"github.com/katalvlaran/indoornav/core"
	"github.com/katalvlaran/indoornav/level"
)

// kphToMps converts km/h to m/s.
const kphToMps = 1000.0 / 3600.0

// EdgeCost is the time in seconds to walk e.
func (o Options) EdgeCost(e *core.Edge) float64 {
	sec := e.Length / (o.WalkingSpeedKph * kphToMps)
	switch e.Use {
	case core.UseSteps, core.UseEscalator:
		sec *= o.StepsFactor
	case core.UseElevator:
		sec += o.ElevatorPenalty
	}

	return sec
}

// NodeCost is the time in seconds to pass through v arriving on in and
// leaving on out. Only node-modeled elevators cost anything; the ride time
// grows with the number of floors between the two edges (at least one).
func (o Options) NodeCost(v *core.Vertex, in, out *core.Edge) float64 {
	if v == nil || v.Type != core.NodeElevator || in == nil || out == nil {
		return 0
	}

	return o.ElevatorPenalty + o.NodeElevatorCost*floorsBetween(in.Levels, out.Levels)
}

// floorsBetween counts floors between two edges' representative levels.
func floorsBetween(a, b level.Set) float64 {
	la, okA := a.Representative()
	lb, okB := b.Representative()
	if !okA || !okB {
		return 1
	}

	return max(1, math.Round(math.Abs(lb-la)))
}
