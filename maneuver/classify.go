// SPDX-License-Identifier: MIT
//
// File: classify.go
// Role: per-edge classification and angle → turn type mapping.

package maneuver

import (
	"github.com/katalvlaran/indoornav/core"
	"github.com/katalvlaran/indoornav/route"
)

// Classify returns the class of edge i of p.
//
// An indoor flip between edge i-1 and edge i classifies the boundary edge as
// BuildingEnter or BuildingExit, ahead of its use. Otherwise steps,
// escalator and elevator edges classify by use, and plain edges turning by
// more than the straight threshold classify as turns. Edges with unusable
// level data or an unknown use lose their special use and classify as
// plain walking (or a turn).
func Classify(p *route.Path, i int, opts ...Option) Classification {
	return classify(p, i, newConfig(opts...))
}

func classify(p *route.Path, i int, cfg config) Classification {
	e := p.Edges[i]
	if i > 0 && p.Edges[i-1].Indoor != e.Indoor {
		if e.Indoor {
			return Classification{Class: ClassBuildingEnter}
		}
		return Classification{Class: ClassBuildingExit}
	}

	if !degraded(e) {
		switch e.Use {
		case core.UseSteps:
			return Classification{Class: ClassSteps}
		case core.UseEscalator:
			return Classification{Class: ClassEscalator}
		case core.UseElevator:
			return Classification{Class: ClassElevator}
		}
	}

	if i > 0 && deviation(e.TurnAngle) > cfg.straight {
		return Classification{Class: ClassTurn, Angle: e.TurnAngle}
	}

	return Classification{Class: ClassPlain}
}

// degraded reports whether e's special use cannot be trusted.
func degraded(e route.PathEdge) bool {
	return e.LevelsInvalid || !e.Use.Valid()
}

// deviation is the unsigned heading change of a clockwise turn angle.
func deviation(angle float64) float64 {
	if angle > 180 {
		return 360 - angle
	}

	return angle
}

// TurnType maps a clockwise turn angle in [0, 360) to a turn maneuver type.
// Angles within 10° of straight map to TypeContinue.
func TurnType(angle float64) Type {
	switch {
	case angle <= 10 || angle >= 350:
		return TypeContinue
	case angle < 45:
		return TypeSlightRight
	case angle <= 135:
		return TypeRight
	case angle < 160:
		return TypeSharpRight
	case angle <= 200:
		return TypeUTurn
	case angle < 225:
		return TypeSharpLeft
	case angle <= 315:
		return TypeLeft
	default:
		return TypeSlightLeft
	}
}

// typeOf is the maneuver type opened by an edge of class c.
func typeOf(c Classification) Type {
	switch c.Class {
	case ClassTurn:
		return TurnType(c.Angle)
	case ClassSteps:
		return TypeStepsEnter
	case ClassEscalator:
		return TypeEscalatorEnter
	case ClassElevator:
		return TypeElevatorEnter
	case ClassBuildingEnter:
		return TypeBuildingEnter
	case ClassBuildingExit:
		return TypeBuildingExit
	default:
		return TypeContinue
	}
}

// isSpecial reports whether c is a vertical-conveyance class.
func isSpecial(c Class) bool {
	return c == ClassSteps || c == ClassEscalator || c == ClassElevator
}
