// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: maneuver types, edge classes, the Maneuver record and its
//       instruction slots.

package maneuver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/indoornav/label"
)

// ErrEmptyPath indicates a path without edges; it signals a bug in the
// path search, not a data-quality problem.
var ErrEmptyPath = errors.New("maneuver: empty path")

// Type is the user-facing kind of a maneuver.
type Type uint8

const (
	TypeStart Type = iota
	TypeDestination
	TypeContinue
	TypeSlightRight
	TypeRight
	TypeSharpRight
	TypeUTurn
	TypeSharpLeft
	TypeLeft
	TypeSlightLeft
	TypeElevatorEnter
	TypeEscalatorEnter
	TypeStepsEnter
	TypeBuildingEnter
	TypeBuildingExit
)

var typeNames = [...]string{
	TypeStart:          "start",
	TypeDestination:    "destination",
	TypeContinue:       "continue",
	TypeSlightRight:    "slight_right",
	TypeRight:          "right",
	TypeSharpRight:     "sharp_right",
	TypeUTurn:          "uturn",
	TypeSharpLeft:      "sharp_left",
	TypeLeft:           "left",
	TypeSlightLeft:     "slight_left",
	TypeElevatorEnter:  "elevator_enter",
	TypeEscalatorEnter: "escalator_enter",
	TypeStepsEnter:     "steps_enter",
	TypeBuildingEnter:  "building_enter",
	TypeBuildingExit:   "building_exit",
}

// String returns the snake_case name of t.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}

	return fmt.Sprintf("type(%d)", uint8(t))
}

// MarshalText renders t by name.
func (t Type) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// IsTurn reports whether t is one of the seven turn types.
func (t Type) IsTurn() bool { return t >= TypeSlightRight && t <= TypeSlightLeft }

// IsVertical reports whether t enters an elevator, escalator or stairs.
func (t Type) IsVertical() bool { return t >= TypeElevatorEnter && t <= TypeStepsEnter }

// IsBuilding reports whether t crosses a building boundary.
func (t Type) IsBuilding() bool { return t == TypeBuildingEnter || t == TypeBuildingExit }

// Class is the classification of one path edge.
type Class uint8

const (
	ClassPlain Class = iota
	ClassTurn
	ClassSteps
	ClassEscalator
	ClassElevator
	ClassBuildingEnter
	ClassBuildingExit
)

var classNames = [...]string{
	ClassPlain:         "plain",
	ClassTurn:          "turn",
	ClassSteps:         "steps",
	ClassEscalator:     "escalator",
	ClassElevator:      "elevator",
	ClassBuildingEnter: "building_enter",
	ClassBuildingExit:  "building_exit",
}

// String returns the snake_case name of c.
func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}

	return fmt.Sprintf("class(%d)", uint8(c))
}

// Classification is the class of one edge plus, for ClassTurn, its angle.
type Classification struct {
	Class Class
	Angle float64
}

// InstructionSet holds the text slots of one maneuver. Empty strings mean
// "no text for this slot".
type InstructionSet struct {
	Primary              string `json:"primary" yaml:"primary"`
	VerbalPreTransition  string `json:"verbal_pre_transition,omitempty" yaml:"verbal_pre_transition,omitempty"`
	VerbalTransition     string `json:"verbal_transition,omitempty" yaml:"verbal_transition,omitempty"`
	VerbalPostTransition string `json:"verbal_post_transition,omitempty" yaml:"verbal_post_transition,omitempty"`

	// ArrivalMeters is the raw distance the arrival phrase speaks about;
	// VerbalArrivalDistance is that distance rendered by a formatter.
	ArrivalMeters         *float64 `json:"arrival_meters,omitempty" yaml:"arrival_meters,omitempty"`
	VerbalArrivalDistance string   `json:"verbal_arrival_distance,omitempty" yaml:"verbal_arrival_distance,omitempty"`
}

// Maneuver is a contiguous, user-facing instruction unit.
//
// FirstEdge..LastEdge is the inclusive edge range. Point maneuvers (a
// node-modeled elevator, the destination) have an empty range with
// FirstEdge = Node and LastEdge = Node-1.
type Maneuver struct {
	Type      Type `json:"type" yaml:"type"`
	FirstEdge int  `json:"first_edge" yaml:"first_edge"`
	LastEdge  int  `json:"last_edge" yaml:"last_edge"`

	// Node is the path node at which the maneuver begins.
	Node int `json:"node" yaml:"node"`

	StartLevel *label.Level `json:"start_level,omitempty" yaml:"start_level,omitempty"`
	EndLevel   *label.Level `json:"end_level,omitempty" yaml:"end_level,omitempty"`

	// Way is the name of the first edge's way ("" for point maneuvers).
	Way string `json:"way,omitempty" yaml:"way,omitempty"`

	// Heading is the compass bearing at Node; TurnAngle the turn taken there.
	Heading   float64 `json:"heading" yaml:"heading"`
	TurnAngle float64 `json:"turn_angle" yaml:"turn_angle"`

	// Length in meters of the covered edges.
	Length float64 `json:"length_m" yaml:"length_m"`

	Instructions InstructionSet `json:"instructions" yaml:"instructions"`
}

// IsPoint reports whether m covers no edges.
func (m Maneuver) IsPoint() bool { return m.LastEdge < m.FirstEdge }

// EdgeCount returns the number of covered edges.
func (m Maneuver) EdgeCount() int { return max(0, m.LastEdge-m.FirstEdge+1) }

// ChangesLevel reports whether start and end levels differ.
func (m Maneuver) ChangesLevel() bool {
	_, changed := label.Change(m.StartLevel, m.EndLevel)

	return changed && m.StartLevel != nil
}
