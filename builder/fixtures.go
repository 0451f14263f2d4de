// SPDX-License-Identifier: MIT
//
// File: fixtures.go
// Role: named reference maps used by tests, examples and the CLI.
//
// Contract:
//   - Each fixture returns fresh tables on every call; callers may mutate them.
//   - Layouts use a 100 m grid unless stated otherwise.

package builder

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
)

// Fixture is a reproducible map description.
type Fixture struct {
	Name     string
	ASCII    string
	GridSize float64
	Origin   orb.Point
	Ways     Ways
	Nodes    Nodes
}

// Build constructs the fixture graph; extra opts are applied after the
// fixture's own grid size and origin.
func (f Fixture) Build(opts ...BuilderOption) (*Map, error) {
	base := []BuilderOption{WithGridSize(f.GridSize), WithOrigin(f.Origin)}

	return Build(f.ASCII, f.Ways, f.Nodes, append(base, opts...)...)
}

// Campus is a two-building site with stairs, an escalator, an edge-modeled
// elevator (GH), node-modeled elevators (I, P) and a building entrance (E).
func Campus() Fixture {
	return Fixture{
		Name:     "campus",
		GridSize: DefaultGridSize,
		ASCII: `
          AzZ-Y-X-W
          |
          B
          |
          C---------x-------y
          |                 |
D----E----F----G----H---I---J--S--T--U
|         |         |
N         K         |
|         |         |
O         L         P
          |         |
          M         |
                    |
                    Q
`,
		Ways: Ways{
			"AB": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "0", TagLevelRef: "Parking"},
			"BC": {TagHighway: valueSteps, TagIndoor: valueYes, TagLevel: "0;1"},
			"CF": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "1", TagLevelRef: "Lobby"},

			"DE": {TagHighway: "footway", TagLevel: "1"},
			"EF": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "1", TagLevelRef: "Lobby"},

			"FK": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "1", TagLevelRef: "Lobby"},
			"KL": {TagHighway: valueSteps, TagConveying: valueYes, TagIndoor: valueYes, TagLevel: "1;2"},
			"LM": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "2"},

			"FG": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "1", TagLevelRef: "Lobby"},
			"GH": {TagHighway: valueElevator, TagIndoor: valueYes, TagLevel: "1;2"},
			"HI": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "2"},
			"IJ": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "3"},

			"DN": {TagHighway: valueSteps},
			"NO": {TagHighway: "footway"},

			"Cx": {TagHighway: valueSteps, TagIndoor: valueYes, TagLevel: "-1;0-2"},
			"xy": {TagHighway: valueSteps, TagIndoor: valueYes, TagLevel: "2;3"},
			"yJ": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "3"},
			"JS": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "3"},
			"ST": {TagHighway: valueSteps, TagLevel: "3;4"},
			"TU": {TagHighway: "footway", TagLevel: "4"},
			"AZ": {TagHighway: valueSteps, TagIndoor: valueYes, TagLevel: "0-4"},
			"ZY": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "4"},
			"YX": {TagHighway: valueSteps, TagIndoor: valueYes, TagLevel: "4;5"},
			"XW": {TagHighway: valueSteps, TagIndoor: valueYes, TagLevel: "5"},
			"HP": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "2"},
			"PQ": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "17"},
		},
		Nodes: Nodes{
			"E": {TagEntrance: valueYes, TagIndoor: valueYes},
			"I": {TagHighway: valueElevator, TagIndoor: valueYes, TagLevel: "2;3"},
			"P": {TagHighway: valueElevator, TagIndoor: valueYes, TagLevel: "1-25"},
		},
	}
}

// LevelStrip is a single corridor split into edges carrying assorted level
// descriptors; the lowercase nodes sit halfway along each edge.
func LevelStrip() Fixture {
	return Fixture{
		Name:     "levels",
		GridSize: DefaultGridSize,
		ASCII:    "A-z-B-y-C-x-D-w-E-v-F-u-G-t-H-s-I-r-J",
		Ways: Ways{
			"AB": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "1", TagLevelRef: "Parking"},
			"BC": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "0", TagLevelRef: "Lobby"},
			"CD": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "2", TagLevelRef: "2nd Floor"},
			"DE": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "100"},
			"EF": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "12;14"},
			"FG": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "-1;0"},
			"GH": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "85.5;12"},
			"HI": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "-2;-1;0-3"},
			"IJ": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "0-2.5"},
		},
	}
}

// ElevatorHub is a 1 m grid where corridor AB on level 0 reaches the
// level 3 corridors through the node-modeled elevator B.
func ElevatorHub() Fixture {
	return Fixture{
		Name:     "elevator-hub",
		GridSize: 1,
		Origin:   orb.Point{5.1079374, 52.0887174},
		ASCII: `
       E
       |
       |
A---B--C---D
       |
       |
       F
`,
		Ways: Ways{
			"AB": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "0"},
			"BC": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "3"},
			"CD": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "3"},
			"CE": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "3"},
			"CF": {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "3"},
		},
		Nodes: Nodes{
			"B": {TagHighway: valueElevator, TagIndoor: valueYes},
		},
	}
}

// SplitStairs is a 1 m grid with one staircase way ABCD tagged "1;2;3;4"
// and landings branching off at B and C.
func SplitStairs() Fixture {
	return Fixture{
		Name:     "split-stairs",
		GridSize: 1,
		Origin:   orb.Point{5.1079374, 52.0887174},
		ASCII: `
        E
        |
z---A---B--C---D---x
           |
           F
`,
		Ways: Ways{
			"zA":   {TagHighway: "footway", TagLevel: "0"},
			"ABCD": {TagHighway: valueSteps, TagLevel: "1;2;3;4"},
			"BE":   {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "2"},
			"CF":   {TagHighway: "corridor", TagIndoor: valueYes, TagLevel: "3"},
			"Dx":   {TagHighway: "footway", TagLevel: "4"},
		},
	}
}

// fixtures is the registry consulted by FixtureByName.
var fixtures = map[string]func() Fixture{
	"campus":       Campus,
	"levels":       LevelStrip,
	"elevator-hub": ElevatorHub,
	"split-stairs": SplitStairs,
}

// FixtureNames lists the registered fixture names in ascending order.
func FixtureNames() []string {
	out := make([]string, 0, len(fixtures))
	for n := range fixtures {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// FixtureByName returns the named fixture.
//
// Errors: ErrUnknownFixture.
func FixtureByName(name string) (Fixture, error) {
	fn, ok := fixtures[name]
	if !ok {
		return Fixture{}, fmt.Errorf("FixtureByName(%q): %w", name, ErrUnknownFixture)
	}

	return fn(), nil
}
