// SPDX-License-Identifier: MIT
// Package maneuver_test covers classification, the merge predicate and
// level annotation on hand-made paths and on campus routes.

package maneuver_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/indoornav/builder"
	"github.com/katalvlaran/indoornav/core"
	"github.com/katalvlaran/indoornav/dijkstra"
	"github.com/katalvlaran/indoornav/level"
	"github.com/katalvlaran/indoornav/maneuver"
	"github.com/katalvlaran/indoornav/route"
	"github.com/katalvlaran/indoornav/timeline"
)

// edge describes one hand-made path edge.
type edge struct {
	use    core.Use
	indoor bool
	levels string
	turn   float64
}

func pathOf(edges ...edge) *route.Path {
	p := &route.Path{Nodes: make([]route.PathNode, len(edges)+1)}
	for i := range p.Nodes {
		p.Nodes[i].Index = i
	}
	for i, e := range edges {
		pe := route.PathEdge{Index: i, Use: e.use, Indoor: e.indoor, TurnAngle: e.turn, Length: 10}
		if e.levels != "" {
			s, err := level.Parse(e.levels)
			if err != nil {
				pe.LevelsInvalid = true
			} else {
				pe.Levels = s
			}
		}
		p.Edges = append(p.Edges, pe)
	}

	return p
}

// shape is the comparable outline of a maneuver.
type shape struct {
	Type        maneuver.Type
	First, Last int
}

func shapes(ms []maneuver.Maneuver) []shape {
	out := make([]shape, len(ms))
	for i, m := range ms {
		out[i] = shape{m.Type, m.FirstEdge, m.LastEdge}
	}

	return out
}

func build(t *testing.T, p *route.Path, opts ...maneuver.Option) []maneuver.Maneuver {
	t.Helper()
	ms, err := maneuver.Build(p, timeline.Build(p), opts...)
	require.NoError(t, err)

	return ms
}

func TestBuild_EmptyPath(t *testing.T) {
	_, err := maneuver.Build(nil, nil)
	assert.ErrorIs(t, err, maneuver.ErrEmptyPath)
	_, err = maneuver.Build(&route.Path{}, nil)
	assert.ErrorIs(t, err, maneuver.ErrEmptyPath)
}

func TestBuild_SplitStairsMergeIntoOne(t *testing.T) {
	p := pathOf(
		edge{use: core.UseSteps, indoor: true, levels: "0"},
		edge{use: core.UseSteps, indoor: true, levels: "1"},
		edge{use: core.UseSteps, indoor: true, levels: "1"},
		edge{use: core.UseSteps, indoor: true, levels: "2"},
	)
	ms := build(t, p)

	want := []shape{{maneuver.TypeStepsEnter, 0, 3}, {maneuver.TypeDestination, 4, 3}}
	if diff := cmp.Diff(want, shapes(ms)); diff != "" {
		t.Fatalf("maneuvers (-want +got):\n%s", diff)
	}
	require.NotNil(t, ms[0].StartLevel)
	require.NotNil(t, ms[0].EndLevel)
	assert.Equal(t, 0.0, ms[0].StartLevel.Value)
	assert.Equal(t, 2.0, ms[0].EndLevel.Value)
	assert.Equal(t, 40.0, ms[0].Length)
	assert.True(t, ms[0].ChangesLevel())
}

func TestBuild_StairsEndOnTheirOwnLastFloor(t *testing.T) {
	p := pathOf(
		edge{use: core.UseSteps, indoor: true, levels: "0"},
		edge{use: core.UseSteps, indoor: true, levels: "1"},
		edge{use: core.UseSteps, indoor: true, levels: "1"},
		edge{use: core.UseSteps, indoor: true, levels: "2"},
		edge{indoor: true, levels: "3"},
	)
	ms := build(t, p)

	assert.Equal(t, []shape{
		{maneuver.TypeStepsEnter, 0, 3},
		{maneuver.TypeContinue, 4, 4},
		{maneuver.TypeDestination, 5, 4},
	}, shapes(ms))
	require.NotNil(t, ms[0].EndLevel)
	assert.Equal(t, 0.0, ms[0].StartLevel.Value)
	assert.Equal(t, 2.0, ms[0].EndLevel.Value, "the corridor's floor belongs to the next maneuver")
	assert.Equal(t, 3.0, ms[1].EndLevel.Value)
}

func TestBuild_EdgeElevatorBetweenCorridors(t *testing.T) {
	p := pathOf(
		edge{indoor: true, levels: "1"},
		edge{use: core.UseElevator, indoor: true, levels: "1;2"},
		edge{indoor: true, levels: "2"},
	)
	ms := build(t, p)

	want := []shape{
		{maneuver.TypeStart, 0, 0},
		{maneuver.TypeElevatorEnter, 1, 1},
		{maneuver.TypeContinue, 2, 2},
		{maneuver.TypeDestination, 3, 2},
	}
	assert.Equal(t, want, shapes(ms))
	assert.Equal(t, 1.0, ms[1].StartLevel.Value)
	assert.Equal(t, 2.0, ms[1].EndLevel.Value)
}

func TestBuild_BuildingEnterBeatsSameUse(t *testing.T) {
	p := pathOf(edge{levels: "0"}, edge{indoor: true, levels: "0"}, edge{indoor: true, levels: "0"})
	assert.Equal(t, []shape{
		{maneuver.TypeStart, 0, 0},
		{maneuver.TypeBuildingEnter, 1, 2},
		{maneuver.TypeDestination, 3, 2},
	}, shapes(build(t, p)))

	// The flip wins even when the boundary edge is a staircase.
	p = pathOf(edge{indoor: true, levels: "3"}, edge{use: core.UseSteps, levels: "3;4"})
	assert.Equal(t, maneuver.TypeBuildingExit, build(t, p)[1].Type)
}

func TestBuild_TurnsAndLevelChangesSplitPlainWalks(t *testing.T) {
	p := pathOf(
		edge{levels: "0"},
		edge{levels: "0", turn: 20},  // within threshold: merged
		edge{levels: "0", turn: 90},  // right turn
		edge{levels: "1"},            // floor change on plain walk
		edge{levels: "1", turn: 270}, // left turn
	)
	assert.Equal(t, []shape{
		{maneuver.TypeStart, 0, 1},
		{maneuver.TypeRight, 2, 2},
		{maneuver.TypeContinue, 3, 3},
		{maneuver.TypeLeft, 4, 4},
		{maneuver.TypeDestination, 5, 4},
	}, shapes(build(t, p)))

	// A tighter threshold turns the 20° bend into its own maneuver.
	ms := build(t, p, maneuver.WithStraightThreshold(10))
	assert.Equal(t, maneuver.TypeSlightRight, ms[1].Type)
}

func TestBuild_TurnSplitsStairs(t *testing.T) {
	p := pathOf(
		edge{use: core.UseSteps, levels: "0;1"},
		edge{use: core.UseSteps, levels: "1;2", turn: 180},
	)
	assert.Equal(t, []shape{
		{maneuver.TypeStepsEnter, 0, 0},
		{maneuver.TypeStepsEnter, 1, 1},
		{maneuver.TypeDestination, 2, 1},
	}, shapes(build(t, p)))
}

func TestBuild_NodeElevatorIsPointManeuver(t *testing.T) {
	p := pathOf(edge{indoor: true, levels: "2"}, edge{indoor: true, levels: "3"})
	p.Nodes[1].Type = core.NodeElevator
	p.Nodes[1].Levels = level.MustParse("2;3")
	ms := build(t, p)

	assert.Equal(t, []shape{
		{maneuver.TypeStart, 0, 0},
		{maneuver.TypeElevatorEnter, 1, 0},
		{maneuver.TypeContinue, 1, 1},
		{maneuver.TypeDestination, 2, 1},
	}, shapes(ms))
	require.NotNil(t, ms[0].EndLevel)
	assert.Equal(t, 2.0, ms[0].EndLevel.Value)
	assert.False(t, ms[0].ChangesLevel(), "the walk to the elevator stays on its floor")
	assert.True(t, ms[1].IsPoint())
	assert.Zero(t, ms[1].EdgeCount())
	assert.Equal(t, 2.0, ms[1].StartLevel.Value)
	assert.Equal(t, 3.0, ms[1].EndLevel.Value)
}

func TestBuild_DegradedEdges(t *testing.T) {
	p := pathOf(
		edge{levels: "0"},
		edge{use: core.UseSteps, levels: "0;;1"},
		edge{use: core.Use(42), levels: "0"},
	)
	ms := build(t, p)
	assert.Equal(t, []shape{{maneuver.TypeStart, 0, 2}, {maneuver.TypeDestination, 3, 2}}, shapes(ms))
	assert.Equal(t, maneuver.ClassPlain, maneuver.Classify(p, 1).Class)

	only := pathOf(edge{use: core.UseSteps, levels: "zz"})
	ms = build(t, only)
	assert.Equal(t, maneuver.TypeStart, ms[0].Type)
	assert.Nil(t, ms[0].StartLevel, "no level annotation for unusable data")
}

func TestBuild_Idempotent(t *testing.T) {
	p := pathOf(
		edge{levels: "0"},
		edge{use: core.UseSteps, levels: "0;1"},
		edge{levels: "1", turn: 90},
		edge{indoor: true, levels: "1"},
	)
	a := build(t, p)
	b := build(t, p)
	assert.Equal(t, a, b)
}

func TestTurnType(t *testing.T) {
	cases := map[float64]maneuver.Type{
		0:   maneuver.TypeContinue,
		355: maneuver.TypeContinue,
		30:  maneuver.TypeSlightRight,
		90:  maneuver.TypeRight,
		150: maneuver.TypeSharpRight,
		180: maneuver.TypeUTurn,
		210: maneuver.TypeSharpLeft,
		270: maneuver.TypeLeft,
		330: maneuver.TypeSlightLeft,
	}
	for angle, want := range cases {
		assert.Equal(t, want, maneuver.TurnType(angle), "angle %v", angle)
	}
	assert.True(t, maneuver.TypeSharpLeft.IsTurn())
	assert.True(t, maneuver.TypeStepsEnter.IsVertical())
	assert.True(t, maneuver.TypeBuildingExit.IsBuilding())
	assert.Equal(t, "escalator_enter", maneuver.TypeEscalatorEnter.String())
	assert.Equal(t, "type(99)", maneuver.Type(99).String())
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { maneuver.WithStraightThreshold(-1) })
	assert.Panics(t, func() { maneuver.WithStraightThreshold(180) })
	assert.Panics(t, func() { maneuver.WithLogger(nil) })
}

// ------------------------------------------------------------------------
// Campus routes
// ------------------------------------------------------------------------

type CampusSuite struct {
	suite.Suite
	graph *core.Graph
}

func TestCampusSuite(t *testing.T) {
	suite.Run(t, new(CampusSuite))
}

func (s *CampusSuite) SetupSuite() {
	m, err := builder.Campus().Build()
	s.Require().NoError(err)
	s.graph = m.Graph
}

func (s *CampusSuite) route(from, to string, dopts []dijkstra.Option, ropts ...route.Option) []maneuver.Maneuver {
	r, err := dijkstra.ShortestPath(s.graph, append([]dijkstra.Option{dijkstra.Source(from), dijkstra.Target(to)}, dopts...)...)
	s.Require().NoError(err)
	p, err := route.FromResult(s.graph, r, ropts...)
	s.Require().NoError(err)
	ms, err := maneuver.Build(p, timeline.Build(p))
	s.Require().NoError(err)

	return ms
}

func types(ms []maneuver.Maneuver) []maneuver.Type {
	out := make([]maneuver.Type, len(ms))
	for i, m := range ms {
		out[i] = m.Type
	}

	return out
}

func (s *CampusSuite) TestElevators() {
	ms := s.route("F", "J", nil)
	s.Equal([]maneuver.Type{
		maneuver.TypeStart,
		maneuver.TypeElevatorEnter,
		maneuver.TypeContinue,
		maneuver.TypeElevatorEnter,
		maneuver.TypeContinue,
		maneuver.TypeDestination,
	}, types(ms))
	s.False(ms[1].IsPoint(), "GH is an elevator edge")
	s.True(ms[3].IsPoint(), "I is an elevator node")
	s.Equal("Lobby", ms[1].StartLevel.Text())
	s.Equal("Level 2", ms[1].EndLevel.Text())
	s.Equal("Level 3", ms[3].EndLevel.Text())
}

func (s *CampusSuite) TestIndoorStairsUseTaggedLabels() {
	ms := s.route("F", "A", nil)
	s.Equal([]maneuver.Type{
		maneuver.TypeStart, maneuver.TypeStepsEnter, maneuver.TypeContinue, maneuver.TypeDestination,
	}, types(ms))
	s.Equal("Lobby", ms[1].StartLevel.Text())
	s.Equal("Parking", ms[1].EndLevel.Text())
}

func (s *CampusSuite) TestOutdoorStairsAndEscalator() {
	s.Equal([]maneuver.Type{
		maneuver.TypeStart, maneuver.TypeStepsEnter, maneuver.TypeContinue, maneuver.TypeDestination,
	}, types(s.route("E", "O", nil)))
	s.Equal([]maneuver.Type{
		maneuver.TypeStart, maneuver.TypeEscalatorEnter, maneuver.TypeContinue, maneuver.TypeDestination,
	}, types(s.route("F", "M", nil)))
}

func (s *CampusSuite) TestBuildingBoundaries() {
	s.Equal([]maneuver.Type{
		maneuver.TypeStart, maneuver.TypeBuildingEnter, maneuver.TypeDestination,
	}, types(s.route("D", "F", nil)))
	s.Equal([]maneuver.Type{
		maneuver.TypeStart, maneuver.TypeBuildingExit, maneuver.TypeDestination,
	}, types(s.route("F", "D", nil)))
	s.Equal([]maneuver.Type{
		maneuver.TypeStart, maneuver.TypeBuildingExit, maneuver.TypeContinue, maneuver.TypeDestination,
	}, types(s.route("J", "U", nil)))
}

func (s *CampusSuite) TestCombinedStairsThenTurn() {
	ms := s.route("F", "J", []dijkstra.Option{dijkstra.WithElevatorPenalty(3600)})
	s.Equal([]maneuver.Type{
		maneuver.TypeStart, maneuver.TypeStepsEnter, maneuver.TypeRight, maneuver.TypeDestination,
	}, types(ms))
	s.Equal(1, ms[1].FirstEdge)
	s.Equal(2, ms[1].LastEdge)
	s.Equal("Level 3", ms[1].EndLevel.Text())
}

func (s *CampusSuite) TestStartOnStairs() {
	ms := s.route("B", "C", nil, route.WithStartLevel(0), route.WithEndLevel(1))
	s.Equal([]maneuver.Type{maneuver.TypeStepsEnter, maneuver.TypeDestination}, types(ms))
}
