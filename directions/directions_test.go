// SPDX-License-Identifier: MIT
// Package directions_test exercises the full pipeline on the fixture maps.

package directions_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/indoornav/bfs"
	"github.com/katalvlaran/indoornav/builder"
	"github.com/katalvlaran/indoornav/dijkstra"
	"github.com/katalvlaran/indoornav/directions"
	"github.com/katalvlaran/indoornav/level"
	"github.com/katalvlaran/indoornav/maneuver"
	"github.com/katalvlaran/indoornav/narrative"
	"github.com/katalvlaran/indoornav/route"
	"github.com/katalvlaran/indoornav/timeline"
)

func planner(t *testing.T, f builder.Fixture, opts ...directions.Option) (*directions.Planner, *builder.Map) {
	t.Helper()
	m, err := f.Build()
	require.NoError(t, err)
	p, err := directions.New(m.Graph, opts...)
	require.NoError(t, err)

	return p, m
}

func types(ms []maneuver.Maneuver) []maneuver.Type {
	out := make([]maneuver.Type, len(ms))
	for i, m := range ms {
		out[i] = m.Type
	}

	return out
}

func TestNew_NilGraph(t *testing.T) {
	_, err := directions.New(nil)
	assert.ErrorIs(t, err, directions.ErrNilGraph)
}

func TestRoute_NodeElevatorMultiCue(t *testing.T) {
	p, _ := planner(t, builder.ElevatorHub())
	leg, err := p.Route(context.Background(), directions.Request{From: "A", To: "F"})
	require.NoError(t, err)

	want := []maneuver.Type{
		maneuver.TypeStart,
		maneuver.TypeElevatorEnter,
		maneuver.TypeContinue,
		maneuver.TypeRight,
		maneuver.TypeDestination,
	}
	if diff := cmp.Diff(want, types(leg.Maneuvers)); diff != "" {
		t.Fatalf("maneuver types (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]timeline.Entry{{Position: 0, Level: 0}, {Position: 1, Level: 3}}, leg.LevelChanges); diff != "" {
		t.Fatalf("level changes (-want +got):\n%s", diff)
	}

	elevator := leg.Maneuvers[1]
	assert.True(t, elevator.IsPoint())
	assert.Equal(t, "Take the elevator to Level 3.", elevator.Instructions.Primary)
	assert.Equal(t, "Take the elevator to Level 3.", elevator.Instructions.VerbalTransition)
	assert.Equal(t, "Take the elevator to Level 3. Then Turn right onto CF.", elevator.Instructions.VerbalPostTransition)
	assert.Equal(t, "Continue for less than 10 meters.", elevator.Instructions.VerbalArrivalDistance)

	assert.InDelta(t, 10, leg.Length, 0.05)
	assert.Greater(t, leg.Cost, float64(dijkstra.DefaultNodeElevatorCost))
	assert.Equal(t, 3, leg.Path.Len())
}

func TestRoute_CampusElevators(t *testing.T) {
	p, _ := planner(t, builder.Campus())
	leg, err := p.Route(context.Background(), directions.Request{From: "F", To: "J"})
	require.NoError(t, err)

	require.Len(t, leg.Maneuvers, 6)
	assert.Equal(t, []timeline.Entry{{Position: 0, Level: 1}, {Position: 2, Level: 2}, {Position: 3, Level: 3}}, leg.LevelChanges)

	start := leg.Maneuvers[0].Instructions
	assert.Equal(t, "Walk east on FG.", start.Primary)
	assert.Equal(t, "Walk east.", start.VerbalPreTransition)
	assert.Equal(t, "Continue for 500 meters.", start.VerbalArrivalDistance)

	assert.Equal(t, maneuver.InstructionSet{Primary: "Take the elevator to Level 2."}, leg.Maneuvers[1].Instructions)

	node := leg.Maneuvers[3]
	assert.True(t, node.IsPoint())
	assert.Equal(t, "Take the elevator to Level 3.", node.Instructions.Primary)
	assert.Equal(t, "Continue for 400 meters.", node.Instructions.VerbalArrivalDistance)

	assert.Equal(t, "You have arrived at your destination.", leg.Maneuvers[5].Instructions.Primary)
}

func TestRoute_StairsNarration(t *testing.T) {
	p, _ := planner(t, builder.Campus())
	ctx := context.Background()

	leg, err := p.Route(ctx, directions.Request{From: "F", To: "A"})
	require.NoError(t, err)
	require.Equal(t, maneuver.TypeStepsEnter, leg.Maneuvers[1].Type)
	assert.Equal(t, "Take the stairs to Parking.", leg.Maneuvers[1].Instructions.Primary)

	leg, err = p.Route(ctx, directions.Request{From: "E", To: "O"})
	require.NoError(t, err)
	require.Equal(t, maneuver.TypeStepsEnter, leg.Maneuvers[1].Type)
	assert.Equal(t, "Take the stairs.", leg.Maneuvers[1].Instructions.Primary, "untagged outdoor stairs")

	leg, err = p.Route(ctx, directions.Request{From: "F", To: "M"})
	require.NoError(t, err)
	require.Equal(t, maneuver.TypeEscalatorEnter, leg.Maneuvers[1].Type)
	assert.Equal(t, maneuver.InstructionSet{Primary: "Take the escalator to Level 2."}, leg.Maneuvers[1].Instructions)
}

func TestRoute_Buildings(t *testing.T) {
	p, _ := planner(t, builder.Campus())
	ctx := context.Background()

	leg, err := p.Route(ctx, directions.Request{From: "D", To: "F"})
	require.NoError(t, err)
	assert.Equal(t, "Enter the building, and continue on EF.", leg.Maneuvers[1].Instructions.Primary)

	leg, err = p.Route(ctx, directions.Request{From: "F", To: "D"})
	require.NoError(t, err)
	assert.Equal(t, "Exit the building, and continue on DE.", leg.Maneuvers[1].Instructions.Primary)
}

func TestRoute_SplitStairs(t *testing.T) {
	p, _ := planner(t, builder.SplitStairs())
	lo, hi := 0.0, 4.0
	leg, err := p.Route(context.Background(), directions.Request{From: "z", To: "x", StartLevel: &lo, EndLevel: &hi})
	require.NoError(t, err)

	assert.Equal(t, []maneuver.Type{
		maneuver.TypeStart, maneuver.TypeStepsEnter, maneuver.TypeContinue, maneuver.TypeDestination,
	}, types(leg.Maneuvers))
	stairs := leg.Maneuvers[1]
	assert.Equal(t, 1, stairs.FirstEdge)
	assert.Equal(t, 3, stairs.LastEdge)
	assert.Equal(t, "Take the stairs to Level 4. Then Continue on Dx.", stairs.Instructions.VerbalPostTransition)
}

func TestRoute_ElevatorPenaltyPrefersStairs(t *testing.T) {
	p, _ := planner(t, builder.Campus(), directions.WithCosting(dijkstra.WithElevatorPenalty(3600)))
	leg, err := p.Route(context.Background(), directions.Request{From: "F", To: "J"})
	require.NoError(t, err)
	assert.Equal(t, []maneuver.Type{
		maneuver.TypeStart, maneuver.TypeStepsEnter, maneuver.TypeRight, maneuver.TypeDestination,
	}, types(leg.Maneuvers))
}

func TestRoute_Options(t *testing.T) {
	silent := narrative.NewComposer(narrative.WithMultiCueSeconds(0))
	p, _ := planner(t, builder.ElevatorHub(),
		directions.WithComposer(silent),
		directions.WithManeuverOptions(maneuver.WithStraightThreshold(120)),
	)
	leg, err := p.Route(context.Background(), directions.Request{From: "A", To: "F"})
	require.NoError(t, err)

	// The right turn at C is absorbed into the walk after the elevator.
	assert.Equal(t, []maneuver.Type{
		maneuver.TypeStart, maneuver.TypeElevatorEnter, maneuver.TypeContinue, maneuver.TypeDestination,
	}, types(leg.Maneuvers))
	assert.Equal(t, "Take the elevator to Level 3.", leg.Maneuvers[1].Instructions.VerbalPostTransition)
}

func TestRoute_Errors(t *testing.T) {
	p, _ := planner(t, builder.LevelStrip())
	ctx := context.Background()

	_, err := p.Route(ctx, directions.Request{From: "A"})
	assert.ErrorIs(t, err, directions.ErrEmptyEndpoint)

	_, err = p.Route(ctx, directions.Request{From: "A", To: "nowhere"})
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = p.Route(ctx, directions.Request{From: "A", To: "z"})
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable, "lowercase markers are not connected")

	_, err = p.Route(ctx, directions.Request{From: "A", To: "A"})
	assert.ErrorIs(t, err, route.ErrEmptyPath)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = p.Route(cancelled, directions.Request{From: "A", To: "J"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRoute_HintOutsideEdgeIsLogged(t *testing.T) {
	obs, logs := observer.New(zapcore.WarnLevel)
	p, _ := planner(t, builder.Campus(), directions.WithLogger(zap.New(obs)))
	wrong := 7.0
	leg, err := p.Route(context.Background(), directions.Request{From: "F", To: "G", StartLevel: &wrong})
	require.NoError(t, err)

	assert.Nil(t, leg.Path.StartLevel)
	assert.Equal(t, 1, logs.FilterMessage("dropping level hint outside endpoint edge").Len())
}

func TestRouteAll_MatchesSequential(t *testing.T) {
	defer goleak.VerifyNone(t)

	p, _ := planner(t, builder.Campus(), directions.WithParallelism(3))
	reqs := []directions.Request{
		{From: "F", To: "J"}, {From: "F", To: "A"}, {From: "E", To: "O"}, {From: "F", To: "M"},
		{From: "D", To: "F"}, {From: "J", To: "U"}, {From: "H", To: "Q"}, {From: "W", To: "T"},
	}
	legs, err := p.RouteAll(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, legs, len(reqs))

	for i, req := range reqs {
		want, err := p.Route(context.Background(), req)
		require.NoError(t, err)
		if diff := cmp.Diff(want.Maneuvers, legs[i].Maneuvers); diff != "" {
			t.Errorf("%s -> %s maneuvers (-seq +par):\n%s", req.From, req.To, diff)
		}
		if diff := cmp.Diff(want.LevelChanges, legs[i].LevelChanges); diff != "" {
			t.Errorf("%s -> %s level changes (-seq +par):\n%s", req.From, req.To, diff)
		}
	}
}

func TestRouteAll_FirstErrorWins(t *testing.T) {
	defer goleak.VerifyNone(t)

	p, _ := planner(t, builder.Campus())
	_, err := p.RouteAll(context.Background(), []directions.Request{
		{From: "F", To: "J"}, {From: "F", To: "nowhere"}, {From: "A", To: "U"},
	})
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestLocate_LevelStrip(t *testing.T) {
	p, m := planner(t, builder.LevelStrip())
	want := map[string]string{
		"z": "1", "y": "0", "x": "2", "w": "100", "v": "[12,14]",
		"u": "[-1,0]", "t": "[85.5,12]", "s": "[-2,-1,[0,3]]", "r": "[0,2.5]",
	}
	ways := map[string]string{
		"z": "AB", "y": "BC", "x": "CD", "w": "DE", "v": "EF", "u": "FG", "t": "GH", "s": "HI", "r": "IJ",
	}
	for marker, levels := range want {
		infos, err := p.Locate(m.Layout[marker], nil)
		require.NoError(t, err, marker)
		require.Len(t, infos, 1, marker)
		assert.Equal(t, ways[marker], infos[0].Way, marker)

		got, err := json.Marshal(infos[0].Levels)
		require.NoError(t, err)
		if len(infos[0].Levels) == 1 {
			got = got[1 : len(got)-1] // unwrap the single entry
		}
		assert.Equal(t, levels, string(got), marker)
	}
}

func TestLocate_LevelFilter(t *testing.T) {
	p, m := planner(t, builder.LevelStrip())
	two := 2.0
	infos, err := p.Locate(m.Layout["r"], &two)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, []level.ExternalLevel{{Start: 0, End: 2.5}}, infos[0].Levels)

	five := 5.0
	infos, err = p.Locate(m.Layout["r"], &five)
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestEdgesOnLevel(t *testing.T) {
	p, _ := planner(t, builder.LevelStrip())

	var ways []string
	for _, info := range p.EdgesOnLevel(0) {
		ways = append(ways, info.Way)
	}
	assert.Equal(t, []string{"BC", "FG", "HI", "IJ"}, ways)

	ways = ways[:0]
	for _, info := range p.EdgesOnLevel(2.25) {
		ways = append(ways, info.Way)
	}
	assert.Equal(t, []string{"HI", "IJ"}, ways)
	assert.Empty(t, p.EdgesOnLevel(50))
}

func TestReachable(t *testing.T) {
	p, _ := planner(t, builder.Campus())
	res, err := p.Reachable(context.Background(), "F", bfs.WithEdgeFilter(bfs.OnLevel(2)))
	require.NoError(t, err)
	assert.Equal(t, []string{"F"}, res.Order, "no level-2 edge leaves F")

	res, err = p.Reachable(context.Background(), "H", bfs.WithEdgeFilter(bfs.OnLevel(2)), bfs.WithEdgeFilter(bfs.NoVertical))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"H", "I", "P"}, res.Order)

	_, err = p.Reachable(context.Background(), "nowhere")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestLeg_JSON(t *testing.T) {
	p, _ := planner(t, builder.ElevatorHub())
	leg, err := p.Route(context.Background(), directions.Request{From: "A", To: "F"})
	require.NoError(t, err)

	raw, err := json.Marshal(leg)
	require.NoError(t, err)
	var decoded struct {
		LevelChanges []timeline.Entry `json:"level_changes"`
		Maneuvers    []struct {
			Type string `json:"type"`
		} `json:"maneuvers"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, leg.LevelChanges, decoded.LevelChanges)
	require.Len(t, decoded.Maneuvers, 5)
	assert.Equal(t, "elevator_enter", decoded.Maneuvers[1].Type)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { directions.WithLogger(nil) })
	assert.Panics(t, func() { directions.WithComposer(nil) })
	assert.Panics(t, func() { directions.WithParallelism(0) })
}

func ExamplePlanner_Route() {
	m, err := builder.ElevatorHub().Build()
	if err != nil {
		panic(err)
	}
	p, err := directions.New(m.Graph)
	if err != nil {
		panic(err)
	}
	leg, err := p.Route(context.Background(), directions.Request{From: "A", To: "F"})
	if err != nil {
		panic(err)
	}
	fmt.Println(leg.LevelChanges)
	for _, mv := range leg.Maneuvers {
		fmt.Printf("%s: %s\n", mv.Type, mv.Instructions.Primary)
	}
	// Output:
	// [{0 0} {1 3}]
	// start: Walk east on AB.
	// elevator_enter: Take the elevator to Level 3.
	// continue: Continue on BC.
	// right: Turn right onto CF.
	// destination: You have arrived at your destination.
}
