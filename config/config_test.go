// SPDX-License-Identifier: MIT
// Package config_test covers defaults, YAML overlay, validation and the
// translation into library options.

package config_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/indoornav/builder"
	"github.com/katalvlaran/indoornav/config"
	"github.com/katalvlaran/indoornav/directions"
	"github.com/katalvlaran/indoornav/maneuver"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "campus", cfg.Map.Fixture)
	assert.Equal(t, 5.1, cfg.Costing.WalkingSpeedKph)
	assert.Equal(t, 30.0, cfg.Costing.NodeElevatorCostS)
	assert.Equal(t, 30.0, cfg.Narrative.StraightThresholdDeg)
	assert.Equal(t, 13.0, cfg.Narrative.MultiCueSeconds)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Logging.JSON)
}

func TestParse_OverlaysDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
map:
  fixture: levels
costing:
  elevator_penalty_s: 3600
logging:
  level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, "levels", cfg.Map.Fixture)
	assert.Equal(t, 3600.0, cfg.Costing.ElevatorPenaltyS)
	assert.Equal(t, 5.1, cfg.Costing.WalkingSpeedKph, "untouched keys keep defaults")
	assert.Equal(t, 1.0, cfg.Costing.StepsFactor)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"speed":      "costing: {walking_speed_kph: 0}",
		"penalty":    "costing: {elevator_penalty_s: -1}",
		"factor":     "costing: {steps_factor: 0}",
		"node cost":  "costing: {node_elevator_cost_s: -5}",
		"threshold":  "narrative: {straight_threshold_deg: 180}",
		"multi cue":  "narrative: {multi_cue_seconds: -1}",
		"no map":     "map: {fixture: ''}",
		"origin":     "map: {ascii: 'A-B', origin: [1]}",
		"origin lat": "map: {ascii: 'A-B', origin: [5, 89]}",
		"grid":       "map: {ascii: 'A-B', grid_size_m: -1}",
		"log level":  "logging: {level: chatty}",
	}
	for name, doc := range cases {
		_, err := config.Parse([]byte(doc))
		assert.ErrorIs(t, err, config.ErrInvalid, name)
	}

	_, err := config.Parse([]byte("costing: [not, a, map]"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalid)
}

func TestLoad_MissingFileYieldsDefault(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "indoornav.yaml")
	cfg := config.Default()
	cfg.Map = config.MapConfig{
		ASCII:     "A---B\n    |\n    C",
		GridSizeM: 2,
		Origin:    []float64{5.1, 52.1},
		Ways:      map[string]map[string]string{"AB": {"highway": "corridor", "level": "0"}, "BC": {"highway": "steps", "level": "0;1"}},
	}
	cfg.Narrative.MultiCueSeconds = 0
	require.NoError(t, cfg.Save(path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Map.ASCII, loaded.Map.ASCII)
	assert.Equal(t, cfg.Map.Ways, loaded.Map.Ways)
	assert.Equal(t, cfg.Map.Origin, loaded.Map.Origin)
	assert.Equal(t, 0.0, loaded.Narrative.MultiCueSeconds)
}

func TestMapConfig_Resolve(t *testing.T) {
	f, err := config.MapConfig{Fixture: "split-stairs"}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "split-stairs", f.Name)

	_, err = config.MapConfig{Fixture: "mall"}.Resolve()
	assert.ErrorIs(t, err, builder.ErrUnknownFixture)

	f, err = config.MapConfig{Fixture: "campus", ASCII: "A-B"}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "inline", f.Name, "an inline layout wins")
	assert.Equal(t, builder.DefaultGridSize, f.GridSize)
}

func TestInlineMapRoutes(t *testing.T) {
	cfg, err := config.Parse([]byte(`
map:
  ascii: |
    A---B---C
  grid_size_m: 5
  origin: [5.1079374, 52.0887174]
  ways:
    AB: {highway: corridor, indoor: "yes", level: "0", "level:ref": Ground}
    BC: {highway: steps, indoor: "yes", level: "0;1"}
narrative:
  multi_cue_seconds: 0
`))
	require.NoError(t, err)

	m, err := cfg.BuildMap(zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, m.Graph.EdgeCount())

	p, err := directions.New(m.Graph, cfg.PlannerOptions(zap.NewNop())...)
	require.NoError(t, err)
	upstairs := 1.0
	leg, err := p.Route(context.Background(), directions.Request{From: "C", To: "A", StartLevel: &upstairs})
	require.NoError(t, err)
	require.Len(t, leg.Maneuvers, 3)
	assert.Equal(t, maneuver.TypeStepsEnter, leg.Maneuvers[0].Type)
	assert.Equal(t, "Take the stairs to Ground.", leg.Maneuvers[0].Instructions.VerbalPostTransition)
	assert.InDelta(t, 40, leg.Length, 0.1)
}

func TestLogger(t *testing.T) {
	cfg := config.Default()
	log, err := cfg.Logger(false)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))

	log, err = cfg.Logger(true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	cfg.Logging = config.LoggingConfig{Level: "warn", JSON: false}
	log, err = cfg.Logger(false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
}
