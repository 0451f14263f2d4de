// SPDX-License-Identifier: MIT
//
// File: translate.go
// Role: Config -> library options, fixture and logger.

package config

import (
	"github.com/paulmach/orb"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/indoornav/builder"
	"github.com/katalvlaran/indoornav/dijkstra"
	"github.com/katalvlaran/indoornav/directions"
	"github.com/katalvlaran/indoornav/maneuver"
	"github.com/katalvlaran/indoornav/narrative"
)

// CostingOptions translates the costing section.
func (c *Config) CostingOptions() []dijkstra.Option {
	return []dijkstra.Option{
		dijkstra.WithWalkingSpeed(c.Costing.WalkingSpeedKph),
		dijkstra.WithElevatorPenalty(c.Costing.ElevatorPenaltyS),
		dijkstra.WithStepsFactor(c.Costing.StepsFactor),
		dijkstra.WithNodeElevatorCost(c.Costing.NodeElevatorCostS),
	}
}

// PlannerOptions translates costing and narrative into directions options.
// The composer walks at the same pace the search costs with.
func (c *Config) PlannerOptions(log *zap.Logger) []directions.Option {
	composer := narrative.NewComposer(
		narrative.WithWalkingSpeed(c.Costing.WalkingSpeedKph),
		narrative.WithMultiCueSeconds(c.Narrative.MultiCueSeconds),
	)

	return []directions.Option{
		directions.WithLogger(log),
		directions.WithCosting(c.CostingOptions()...),
		directions.WithManeuverOptions(maneuver.WithStraightThreshold(c.Narrative.StraightThresholdDeg)),
		directions.WithComposer(composer),
	}
}

// Resolve turns the map section into a builder fixture.
//
// Errors: builder.ErrUnknownFixture for an unknown name.
func (m MapConfig) Resolve() (builder.Fixture, error) {
	if m.ASCII == "" {
		return builder.FixtureByName(m.Fixture)
	}
	f := builder.Fixture{
		Name:     "inline",
		ASCII:    m.ASCII,
		GridSize: m.GridSizeM,
		Ways:     make(builder.Ways, len(m.Ways)),
		Nodes:    make(builder.Nodes, len(m.Nodes)),
	}
	if f.GridSize == 0 {
		f.GridSize = builder.DefaultGridSize
	}
	if len(m.Origin) == 2 {
		f.Origin = orb.Point{m.Origin[0], m.Origin[1]}
	}
	for k, tags := range m.Ways {
		f.Ways[k] = builder.Tags(tags)
	}
	for k, tags := range m.Nodes {
		f.Nodes[k] = builder.Tags(tags)
	}

	return f, nil
}

// BuildMap resolves and builds the configured map.
func (c *Config) BuildMap(log *zap.Logger) (*builder.Map, error) {
	f, err := c.Map.Resolve()
	if err != nil {
		return nil, err
	}

	return f.Build(builder.WithLogger(log))
}

// Logger builds the zap logger described by the logging section; verbose
// forces debug level.
func (c *Config) Logger(verbose bool) (*zap.Logger, error) {
	lvl, err := c.Logging.level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if !c.Logging.JSON {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return zc.Build()
}

func (l LoggingConfig) level() (zapcore.Level, error) {
	if l.Level == "" {
		return zapcore.InfoLevel, nil
	}

	return zapcore.ParseLevel(l.Level)
}
