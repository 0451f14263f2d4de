// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Planner options.

package directions

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/indoornav/dijkstra"
	"github.com/katalvlaran/indoornav/maneuver"
	"github.com/katalvlaran/indoornav/narrative"
)

// DefaultParallelism bounds RouteAll.
const DefaultParallelism = 4

// Option customizes a Planner.
type Option func(*Planner)

// WithLogger routes degraded-data warnings of every stage to l.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("directions: nil logger")
	}

	return func(p *Planner) { p.log = l }
}

// WithCosting appends search options (walking speed, elevator penalty, ...).
// Source and Target are set per request and must not be passed here.
func WithCosting(opts ...dijkstra.Option) Option {
	return func(p *Planner) { p.costing = append(p.costing, opts...) }
}

// WithManeuverOptions appends maneuver combination options.
func WithManeuverOptions(opts ...maneuver.Option) Option {
	return func(p *Planner) { p.maneuver = append(p.maneuver, opts...) }
}

// WithComposer replaces the default narrative composer.
func WithComposer(c *narrative.Composer) Option {
	if c == nil {
		panic("directions: nil composer")
	}

	return func(p *Planner) { p.composer = c }
}

// WithParallelism bounds the number of concurrent searches in RouteAll.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("directions: parallelism must be at least 1")
	}

	return func(p *Planner) { p.parallel = n }
}
