// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options and the resolved builderConfig.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors validate and panic on meaningless inputs.
//   - Defaults are deterministic: origin (0,0), 100 m grid, no-op logger.

package builder

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"go.uber.org/zap"
)

// DefaultGridSize is the spacing of layout cells in meters.
const DefaultGridSize = 100.0

// BuilderOption customizes layout parsing and graph construction.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	origin   orb.Point
	gridSize float64
	logger   *zap.Logger
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		gridSize: DefaultGridSize,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithOrigin places the top-left layout cell at p (lon, lat).
func WithOrigin(p orb.Point) BuilderOption {
	if math.Abs(p.Lat()) > 85 || math.Abs(p.Lon()) > 180 {
		panic(fmt.Sprintf("%v: origin %v out of range", ErrOptionViolation, p))
	}

	return func(c *builderConfig) { c.origin = p }
}

// WithGridSize sets the distance between neighbouring cells; must be > 0.
func WithGridSize(meters float64) BuilderOption {
	if !(meters > 0) {
		panic(fmt.Sprintf("%v: grid size %g must be positive", ErrOptionViolation, meters))
	}

	return func(c *builderConfig) { c.gridSize = meters }
}

// WithLogger routes data-quality warnings to l; must be non-nil.
func WithLogger(l *zap.Logger) BuilderOption {
	if l == nil {
		panic(fmt.Sprintf("%v: nil logger", ErrOptionViolation))
	}

	return func(c *builderConfig) { c.logger = l }
}
