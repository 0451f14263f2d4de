// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options for classification and combination.

package maneuver

import (
	"fmt"

	"go.uber.org/zap"
)

// DefaultStraightThreshold is the largest heading change, in degrees, that
// still counts as walking straight on.
const DefaultStraightThreshold = 30.0

// Option customizes Build.
type Option func(*config)

type config struct {
	straight float64
	logger   *zap.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{straight: DefaultStraightThreshold, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithStraightThreshold sets the straight-continuation threshold; it must lie
// in [0, 180).
func WithStraightThreshold(deg float64) Option {
	if !(deg >= 0 && deg < 180) {
		panic(fmt.Sprintf("maneuver: straight threshold %v outside [0,180)", deg))
	}

	return func(c *config) { c.straight = deg }
}

// WithLogger receives debug output about degraded edges; must be non-nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("maneuver: nil logger")
	}

	return func(c *config) { c.logger = l }
}
