// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options for path construction.

package route

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Option customizes path construction.
type Option func(*config)

type config struct {
	startLevel *float64
	endLevel   *float64
	logger     *zap.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithStartLevel pins the floor of the start location.
func WithStartLevel(v float64) Option {
	mustFinite("start level", v)

	return func(c *config) { c.startLevel = &v }
}

// WithEndLevel pins the floor of the end location.
func WithEndLevel(v float64) Option {
	mustFinite("end level", v)

	return func(c *config) { c.endLevel = &v }
}

// WithLogger receives warnings about dropped hints; must be non-nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("route: nil logger")
	}

	return func(c *config) { c.logger = l }
}

func mustFinite(what string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("route: %s %v is not finite", what, v))
	}
}
