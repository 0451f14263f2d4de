// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Leg, Request, EdgeInfo and sentinel errors.

package directions

import (
	"errors"

	"github.com/katalvlaran/indoornav/core"
	"github.com/katalvlaran/indoornav/level"
	"github.com/katalvlaran/indoornav/maneuver"
	"github.com/katalvlaran/indoornav/route"
	"github.com/katalvlaran/indoornav/timeline"
)

var (
	// ErrNilGraph is returned by New when no graph is supplied.
	ErrNilGraph = errors.New("directions: graph is nil")

	// ErrEmptyEndpoint indicates a request without origin or destination.
	ErrEmptyEndpoint = errors.New("directions: empty origin or destination")
)

// Request names the endpoints of one leg. StartLevel and EndLevel are the
// optional level filters of the origin and destination locations.
type Request struct {
	From       string   `json:"from" yaml:"from"`
	To         string   `json:"to" yaml:"to"`
	StartLevel *float64 `json:"start_level,omitempty" yaml:"start_level,omitempty"`
	EndLevel   *float64 `json:"end_level,omitempty" yaml:"end_level,omitempty"`
}

// Leg is one narrated walk.
type Leg struct {
	// Path is the read-only view the maneuvers index into.
	Path *route.Path `json:"-"`

	// LevelChanges is the level timeline, rendered verbatim in summaries.
	LevelChanges []timeline.Entry `json:"level_changes"`

	// Maneuvers are combined and narrated, ending with the destination.
	Maneuvers []maneuver.Maneuver `json:"maneuvers"`

	// Cost is the search cost in seconds.
	Cost float64 `json:"cost_s"`

	// Length is the walked distance in meters.
	Length float64 `json:"length_m"`
}

// EdgeInfo is the location-search view of one edge.
type EdgeInfo struct {
	ID       string                `json:"id"`
	Way      string                `json:"way"`
	From     string                `json:"from"`
	To       string                `json:"to"`
	Use      string                `json:"use"`
	Indoor   bool                  `json:"indoor"`
	Levels   []level.ExternalLevel `json:"levels"`
	LevelRef string                `json:"level_ref,omitempty"`
	Length   float64               `json:"length_m"`
}

// Info renders e for edge info queries. Levels keep the descriptor's order.
func Info(e *core.Edge) EdgeInfo {
	return EdgeInfo{
		ID:       e.ID,
		Way:      e.Way,
		From:     e.From,
		To:       e.To,
		Use:      e.Use.String(),
		Indoor:   e.Indoor,
		Levels:   level.External(e.Levels),
		LevelRef: e.LevelRef,
		Length:   e.Length,
	}
}
