// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: Config schema, Default, Load/Parse/Save and validation.

package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/indoornav/dijkstra"
	"github.com/katalvlaran/indoornav/maneuver"
	"github.com/katalvlaran/indoornav/narrative"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the root of the YAML document.
type Config struct {
	Map       MapConfig       `yaml:"map"`
	Costing   CostingConfig   `yaml:"costing"`
	Narrative NarrativeConfig `yaml:"narrative"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// MapConfig selects a built-in fixture by name, or describes an inline map
// in the builder's ASCII form. An inline ASCII layout wins over Fixture.
type MapConfig struct {
	Fixture   string                       `yaml:"fixture,omitempty"`
	ASCII     string                       `yaml:"ascii,omitempty"`
	GridSizeM float64                      `yaml:"grid_size_m,omitempty"`
	Origin    []float64                    `yaml:"origin,omitempty,flow"`
	Ways      map[string]map[string]string `yaml:"ways,omitempty"`
	Nodes     map[string]map[string]string `yaml:"nodes,omitempty"`
}

// CostingConfig mirrors the dijkstra options.
type CostingConfig struct {
	WalkingSpeedKph   float64 `yaml:"walking_speed_kph"`
	ElevatorPenaltyS  float64 `yaml:"elevator_penalty_s"`
	StepsFactor       float64 `yaml:"steps_factor"`
	NodeElevatorCostS float64 `yaml:"node_elevator_cost_s"`
}

// NarrativeConfig mirrors the maneuver and narrative options.
type NarrativeConfig struct {
	StraightThresholdDeg float64 `yaml:"straight_threshold_deg"`
	MultiCueSeconds      float64 `yaml:"multi_cue_seconds"`
}

// LoggingConfig selects the zap level and encoding.
type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns the built-in configuration: the campus fixture with
// pedestrian defaults.
func Default() *Config {
	return &Config{
		Map: MapConfig{Fixture: "campus"},
		Costing: CostingConfig{
			WalkingSpeedKph:   dijkstra.DefaultWalkingSpeedKph,
			ElevatorPenaltyS:  0,
			StepsFactor:       dijkstra.DefaultStepsFactor,
			NodeElevatorCostS: dijkstra.DefaultNodeElevatorCost,
		},
		Narrative: NarrativeConfig{
			StraightThresholdDeg: maneuver.DefaultStraightThreshold,
			MultiCueSeconds:      narrative.DefaultMultiCueSeconds,
		},
		Logging: LoggingConfig{Level: "info", JSON: true},
	}
}

// Load reads path over Default. A missing file is not an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML document over Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes c to path as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}

// Validate checks every knob against the ranges the option constructors
// accept, so that translating c never panics.
func (c *Config) Validate() error {
	switch {
	case !(c.Costing.WalkingSpeedKph > 0):
		return fmt.Errorf("%w: costing.walking_speed_kph %v", ErrInvalid, c.Costing.WalkingSpeedKph)
	case !(c.Costing.ElevatorPenaltyS >= 0):
		return fmt.Errorf("%w: costing.elevator_penalty_s %v", ErrInvalid, c.Costing.ElevatorPenaltyS)
	case !(c.Costing.StepsFactor > 0):
		return fmt.Errorf("%w: costing.steps_factor %v", ErrInvalid, c.Costing.StepsFactor)
	case !(c.Costing.NodeElevatorCostS >= 0):
		return fmt.Errorf("%w: costing.node_elevator_cost_s %v", ErrInvalid, c.Costing.NodeElevatorCostS)
	case !(c.Narrative.StraightThresholdDeg >= 0 && c.Narrative.StraightThresholdDeg < 180):
		return fmt.Errorf("%w: narrative.straight_threshold_deg %v", ErrInvalid, c.Narrative.StraightThresholdDeg)
	case !(c.Narrative.MultiCueSeconds >= 0):
		return fmt.Errorf("%w: narrative.multi_cue_seconds %v", ErrInvalid, c.Narrative.MultiCueSeconds)
	case c.Map.ASCII == "" && c.Map.Fixture == "":
		return fmt.Errorf("%w: map needs a fixture or an ascii layout", ErrInvalid)
	case c.Map.Origin != nil && len(c.Map.Origin) != 2:
		return fmt.Errorf("%w: map.origin needs [lon, lat]", ErrInvalid)
	case len(c.Map.Origin) == 2 && (math.Abs(c.Map.Origin[0]) > 180 || math.Abs(c.Map.Origin[1]) > 85):
		return fmt.Errorf("%w: map.origin %v out of range", ErrInvalid, c.Map.Origin)
	case c.Map.GridSizeM < 0:
		return fmt.Errorf("%w: map.grid_size_m %v", ErrInvalid, c.Map.GridSizeM)
	}
	if _, err := c.Logging.level(); err != nil {
		return fmt.Errorf("%w: logging.level: %v", ErrInvalid, err)
	}

	return nil
}
