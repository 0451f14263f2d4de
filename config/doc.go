// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of the indoornav CLI and
// translates it into the functional options of the library packages.
//
// A file looks like:
//
//	map:
//	  fixture: campus        # or an inline map:
//	  # ascii: |
//	  #   A---B
//	  # grid_size_m: 10
//	  # origin: [5.1079, 52.0887]
//	  # ways:  {AB: {highway: corridor, level: "0"}}
//	  # nodes: {B: {highway: elevator}}
//	costing:
//	  walking_speed_kph: 5.1
//	  elevator_penalty_s: 0
//	  steps_factor: 1
//	  node_elevator_cost_s: 30
//	narrative:
//	  straight_threshold_deg: 30
//	  multi_cue_seconds: 13
//	logging:
//	  level: info
//	  json: true
//
// Missing keys keep the values of Default; a missing file yields Default.
package config
