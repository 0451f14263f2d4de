// SPDX-License-Identifier: MIT
//
// File: root.go
// Role: root command, shared state and output helpers.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/indoornav/builder"
	"github.com/katalvlaran/indoornav/config"
	"github.com/katalvlaran/indoornav/directions"
)

// app is the state shared by the subcommands, filled by setup.
type app struct {
	configPath string
	fixture    string
	verbose    bool
	format     string
	colorMode  string

	cfg     *config.Config
	log     *zap.Logger
	m       *builder.Map
	planner *directions.Planner
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "indoornav",
		Short: "Turn-by-turn narration for indoor and multi-level walks",
		Long: `indoornav searches a pedestrian graph and narrates the walk: level changes,
combined maneuvers and spoken instructions for stairs, escalators,
elevators and building entrances.

Maps come from the built-in fixtures (see "indoornav fixtures") or from the
map section of the YAML configuration.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "indoornav.yaml", "Path to the YAML configuration")
	pf.StringVarP(&a.fixture, "map", "m", "", "Built-in fixture to use instead of the configured map")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Debug logging")
	pf.StringVar(&a.format, "format", "human", "Output format: human, json")
	pf.StringVar(&a.colorMode, "color", "auto", "Color output: auto, always, never")

	root.AddCommand(newRouteCmd(a), newLevelsCmd(a), newLocateCmd(a), newReachCmd(a), newFixturesCmd())

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	switch a.format {
	case "human", "json":
	default:
		return fmt.Errorf("unknown format %q", a.format)
	}
	switch a.colorMode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
	default:
		return fmt.Errorf("unknown color mode %q", a.colorMode)
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.fixture != "" {
		cfg.Map = config.MapConfig{Fixture: a.fixture}
	}
	log, err := cfg.Logger(a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	m, err := cfg.BuildMap(log)
	if err != nil {
		return err
	}
	p, err := directions.New(m.Graph, cfg.PlannerOptions(log)...)
	if err != nil {
		return err
	}
	log.Debug("map ready",
		zap.String("config", a.configPath),
		zap.Int("vertices", m.Graph.VertexCount()),
		zap.Int("edges", m.Graph.EdgeCount()),
	)
	a.cfg, a.log, a.m, a.planner = cfg, log, m, p

	return nil
}

func (a *app) teardown(*cobra.Command, []string) {
	if a.log != nil {
		_ = a.log.Sync()
	}
}

func (a *app) json() bool { return a.format == "json" }

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
