// SPDX-License-Identifier: MIT
//
// File: levels.go
// Role: "levels" and "locate" edge info subcommands.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/indoornav/directions"
	"github.com/katalvlaran/indoornav/level"
)

func newLevelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "levels LEVEL",
		Short: "List the edges that include a level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("level %q: %w", args[0], err)
			}
			return a.printEdges(cmd.OutOrStdout(), a.planner.EdgesOnLevel(v))
		},
	}
}

func newLocateCmd(a *app) *cobra.Command {
	var (
		point []float64
		lvl   float64
	)
	cmd := &cobra.Command{
		Use:   "locate [NODE]",
		Short: "Show the edges nearest to a layout node or a lon,lat point",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pt orb.Point
			switch {
			case len(args) == 1:
				p, ok := a.m.Layout[args[0]]
				if !ok {
					return fmt.Errorf("node %q is not on the map", args[0])
				}
				pt = p
			case len(point) == 2:
				pt = orb.Point{point[0], point[1]}
			default:
				return fmt.Errorf("locate needs a NODE or --point lon,lat")
			}

			var filter *float64
			if cmd.Flags().Changed("level") {
				filter = &lvl
			}
			infos, err := a.planner.Locate(pt, filter)
			if err != nil {
				return err
			}
			return a.printEdges(cmd.OutOrStdout(), infos)
		},
	}
	cmd.Flags().Float64SliceVar(&point, "point", nil, "Query point as lon,lat")
	cmd.Flags().Float64Var(&lvl, "level", 0, "Only edges that include this level")

	return cmd
}

func (a *app) printEdges(w io.Writer, infos []directions.EdgeInfo) error {
	if a.json() {
		if infos == nil {
			infos = []directions.EdgeInfo{}
		}
		return writeJSON(w, infos)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EDGE\tWAY\tFROM-TO\tUSE\tLEVELS\tREF")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%s-%s\t%s\t%s\t%s\n",
			info.ID, info.Way, info.From, info.To, info.Use, renderLevels(info.Levels), info.LevelRef)
	}

	return tw.Flush()
}

func renderLevels(ls []level.ExternalLevel) string {
	parts := make([]string, len(ls))
	for i, l := range ls {
		if l.IsSingle() {
			parts[i] = strconv.FormatFloat(l.Start, 'f', -1, 64)
			continue
		}
		parts[i] = "[" + strconv.FormatFloat(l.Start, 'f', -1, 64) + "," + strconv.FormatFloat(l.End, 'f', -1, 64) + "]"
	}

	return strings.Join(parts, " ")
}
