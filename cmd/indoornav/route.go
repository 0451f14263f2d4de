// SPDX-License-Identifier: MIT
//
// File: route.go
// Role: "route" subcommand and the human leg renderer.

package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/indoornav/directions"
	"github.com/katalvlaran/indoornav/label"
	"github.com/katalvlaran/indoornav/maneuver"
)

type routeFlags struct {
	startLevel float64
	endLevel   float64
	verbal     bool
}

func newRouteCmd(a *app) *cobra.Command {
	var f routeFlags
	cmd := &cobra.Command{
		Use:   "route FROM TO",
		Short: "Narrate the cheapest walk between two nodes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := directions.Request{From: args[0], To: args[1]}
			if cmd.Flags().Changed("start-level") {
				req.StartLevel = &f.startLevel
			}
			if cmd.Flags().Changed("end-level") {
				req.EndLevel = &f.endLevel
			}
			leg, err := a.planner.Route(cmd.Context(), req)
			if err != nil {
				return err
			}
			if a.json() {
				return writeJSON(cmd.OutOrStdout(), leg)
			}
			renderLeg(cmd.OutOrStdout(), req, leg, f.verbal)
			return nil
		},
	}
	cmd.Flags().Float64Var(&f.startLevel, "start-level", 0, "Level filter of the origin")
	cmd.Flags().Float64Var(&f.endLevel, "end-level", 0, "Level filter of the destination")
	cmd.Flags().BoolVar(&f.verbal, "verbal", false, "Print the spoken transition and arrival cues")

	return cmd
}

// legStyles colors maneuver types by family.
type legStyles struct {
	heading  *color.Color
	walk     *color.Color
	turn     *color.Color
	vertical *color.Color
	building *color.Color
	dim      *color.Color
}

func newLegStyles() *legStyles {
	return &legStyles{
		heading:  color.New(color.Bold),
		walk:     color.New(color.FgHiWhite),
		turn:     color.New(color.FgHiGreen),
		vertical: color.New(color.Bold, color.FgYellow),
		building: color.New(color.FgHiCyan),
		dim:      color.New(color.FgHiBlack),
	}
}

func (s *legStyles) of(t maneuver.Type) *color.Color {
	switch {
	case t.IsVertical():
		return s.vertical
	case t.IsBuilding():
		return s.building
	case t.IsTurn():
		return s.turn
	default:
		return s.walk
	}
}

func renderLeg(w io.Writer, req directions.Request, leg *directions.Leg, verbal bool) {
	s := newLegStyles()
	eta := time.Duration(leg.Cost * float64(time.Second)).Round(time.Second)
	s.heading.Fprintf(w, "%s -> %s", req.From, req.To)
	fmt.Fprintf(w, "  %s m, %s\n", humanize.FtoaWithDigits(leg.Length, 0), eta)

	changes := make([]string, len(leg.LevelChanges))
	for i, e := range leg.LevelChanges {
		changes[i] = fmt.Sprintf("%d:%s", e.Position, label.Format(e.Level))
	}
	s.dim.Fprintf(w, "levels  %s\n", strings.Join(changes, "  "))

	for k, m := range leg.Maneuvers {
		fmt.Fprintf(w, "%2d. ", k+1)
		s.of(m.Type).Fprintf(w, "%-16s", m.Type)
		fmt.Fprintf(w, " %s\n", m.Instructions.Primary)
		if !verbal {
			continue
		}
		for _, cue := range []string{
			m.Instructions.VerbalPreTransition,
			m.Instructions.VerbalPostTransition,
			m.Instructions.VerbalArrivalDistance,
		} {
			if cue != "" && cue != m.Instructions.Primary {
				s.dim.Fprintf(w, "    %s\n", cue)
			}
		}
	}
}
