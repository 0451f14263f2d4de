// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/indoornav/bfs"
)

type reachRow struct {
	Node string `json:"node"`
	Hops int    `json:"hops"`
	Via  string `json:"via,omitempty"`
}

func newReachCmd(a *app) *cobra.Command {
	var (
		hops int
		lvl  float64
		flat bool
	)
	cmd := &cobra.Command{
		Use:   "reach FROM",
		Short: "List the nodes reachable from a node, nearest hops first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []bfs.Option{bfs.WithMaxDepth(hops)}
			if cmd.Flags().Changed("level") {
				opts = append(opts, bfs.WithEdgeFilter(bfs.OnLevel(lvl)))
			}
			if flat {
				opts = append(opts, bfs.WithEdgeFilter(bfs.NoVertical))
			}
			res, err := a.planner.Reachable(cmd.Context(), args[0], opts...)
			if err != nil {
				return err
			}

			rows := make([]reachRow, len(res.Order))
			for i, id := range res.Order {
				rows[i] = reachRow{Node: id, Hops: res.Depth[id]}
				if e, ok := res.Parent[id]; ok {
					rows[i].Via = e.Way
				}
			}
			if a.json() {
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NODE\tHOPS\tVIA")
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", r.Node, r.Hops, r.Via)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&hops, "hops", 0, "Maximum hops, 0 for no limit")
	cmd.Flags().Float64Var(&lvl, "level", 0, "Stay on edges that include this level")
	cmd.Flags().BoolVar(&flat, "flat", false, "Avoid stairs, escalators and elevators")

	return cmd
}
