// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/coordkit/calibration"
	"github.com/katalvlaran/coordkit/simulate"
	"github.com/katalvlaran/coordkit/transform"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		sim   simFlags
		limit int
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Fit every transform kind to the same simulated clicks concurrently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := sim.generator()
			if err != nil {
				return err
			}
			samples := g.Samples(simulate.Grid(10, 90, 3, 10, 90, 3))

			var jobs []calibration.Job
			for _, k := range transform.Kinds() {
				jobs = append(jobs, calibration.Job{ID: k.String(), Kind: k, Samples: samples})
			}
			results, err := calibration.FitBatch(cmd.Context(), jobs, limit, calibration.WithLogger(a.log))
			if err != nil {
				return err
			}
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%-11s %s\n", r.ID, r.Summary())
			}

			return nil
		},
	}
	sim.register(cmd)
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum concurrent fits (0 = unbounded)")

	return cmd
}
