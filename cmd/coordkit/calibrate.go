// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/coordkit/calibration"
	"github.com/katalvlaran/coordkit/geom"
	"github.com/katalvlaran/coordkit/simulate"
	"github.com/katalvlaran/coordkit/transform"
)

// simFlags describe the simulated user shared by calibrate and batch.
type simFlags struct {
	seed         uint64
	jitter       float64
	gain         float64
	biasX, biasY float64
}

func (f *simFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&f.seed, "seed", 42, "random seed")
	cmd.Flags().Float64Var(&f.jitter, "jitter", simulate.DefaultJitter, "uniform click error bound per axis")
	cmd.Flags().Float64Var(&f.gain, "gain", 1, "systematic pointer gain")
	cmd.Flags().Float64Var(&f.biasX, "bias-x", 0, "systematic pointer offset along x")
	cmd.Flags().Float64Var(&f.biasY, "bias-y", 0, "systematic pointer offset along y")
}

func (f *simFlags) generator() (*simulate.Generator, error) {
	if f.jitter < 0 {
		return nil, fmt.Errorf("--jitter must be non-negative, got %g", f.jitter)
	}
	distortion := transform.NewAffine(f.gain, 0, 0, f.gain, f.biasX, f.biasY)

	return simulate.NewGenerator(f.seed, simulate.WithJitter(f.jitter), simulate.WithDistortion(distortion)), nil
}

func newCalibrateCmd(a *app) *cobra.Command {
	var (
		sim   simFlags
		kind  string
		tests int
	)
	cmd := &cobra.Command{
		Use:   "calibrate",
		Short: "Fit a correction transform to simulated clicks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := transform.ParseKind(kind)
			if err != nil {
				return err
			}
			g, err := sim.generator()
			if err != nil {
				return err
			}
			targets := simulate.CalibrationTargets()
			if k == transform.KindPerspective {
				// Five clicks leave a perspective fit almost no redundancy.
				targets = simulate.Grid(10, 90, 3, 10, 90, 3)
			}
			res, err := calibration.Fit(g.Samples(targets), k, calibration.WithLogger(a.log))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			raw, err := json.Marshal(transform.Describe(res.Transform))
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(raw))
			fmt.Fprintf(out, "calibration (%d samples): %s\n", res.Samples, res.Summary())

			if tests > 0 {
				held := g.Samples(g.Points(tests, geom.Pt(10, 10), geom.Pt(90, 90)))
				s, err := calibration.Evaluate(res.Transform, held)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "test (%d points): %s\n", tests, s)
			}

			return nil
		},
	}
	sim.register(cmd)
	cmd.Flags().StringVar(&kind, "kind", "affine", "transform kind: offset, scale, affine, perspective")
	cmd.Flags().IntVar(&tests, "test", 0, "number of held-out test points to evaluate")

	return cmd
}
