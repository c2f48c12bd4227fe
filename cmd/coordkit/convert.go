// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/coordkit/geom"
	"github.com/katalvlaran/coordkit/viewport"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		from, to  string
		inverse   bool
		precision int
	)
	cmd := &cobra.Command{
		Use:   "convert X Y",
		Short: "Convert a point between screen, browser, logical and normalized space",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(args[0], args[1])
			if err != nil {
				return err
			}
			src, err := viewport.ParseSpace(from)
			if err != nil {
				return err
			}
			dst, err := viewport.ParseSpace(to)
			if err != nil {
				return err
			}
			if inverse {
				src, dst = dst, src
			}
			q, err := a.display.Convert(p, src, dst)
			if err != nil {
				return err
			}
			a.log.V(1).Info("converted", "from", src.String(), "to", dst.String(), "in", p.String(), "out", q.String())
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.*f %.*f\n", precision, q.X, precision, q.Y)

			return err
		},
	}
	cmd.Flags().StringVar(&from, "from", "screen", "source space: screen, browser, logical, normalized")
	cmd.Flags().StringVar(&to, "to", "normalized", "destination space")
	cmd.Flags().BoolVar(&inverse, "inverse", false, "swap --from and --to")
	cmd.Flags().IntVar(&precision, "precision", 6, "digits after the decimal point")

	return cmd
}

func parsePoint(xs, ys string) (geom.Point, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("y: %w", err)
	}

	return geom.Pt(x, y), nil
}
