// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/coordkit/viewport"
)

// app carries state shared by every subcommand.
type app struct {
	displayPath string
	verbosity   int

	log     logr.Logger
	display viewport.Display
}

func newRootCmd() *cobra.Command {
	a := &app{log: logr.Discard()}
	root := &cobra.Command{
		Use:               "coordkit",
		Short:             "Display coordinate conversion and pointer calibration",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.displayPath, "display", "", "TOML display description (default 1920x1080, window 1600x900 at 200,100, dpi 1.5)")
	root.PersistentFlags().IntVarP(&a.verbosity, "verbosity", "v", 0, "log verbosity (1 logs every fit)")

	root.AddCommand(newConvertCmd(a), newCalibrateCmd(a), newBatchCmd(a))

	return root
}

// setup wires logging to stderr and loads the display description.
// FitBatch logs from several goroutines, so writes to stderr are serialized.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var mu sync.Mutex
	stderr := cmd.ErrOrStderr()
	a.log = funcr.New(func(prefix, args string) {
		mu.Lock()
		defer mu.Unlock()
		if prefix != "" {
			fmt.Fprintln(stderr, prefix, args)
			return
		}
		fmt.Fprintln(stderr, args)
	}, funcr.Options{Verbosity: a.verbosity}).WithName("coordkit")

	a.display = viewport.Default()
	if a.displayPath == "" {
		return nil
	}
	d, err := viewport.LoadFile(a.displayPath)
	if err != nil {
		return err
	}
	a.display = d
	a.log.V(1).Info("display loaded", "path", a.displayPath,
		"screen", fmt.Sprintf("%dx%d", d.ScreenWidth, d.ScreenHeight), "dpi", d.DPIScale)

	return nil
}
