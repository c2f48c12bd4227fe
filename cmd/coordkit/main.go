// SPDX-License-Identifier: MIT

// Command coordkit converts points between display coordinate spaces and
// runs simulated pointer calibrations.
//
//	coordkit convert 1000 550 --from screen --to normalized
//	coordkit calibrate --kind affine --seed 42 --jitter 5 --test 8
//	coordkit batch --seed 42
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
