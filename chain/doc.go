// SPDX-License-Identifier: MIT

// Package chain composes transforms into an ordered pipeline such as
// screen → browser → logical → normalized.
//
// A Chain is immutable once built: Compose and Append return new chains and
// never touch their operands. Forward folds a point through every step in
// order; Inverse folds it through each step's inverse in reverse order. If any
// step cannot be inverted the whole inverse fails with a *StepError naming the
// step, and the step's own sentinel stays reachable with errors.Is.
//
//	c := chain.New(toBrowser, toLogical, toNormalized)
//	n := c.Forward(screenPt)
//	back, err := c.Inverse(n)
//	var se *chain.StepError
//	if errors.As(err, &se) {
//		log.Printf("step %d (%s) is not invertible", se.Index, se.Kind)
//	}
package chain
