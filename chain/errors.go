// SPDX-License-Identifier: MIT

package chain

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/coordkit/transform"
)

// ErrStepIndex indicates a step index outside [0, Len()).
var ErrStepIndex = errors.New("chain: step index out of range")

// StepError reports which step of a chain failed to invert.
type StepError struct {
	Index int            // position of the step in the chain
	Kind  transform.Kind // variant of the failing step
	Err   error          // cause reported by the step
}

// Error implements error.
func (e *StepError) Error() string {
	return fmt.Sprintf("chain: step %d (%s): %v", e.Index, e.Kind, e.Err)
}

// Unwrap exposes the step's cause to errors.Is / errors.As.
func (e *StepError) Unwrap() error { return e.Err }
