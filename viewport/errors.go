// SPDX-License-Identifier: MIT

package viewport

import "errors"

var (
	// ErrInvalidDisplay indicates a non-positive size or DPI scale.
	ErrInvalidDisplay = errors.New("viewport: invalid display")

	// ErrUnknownKey indicates a configuration key Display does not define.
	ErrUnknownKey = errors.New("viewport: unknown configuration key")

	// ErrUnknownSpace indicates an unrecognized coordinate space.
	ErrUnknownSpace = errors.New("viewport: unknown space")
)
