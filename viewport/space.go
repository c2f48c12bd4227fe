// SPDX-License-Identifier: MIT

package viewport

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/coordkit/chain"
	"github.com/katalvlaran/coordkit/geom"
	"github.com/katalvlaran/coordkit/matrix"
)

// Space is one of the nested coordinate spaces, ordered from outermost.
type Space int

const (
	Screen Space = iota
	Browser
	Logical
	Normalized
)

var spaceNames = [...]string{
	Screen:     "screen",
	Browser:    "browser",
	Logical:    "logical",
	Normalized: "normalized",
}

func (s Space) valid() bool { return s >= Screen && s <= Normalized }

// String returns the lower-case name.
func (s Space) String() string {
	if !s.valid() {
		return fmt.Sprintf("Space(%d)", int(s))
	}

	return spaceNames[s]
}

// ParseSpace maps a case-insensitive name to its Space.
func ParseSpace(name string) (Space, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for s, v := range spaceNames {
		if v == n {
			return Space(s), nil
		}
	}

	return 0, fmt.Errorf("ParseSpace(%q): %w", name, ErrUnknownSpace)
}

// Between returns the chain mapping from → to when from is outside to,
// and the chain to → from otherwise. inverse reports the latter case.
func (d Display) Between(from, to Space) (c chain.Chain, inverse bool, err error) {
	if !from.valid() || !to.valid() {
		return chain.Chain{}, false, fmt.Errorf("Between(%s, %s): %w", from, to, ErrUnknownSpace)
	}
	steps := d.Pipeline().Steps()
	if from <= to {
		return chain.New(steps[from:to]...), false, nil
	}

	return chain.New(steps[to:from]...), true, nil
}

// Convert maps p from one space into another, running the pipeline forward
// for deeper spaces and inverted for outer ones.
//
// Errors:
//   - ErrUnknownSpace for an invalid space.
//   - ErrInvalidDisplay when the display fails Validate.
//   - *chain.StepError if an inverse step fails.
func (d Display) Convert(p geom.Point, from, to Space, opts ...matrix.Option) (geom.Point, error) {
	if err := d.Validate(); err != nil {
		return geom.Point{}, fmt.Errorf("Convert: %w", err)
	}
	c, inverse, err := d.Between(from, to)
	if err != nil {
		return geom.Point{}, err
	}
	if !inverse {
		return c.Forward(p), nil
	}
	q, err := c.Inverse(p, opts...)
	if err != nil {
		return geom.Point{}, fmt.Errorf("Convert(%s → %s): %w", from, to, err)
	}

	return q, nil
}
