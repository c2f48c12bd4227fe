// SPDX-License-Identifier: MIT
package transform_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/coordkit/geom"
	"github.com/katalvlaran/coordkit/transform"
)

func ExampleScale_Inverse() {
	s := transform.Scale{SX: 0, SY: 1}
	fmt.Println(s.Forward(geom.Pt(3, 4)))
	_, err := s.Inverse(geom.Pt(3, 4))
	fmt.Println(errors.Is(err, transform.ErrDegenerateScale))
	// Output:
	// (0, 4)
	// true
}

func ExampleNewAffine() {
	// Swap axes and shift: x' = y + 1, y' = x − 1.
	t := transform.NewAffine(0, 1, 1, 0, 1, -1)
	q := t.Forward(geom.Pt(10, 20))
	p, _ := t.Inverse(q)
	fmt.Println(q, p)
	// Output: (21, 9) (10, 20)
}
