// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"math"
)

// Descriptor is the serializable form of a Transform:
//
//	{"kind": "affine", "params": [a, b, c, d, e, f]}
//
// Params follow the order of the variant's Params method.
type Descriptor struct {
	Kind   Kind      `json:"kind"`
	Params []float64 `json:"params"`
}

// Describe returns the Descriptor of t.
func Describe(t Transform) Descriptor {
	return Descriptor{Kind: t.Kind(), Params: t.Params()}
}

// FromDescriptor rebuilds the variant described by d.
//
// Errors:
//   - ErrUnknownKind for an invalid kind.
//   - ErrParamCount when len(d.Params) != d.Kind.ParamCount() or a
//     parameter is NaN/Inf.
func FromDescriptor(d Descriptor) (Transform, error) {
	if !d.Kind.Valid() {
		return nil, fmt.Errorf("FromDescriptor: %w", ErrUnknownKind)
	}
	if len(d.Params) != d.Kind.ParamCount() {
		return nil, fmt.Errorf("FromDescriptor(%s): have %d params, need %d: %w",
			d.Kind, len(d.Params), d.Kind.ParamCount(), ErrParamCount)
	}
	for i, v := range d.Params {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("FromDescriptor(%s): params[%d]=%g: %w", d.Kind, i, v, ErrParamCount)
		}
	}

	p := d.Params
	switch d.Kind {
	case KindOffset:
		return Offset{DX: p[0], DY: p[1]}, nil
	case KindScale:
		return Scale{SX: p[0], SY: p[1], DX: p[2], DY: p[3]}, nil
	case KindAffine:
		return NewAffine(p[0], p[1], p[2], p[3], p[4], p[5]), nil
	default:
		return NewPerspective(p[0], p[1], p[2], p[3], p[4], p[5], p[6], p[7], p[8]), nil
	}
}
