// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"strings"
)

// Kind selects a transform variant.
type Kind int

const (
	KindOffset Kind = iota
	KindScale
	KindAffine
	KindPerspective
)

var kindNames = [...]string{
	KindOffset:      "offset",
	KindScale:       "scale",
	KindAffine:      "affine",
	KindPerspective: "perspective",
}

var kindParams = [...]int{
	KindOffset:      2,
	KindScale:       4,
	KindAffine:      6,
	KindPerspective: 9,
}

// Kinds lists every variant in declaration order.
func Kinds() []Kind {
	return []Kind{KindOffset, KindScale, KindAffine, KindPerspective}
}

// Valid reports whether k names a known variant.
func (k Kind) Valid() bool { return k >= KindOffset && k <= KindPerspective }

// String returns the lower-case name ("offset", "scale", ...).
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// ParamCount returns the length of Params() for k, or 0 for an unknown kind.
func (k Kind) ParamCount() int {
	if !k.Valid() {
		return 0
	}

	return kindParams[k]
}

// ParseKind maps a case-insensitive name to its Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("MarshalText(%d): %w", int(k), ErrUnknownKind)
	}

	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v

	return nil
}
