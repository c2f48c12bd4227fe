// SPDX-License-Identifier: MIT

package viewport

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Load decodes a TOML display description on top of Default and validates
// the result.
//
// Errors:
//   - TOML syntax or type errors from the decoder.
//   - ErrUnknownKey listing every key Display does not define.
//   - ErrInvalidDisplay from Validate.
func Load(r io.Reader) (Display, error) {
	d := Default()
	md, err := toml.NewDecoder(r).Decode(&d)
	if err != nil {
		return Display{}, fmt.Errorf("Load: %w", err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return Display{}, fmt.Errorf("Load: %s: %w", strings.Join(keys, ", "), ErrUnknownKey)
	}
	if err = d.Validate(); err != nil {
		return Display{}, fmt.Errorf("Load: %w", err)
	}

	return d, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (Display, error) {
	f, err := os.Open(path)
	if err != nil {
		return Display{}, err
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return Display{}, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// Encode writes d as TOML.
func Encode(w io.Writer, d Display) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return toml.NewEncoder(w).Encode(d)
}
