// SPDX-License-Identifier: MPL-2.0

package buildfile

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

func decodeTOML(data []byte) (*Descriptor, error) {
	var d Descriptor
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return nil, tomlError(err)
	}
	return &d, nil
}

// tomlError surfaces the offending keys and position, which go-toml only
// exposes through its typed errors.
func tomlError(err error) error {
	var missing *toml.StrictMissingError
	if errors.As(err, &missing) {
		return fmt.Errorf("unknown fields:\n%s", missing.String())
	}
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, col := decodeErr.Position()
		if key := decodeErr.Key(); len(key) > 0 {
			return fmt.Errorf("line %d, column %d: %s: %w", row, col, strings.Join(key, "."), err)
		}
		return fmt.Errorf("line %d, column %d: %w", row, col, err)
	}
	return err
}
