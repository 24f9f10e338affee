// SPDX-License-Identifier: MPL-2.0

package jlink

import (
	"strings"

	"github.com/jlinkrun/jlinkrun/pkg/types"
)

// emission is one flag with its value, or a bare flag.
type emission []string

func (e emission) String() string { return strings.Join(e, " ") }

func coerceFlag(o Option, v bool) []emission {
	if !v {
		return nil
	}
	return []emission{{o.Flag}}
}

func coerceEnum(o Option, v Endian) ([]emission, error) {
	if isValid, errs := v.IsValid(); !isValid {
		return nil, errs[0]
	}
	if !v.IsSet() {
		return nil, nil
	}
	return []emission{{o.Flag, v.Value()}}, nil
}

func coerceScalar(o Option, v string) []emission {
	if isBlank(v) {
		return nil
	}
	return []emission{{o.Flag, v}}
}

func coerceList(o Option, vs []string) []emission {
	if len(vs) == 0 {
		return nil
	}
	return coerceScalar(o, strings.Join(vs, ","))
}

func coerceRepeated(o Option, vs []string) []emission {
	var out []emission
	for _, v := range vs {
		out = append(out, coerceScalar(o, v)...)
	}
	return out
}

func coerceLaunchers(o Option, ls []Launcher) ([]emission, error) {
	out := make([]emission, 0, len(ls))
	for _, l := range ls {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		out = append(out, emission{o.Flag, l.String()})
	}
	return out, nil
}

// coercePath makes p absolute against baseDir and, for MustExist options,
// checks that it is present. Blank paths emit nothing.
func coercePath(o Option, p types.FilesystemPath, baseDir string) ([]emission, error) {
	if p.IsBlank() {
		return nil, nil
	}
	abs, err := types.FilesystemPath(strings.TrimSpace(string(p))).Resolve(baseDir)
	if err != nil {
		return nil, invalidValue(o, err)
	}
	if o.MustExist && !abs.Exists() {
		return nil, pathNotFound(o, abs.String())
	}
	return []emission{{o.Flag, abs.String()}}, nil
}

func coercePaths(o Option, ps []types.FilesystemPath, baseDir string) ([]emission, error) {
	var out []emission
	for _, p := range ps {
		e, err := coercePath(o, p, baseDir)
		if err != nil {
			return nil, err
		}
		out = append(out, e...)
	}
	return out, nil
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
