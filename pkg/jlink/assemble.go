// SPDX-License-Identifier: MPL-2.0

package jlink

import (
	"errors"
	"fmt"
)

type (
	// Assembler builds argument vectors from configurations.
	Assembler struct {
		baseDir  string
		reporter func(line string)
	}

	// AssemblerOption configures an Assembler.
	AssemblerOption func(*Assembler)
)

// WithBaseDir sets the directory relative paths are resolved against.
// Without it they are resolved against the working directory.
func WithBaseDir(dir string) AssemblerOption {
	return func(a *Assembler) { a.baseDir = dir }
}

// WithReporter sets a sink that receives one line per emitted option
// ("flag value" or "flag") and the reason of an assembly failure.
func WithReporter(fn func(line string)) AssemblerOption {
	return func(a *Assembler) { a.reporter = fn }
}

// NewAssembler creates an Assembler.
func NewAssembler(opts ...AssemblerOption) *Assembler {
	a := &Assembler{reporter: func(string) {}}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble is shorthand for NewAssembler(opts...).Assemble(cfg).
func Assemble(cfg Configuration, opts ...AssemblerOption) (ArgumentVector, error) {
	return NewAssembler(opts...).Assemble(cfg)
}

// Assemble walks the catalog in order and returns the complete argument vector.
// On failure the vector is nil and the error is a *ConfigurationError.
func (a *Assembler) Assemble(cfg Configuration) (ArgumentVector, error) {
	var args ArgumentVector
	for _, o := range catalog {
		emitted, err := a.emissions(o, &cfg)
		if err == nil && o.Mandatory && len(emitted) == 0 {
			err = missingMandatory(o)
		}
		if err != nil {
			cfgErr := asConfigurationError(o, err)
			a.reporter(cfgErr.Error())
			return nil, cfgErr
		}
		for _, e := range emitted {
			a.reporter(e.String())
			args = append(args, e...)
		}
	}
	return args, nil
}

// emissions maps an option to its configuration field. The switch must
// cover every OptionID.
func (a *Assembler) emissions(o Option, cfg *Configuration) ([]emission, error) {
	switch o.ID {
	case OptBindServices:
		return coerceFlag(o, cfg.BindServices), nil
	case OptEndian:
		return coerceEnum(o, cfg.Endian)
	case OptIgnoreSigningInformation:
		return coerceFlag(o, cfg.IgnoreSigningInformation), nil
	case OptNoHeaderFiles:
		return coerceFlag(o, cfg.NoHeaderFiles), nil
	case OptNoManPages:
		return coerceFlag(o, cfg.NoManPages), nil
	case OptOutput:
		return coercePath(o, cfg.Output, a.baseDir)
	case OptStripDebug:
		return coerceFlag(o, cfg.StripDebug), nil
	case OptVerbose:
		return coerceFlag(o, cfg.Verbose), nil
	case OptAddModules:
		return coerceList(o, cfg.AddModules), nil
	case OptLimitModules:
		return coerceList(o, cfg.LimitModules), nil
	case OptModulePath:
		return coercePaths(o, cfg.ModulePaths, a.baseDir)
	case OptLauncher:
		return coerceLaunchers(o, cfg.Launchers)
	case OptDisablePlugin:
		return coerceRepeated(o, cfg.DisablePlugins), nil
	default:
		return nil, fmt.Errorf("unhandled option %s", o.ID)
	}
}

func asConfigurationError(o Option, err error) *ConfigurationError {
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return cfgErr
	}
	return invalidValue(o, err)
}
