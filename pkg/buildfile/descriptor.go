// SPDX-License-Identifier: MPL-2.0

package buildfile

import (
	"path/filepath"

	"github.com/jlinkrun/jlinkrun/pkg/jlink"
	"github.com/jlinkrun/jlinkrun/pkg/types"
)

type (
	// Descriptor is a decoded build description.
	//
	// Fields carry no validation beyond their types; jlink.Assemble validates
	// the resulting Configuration.
	Descriptor struct {
		// Skip disables the jlink invocation entirely.
		Skip bool `json:"skip,omitempty" toml:"skip" yaml:"skip" hcl:"skip,optional"`
		// Toolchain selects a configured JDK toolchain by version.
		Toolchain string `json:"toolchain,omitempty" toml:"toolchain" yaml:"toolchain" hcl:"toolchain,optional"`

		BindServices             bool            `json:"bind_services,omitempty" toml:"bind_services" yaml:"bind_services" hcl:"bind_services,optional"`
		Endian                   string          `json:"endian,omitempty" toml:"endian" yaml:"endian" hcl:"endian,optional"`
		IgnoreSigningInformation bool            `json:"ignore_signing_information,omitempty" toml:"ignore_signing_information" yaml:"ignore_signing_information" hcl:"ignore_signing_information,optional"`
		NoHeaderFiles            bool            `json:"no_header_files,omitempty" toml:"no_header_files" yaml:"no_header_files" hcl:"no_header_files,optional"`
		NoManPages               bool            `json:"no_man_pages,omitempty" toml:"no_man_pages" yaml:"no_man_pages" hcl:"no_man_pages,optional"`
		Output                   string          `json:"output,omitempty" toml:"output" yaml:"output" hcl:"output,optional"`
		StripDebug               bool            `json:"strip_debug,omitempty" toml:"strip_debug" yaml:"strip_debug" hcl:"strip_debug,optional"`
		Verbose                  bool            `json:"verbose,omitempty" toml:"verbose" yaml:"verbose" hcl:"verbose,optional"`
		AddModules               []string        `json:"add_modules,omitempty" toml:"add_modules" yaml:"add_modules" hcl:"add_modules,optional"`
		LimitModules             []string        `json:"limit_modules,omitempty" toml:"limit_modules" yaml:"limit_modules" hcl:"limit_modules,optional"`
		ModulePaths              []string        `json:"module_paths,omitempty" toml:"module_paths" yaml:"module_paths" hcl:"module_paths,optional"`
		Launchers                []LauncherEntry `json:"launchers,omitempty" toml:"launchers" yaml:"launchers" hcl:"launcher,block"`
		DisablePlugins           []string        `json:"disable_plugins,omitempty" toml:"disable_plugins" yaml:"disable_plugins" hcl:"disable_plugins,optional"`

		path   string
		format Format
	}

	// LauncherEntry is one launcher declaration.
	LauncherEntry struct {
		Name      string  `json:"name" toml:"name" yaml:"name" hcl:"name,label"`
		Module    string  `json:"module" toml:"module" yaml:"module" hcl:"module"`
		MainClass *string `json:"main_class,omitempty" toml:"main_class" yaml:"main_class" hcl:"main_class,optional"`
	}
)

// Path returns the file the descriptor was loaded from, or "" for parsed bytes.
func (d *Descriptor) Path() string { return d.path }

// Format returns the format the descriptor was decoded from.
func (d *Descriptor) Format() Format { return d.format }

// BaseDir returns the directory relative paths are resolved against:
// the build description's directory, or "" (the working directory) when
// the descriptor was not loaded from a file.
func (d *Descriptor) BaseDir() string {
	if d.path == "" {
		return ""
	}
	return filepath.Dir(d.path)
}

// Configuration converts the descriptor into a jlink.Configuration.
func (d *Descriptor) Configuration() jlink.Configuration {
	cfg := jlink.Configuration{
		BindServices:             d.BindServices,
		Endian:                   jlink.Endian(d.Endian),
		IgnoreSigningInformation: d.IgnoreSigningInformation,
		NoHeaderFiles:            d.NoHeaderFiles,
		NoManPages:               d.NoManPages,
		Output:                   types.FilesystemPath(d.Output),
		StripDebug:               d.StripDebug,
		Verbose:                  d.Verbose,
		AddModules:               nonEmpty(d.AddModules),
		LimitModules:             nonEmpty(d.LimitModules),
		DisablePlugins:           nonEmpty(d.DisablePlugins),
	}
	for _, p := range d.ModulePaths {
		cfg.ModulePaths = append(cfg.ModulePaths, types.FilesystemPath(p))
	}
	for _, l := range d.Launchers {
		cfg.Launchers = append(cfg.Launchers, jlink.Launcher{Name: l.Name, Module: l.Module, MainClass: l.MainClass})
	}
	return cfg
}

func nonEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
