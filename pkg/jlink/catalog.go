// SPDX-License-Identifier: MPL-2.0

package jlink

import "fmt"

// Option identifiers, declared in emission order.
const (
	OptBindServices OptionID = iota
	OptEndian
	OptIgnoreSigningInformation
	OptNoHeaderFiles
	OptNoManPages
	OptOutput
	OptStripDebug
	OptVerbose
	OptAddModules
	OptLimitModules
	OptModulePath
	OptLauncher
	OptDisablePlugin
)

const (
	// KindFlag is a boolean option emitted as a bare flag.
	KindFlag Kind = "flag"
	// KindEnum is an enumerated option emitted as flag plus lowercase value.
	KindEnum Kind = "enum"
	// KindPath is a single path option.
	KindPath Kind = "path"
	// KindList is a list option joined with commas into one value.
	KindList Kind = "list"
	// KindRepeatedPath is a path option emitted once per element.
	KindRepeatedPath Kind = "repeated-path"
	// KindLauncher is a launcher option emitted once per launcher.
	KindLauncher Kind = "launcher"
	// KindRepeated is a string option emitted once per element.
	KindRepeated Kind = "repeated"
)

type (
	// OptionID identifies one recognized jlink option.
	OptionID int

	// Kind describes how an option's value is coerced into tokens.
	Kind string

	// Option is one entry of the catalog.
	Option struct {
		ID   OptionID
		Flag string
		Kind Kind
		// Key is the field name used in build descriptions.
		Key string
		// Mandatory options must produce a value or assembly fails.
		Mandatory bool
		// MustExist paths are checked for existence before being emitted.
		MustExist bool
	}
)

var catalog = [...]Option{
	{ID: OptBindServices, Flag: "--bind-services", Kind: KindFlag, Key: "bind_services"},
	{ID: OptEndian, Flag: "--endian", Kind: KindEnum, Key: "endian"},
	{ID: OptIgnoreSigningInformation, Flag: "--ignore-signing-information", Kind: KindFlag, Key: "ignore_signing_information"},
	{ID: OptNoHeaderFiles, Flag: "--no-header-files", Kind: KindFlag, Key: "no_header_files"},
	{ID: OptNoManPages, Flag: "--no-man-pages", Kind: KindFlag, Key: "no_man_pages"},
	{ID: OptOutput, Flag: "--output", Kind: KindPath, Key: "output", Mandatory: true},
	{ID: OptStripDebug, Flag: "--strip-debug", Kind: KindFlag, Key: "strip_debug"},
	{ID: OptVerbose, Flag: "--verbose", Kind: KindFlag, Key: "verbose"},
	{ID: OptAddModules, Flag: "--add-modules", Kind: KindList, Key: "add_modules"},
	{ID: OptLimitModules, Flag: "--limit-modules", Kind: KindList, Key: "limit_modules"},
	{ID: OptModulePath, Flag: "--module-path", Kind: KindRepeatedPath, Key: "module_paths", MustExist: true},
	{ID: OptLauncher, Flag: "--launcher", Kind: KindLauncher, Key: "launchers"},
	{ID: OptDisablePlugin, Flag: "--disable-plugin", Kind: KindRepeated, Key: "disable_plugins"},
}

// Catalog returns every recognized option in emission order.
// The returned slice is a copy and may be modified by the caller.
func Catalog() []Option {
	out := make([]Option, len(catalog))
	copy(out, catalog[:])
	return out
}

// Lookup returns the option whose flag is flag.
func Lookup(flag string) (Option, bool) {
	for _, o := range catalog {
		if o.Flag == flag {
			return o, true
		}
	}
	return Option{}, false
}

// Option returns the catalog entry for id. It panics on an unknown id.
func (id OptionID) Option() Option {
	if id < 0 || int(id) >= len(catalog) {
		panic(fmt.Sprintf("jlink: unknown option id %d", int(id)))
	}
	return catalog[id]
}

// String returns the option's flag.
func (id OptionID) String() string {
	if id < 0 || int(id) >= len(catalog) {
		return fmt.Sprintf("OptionID(%d)", int(id))
	}
	return catalog[id].Flag
}

// TakesValue reports whether the flag is followed by a value token.
func (k Kind) TakesValue() bool { return k != KindFlag }

// String returns the string representation of the Kind.
func (k Kind) String() string { return string(k) }
