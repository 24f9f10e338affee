// SPDX-License-Identifier: MPL-2.0

package jlink

import "github.com/jlinkrun/jlinkrun/pkg/types"

type (
	// Configuration holds one typed field per catalog option.
	// The zero value of a field means the option is not requested.
	Configuration struct {
		BindServices             bool
		Endian                   Endian
		IgnoreSigningInformation bool
		NoHeaderFiles            bool
		NoManPages               bool
		// Output is mandatory. It is created by jlink and must not exist beforehand,
		// so it is never existence-checked.
		Output       types.FilesystemPath
		StripDebug   bool
		Verbose      bool
		AddModules   []string
		LimitModules []string
		// ModulePaths must all exist at assembly time.
		ModulePaths    []types.FilesystemPath
		Launchers      []Launcher
		DisablePlugins []string
	}

	// ArgumentVector is the ordered token sequence passed to jlink,
	// excluding the executable.
	ArgumentVector []string
)

// Strings returns a copy of the vector as a plain string slice.
func (v ArgumentVector) Strings() []string {
	out := make([]string, len(v))
	copy(out, v)
	return out
}
