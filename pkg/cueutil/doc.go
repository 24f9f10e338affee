// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides the CUE parsing flow shared by build descriptions
// and the application configuration:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify with the schema's root definition
//  3. Validate and decode, either into a Go struct or into a generic map
//
// Errors carry the file name and the JSON path of the offending field.
//
// # Usage
//
//	//go:embed buildfile_schema.cue
//	var schemaBytes []byte
//
//	result, err := cueutil.ParseAndDecode[Descriptor](
//	    schemaBytes,
//	    data,
//	    "#Build",
//	    cueutil.WithFilename("jlink.cue"),
//	)
package cueutil
