// SPDX-License-Identifier: MPL-2.0

package buildfile

import (
	_ "embed"

	"github.com/jlinkrun/jlinkrun/pkg/cueutil"
)

//go:embed buildfile_schema.cue
var buildSchema []byte

// Schema returns the CUE schema build descriptions are validated against.
func Schema() string { return string(buildSchema) }

func decodeCUE(data []byte, filename string, maxFileSize int64) (*Descriptor, error) {
	result, err := cueutil.ParseAndDecode[Descriptor](
		buildSchema,
		data,
		"#Build",
		cueutil.WithFilename(filename),
		cueutil.WithMaxFileSize(maxFileSize),
	)
	if err != nil {
		return nil, err
	}
	return result.Value, nil
}
