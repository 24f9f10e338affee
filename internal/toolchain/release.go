// SPDX-License-Identifier: MPL-2.0

package toolchain

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReleaseFile is the metadata file at the root of every JDK image.
const ReleaseFile = "release"

// ErrNoJavaVersion is returned when a release file lacks JAVA_VERSION.
var ErrNoJavaVersion = errors.New("no JAVA_VERSION in release file")

// ReleaseVersion reads JAVA_VERSION from the release file of a JDK home.
func ReleaseVersion(home string) (string, error) {
	path := filepath.Join(home, ReleaseFile)
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read release file: %w", err)
	}

	props, err := ParseRelease(content, path)
	if err != nil {
		return "", err
	}
	version, ok := props["JAVA_VERSION"]
	if !ok || version == "" {
		return "", fmt.Errorf("%w: %s", ErrNoJavaVersion, path)
	}
	return version, nil
}

// ParseRelease parses the KEY="value" lines of a JDK release file.
// Blank lines and # comments are skipped, values may be double-quoted,
// single-quoted or bare. The filename is used for error messages.
func ParseRelease(content []byte, filename string) (map[string]string, error) {
	props := make(map[string]string)
	for i, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("%s:%d: invalid format (missing '=')", filename, i+1)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("%s:%d: empty property name", filename, i+1)
		}

		parsed, err := unquote(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", filename, i+1, err)
		}
		props[key] = parsed
	}
	return props, nil
}

func unquote(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	switch quote := value[0]; quote {
	case '"', '\'':
		if len(value) < 2 || value[len(value)-1] != quote {
			return "", fmt.Errorf("unterminated %c quote", quote)
		}
		return value[1 : len(value)-1], nil
	default:
		return value, nil
	}
}
