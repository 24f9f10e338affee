// SPDX-License-Identifier: MPL-2.0

package cmdline

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// FingerprintPrefix marks the hash algorithm of a fingerprint string.
const FingerprintPrefix = "blake3:"

// Fingerprint returns a stable digest of an argument vector. Each element is
// prefixed with its uvarint length, so no two distinct vectors share an encoding.
func Fingerprint(args []string) string {
	h := blake3.New()
	var n [binary.MaxVarintLen64]byte
	for _, a := range args {
		_, _ = h.Write(n[:binary.PutUvarint(n[:], uint64(len(a)))])
		_, _ = h.Write([]byte(a))
	}
	return FingerprintPrefix + hex.EncodeToString(h.Sum(nil))
}
