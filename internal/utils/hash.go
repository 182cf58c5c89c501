package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// ContentHash returns the hex encoded sha256 of data. Used for hashed asset
// filenames and the build manifest.
func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
