package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashText returns the lowercase hex SHA-256 digest of the UTF-8 bytes of s.
func HashText(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
