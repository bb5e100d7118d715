package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashString creates a SHA-256 hash of the normalized input so contact
// details can be correlated in logs without being written out.
func HashString(input string) string {
	h := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(input))))
	return hex.EncodeToString(h[:])
}

// ShortHash returns the first 12 hex characters of HashString.
func ShortHash(input string) string {
	return HashString(input)[:12]
}
