package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// StorageKey returns prefix + ":" + the first 32 hex chars of sha256(input).
// Inputs are hashed so arbitrary text and long code strings map to
// fixed-size provider keys.
func StorageKey(prefix, input string) string {
	sum := sha256.Sum256([]byte(input))
	return prefix + ":" + hex.EncodeToString(sum[:16])
}

// Redact returns a short, stable token for input suitable for logs.
func Redact(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:4])
}
