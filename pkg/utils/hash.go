package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashEmail normalizes and hashes an email address the way analytics
// platforms expect user-provided data: trimmed, lowercased, SHA-256 hex.
func HashEmail(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
